package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"voicesmith/internal/domains/voice"
	voicerepo "voicesmith/internal/repository/voice"
	"voicesmith/pkg/Logger"
)

func newVoiceRouter(t *testing.T) (*gin.Engine, voice.VoiceService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&voicerepo.VoiceEntity{}))

	svc := voice.NewVoiceService(voicerepo.NewGormVoiceRepo(db), Logger.Nop())
	handler := NewVoiceHandler(svc, Logger.Nop())

	r := gin.New()
	voices := r.Group("/api/v1/voices")
	{
		voices.POST("", handler.CreateVoice)
		voices.GET("", handler.ListVoices)
		voices.GET("/search", handler.SearchVoices)
		voices.GET("/:id", handler.GetVoice)
		voices.PATCH("/:id", handler.UpdateVoice)
		voices.DELETE("/:id", handler.DeleteVoice)
	}
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetVoiceOverHTTP(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/voices", voice.CreateVoiceRequest{
		UserID:   "user_1",
		Name:     "Morning narrator",
		Category: "narration",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateVoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Morning narrator", created.Voice.Name)
	assert.Equal(t, "elevenlabs", created.Voice.Provider)
	assert.Equal(t, voice.DefaultSettings(), created.Voice.Settings)

	w = doJSON(t, r, http.MethodGet, "/api/v1/voices/"+created.Voice.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched VoiceByIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Voice.ID, fetched.Voice.ID)
	assert.Equal(t, "narration", fetched.Voice.Category)
}

func TestCreateVoiceRejectsMissingName(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/voices", map[string]string{"userId": "user_1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVoiceNotFound(t *testing.T) {
	r, _ := newVoiceRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/voices/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Voice not found", resp.Error)
}

func TestSearchVoicesOverHTTP(t *testing.T) {
	r, svc := newVoiceRouter(t)
	ctx := context.Background()

	for _, name := range []string{"Morning narrator", "Evening Narrator", "Podcast host"} {
		_, err := svc.CreateVoice(ctx, voice.CreateVoiceRequest{UserID: "user_1", Name: name})
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/voices/search?q=narrat", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchVoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Voices, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, voice.DefaultSearchLimit, resp.Pagination.Limit)
	assert.Equal(t, "narrat", resp.Query)

	// Missing query is a client error, not an empty result.
	w = doJSON(t, r, http.MethodGet, "/api/v1/voices/search", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVoicesPaginationEcho(t *testing.T) {
	r, svc := newVoiceRouter(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateVoice(ctx, voice.CreateVoiceRequest{UserID: "user_1", Name: "Voice"})
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/voices?limit=2&offset=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListVoicesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Voices, 1)
	assert.Equal(t, int64(3), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, 2, resp.Pagination.Offset)
}

func TestUpdateVoiceOwnership(t *testing.T) {
	r, svc := newVoiceRouter(t)
	ctx := context.Background()

	created, err := svc.CreateVoice(ctx, voice.CreateVoiceRequest{UserID: "user_1", Name: "Narrator"})
	require.NoError(t, err)

	newName := "Evening narrator"
	w := doJSON(t, r, http.MethodPatch, "/api/v1/voices/"+created.ID+"?user_id=user_2",
		voice.UpdateVoiceRequest{Name: &newName})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/voices/"+created.ID+"?user_id=user_1",
		voice.UpdateVoiceRequest{Name: &newName})
	require.Equal(t, http.StatusOK, w.Code)

	var resp UpdateVoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, newName, resp.Voice.Name)

	// Missing user_id never reaches the service.
	w = doJSON(t, r, http.MethodPatch, "/api/v1/voices/"+created.ID,
		voice.UpdateVoiceRequest{Name: &newName})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVoiceOverHTTP(t *testing.T) {
	r, svc := newVoiceRouter(t)

	created, err := svc.CreateVoice(context.Background(), voice.CreateVoiceRequest{UserID: "user_1", Name: "Narrator"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/voices/"+created.ID+"?user_id=user_2", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/voices/"+created.ID+"?user_id=user_1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/voices/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
