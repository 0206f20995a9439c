package elevenlabs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesmith/internal/config"
	"voicesmith/internal/domains/voice"
	"voicesmith/pkg/Logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.ElevenLabsConfig{
		APIKey:         "test-key",
		BaseURL:        server.URL,
		DefaultModelID: "eleven_multilingual_v2",
	}, nil, Logger.Nop())
}

func sample() voice.Sample {
	return voice.Sample{
		FileName: "clip_trimmed.wav",
		MimeType: "audio/wav",
		Data:     []byte("RIFFfake"),
		Duration: 10,
	}
}

func TestCloneVoiceSendsMultipart(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/voices/add", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Morning narrator", r.FormValue("name"))
		assert.Equal(t, "Warm tone", r.FormValue("description"))

		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "clip_trimmed.wav", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"voice_id": "ext_123"})
	}))

	id, err := client.CloneVoice(context.Background(), "Morning narrator", "Warm tone", sample())
	require.NoError(t, err)
	assert.Equal(t, "ext_123", id)
}

func TestCloneVoicePropagatesVendorDetailObject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": {"status": "invalid_sample", "message": "sample too short"}}`))
	}))

	_, err := client.CloneVoice(context.Background(), "n", "", sample())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "sample too short", apiErr.Detail)
}

func TestAPIErrorDetailString(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "missing name"}`))
	}))

	_, err := client.ListVoices(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "missing name", apiErr.Detail)
}

func TestAPIErrorGenericFallback(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`<html>nope</html>`))
	}))

	_, err := client.GetUsage(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "voice service rejected the API key", apiErr.Detail)
}

func TestSynthesizeReturnsAudio(t *testing.T) {
	mp3 := []byte("ID3\x03fake-mp3-bytes")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/ext_123", r.URL.Path)
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		var body struct {
			Text          string `json:"text"`
			ModelID       string `json:"model_id"`
			VoiceSettings struct {
				Stability       float64 `json:"stability"`
				SimilarityBoost float64 `json:"similarity_boost"`
				UseSpeakerBoost bool    `json:"use_speaker_boost"`
			} `json:"voice_settings"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Hello world", body.Text)
		assert.Equal(t, "eleven_multilingual_v2", body.ModelID, "empty model must take the default")
		assert.Equal(t, 0.5, body.VoiceSettings.Stability)
		assert.True(t, body.VoiceSettings.UseSpeakerBoost)

		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(mp3)
	}))

	audio, err := client.Synthesize(context.Background(), SynthesizeRequest{
		ExternalVoiceID: "ext_123",
		Text:            "Hello world",
		Settings:        voice.DefaultSettings(),
	})
	require.NoError(t, err)
	assert.Equal(t, mp3, audio)
}

func TestListVoicesAndModels(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/voices":
			w.Write([]byte(`{"voices": [{"voice_id": "a", "name": "A", "category": "cloned"}]}`))
		case "/v1/models":
			w.Write([]byte(`[{"model_id": "eleven_multilingual_v2", "name": "Multilingual v2"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	voices, err := client.ListVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "a", voices[0].VoiceID)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, "eleven_multilingual_v2", models[0].ModelID)
}

func TestDeleteVoice(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/voices/ext_123", r.URL.Path)
		w.Write([]byte(`{"status": "ok"}`))
	}))

	require.NoError(t, client.DeleteVoice(context.Background(), "ext_123"))
}
