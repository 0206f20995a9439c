package generation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voicesmith/internal/domains/generation"
)

func newTestRepo(t *testing.T) generation.GenerationRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&GenerationEntity{}))
	return NewGormGenerationRepo(db)
}

func TestCreateAndListByVoice(t *testing.T) {
	repo := newTestRepo(t)
	voiceA := uuid.New()
	voiceB := uuid.New()

	for i := 0; i < 3; i++ {
		g := generation.NewGeneration("alice", voiceA, "hello there", "eleven_multilingual_v2")
		require.NoError(t, repo.Create(g))
	}
	require.NoError(t, repo.Create(generation.NewGeneration("alice", voiceB, "other voice", "eleven_multilingual_v2")))

	got, total, err := repo.List(generation.ListGenerationsRequest{VoiceID: voiceA.String(), Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, got, 3)
	assert.Equal(t, 11, got[0].CharCount)
}

func TestDeleteByVoiceID(t *testing.T) {
	repo := newTestRepo(t)
	voiceID := uuid.New()
	require.NoError(t, repo.Create(generation.NewGeneration("alice", voiceID, "hello", "")))
	require.NoError(t, repo.Create(generation.NewGeneration("alice", uuid.New(), "keep me", "")))

	require.NoError(t, repo.DeleteByVoiceID(voiceID.String()))

	_, total, err := repo.List(generation.ListGenerationsRequest{UserID: "alice", Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}
