package generation

import (
	"time"

	"github.com/google/uuid"
)

// Generation represents one text-to-speech synthesis (pure domain model)
// @Description A synthesis run against a cloned voice
type Generation struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string    `json:"userId" example:"user_2x8f"`
	VoiceID   uuid.UUID `json:"voiceId" example:"550e8400-e29b-41d4-a716-446655440001"`
	Text      string    `json:"text" example:"Welcome back, listeners."`
	ModelID   string    `json:"modelId" example:"eleven_multilingual_v2"`
	CharCount int       `json:"charCount" example:"23"`
	CreatedAt time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
}

// ListGenerationsRequest represents filters for listing generations
// @Description Query parameters for listing generations
type ListGenerationsRequest struct {
	UserID  string `form:"user_id" example:"user_2x8f"`
	VoiceID string `form:"voice_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Offset  int    `form:"offset" example:"0"`
	Limit   int    `form:"limit" example:"50"`
}

// GenerationResponse represents a generation in API responses
// @Description Generation information returned in API responses
type GenerationResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID    string    `json:"userId" example:"user_2x8f"`
	VoiceID   string    `json:"voiceId" example:"550e8400-e29b-41d4-a716-446655440001"`
	Text      string    `json:"text" example:"Welcome back, listeners."`
	ModelID   string    `json:"modelId" example:"eleven_multilingual_v2"`
	CharCount int       `json:"charCount" example:"23"`
	CreatedAt time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
}

// ToResponse converts a Generation to GenerationResponse
func (g *Generation) ToResponse() GenerationResponse {
	return GenerationResponse{
		ID:        g.ID.String(),
		UserID:    g.UserID,
		VoiceID:   g.VoiceID.String(),
		Text:      g.Text,
		ModelID:   g.ModelID,
		CharCount: g.CharCount,
		CreatedAt: g.CreatedAt,
	}
}

// NewGeneration creates a generation record with generated ID
func NewGeneration(userID string, voiceID uuid.UUID, text, modelID string) *Generation {
	return &Generation{
		ID:        uuid.New(),
		UserID:    userID,
		VoiceID:   voiceID,
		Text:      text,
		ModelID:   modelID,
		CharCount: len([]rune(text)),
		CreatedAt: time.Now(),
	}
}

// GenerationRepository defines the interface for generation data operations
type GenerationRepository interface {
	// Create a new generation record
	Create(g *Generation) error

	// List generations with filters and pagination
	List(filters ListGenerationsRequest) ([]Generation, int64, error)

	// Delete all generations for a voice (voice removed)
	DeleteByVoiceID(voiceID string) error
}
