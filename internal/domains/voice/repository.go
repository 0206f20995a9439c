package voice

import (
	"time"

	"github.com/google/uuid"
)

// Listing bounds. Requests outside these are clamped, not rejected.
const (
	DefaultListLimit   = 50
	DefaultSearchLimit = 20
	MaxListLimit       = 100
)

// Settings holds the vendor tuning parameters stored alongside a voice.
// @Description ElevenLabs voice generation settings
type Settings struct {
	Stability       float64 `json:"stability" example:"0.5"`
	SimilarityBoost float64 `json:"similarity_boost" example:"0.8"`
	Style           float64 `json:"style" example:"0.0"`
	UseSpeakerBoost bool    `json:"use_speaker_boost" example:"true"`
}

// DefaultSettings returns the tuning applied to freshly cloned voices.
func DefaultSettings() Settings {
	return Settings{
		Stability:       0.5,
		SimilarityBoost: 0.8,
		Style:           0.0,
		UseSpeakerBoost: true,
	}
}

// Voice represents a cloned voice in the system (pure domain model)
// @Description A user's cloned voice and its vendor linkage
type Voice struct {
	ID              uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          string    `json:"userId" example:"user_2x8f"`
	Name            string    `json:"name" example:"Morning narrator"`
	Description     string    `json:"description" example:"Warm, slow narration voice"`
	Category        string    `json:"category" example:"narration"`
	Language        string    `json:"language" example:"en"`
	AudioURL        string    `json:"audioUrl" example:"https://abc.supabase.co/storage/v1/object/public/voice-samples/sample.wav"`
	DurationSeconds float64   `json:"durationSeconds" example:"12.5"`
	ExternalVoiceID string    `json:"externalVoiceId" example:"21m00Tcm4TlvDq8ikWAM"`
	Provider        string    `json:"provider" example:"elevenlabs"`
	ModelID         string    `json:"modelId" example:"eleven_multilingual_v2"`
	Settings        Settings  `json:"settings"`
	CreatedAt       time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2023-01-01T12:00:00Z"`
}

// CreateVoiceRequest represents the data needed to register a voice
// @Description Request body for voice creation
type CreateVoiceRequest struct {
	UserID          string    `json:"userId" binding:"required" example:"user_2x8f"`
	Name            string    `json:"name" binding:"required,min=1" example:"Morning narrator"`
	Description     string    `json:"description,omitempty" example:"Warm, slow narration voice"`
	Category        string    `json:"category,omitempty" example:"narration"`
	Language        string    `json:"language,omitempty" example:"en"`
	AudioURL        string    `json:"audioUrl,omitempty"`
	DurationSeconds float64   `json:"durationSeconds,omitempty" example:"12.5"`
	ExternalVoiceID string    `json:"externalVoiceId,omitempty"`
	ModelID         string    `json:"modelId,omitempty" example:"eleven_multilingual_v2"`
	Settings        *Settings `json:"settings,omitempty"`
}

// UpdateVoiceRequest represents the fields that can change after creation
// @Description Request body for updating a voice
type UpdateVoiceRequest struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,min=1" example:"Evening narrator"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty" example:"audiobook"`
	Language    *string   `json:"language,omitempty" example:"de"`
	Settings    *Settings `json:"settings,omitempty"`
}

// ListVoicesRequest represents filters for listing voices
// @Description Query parameters for listing voices
type ListVoicesRequest struct {
	UserID   string `form:"user_id" example:"user_2x8f"`
	Category string `form:"category" example:"narration"`
	Language string `form:"language" example:"en"`
	Search   string `form:"search" example:"narrator"`
	Offset   int    `form:"offset" example:"0"`
	Limit    int    `form:"limit" example:"50"`
}

// Normalize clamps pagination into the supported range. A zero limit takes
// the default for the given mode; search listings default smaller.
func (r *ListVoicesRequest) Normalize() {
	if r.Limit <= 0 {
		if r.Search != "" {
			r.Limit = DefaultSearchLimit
		} else {
			r.Limit = DefaultListLimit
		}
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}

// VoiceResponse represents a voice in API responses
// @Description Voice information returned in API responses
type VoiceResponse struct {
	ID              string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          string    `json:"userId" example:"user_2x8f"`
	Name            string    `json:"name" example:"Morning narrator"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty" example:"narration"`
	Language        string    `json:"language,omitempty" example:"en"`
	AudioURL        string    `json:"audioUrl,omitempty"`
	DurationSeconds float64   `json:"durationSeconds,omitempty" example:"12.5"`
	ExternalVoiceID string    `json:"externalVoiceId,omitempty" example:"21m00Tcm4TlvDq8ikWAM"`
	Provider        string    `json:"provider" example:"elevenlabs"`
	ModelID         string    `json:"modelId,omitempty" example:"eleven_multilingual_v2"`
	Settings        Settings  `json:"settings"`
	CreatedAt       time.Time `json:"createdAt" example:"2023-01-01T12:00:00Z"`
	UpdatedAt       time.Time `json:"updatedAt" example:"2023-01-01T12:00:00Z"`
}

// ToResponse converts a Voice to VoiceResponse
func (v *Voice) ToResponse() VoiceResponse {
	return VoiceResponse{
		ID:              v.ID.String(),
		UserID:          v.UserID,
		Name:            v.Name,
		Description:     v.Description,
		Category:        v.Category,
		Language:        v.Language,
		AudioURL:        v.AudioURL,
		DurationSeconds: v.DurationSeconds,
		ExternalVoiceID: v.ExternalVoiceID,
		Provider:        v.Provider,
		ModelID:         v.ModelID,
		Settings:        v.Settings,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// NewVoice creates a voice with generated ID and defaulted settings
func NewVoice(req CreateVoiceRequest) *Voice {
	settings := DefaultSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}
	modelID := req.ModelID
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}

	now := time.Now()
	return &Voice{
		ID:              uuid.New(),
		UserID:          req.UserID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Language:        req.Language,
		AudioURL:        req.AudioURL,
		DurationSeconds: req.DurationSeconds,
		ExternalVoiceID: req.ExternalVoiceID,
		Provider:        "elevenlabs",
		ModelID:         modelID,
		Settings:        settings,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// VoiceRepository defines the interface for voice data operations
type VoiceRepository interface {
	// Create a new voice
	Create(v *Voice) error

	// Get voice by ID
	GetByID(id string) (*Voice, error)

	// List voices with filters and pagination
	List(filters ListVoicesRequest) ([]Voice, int64, error)

	// Update voice
	Update(id string, updates UpdateVoiceRequest) (*Voice, error)

	// Delete voice (hard delete)
	Delete(id string) error
}
