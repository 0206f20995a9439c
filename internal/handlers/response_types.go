package handlers

import (
	"voicesmith/internal/domains/generation"
	"voicesmith/internal/domains/voice"
	"voicesmith/internal/elevenlabs"
)

// Response wrapper types for Swagger documentation

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// PaginationInfo represents pagination information
type PaginationInfo struct {
	Total  int64 `json:"total" example:"150"`
	Offset int   `json:"offset" example:"0"`
	Limit  int   `json:"limit" example:"20"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2023-01-01T12:00:00Z"`
}

// Voice-related responses

// CreateVoiceResponse represents the response for voice creation
type CreateVoiceResponse struct {
	Message string              `json:"message" example:"Voice created successfully"`
	Voice   voice.VoiceResponse `json:"voice"`
}

// VoiceByIDResponse represents the response for getting a single voice
type VoiceByIDResponse struct {
	Voice voice.VoiceResponse `json:"voice"`
}

// UpdateVoiceResponse represents the response for updating a voice
type UpdateVoiceResponse struct {
	Message string              `json:"message" example:"Voice updated successfully"`
	Voice   voice.VoiceResponse `json:"voice"`
}

// ListVoicesResponse represents the response for listing voices
type ListVoicesResponse struct {
	Voices     []voice.VoiceResponse `json:"voices"`
	Pagination PaginationInfo        `json:"pagination"`
}

// SearchVoicesResponse represents the response for searching voices
type SearchVoicesResponse struct {
	Voices     []voice.VoiceResponse `json:"voices"`
	Pagination PaginationInfo        `json:"pagination"`
	Query      string                `json:"query,omitempty"`
}

// Cloning-related requests and responses

// CloneVoiceResponse represents the response for a clone upload
type CloneVoiceResponse struct {
	Message string              `json:"message" example:"Voice cloned successfully"`
	Voice   voice.VoiceResponse `json:"voice"`
}

// SynthesizeRequest represents the request body for text-to-speech
type SynthesizeRequest struct {
	Text     string          `json:"text" binding:"required,min=1" example:"Welcome back, listeners."`
	ModelID  string          `json:"modelId,omitempty" example:"eleven_multilingual_v2"`
	Settings *voice.Settings `json:"settings,omitempty"`
}

// VendorVoicesResponse represents the vendor's voice listing
type VendorVoicesResponse struct {
	Voices []elevenlabs.VendorVoice `json:"voices"`
}

// UsageResponse represents the vendor subscription usage
type UsageResponse struct {
	Usage elevenlabs.Subscription `json:"usage"`
}

// ModelsResponse represents the available synthesis models
type ModelsResponse struct {
	Models []elevenlabs.Model `json:"models"`
}

// Generation-related responses

// ListGenerationsResponse represents the response for listing generations
type ListGenerationsResponse struct {
	Generations []generation.GenerationResponse `json:"generations"`
	Pagination  PaginationInfo                  `json:"pagination"`
}
