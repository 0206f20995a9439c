package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"voicesmith/pkg/Logger"
)

// Common errors
var (
	ErrInvalidGeneration = errors.New("invalid generation data")
)

// GenerationService defines the interface for synthesis history logic
type GenerationService interface {
	RecordGeneration(ctx context.Context, userID string, voiceID uuid.UUID, text, modelID string) (*GenerationResponse, error)
	ListGenerations(ctx context.Context, filters ListGenerationsRequest) ([]GenerationResponse, int64, error)
	PurgeVoice(ctx context.Context, voiceID string) error
}

type generationService struct {
	repository GenerationRepository
	logger     *Logger.Logger
}

// RecordGeneration implements GenerationService
func (s *generationService) RecordGeneration(ctx context.Context, userID string, voiceID uuid.UUID, text, modelID string) (*GenerationResponse, error) {
	if text == "" || userID == "" {
		return nil, ErrInvalidGeneration
	}

	g := NewGeneration(userID, voiceID, text, modelID)
	if err := s.repository.Create(g); err != nil {
		s.logger.Errorf("error recording generation: %v", err)
		return nil, fmt.Errorf("failed to record generation: %w", err)
	}

	response := g.ToResponse()
	return &response, nil
}

// ListGenerations implements GenerationService
func (s *generationService) ListGenerations(ctx context.Context, filters ListGenerationsRequest) ([]GenerationResponse, int64, error) {
	if filters.Limit <= 0 {
		filters.Limit = 50
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	generations, total, err := s.repository.List(filters)
	if err != nil {
		s.logger.Errorf("error listing generations: %v", err)
		return nil, 0, fmt.Errorf("failed to list generations: %w", err)
	}

	responses := make([]GenerationResponse, len(generations))
	for i, g := range generations {
		responses[i] = g.ToResponse()
	}

	return responses, total, nil
}

// PurgeVoice implements GenerationService
func (s *generationService) PurgeVoice(ctx context.Context, voiceID string) error {
	if err := s.repository.DeleteByVoiceID(voiceID); err != nil {
		s.logger.Errorf("error purging generations for voice %s: %v", voiceID, err)
		return fmt.Errorf("failed to purge generations: %w", err)
	}
	return nil
}

// NewGenerationService creates a new generation service
func NewGenerationService(repository GenerationRepository, logger *Logger.Logger) GenerationService {
	return &generationService{
		repository: repository,
		logger:     logger,
	}
}
