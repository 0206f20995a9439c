package voice

import (
	"context"
	"errors"
	"fmt"

	"voicesmith/pkg/Logger"
)

// Common errors
var (
	ErrVoiceNotFound      = errors.New("voice not found")
	ErrUnauthorizedAccess = errors.New("unauthorized access to voice")
	ErrInvalidVoiceData   = errors.New("invalid voice data")
)

// VoiceService defines the interface for voice business logic
type VoiceService interface {
	// Voice management
	CreateVoice(ctx context.Context, req CreateVoiceRequest) (*VoiceResponse, error)
	GetVoice(ctx context.Context, voiceID string) (*VoiceResponse, error)
	UpdateVoice(ctx context.Context, userID, voiceID string, req UpdateVoiceRequest) (*VoiceResponse, error)
	DeleteVoice(ctx context.Context, userID, voiceID string) (*VoiceResponse, error)

	// Listing and search
	ListVoices(ctx context.Context, filters ListVoicesRequest) ([]VoiceResponse, int64, error)
	SearchVoices(ctx context.Context, query string, filters ListVoicesRequest) ([]VoiceResponse, int64, error)
}

type voiceService struct {
	repository VoiceRepository
	logger     *Logger.Logger
}

// CreateVoice implements VoiceService
func (s *voiceService) CreateVoice(ctx context.Context, req CreateVoiceRequest) (*VoiceResponse, error) {
	if req.Name == "" || req.UserID == "" {
		return nil, ErrInvalidVoiceData
	}

	v := NewVoice(req)
	if err := s.repository.Create(v); err != nil {
		s.logger.Errorf("error creating voice: %v", err)
		return nil, fmt.Errorf("failed to create voice: %w", err)
	}

	s.logger.Infof("voice created: %s (%s) for user %s", v.Name, v.ID, v.UserID)
	response := v.ToResponse()
	return &response, nil
}

// GetVoice implements VoiceService
func (s *voiceService) GetVoice(ctx context.Context, voiceID string) (*VoiceResponse, error) {
	v, err := s.repository.GetByID(voiceID)
	if err != nil {
		if errors.Is(err, ErrVoiceNotFound) {
			return nil, ErrVoiceNotFound
		}
		s.logger.Errorf("error getting voice: %v", err)
		return nil, fmt.Errorf("failed to get voice: %w", err)
	}

	response := v.ToResponse()
	return &response, nil
}

// UpdateVoice implements VoiceService
func (s *voiceService) UpdateVoice(ctx context.Context, userID, voiceID string, req UpdateVoiceRequest) (*VoiceResponse, error) {
	existing, err := s.repository.GetByID(voiceID)
	if err != nil {
		if errors.Is(err, ErrVoiceNotFound) {
			return nil, ErrVoiceNotFound
		}
		return nil, fmt.Errorf("failed to get voice: %w", err)
	}

	if existing.UserID != userID {
		return nil, ErrUnauthorizedAccess
	}
	if req.Name != nil && *req.Name == "" {
		return nil, ErrInvalidVoiceData
	}

	updated, err := s.repository.Update(voiceID, req)
	if err != nil {
		s.logger.Errorf("error updating voice: %v", err)
		return nil, fmt.Errorf("failed to update voice: %w", err)
	}

	s.logger.Infof("voice updated: %s", voiceID)
	response := updated.ToResponse()
	return &response, nil
}

// DeleteVoice implements VoiceService. The deleted record is returned so the
// caller can clean up vendor-side state (the external voice).
func (s *voiceService) DeleteVoice(ctx context.Context, userID, voiceID string) (*VoiceResponse, error) {
	existing, err := s.repository.GetByID(voiceID)
	if err != nil {
		if errors.Is(err, ErrVoiceNotFound) {
			return nil, ErrVoiceNotFound
		}
		return nil, fmt.Errorf("failed to get voice: %w", err)
	}

	if existing.UserID != userID {
		return nil, ErrUnauthorizedAccess
	}

	if err := s.repository.Delete(voiceID); err != nil {
		s.logger.Errorf("error deleting voice: %v", err)
		return nil, fmt.Errorf("failed to delete voice: %w", err)
	}

	s.logger.Infof("voice deleted: %s", voiceID)
	response := existing.ToResponse()
	return &response, nil
}

// ListVoices implements VoiceService
func (s *voiceService) ListVoices(ctx context.Context, filters ListVoicesRequest) ([]VoiceResponse, int64, error) {
	filters.Normalize()

	voices, total, err := s.repository.List(filters)
	if err != nil {
		s.logger.Errorf("error listing voices: %v", err)
		return nil, 0, fmt.Errorf("failed to list voices: %w", err)
	}

	responses := make([]VoiceResponse, len(voices))
	for i, v := range voices {
		responses[i] = v.ToResponse()
	}

	return responses, total, nil
}

// SearchVoices implements VoiceService
func (s *voiceService) SearchVoices(ctx context.Context, query string, filters ListVoicesRequest) ([]VoiceResponse, int64, error) {
	filters.Search = query
	return s.ListVoices(ctx, filters)
}

// NewVoiceService creates a new voice service
func NewVoiceService(repository VoiceRepository, logger *Logger.Logger) VoiceService {
	return &voiceService{
		repository: repository,
		logger:     logger,
	}
}
