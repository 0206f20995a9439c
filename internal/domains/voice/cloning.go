package voice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voicesmith/pkg/Logger"
)

var (
	ErrSampleTooLarge    = errors.New("audio sample exceeds the upload limit")
	ErrUnsupportedSample = errors.New("sample must be an audio file")
)

// UploadStatus is the lifecycle of one clone upload as reported on the
// event channel.
type UploadStatus string

const (
	UploadPending UploadStatus = "pending"
	UploadSuccess UploadStatus = "success"
	UploadError   UploadStatus = "error"
)

// UploadEvent reports clone progress to subscribers. TempID correlates the
// pending event with its terminal success or error; on success Voice holds
// the stored record, on error Message holds the reason.
type UploadEvent struct {
	TempID  string         `json:"tempId"`
	Status  UploadStatus   `json:"status"`
	Voice   *VoiceResponse `json:"voice,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Sample is the audio file submitted for cloning, already trimmed by the
// capture pipeline.
type Sample struct {
	FileName string
	MimeType string
	Data     []byte
	Duration float64
}

// CloneRequest carries everything needed to create a vendor voice from a
// sample and persist it.
type CloneRequest struct {
	UserID      string
	Name        string
	Description string
	Category    string
	Language    string
	Settings    *Settings
	ModelID     string
	Sample      Sample
}

// VendorClient is the slice of the vendor API the clone flow needs.
type VendorClient interface {
	CloneVoice(ctx context.Context, name, description string, sample Sample) (externalID string, err error)
	DeleteVoice(ctx context.Context, externalID string) error
}

// SampleStore persists the raw sample and returns its public URL.
type SampleStore interface {
	Upload(ctx context.Context, fileName, mimeType string, data []byte) (string, error)
}

// CloneService runs the full clone flow: validate the sample, store it,
// create the vendor voice, persist the record. Progress is published on
// Events; CloneVoice also returns the terminal result directly for callers
// that prefer a plain request/response.
type CloneService interface {
	CloneVoice(ctx context.Context, req CloneRequest) (*VoiceResponse, error)
	RemoveVoice(ctx context.Context, userID, voiceID string) error
	Events() <-chan UploadEvent
}

type cloneService struct {
	voices   VoiceService
	vendor   VendorClient
	store    SampleStore
	logger   *Logger.Logger
	maxBytes int64
	events   chan UploadEvent
}

// NewCloneService creates the clone orchestrator. maxBytes caps sample
// uploads; zero applies the vendor's 25MB limit.
func NewCloneService(voices VoiceService, vendor VendorClient, store SampleStore, maxBytes int64, logger *Logger.Logger) CloneService {
	if maxBytes <= 0 {
		maxBytes = 25 * 1024 * 1024
	}
	return &cloneService{
		voices:   voices,
		vendor:   vendor,
		store:    store,
		logger:   logger,
		maxBytes: maxBytes,
		events:   make(chan UploadEvent, 32),
	}
}

// Events implements CloneService
func (s *cloneService) Events() <-chan UploadEvent {
	return s.events
}

// CloneVoice implements CloneService
func (s *cloneService) CloneVoice(ctx context.Context, req CloneRequest) (*VoiceResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	tempID := uuid.NewString()
	s.publish(UploadEvent{TempID: tempID, Status: UploadPending})

	resp, err := s.clone(ctx, req)
	if err != nil {
		s.publish(UploadEvent{TempID: tempID, Status: UploadError, Message: err.Error()})
		return nil, err
	}

	s.publish(UploadEvent{TempID: tempID, Status: UploadSuccess, Voice: resp})
	return resp, nil
}

func (s *cloneService) clone(ctx context.Context, req CloneRequest) (*VoiceResponse, error) {
	audioURL, err := s.store.Upload(ctx, req.Sample.FileName, req.Sample.MimeType, req.Sample.Data)
	if err != nil {
		s.logger.Errorf("sample upload failed for %q: %v", req.Name, err)
		return nil, fmt.Errorf("failed to store audio sample: %w", err)
	}

	externalID, err := s.vendor.CloneVoice(ctx, req.Name, req.Description, req.Sample)
	if err != nil {
		s.logger.Errorf("vendor clone failed for %q: %v", req.Name, err)
		return nil, err
	}

	resp, err := s.voices.CreateVoice(ctx, CreateVoiceRequest{
		UserID:          req.UserID,
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Language:        req.Language,
		AudioURL:        audioURL,
		DurationSeconds: req.Sample.Duration,
		ExternalVoiceID: externalID,
		ModelID:         req.ModelID,
		Settings:        req.Settings,
	})
	if err != nil {
		// The vendor voice exists but we cannot record it. Roll it back so
		// the user does not accumulate orphaned vendor voices.
		if derr := s.vendor.DeleteVoice(ctx, externalID); derr != nil {
			s.logger.Errorf("rollback of vendor voice %s failed: %v", externalID, derr)
		}
		return nil, err
	}

	s.logger.Infof("voice cloned: %s -> vendor %s", resp.ID, externalID)
	return resp, nil
}

// RemoveVoice implements CloneService. The database record goes first; a
// vendor-side delete failure is logged but does not resurrect the record.
func (s *cloneService) RemoveVoice(ctx context.Context, userID, voiceID string) error {
	deleted, err := s.voices.DeleteVoice(ctx, userID, voiceID)
	if err != nil {
		return err
	}
	if deleted.ExternalVoiceID != "" {
		if err := s.vendor.DeleteVoice(ctx, deleted.ExternalVoiceID); err != nil {
			s.logger.Warnf("vendor delete of %s failed: %v", deleted.ExternalVoiceID, err)
		}
	}
	return nil
}

func (s *cloneService) validate(req CloneRequest) error {
	if req.Name == "" || req.UserID == "" {
		return ErrInvalidVoiceData
	}
	if len(req.Sample.Data) == 0 {
		return ErrUnsupportedSample
	}
	if int64(len(req.Sample.Data)) > s.maxBytes {
		return ErrSampleTooLarge
	}
	if !strings.HasPrefix(req.Sample.MimeType, "audio/") {
		return ErrUnsupportedSample
	}
	return nil
}

// publish never blocks the clone flow; a full channel drops the event.
func (s *cloneService) publish(ev UploadEvent) {
	select {
	case s.events <- ev:
	default:
		s.logger.Warnf("upload event dropped: %s %s", ev.TempID, ev.Status)
	}
}
