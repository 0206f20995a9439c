// Package storage uploads audio samples to Supabase Storage and hands back
// their public URLs.
package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"voicesmith/internal/config"
	"voicesmith/pkg/Logger"
)

const uploadTimeout = 120 * time.Second

// SupabaseStore implements voice.SampleStore over the Supabase Storage
// object API.
type SupabaseStore struct {
	http   *resty.Client
	bucket string
	logger *Logger.Logger
}

// NewSupabaseStore builds a store from configuration.
func NewSupabaseStore(cfg config.StorageConfig, logger *Logger.Logger) *SupabaseStore {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetAuthToken(cfg.ServiceKey).
		SetTimeout(uploadTimeout)

	return &SupabaseStore{
		http:   httpClient,
		bucket: cfg.Bucket,
		logger: logger,
	}
}

// Upload stores the sample under a collision-free object name and returns
// the bucket's public URL for it.
func (s *SupabaseStore) Upload(ctx context.Context, fileName, mimeType string, data []byte) (string, error) {
	object := objectName(fileName)

	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", mimeType).
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, object))
	if err != nil {
		return "", fmt.Errorf("failed to reach storage: %w", err)
	}
	if resp.IsError() {
		s.logger.Warnf("storage upload of %s failed: %d %s", object, resp.StatusCode(), resp.String())
		return "", fmt.Errorf("storage rejected upload (status %d)", resp.StatusCode())
	}

	url := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.http.BaseURL, s.bucket, object)
	s.logger.Infof("sample stored: %s (%d bytes)", object, len(data))
	return url, nil
}

// objectName prefixes the file name with a random segment so repeated
// uploads of "recording.wav" never collide.
func objectName(fileName string) string {
	base := path.Base(fileName)
	if base == "." || base == "/" || base == "" {
		base = "sample.wav"
	}
	return uuid.NewString()[:8] + "_" + base
}
