// Package elevenlabs is the HTTP client for the ElevenLabs voice API. All
// vendor calls the application makes go through here so error translation
// and caching live in one place.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"voicesmith/internal/config"
	"voicesmith/internal/domains/voice"
	"voicesmith/pkg/Logger"
)

const requestTimeout = 60 * time.Second

// APIError is a vendor-side failure with the detail message the vendor
// returned, when one was parseable.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("elevenlabs: %s (status %d)", e.Detail, e.Status)
}

// VendorVoice is a voice as the vendor reports it.
type VendorVoice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Subscription is the account's usage standing.
type Subscription struct {
	CharacterCount int    `json:"character_count"`
	CharacterLimit int    `json:"character_limit"`
	Tier           string `json:"tier"`
	Status         string `json:"status"`
}

// Model is one synthesis model the vendor offers.
type Model struct {
	ModelID     string `json:"model_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SynthesizeRequest carries one text-to-speech call.
type SynthesizeRequest struct {
	ExternalVoiceID string
	Text            string
	ModelID         string
	Settings        voice.Settings
}

// Client talks to the ElevenLabs REST API. It implements voice.VendorClient.
type Client struct {
	http           *resty.Client
	logger         *Logger.Logger
	cache          *Cache
	defaultModelID string
}

// NewClient builds a client from configuration. cache may be nil to disable
// read caching.
func NewClient(cfg config.ElevenLabsConfig, cache *Cache, logger *Logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("xi-api-key", cfg.APIKey).
		SetTimeout(requestTimeout)

	return &Client{
		http:           httpClient,
		logger:         logger,
		cache:          cache,
		defaultModelID: cfg.DefaultModelID,
	}
}

// CloneVoice implements voice.VendorClient. The sample goes up as multipart
// form data; the vendor answers with the new voice's ID.
func (c *Client) CloneVoice(ctx context.Context, name, description string, sample voice.Sample) (string, error) {
	var out struct {
		VoiceID string `json:"voice_id"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"name":        name,
			"description": description,
		}).
		SetFileReader("files", sample.FileName, bytes.NewReader(sample.Data)).
		SetResult(&out).
		Post("/v1/voices/add")
	if err != nil {
		return "", fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return "", c.apiError(resp)
	}
	if out.VoiceID == "" {
		return "", &APIError{Status: resp.StatusCode(), Detail: "clone response carried no voice_id"}
	}

	c.invalidateVoices()
	return out.VoiceID, nil
}

// DeleteVoice implements voice.VendorClient.
func (c *Client) DeleteVoice(ctx context.Context, externalID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/v1/voices/" + externalID)
	if err != nil {
		return fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}

	c.invalidateVoices()
	return nil
}

// Synthesize turns text into MP3 audio using the given voice.
func (c *Client) Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error) {
	modelID := req.ModelID
	if modelID == "" {
		modelID = c.defaultModelID
	}

	body := map[string]interface{}{
		"text":     req.Text,
		"model_id": modelID,
		"voice_settings": map[string]interface{}{
			"stability":         req.Settings.Stability,
			"similarity_boost":  req.Settings.SimilarityBoost,
			"style":             req.Settings.Style,
			"use_speaker_boost": req.Settings.UseSpeakerBoost,
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "audio/mpeg").
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/text-to-speech/" + req.ExternalVoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	return resp.Body(), nil
}

// ListVoices returns the account's vendor voices, cached briefly.
func (c *Client) ListVoices(ctx context.Context) ([]VendorVoice, error) {
	var voices []VendorVoice
	if c.cache.Fetch(keyVoices, &voices) {
		return voices, nil
	}

	var out struct {
		Voices []VendorVoice `json:"voices"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v1/voices")
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.cache.Store(keyVoices, out.Voices, voicesTTL)
	return out.Voices, nil
}

// GetUsage returns the subscription's character usage, cached briefly.
func (c *Client) GetUsage(ctx context.Context) (*Subscription, error) {
	var sub Subscription
	if c.cache.Fetch(keyUsage, &sub) {
		return &sub, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&sub).
		Get("/v1/user/subscription")
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.cache.Store(keyUsage, &sub, usageTTL)
	return &sub, nil
}

// ListModels returns the available synthesis models. The model catalog
// changes rarely, so it caches the longest.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var models []Model
	if c.cache.Fetch(keyModels, &models) {
		return models, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&models).
		Get("/v1/models")
	if err != nil {
		return nil, fmt.Errorf("failed to reach voice service: %w", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}

	c.cache.Store(keyModels, models, modelsTTL)
	return models, nil
}

func (c *Client) invalidateVoices() {
	c.cache.Invalidate(keyVoices)
}

// apiError extracts the vendor's detail message. The vendor sends detail as
// either a plain string or an object with a message field; anything else
// falls back to a generic message.
func (c *Client) apiError(resp *resty.Response) error {
	detail := parseDetail(resp.Body())
	if detail == "" {
		detail = genericDetail(resp.StatusCode())
	}
	c.logger.Warnf("vendor error %d: %s", resp.StatusCode(), detail)
	return &APIError{Status: resp.StatusCode(), Detail: detail}
}

func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(envelope.Detail, &asString); err == nil {
		return asString
	}

	var asObject struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Detail, &asObject); err == nil {
		return asObject.Message
	}
	return ""
}

func genericDetail(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "voice service rejected the API key"
	case http.StatusTooManyRequests:
		return "voice service rate limit reached"
	default:
		return "voice service request failed"
	}
}
