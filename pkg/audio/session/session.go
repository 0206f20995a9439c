// Package session coordinates one user's capture flow: record or load a
// source, render it, adjust the selection, and export the trimmed clip for
// upload. One session maps to one connected client.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/capture"
	"voicesmith/pkg/audio/trim"
	"voicesmith/pkg/audio/waveform"
)

var (
	ErrNoSource  = errors.New("session: no audio source loaded")
	ErrRecording = errors.New("session: recording in progress")
)

// Session owns the audio state between "user starts interacting" and "clip
// handed to the clone upload". Replacing the source at any point releases
// everything belonging to the old one: the preview file is deleted and a
// still-running decode is superseded.
type Session struct {
	logger   *Logger.Logger
	recorder *capture.Recorder
	trimmer  *trim.Trimmer
	tmpDir   string

	Renderer *waveform.Renderer

	mu      sync.Mutex
	srcName string
	srcData []byte
	preview string
}

// NewSession creates a session recording from the given device and writing
// preview files under tmpDir (the OS temp dir when empty).
func NewSession(device capture.InputDevice, columns int, tmpDir string, logger *Logger.Logger) *Session {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &Session{
		logger:   logger,
		recorder: capture.NewRecorder(device, logger),
		trimmer:  trim.NewTrimmer(logger),
		tmpDir:   tmpDir,
		Renderer: waveform.NewRenderer(columns, logger),
	}
}

// LoadSource installs a new audio source (an uploaded file or a finished
// recording) and starts decoding it. The previous source's preview file is
// removed before the new one is written.
func (s *Session) LoadSource(ctx context.Context, name string, data []byte) (<-chan waveform.LoadResult, error) {
	if s.recorder.State() == capture.StateRecording {
		return nil, ErrRecording
	}

	s.mu.Lock()
	s.removePreviewLocked()
	s.srcName = name
	s.srcData = data

	f, err := os.CreateTemp(s.tmpDir, "preview_*"+filepath.Ext(name))
	if err == nil {
		if _, werr := f.Write(data); werr != nil {
			err = werr
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		s.preview = f.Name()
	}
	s.mu.Unlock()
	if err != nil {
		// Preview is a convenience; decoding proceeds from memory.
		s.logger.Warnf("session preview write failed: %v", err)
	}

	return s.Renderer.Load(ctx, data), nil
}

// StartRecording begins capturing from the session's device. Any loaded
// source stays in place until the recording finishes.
func (s *Session) StartRecording(ctx context.Context) error {
	return s.recorder.Start(ctx)
}

// StopRecording finalizes the capture and installs the result as the
// session's source under a generated name.
func (s *Session) StopRecording(ctx context.Context) (<-chan waveform.LoadResult, error) {
	rec, err := s.recorder.Stop()
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoSource
	}
	name := fmt.Sprintf("recording_%s.wav", uuid.NewString()[:8])
	return s.LoadSource(ctx, name, rec.WAV)
}

// Elapsed returns the running recording timer in seconds.
func (s *Session) Elapsed() float64 {
	return s.recorder.Elapsed()
}

// RecorderState exposes the capture state for status reporting.
func (s *Session) RecorderState() string {
	return s.recorder.State()
}

// Source returns the current source name and bytes.
func (s *Session) Source() (string, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.srcName, s.srcData, s.srcData != nil
}

// PreviewPath returns the on-disk preview file for the current source, if
// one was written.
func (s *Session) PreviewPath() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview, s.preview != ""
}

// UpdateSelection applies a drag to the selection region.
func (s *Session) UpdateSelection(sel waveform.Selection) (waveform.Selection, bool) {
	return s.Renderer.Selection.Update(sel)
}

// Export trims the current source to the selection and returns the file to
// upload. With no active selection (decode failed or still pending) the
// original source is returned untouched.
func (s *Session) Export() (trim.Result, error) {
	s.mu.Lock()
	name, data := s.srcName, s.srcData
	s.mu.Unlock()
	if data == nil {
		return trim.Result{}, ErrNoSource
	}

	sel, ok := s.Renderer.Selection.Current()
	if !ok {
		return trim.Result{
			File:     data,
			FileName: name,
			MimeType: "application/octet-stream",
		}, nil
	}
	return s.trimmer.Trim(data, name, sel), nil
}

// Discard drops the current source, superseding any pending decode and
// deleting the preview file.
func (s *Session) Discard() {
	s.Renderer.Clear()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.srcName = ""
	s.srcData = nil
	s.removePreviewLocked()
}

// Close releases the session: an in-flight recording is stopped and
// discarded, the decode superseded, the preview file deleted.
func (s *Session) Close() error {
	err := s.recorder.Close()
	s.Discard()
	return err
}

func (s *Session) removePreviewLocked() {
	if s.preview == "" {
		return
	}
	if err := os.Remove(s.preview); err != nil && !os.IsNotExist(err) {
		s.logger.Warnf("session preview cleanup failed: %v", err)
	}
	s.preview = ""
}
