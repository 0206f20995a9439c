package session

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/capture"
	"voicesmith/pkg/audio/pcm"
	"voicesmith/pkg/audio/wav"
	"voicesmith/pkg/audio/waveform"
)

func toneClip(seconds float64, rate int) pcm.Clip {
	frames := int(seconds * float64(rate))
	ch := make([]float32, frames)
	for i := range ch {
		ch[i] = float32(math.Sin(2 * math.Pi * 330 * float64(i) / float64(rate)))
	}
	return pcm.Clip{Channels: [][]float32{ch}, SampleRate: rate}
}

func newTestSession(t *testing.T) (*Session, *capture.StreamDevice) {
	t.Helper()
	dev := capture.NewStreamDevice(16)
	s := NewSession(dev, 100, t.TempDir(), Logger.Nop())
	t.Cleanup(func() { s.Close() })
	return s, dev
}

func TestEndToEndTrimFlow(t *testing.T) {
	s, _ := newTestSession(t)
	source := wav.Encode(toneClip(20, 8000))

	ch, err := s.LoadSource(context.Background(), "long_take.wav", source)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if res := <-ch; res.Err != nil {
		t.Fatalf("Decode failed: %v", res.Err)
	}

	sel, ok := s.Renderer.Selection.Current()
	if !ok || sel.Start != 0 || sel.End != 15 {
		t.Fatalf("Expected default selection {0, 15}, got %v (active=%v)", sel, ok)
	}

	if _, ok := s.UpdateSelection(waveform.Selection{Start: 2.5, End: 12.5}); !ok {
		t.Fatal("Drag to {2.5, 12.5} should be accepted")
	}

	res, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !res.Trimmed {
		t.Fatal("Expected a trimmed export")
	}
	if res.FileName != "long_take_trimmed.wav" {
		t.Errorf("Expected long_take_trimmed.wav, got %s", res.FileName)
	}
	if math.Abs(res.Duration-10) > 0.001 {
		t.Errorf("Expected 10s export, got %f", res.Duration)
	}
	clip, err := wav.Decode(res.File)
	if err != nil {
		t.Fatalf("Export not decodable: %v", err)
	}
	if clip.FrameCount() != 80000 {
		t.Errorf("Expected 80000 frames, got %d", clip.FrameCount())
	}
}

func TestRecordingBecomesSource(t *testing.T) {
	s, dev := newTestSession(t)

	if err := s.StartRecording(context.Background()); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	for i := 0; i < 2; i++ {
		dev.Feed(capture.Frame{Data: make([]byte, 3200), SampleRate: 16000, Channels: 1})
	}
	ch, err := s.StopRecording(context.Background())
	if err != nil {
		t.Fatalf("StopRecording: %v", err)
	}
	if res := <-ch; res.Err != nil {
		t.Fatalf("Decode of recording failed: %v", res.Err)
	}

	name, data, ok := s.Source()
	if !ok {
		t.Fatal("Expected the recording installed as source")
	}
	if !strings.HasPrefix(name, "recording_") || !strings.HasSuffix(name, ".wav") {
		t.Errorf("Unexpected generated name %q", name)
	}
	clip, err := wav.Decode(data)
	if err != nil {
		t.Fatalf("Recording not decodable: %v", err)
	}
	if clip.FrameCount() != 3200 {
		t.Errorf("Expected 3200 frames, got %d", clip.FrameCount())
	}
	if sel, ok := s.Renderer.Selection.Current(); !ok || sel.Start != 0 {
		t.Errorf("Expected a default selection over the recording, got %v", sel)
	}
}

func TestPreviewReplacedOnNewSource(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	ch, _ := s.LoadSource(ctx, "a.wav", wav.Encode(toneClip(1, 8000)))
	<-ch
	first, ok := s.PreviewPath()
	if !ok {
		t.Fatal("Expected a preview file for the first source")
	}
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("First preview missing: %v", err)
	}

	ch, _ = s.LoadSource(ctx, "b.wav", wav.Encode(toneClip(2, 8000)))
	<-ch
	second, _ := s.PreviewPath()
	if second == first {
		t.Fatal("Expected a fresh preview file for the new source")
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("Old preview must be deleted, stat err: %v", err)
	}
	if _, err := os.Stat(second); err != nil {
		t.Errorf("New preview missing: %v", err)
	}
}

func TestDiscardReleasesEverything(t *testing.T) {
	s, _ := newTestSession(t)
	ch, _ := s.LoadSource(context.Background(), "a.wav", wav.Encode(toneClip(1, 8000)))
	<-ch
	preview, _ := s.PreviewPath()

	s.Discard()

	if _, _, ok := s.Source(); ok {
		t.Error("Discard must drop the source")
	}
	if _, ok := s.PreviewPath(); ok {
		t.Error("Discard must forget the preview path")
	}
	if _, err := os.Stat(preview); !os.IsNotExist(err) {
		t.Errorf("Preview file must be deleted, stat err: %v", err)
	}
	if s.Renderer.State() != waveform.StateEmpty {
		t.Errorf("Expected empty renderer, got %s", s.Renderer.State())
	}
}

func TestLoadWhileRecordingRejected(t *testing.T) {
	s, _ := newTestSession(t)
	if err := s.StartRecording(context.Background()); err != nil {
		t.Fatalf("StartRecording: %v", err)
	}
	_, err := s.LoadSource(context.Background(), "a.wav", []byte("x"))
	if !errors.Is(err, ErrRecording) {
		t.Fatalf("Expected ErrRecording, got %v", err)
	}
}

func TestExportWithoutSourceFails(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.Export(); !errors.Is(err, ErrNoSource) {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
}

func TestExportUndecodableSourceReturnsOriginal(t *testing.T) {
	s, _ := newTestSession(t)
	source := []byte("compressed audio the decoder cannot open")
	ch, err := s.LoadSource(context.Background(), "voice.mp3", source)
	if err != nil {
		t.Fatalf("LoadSource: %v", err)
	}
	if res := <-ch; res.Err == nil {
		t.Fatal("Expected a decode error")
	}

	res, err := s.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Trimmed {
		t.Error("Undecoded source must export untrimmed")
	}
	if !bytes.Equal(res.File, source) {
		t.Error("Export must hand back the original bytes")
	}
	if res.FileName != "voice.mp3" {
		t.Errorf("Expected original name, got %s", res.FileName)
	}
}
