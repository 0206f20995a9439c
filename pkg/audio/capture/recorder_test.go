package capture

import (
	"context"
	"errors"
	"testing"
	"time"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/wav"
)

func pcmFrame(n int, rate int32, channels int16) Frame {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return Frame{Data: data, SampleRate: rate, Channels: channels, Timestamp: time.Now()}
}

func feedAll(t *testing.T, d *StreamDevice, frames ...Frame) {
	t.Helper()
	for _, f := range frames {
		if err := d.Feed(f); err != nil {
			t.Fatalf("Feed failed: %v", err)
		}
	}
	// Give the drain goroutine a moment to pick everything up.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		if len(d.frames) == 0 {
			return
		}
	}
	t.Fatal("drain goroutine never consumed fed frames")
}

func TestRecorderLifecycle(t *testing.T) {
	device := NewStreamDevice(8)
	rec := NewRecorder(device, Logger.Nop())

	if rec.State() != StateIdle {
		t.Fatalf("Expected idle state, got %s", rec.State())
	}
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if rec.State() != StateRecording {
		t.Fatalf("Expected recording state, got %s", rec.State())
	}

	feedAll(t, device,
		pcmFrame(3200, 16000, 1),
		pcmFrame(3200, 16000, 1),
	)

	result, err := rec.Stop()
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if result == nil {
		t.Fatal("Expected a recording, got nil")
	}
	if rec.State() != StateIdle {
		t.Errorf("Expected idle state after stop, got %s", rec.State())
	}

	clip, err := wav.Decode(result.WAV)
	if err != nil {
		t.Fatalf("Finalized blob is not a decodable WAV: %v", err)
	}
	if clip.SampleRate != 16000 {
		t.Errorf("Expected 16000Hz, got %d", clip.SampleRate)
	}
	if clip.ChannelCount() != 1 {
		t.Errorf("Expected mono, got %d channels", clip.ChannelCount())
	}
	// 6400 bytes of PCM16 mono = 3200 frames.
	if clip.FrameCount() != 3200 {
		t.Errorf("Expected 3200 frames, got %d", clip.FrameCount())
	}
	if result.Duration != 0.2 {
		t.Errorf("Expected 0.2s duration, got %f", result.Duration)
	}
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	rec := NewRecorder(NewStreamDevice(1), Logger.Nop())
	result, err := rec.Stop()
	if err != nil {
		t.Errorf("Idle stop must not error, got %v", err)
	}
	if result != nil {
		t.Error("Idle stop must not produce a recording")
	}
}

func TestStartWhileRecordingFails(t *testing.T) {
	device := NewStreamDevice(1)
	rec := NewRecorder(device, Logger.Nop())
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer rec.Close()

	if err := rec.Start(context.Background()); !errors.Is(err, ErrAlreadyRecording) {
		t.Errorf("Expected ErrAlreadyRecording, got %v", err)
	}
}

func TestStopReleasesDevice(t *testing.T) {
	device := NewStreamDevice(4)
	rec := NewRecorder(device, Logger.Nop())
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := rec.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if !device.Closed() {
		t.Error("Device must be released after Stop")
	}
}

func TestCloseReleasesDeviceMidRecording(t *testing.T) {
	device := NewStreamDevice(4)
	rec := NewRecorder(device, Logger.Nop())
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !device.Closed() {
		t.Error("Device must be released on teardown")
	}
	if rec.State() != StateIdle {
		t.Errorf("Expected idle after close, got %s", rec.State())
	}
}

func TestStartAfterDeviceGone(t *testing.T) {
	device := NewStreamDevice(1)
	device.Close()
	rec := NewRecorder(device, Logger.Nop())
	if err := rec.Start(context.Background()); !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("Expected ErrDeviceUnavailable, got %v", err)
	}
	if rec.State() != StateIdle {
		t.Errorf("Failed start must leave the recorder idle, got %s", rec.State())
	}
}

func TestElapsedAdvances(t *testing.T) {
	device := NewStreamDevice(1)
	rec := NewRecorder(device, Logger.Nop())
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer rec.Close()

	time.Sleep(350 * time.Millisecond)
	if e := rec.Elapsed(); e < 0.2 {
		t.Errorf("Expected elapsed >= 0.2s after 350ms, got %f", e)
	}
}

func TestFrameRingEviction(t *testing.T) {
	// Ring that fits roughly two serialized frames; the third evicts the
	// first instead of failing.
	ring := NewFrameRing(2 * (frameHeaderBytes + 100 + 4))
	for i := 0; i < 3; i++ {
		f := pcmFrame(100, 16000, 1)
		f.Data[0] = byte(i + 10)
		if err := ring.Enqueue(f); err != nil {
			t.Fatalf("Enqueue %d failed: %v", i, err)
		}
	}
	frames := ring.Drain()
	if len(frames) != 2 {
		t.Fatalf("Expected 2 surviving frames, got %d", len(frames))
	}
	if frames[0].Data[0] != 11 || frames[1].Data[0] != 12 {
		t.Errorf("Eviction order wrong: got markers %d, %d", frames[0].Data[0], frames[1].Data[0])
	}
}

func TestFrameRingRejectsOversizedFrame(t *testing.T) {
	ring := NewFrameRing(64)
	if err := ring.Enqueue(pcmFrame(1024, 16000, 1)); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Expected ErrFrameTooLarge, got %v", err)
	}
}

func TestFrameSerializationRoundTrip(t *testing.T) {
	original := pcmFrame(50, 48000, 2)
	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var restored Frame
	if err := restored.UnmarshalBinary(data); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if restored.SampleRate != 48000 || restored.Channels != 2 {
		t.Errorf("Wire params lost: %dHz/%dch", restored.SampleRate, restored.Channels)
	}
	if len(restored.Data) != 50 {
		t.Errorf("Expected 50 data bytes, got %d", len(restored.Data))
	}
}
