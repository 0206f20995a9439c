package pcm

import (
	"math"
	"testing"
)

func TestEncodeSampleBounds(t *testing.T) {
	if got := EncodeSample(1.0); got != math.MaxInt16 {
		t.Errorf("Expected 1.0 to encode to 32767, got %d", got)
	}
	if got := EncodeSample(-1.0); got != math.MinInt16 {
		t.Errorf("Expected -1.0 to encode to -32768, got %d", got)
	}
	if got := EncodeSample(0); got != 0 {
		t.Errorf("Expected 0 to encode to 0, got %d", got)
	}
}

func TestEncodeSampleClamps(t *testing.T) {
	// Out-of-range floats must clamp, never wrap.
	if got := EncodeSample(2.5); got != math.MaxInt16 {
		t.Errorf("Expected 2.5 to clamp to 32767, got %d", got)
	}
	if got := EncodeSample(-3.0); got != math.MinInt16 {
		t.Errorf("Expected -3.0 to clamp to -32768, got %d", got)
	}
}

func TestEncodeSampleAsymmetricScale(t *testing.T) {
	if got := EncodeSample(-0.5); got != -16384 {
		t.Errorf("Expected -0.5 to encode to -16384, got %d", got)
	}
	if got := EncodeSample(0.5); got != 16384 {
		t.Errorf("Expected 0.5 to encode to 16384, got %d", got)
	}
}

func TestDecodeSampleRoundTripExtremes(t *testing.T) {
	for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		f := DecodeSample(v)
		if f < -1 || f > 1 {
			t.Errorf("Decoded sample %d out of range: %f", v, f)
		}
	}
	if DecodeSample(math.MaxInt16) != 1.0 {
		t.Errorf("Expected 32767 to decode to 1.0, got %f", DecodeSample(math.MaxInt16))
	}
	if DecodeSample(math.MinInt16) != -1.0 {
		t.Errorf("Expected -32768 to decode to -1.0, got %f", DecodeSample(math.MinInt16))
	}
}

func TestInterleaveOrder(t *testing.T) {
	clip := Clip{
		Channels: [][]float32{
			{1.0, 0.0},
			{-1.0, 0.5},
		},
		SampleRate: 44100,
	}
	got := Interleave(clip)
	want := []int16{32767, -32768, 0, 16384}
	if len(got) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sample %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestDeinterleavePreservesChannels(t *testing.T) {
	samples := []int16{100, -200, 300, -400, 500, -600}
	clip := Deinterleave(samples, 2, 48000)
	if clip.ChannelCount() != 2 {
		t.Fatalf("Expected 2 channels, got %d", clip.ChannelCount())
	}
	if clip.FrameCount() != 3 {
		t.Fatalf("Expected 3 frames, got %d", clip.FrameCount())
	}
	// Left channel should hold the even-index samples, right the odd.
	if clip.Channels[0][1] != DecodeSample(300) {
		t.Errorf("Left channel frame 1 mismatch: %f", clip.Channels[0][1])
	}
	if clip.Channels[1][2] != DecodeSample(-600) {
		t.Errorf("Right channel frame 2 mismatch: %f", clip.Channels[1][2])
	}
}

func TestSliceBoundsClamped(t *testing.T) {
	clip := Clip{
		Channels:   [][]float32{{0.1, 0.2, 0.3, 0.4}},
		SampleRate: 8000,
	}
	out := clip.Slice(-5, 100)
	if out.FrameCount() != 4 {
		t.Errorf("Expected clamped slice of 4 frames, got %d", out.FrameCount())
	}
	out = clip.Slice(3, 1)
	if out.FrameCount() != 0 {
		t.Errorf("Expected inverted slice to be empty, got %d frames", out.FrameCount())
	}
}

func TestSliceCopies(t *testing.T) {
	clip := Clip{
		Channels:   [][]float32{{0.1, 0.2, 0.3}},
		SampleRate: 8000,
	}
	out := clip.Slice(0, 2)
	out.Channels[0][0] = 0.9
	if clip.Channels[0][0] != 0.1 {
		t.Error("Slice must not alias the source clip")
	}
}

func TestFrameForTime(t *testing.T) {
	if got := FrameForTime(2.0, 44100); got != 88200 {
		t.Errorf("Expected frame 88200, got %d", got)
	}
	if got := FrameForTime(0.9999, 1000); got != 999 {
		t.Errorf("Expected floor to 999, got %d", got)
	}
}

func TestDuration(t *testing.T) {
	clip := Clip{
		Channels:   [][]float32{make([]float32, 44100*3)},
		SampleRate: 44100,
	}
	if d := clip.Duration(); math.Abs(d-3.0) > 1e-9 {
		t.Errorf("Expected 3s duration, got %f", d)
	}
}
