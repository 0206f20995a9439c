package wav

import (
	"bytes"
	"errors"
	"testing"

	"voicesmith/pkg/audio/pcm"
)

func sineClip(frames, channels, rate int) pcm.Clip {
	clip := pcm.Clip{SampleRate: rate}
	for c := 0; c < channels; c++ {
		ch := make([]float32, frames)
		for i := range ch {
			// Deterministic but non-constant content.
			ch[i] = float32((i%200)-100) / 100
		}
		clip.Channels = append(clip.Channels, ch)
	}
	return clip
}

func TestEncodeByteLength(t *testing.T) {
	clip := sineClip(1000, 2, 44100)
	raw := Encode(clip)
	want := 1000*2*BytesPerSample + HeaderBytes
	if len(raw) != want {
		t.Errorf("Expected %d bytes, got %d", want, len(raw))
	}
}

func TestEncodeHeader(t *testing.T) {
	raw := Encode(sineClip(10, 1, 16000))
	if !bytes.Equal(raw[0:4], []byte("RIFF")) || !bytes.Equal(raw[8:12], []byte("WAVE")) {
		t.Error("Missing RIFF/WAVE markers")
	}
	if !bytes.Equal(raw[36:40], []byte("data")) {
		t.Error("Missing data chunk marker")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	clip := sineClip(500, 2, 22050)
	decoded, err := Decode(Encode(clip))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", decoded.SampleRate)
	}
	if decoded.ChannelCount() != 2 {
		t.Errorf("Expected 2 channels, got %d", decoded.ChannelCount())
	}
	if decoded.FrameCount() != 500 {
		t.Errorf("Expected 500 frames, got %d", decoded.FrameCount())
	}
	// Re-encoding must be byte-identical: the int16 representation is the
	// fixed point of the float mapping.
	again := Encode(decoded)
	if !bytes.Equal(again, Encode(clip)) {
		t.Error("Round trip changed PCM bytes")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("not audio at all"),
		bytes.Repeat([]byte{0x42}, 100),
	}
	for _, raw := range cases {
		if _, err := Decode(raw); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrUnsupportedFormat for %d-byte input, got %v", len(raw), err)
		}
	}
}

func TestDecodeRejectsNonPCMFormat(t *testing.T) {
	raw := Encode(sineClip(10, 1, 8000))
	// Flip the format tag to 3 (IEEE float).
	raw[20] = 3
	if _, err := Decode(raw); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for float format, got %v", err)
	}
}

func TestDecodeRejectsTruncatedData(t *testing.T) {
	raw := Encode(sineClip(100, 1, 8000))
	if _, err := Decode(raw[:len(raw)-50]); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for truncated file, got %v", err)
	}
}

func TestEncodePCM16Extremes(t *testing.T) {
	raw := EncodePCM16([]int16{32767, -32768}, 8000, 1)
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Channels[0][0] != 1.0 {
		t.Errorf("Expected max sample to decode to 1.0, got %f", decoded.Channels[0][0])
	}
	if decoded.Channels[0][1] != -1.0 {
		t.Errorf("Expected min sample to decode to -1.0, got %f", decoded.Channels[0][1])
	}
}
