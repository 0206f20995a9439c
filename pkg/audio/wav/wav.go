// Package wav encodes and decodes minimal RIFF/WAVE containers carrying
// 16-bit little-endian PCM. This is the interchange format of the capture
// pipeline: recordings are finalized into it and trimmed clips are
// re-encoded into it.
package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"voicesmith/pkg/audio/pcm"
)

const (
	HeaderBytes    = 44
	BytesPerSample = 2  // LINEAR16
	BitsPerSample  = 16 // LINEAR16
	pcmFormatTag   = 1  // WAV PCM format
)

// ErrUnsupportedFormat is returned when the input is not a WAV container the
// decoder understands. Callers are expected to keep the original bytes
// usable (unplayable-but-uploadable) rather than dropping the input.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Encode wraps the clip in a WAV container: 16-bit signed PCM,
// little-endian, interleaved channels.
func Encode(clip pcm.Clip) []byte {
	samples := pcm.Interleave(clip)
	return EncodePCM16(samples, clip.SampleRate, clip.ChannelCount())
}

// EncodePCM16 wraps already-interleaved 16-bit samples in a WAV container.
func EncodePCM16(samples []int16, sampleRate, channels int) []byte {
	data := make([]byte, len(samples)*BytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return EncodeRaw(data, sampleRate, channels)
}

// EncodeRaw wraps raw little-endian PCM16 bytes in a WAV container.
func EncodeRaw(data []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	byteRate := sampleRate * channels * BytesPerSample

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(pcmFormatTag))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*BytesPerSample))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// Decode parses a WAV container into per-channel float PCM at its native
// sample rate. Only the PCM16 format tag is supported; anything else yields
// ErrUnsupportedFormat.
func Decode(raw []byte) (pcm.Clip, error) {
	if len(raw) < HeaderBytes ||
		string(raw[0:4]) != "RIFF" || string(raw[8:12]) != "WAVE" {
		return pcm.Clip{}, ErrUnsupportedFormat
	}

	var (
		sampleRate int
		channels   int
		bits       int
		data       []byte
		haveFmt    bool
	)

	// Walk the chunk list; files in the wild carry LIST/fact chunks between
	// fmt and data.
	off := 12
	for off+8 <= len(raw) {
		id := string(raw[off : off+4])
		size := int(binary.LittleEndian.Uint32(raw[off+4 : off+8]))
		body := off + 8
		if size < 0 || body+size > len(raw) {
			return pcm.Clip{}, ErrUnsupportedFormat
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return pcm.Clip{}, ErrUnsupportedFormat
			}
			format := int(binary.LittleEndian.Uint16(raw[body:]))
			channels = int(binary.LittleEndian.Uint16(raw[body+2:]))
			sampleRate = int(binary.LittleEndian.Uint32(raw[body+4:]))
			bits = int(binary.LittleEndian.Uint16(raw[body+14:]))
			if format != pcmFormatTag {
				return pcm.Clip{}, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, format)
			}
			haveFmt = true
		case "data":
			data = raw[body : body+size]
		}
		// Chunks are word-aligned.
		off = body + size + (size & 1)
	}

	if !haveFmt || data == nil || channels < 1 || sampleRate < 1 {
		return pcm.Clip{}, ErrUnsupportedFormat
	}
	if bits != BitsPerSample {
		return pcm.Clip{}, fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, bits)
	}

	samples := make([]int16, len(data)/BytesPerSample)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return pcm.Deinterleave(samples, channels, sampleRate), nil
}
