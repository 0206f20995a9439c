// Package trim produces a standalone WAV clip containing only the selected
// time range of a source recording, independent of the source's container.
package trim

import (
	"path"
	"strings"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/pcm"
	"voicesmith/pkg/audio/wav"
	"voicesmith/pkg/audio/waveform"
)

// Result is the file handed to the upload flow. When Trimmed is false the
// decode/slice/encode path failed and File holds the ORIGINAL bytes
// unmodified; Duration is then the rough selection-length estimate rather
// than a decoded value.
type Result struct {
	File     []byte
	FileName string
	MimeType string
	Duration float64
	Trimmed  bool
}

// Trimmer slices a source to a selection and re-encodes it as 16-bit PCM
// WAV. Every failure degrades to returning the original file: a long or
// untrimmed sample still clones acceptably, while aborting the flow loses
// the user's recording entirely.
type Trimmer struct {
	logger *Logger.Logger
	decode func([]byte) (pcm.Clip, error)
}

// NewTrimmer creates a trimmer using the standard WAV decoder.
func NewTrimmer(logger *Logger.Logger) *Trimmer {
	return &Trimmer{logger: logger, decode: wav.Decode}
}

// Trim cuts [sel.Start, sel.End) out of the source and wraps it in a fresh
// WAV container named after the original with a "_trimmed" suffix. It never
// returns an error; see Result.Trimmed.
func (t *Trimmer) Trim(source []byte, name string, sel waveform.Selection) Result {
	fallback := Result{
		File:     source,
		FileName: name,
		MimeType: mimeFor(name),
		Duration: sel.Length(),
		Trimmed:  false,
	}

	clip, err := t.decode(source)
	if err != nil {
		t.logger.Warnf("trim falling back to original %q: %v", name, err)
		return fallback
	}

	startFrame := pcm.FrameForTime(sel.Start, clip.SampleRate)
	endFrame := pcm.FrameForTime(sel.End, clip.SampleRate)
	if endFrame > clip.FrameCount() {
		endFrame = clip.FrameCount()
	}
	if endFrame <= startFrame {
		// Degenerate ranges are prevented upstream by selection clamping;
		// if one slips through, a zero-length WAV helps nobody.
		t.logger.Warnf("trim got empty range [%f, %f) for %q, keeping original", sel.Start, sel.End, name)
		return fallback
	}

	cut := clip.Slice(startFrame, endFrame)
	return Result{
		File:     wav.Encode(cut),
		FileName: TrimmedName(name),
		MimeType: "audio/wav",
		Duration: cut.Duration(),
		Trimmed:  true,
	}
}

// TrimmedName derives the output file name: original base + "_trimmed",
// with the new container's extension.
func TrimmedName(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	if base == "" {
		base = "clip"
	}
	return base + "_trimmed.wav"
}

func mimeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".ogg":
		return "audio/ogg"
	case ".webm":
		return "audio/webm"
	case ".flac":
		return "audio/flac"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
