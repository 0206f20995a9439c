package pcm

import "math"

// Clip holds decoded audio as per-channel float samples at the source's
// native sample rate. Channel order is preserved end to end; nothing in the
// pipeline downmixes.
type Clip struct {
	// Channels[c][i] is sample i of channel c, nominally in [-1, 1].
	Channels   [][]float32
	SampleRate int
}

// FrameCount returns the number of frames (samples per channel).
func (c Clip) FrameCount() int {
	if len(c.Channels) == 0 {
		return 0
	}
	return len(c.Channels[0])
}

// ChannelCount returns the number of channels.
func (c Clip) ChannelCount() int {
	return len(c.Channels)
}

// Duration returns the clip length in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(c.FrameCount()) / float64(c.SampleRate)
}

// Slice returns a new clip containing frames [startFrame, endFrame) of every
// channel. Bounds are clamped to the clip; samples are copied so the result
// does not alias the source.
func (c Clip) Slice(startFrame, endFrame int) Clip {
	total := c.FrameCount()
	if startFrame < 0 {
		startFrame = 0
	}
	if endFrame > total {
		endFrame = total
	}
	if endFrame < startFrame {
		endFrame = startFrame
	}
	out := Clip{
		Channels:   make([][]float32, len(c.Channels)),
		SampleRate: c.SampleRate,
	}
	for i, ch := range c.Channels {
		buf := make([]float32, endFrame-startFrame)
		copy(buf, ch[startFrame:endFrame])
		out.Channels[i] = buf
	}
	return out
}

// EncodeSample maps a float sample to signed 16-bit PCM. The scale is
// asymmetric: negatives multiply by 32768 and positives by 32767, so that
// -1.0 maps to math.MinInt16 and 1.0 to math.MaxInt16 exactly. Input is
// clamped to [-1, 1] first; rounding to nearest keeps decode→encode a
// fixed point.
func EncodeSample(s float32) int16 {
	if s > 1 {
		s = 1
	}
	if s < -1 {
		s = -1
	}
	if s < 0 {
		return int16(math.Round(float64(s) * 32768))
	}
	return int16(math.Round(float64(s) * 32767))
}

// DecodeSample is the inverse mapping of EncodeSample.
func DecodeSample(v int16) float32 {
	if v < 0 {
		return float32(v) / 32768
	}
	return float32(v) / 32767
}

// Interleave flattens per-channel samples into frame-major int16 order:
// for each frame, one sample per channel.
func Interleave(c Clip) []int16 {
	frames := c.FrameCount()
	chans := c.ChannelCount()
	out := make([]int16, frames*chans)
	for f := 0; f < frames; f++ {
		for ch := 0; ch < chans; ch++ {
			out[f*chans+ch] = EncodeSample(c.Channels[ch][f])
		}
	}
	return out
}

// Deinterleave splits frame-major int16 samples back into a per-channel
// float clip.
func Deinterleave(samples []int16, channels, sampleRate int) Clip {
	if channels < 1 {
		channels = 1
	}
	frames := len(samples) / channels
	clip := Clip{
		Channels:   make([][]float32, channels),
		SampleRate: sampleRate,
	}
	for ch := 0; ch < channels; ch++ {
		clip.Channels[ch] = make([]float32, frames)
	}
	for f := 0; f < frames; f++ {
		for ch := 0; ch < channels; ch++ {
			clip.Channels[ch][f] = DecodeSample(samples[f*channels+ch])
		}
	}
	return clip
}

// FrameForTime converts a position in seconds to a frame index, truncating
// toward zero the way trim boundaries are computed.
func FrameForTime(seconds float64, sampleRate int) int {
	return int(math.Floor(seconds * float64(sampleRate)))
}
