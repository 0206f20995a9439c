package waveform

import (
	"context"
	"sync"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/pcm"
	"voicesmith/pkg/audio/wav"
)

// Renderer states. Decoding is asynchronous; the renderer is usable (for
// state inspection) the whole time.
const (
	StateEmpty    = "empty"
	StateDecoding = "decoding"
	StateReady    = "ready"
	StateFailed   = "failed"
)

// Peak is one rendered waveform column: the min and max sample over its
// frame bucket across all channels.
type Peak struct {
	Min float32 `json:"min"`
	Max float32 `json:"max"`
}

// Waveform is the decoded, renderable form of a source.
type Waveform struct {
	Peaks    []Peak
	Duration float64
	Clip     pcm.Clip
}

// LoadResult reports the outcome of one Load call. Stale results belong to
// a superseded source and carry no state change.
type LoadResult struct {
	Err   error
	Stale bool
}

// Renderer decodes audio sources off the caller's goroutine and maintains
// the selection region over the decoded result. Loading a new source while
// a decode is pending supersedes it: the stale decode's completion is
// discarded and never overwrites the newer source's state.
type Renderer struct {
	logger  *Logger.Logger
	columns int
	decode  func([]byte) (pcm.Clip, error)

	mu    sync.Mutex
	gen   uint64
	state string
	wave  *Waveform

	Selection SelectionTracker
}

// NewRenderer creates a renderer producing the given number of peak
// columns per waveform.
func NewRenderer(columns int, logger *Logger.Logger) *Renderer {
	if columns <= 0 {
		columns = 400
	}
	return &Renderer{
		logger:  logger,
		columns: columns,
		decode:  wav.Decode,
		state:   StateEmpty,
	}
}

// State returns the current renderer state.
func (r *Renderer) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Waveform returns the decoded waveform when State is ready.
func (r *Renderer) Waveform() (*Waveform, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateReady {
		return nil, false
	}
	return r.wave, true
}

// Load starts decoding a source. The returned channel delivers exactly one
// result; a decode superseded by a newer Load (or Clear) reports Stale. On
// success the selection resets to {0, min(15, duration)}. On decode failure
// the state is failed and the caller should treat the source as
// unplayable-but-uploadable; the user's bytes are never dropped here.
func (r *Renderer) Load(ctx context.Context, source []byte) <-chan LoadResult {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.state = StateDecoding
	r.wave = nil
	r.mu.Unlock()
	r.Selection.Clear()

	out := make(chan LoadResult, 1)
	go func() {
		clip, err := r.decode(source)

		select {
		case <-ctx.Done():
			out <- LoadResult{Err: ctx.Err(), Stale: true}
			return
		default:
		}

		r.mu.Lock()
		if gen != r.gen {
			// A newer source took over while we were decoding.
			r.mu.Unlock()
			out <- LoadResult{Stale: true}
			return
		}
		if err != nil {
			r.state = StateFailed
			r.mu.Unlock()
			r.logger.Warnf("waveform decode failed: %v", err)
			out <- LoadResult{Err: err}
			return
		}
		wave := &Waveform{
			Peaks:    ComputePeaks(clip, r.columns),
			Duration: clip.Duration(),
			Clip:     clip,
		}
		r.state = StateReady
		r.wave = wave
		r.mu.Unlock()

		r.Selection.Reset(wave.Duration)
		out <- LoadResult{}
	}()
	return out
}

// Clear discards the current source and supersedes any pending decode.
func (r *Renderer) Clear() {
	r.mu.Lock()
	r.gen++
	r.state = StateEmpty
	r.wave = nil
	r.mu.Unlock()
	r.Selection.Clear()
}

// ComputePeaks buckets the clip's frames into columns of min/max values
// across all channels.
func ComputePeaks(clip pcm.Clip, columns int) []Peak {
	frames := clip.FrameCount()
	if frames == 0 || columns <= 0 {
		return nil
	}
	if columns > frames {
		columns = frames
	}
	peaks := make([]Peak, columns)
	for col := 0; col < columns; col++ {
		lo := col * frames / columns
		hi := (col + 1) * frames / columns
		p := Peak{Min: 1, Max: -1}
		for _, ch := range clip.Channels {
			for i := lo; i < hi; i++ {
				s := ch[i]
				if s < p.Min {
					p.Min = s
				}
				if s > p.Max {
					p.Max = s
				}
			}
		}
		peaks[col] = p
	}
	return peaks
}
