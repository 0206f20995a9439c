package waveform

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"voicesmith/pkg/audio/pcm"
)

// boundaryPoll is how often the player observes its position to enforce the
// selection end. The underlying streamer never emits past the boundary, but
// the playing flag must still flip off the moment position reaches it.
const boundaryPoll = 50 * time.Millisecond

// Player plays back only the selected region [start, end) of a decoded
// clip. It implements beep.Streamer so it can be handed to a speaker; in
// headless use the consumer pulls Stream directly.
type Player struct {
	mu      sync.Mutex
	clip    pcm.Clip
	sel     Selection
	pos     int // absolute frame cursor within clip
	playing bool
	stop    chan struct{}
}

// NewPlayer creates a player over a decoded clip and its selection.
func NewPlayer(clip pcm.Clip, sel Selection) *Player {
	p := &Player{clip: clip}
	p.SetSelection(sel)
	return p
}

// Format returns the beep format for speaker initialization.
func (p *Player) Format() beep.Format {
	n := p.clip.ChannelCount()
	if n > 2 {
		n = 2
	}
	return beep.Format{
		SampleRate:  beep.SampleRate(p.clip.SampleRate),
		NumChannels: n,
		Precision:   2,
	}
}

// SetSelection moves the playback window. A cursor outside the new window
// snaps back to its start.
func (p *Player) SetSelection(sel Selection) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sel = sel
	start := pcm.FrameForTime(sel.Start, p.clip.SampleRate)
	end := p.endFrameLocked()
	if p.pos < start || p.pos >= end {
		p.pos = start
	}
}

func (p *Player) endFrameLocked() int {
	end := pcm.FrameForTime(p.sel.End, p.clip.SampleRate)
	if total := p.clip.FrameCount(); end > total {
		end = total
	}
	return end
}

// Play starts (or resumes) playback from the current cursor, which always
// lies inside the selection. A poll loop auto-pauses the instant the cursor
// reaches the selection end.
func (p *Player) Play() {
	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return
	}
	start := pcm.FrameForTime(p.sel.Start, p.clip.SampleRate)
	if p.pos < start || p.pos >= p.endFrameLocked() {
		p.pos = start
	}
	p.playing = true
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go func() {
		ticker := time.NewTicker(boundaryPoll)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.mu.Lock()
				if p.pos >= p.endFrameLocked() {
					p.playing = false
					p.stop = nil
					p.mu.Unlock()
					return
				}
				p.mu.Unlock()
			}
		}
	}()
}

// Pause halts playback, keeping the cursor where it is.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

func (p *Player) pauseLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	p.playing = false
}

// Playing reports whether playback is active.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Position returns the cursor in seconds.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clip.SampleRate == 0 {
		return 0
	}
	return float64(p.pos) / float64(p.clip.SampleRate)
}

// Stream implements beep.Streamer. It emits samples strictly inside the
// selection and reports exhaustion at the selection end, so the boundary
// holds even if the poll loop hasn't fired yet.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing {
		return 0, false
	}
	end := p.endFrameLocked()
	if p.pos >= end {
		return 0, false
	}

	n := len(samples)
	if remain := end - p.pos; remain < n {
		n = remain
	}
	left := p.clip.Channels[0]
	right := left
	if p.clip.ChannelCount() > 1 {
		right = p.clip.Channels[1]
	}
	for i := 0; i < n; i++ {
		samples[i][0] = float64(left[p.pos+i])
		samples[i][1] = float64(right[p.pos+i])
	}
	p.pos += n
	return n, true
}

// Err implements beep.Streamer.
func (p *Player) Err() error {
	return nil
}
