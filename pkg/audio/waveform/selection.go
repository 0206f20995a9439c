package waveform

import "sync"

// DefaultClipSeconds caps the default selection length. Cloning vendors get
// the best results from samples around this length, so a fresh decode
// pre-selects the first 15 seconds at most.
const DefaultClipSeconds = 15.0

// Selection is a half-open time range [Start, End) over a decoded source,
// in seconds.
type Selection struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Length returns the selected duration in seconds.
func (s Selection) Length() float64 {
	return s.End - s.Start
}

// DefaultSelection returns the initial region for a source of the given
// duration: {0, min(15, duration)}.
func DefaultSelection(duration float64) Selection {
	end := duration
	if end > DefaultClipSeconds {
		end = DefaultClipSeconds
	}
	return Selection{Start: 0, End: end}
}

// clamp pins the region inside [0, duration] without fixing up ordering.
func (s Selection) clamp(duration float64) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > duration {
		s.End = duration
	}
	return s
}

// SelectionTracker holds the live drag state of a region. Updates arrive
// faster than consumers re-render; only the most recent valid value is
// retained (last-write-wins).
type SelectionTracker struct {
	mu       sync.Mutex
	duration float64
	sel      Selection
	active   bool
}

// Reset installs the default selection for a freshly decoded source and
// discards any previous region.
func (t *SelectionTracker) Reset(duration float64) Selection {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.duration = duration
	t.sel = DefaultSelection(duration)
	t.active = duration > 0
	return t.sel
}

// Clear drops the region entirely (source discarded).
func (t *SelectionTracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sel = Selection{}
	t.duration = 0
	t.active = false
}

// Update applies a drag event. The region is clamped to [0, duration];
// updates that would collapse to a zero-or-negative length after clamping
// are rejected and the last valid region is kept. Returns the region now in
// effect and whether the update was accepted.
func (t *SelectionTracker) Update(sel Selection) (Selection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return t.sel, false
	}
	clamped := sel.clamp(t.duration)
	if clamped.Start >= clamped.End {
		return t.sel, false
	}
	t.sel = clamped
	return t.sel, true
}

// Current returns the region in effect, and whether one exists.
func (t *SelectionTracker) Current() (Selection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sel, t.active
}
