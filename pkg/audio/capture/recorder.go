package capture

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/looplab/fsm"

	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/wav"
)

const (
	StateIdle      = "idle"
	StateRecording = "recording"

	eventStart = "start"
	eventStop  = "stop"

	// elapsedTick matches the UI readout resolution.
	elapsedTick = 100 * time.Millisecond

	// DefaultRingBytes buffers several minutes of 16kHz mono PCM16.
	DefaultRingBytes = 8 * 1024 * 1024
)

// Recording is the finalized result of one capture session.
type Recording struct {
	WAV        []byte
	SampleRate int
	Channels   int
	Duration   float64
}

// Recorder turns a live InputDevice into a finite WAV blob. It owns the
// device exclusively between Start and Stop, and releases it on every exit
// path including Close during an active session.
type Recorder struct {
	logger *Logger.Logger

	mu      sync.Mutex
	machine *fsm.FSM
	device  InputDevice
	ring    *FrameRing

	cancel context.CancelFunc
	done   chan struct{}

	ticks atomic.Int64

	// Fallback wire parameters for sessions that never saw a frame.
	defaultRate     int
	defaultChannels int
}

// NewRecorder creates a recorder over the given device.
func NewRecorder(device InputDevice, logger *Logger.Logger) *Recorder {
	return &Recorder{
		logger: logger,
		device: device,
		ring:   NewFrameRing(DefaultRingBytes),
		machine: fsm.NewFSM(
			StateIdle,
			fsm.Events{
				{Name: eventStart, Src: []string{StateIdle}, Dst: StateRecording},
				{Name: eventStop, Src: []string{StateRecording}, Dst: StateIdle},
			},
			fsm.Callbacks{},
		),
		defaultRate:     16000,
		defaultChannels: 1,
	}
}

// State returns the current lifecycle state, "idle" or "recording".
func (r *Recorder) State() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.machine.Current()
}

// Elapsed returns the running recording time in seconds at the timer tick
// resolution.
func (r *Recorder) Elapsed() float64 {
	return float64(r.ticks.Load()) * elapsedTick.Seconds()
}

// Start acquires the device and begins buffering its frames. Device
// acquisition failures (ErrPermissionDenied, ErrDeviceUnavailable) leave the
// recorder idle with no partial state.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.machine.Current() == StateRecording {
		return ErrAlreadyRecording
	}

	frames, err := r.device.Open(ctx)
	if err != nil {
		return err
	}

	if err := r.machine.Event(ctx, eventStart); err != nil {
		r.device.Close()
		return err
	}

	r.ticks.Store(0)
	drainCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.drain(drainCtx, frames)
	return nil
}

// drain moves device frames into the ring and advances the elapsed timer
// until the device stream ends or the session is cancelled.
func (r *Recorder) drain(ctx context.Context, frames <-chan Frame) {
	defer close(r.done)
	ticker := time.NewTicker(elapsedTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Consume whatever the device already produced so Stop
			// finalizes a complete blob, never a partial one.
			for {
				select {
				case f, ok := <-frames:
					if !ok {
						return
					}
					r.buffer(f)
				default:
					return
				}
			}
		case <-ticker.C:
			r.ticks.Add(1)
		case f, ok := <-frames:
			if !ok {
				return
			}
			r.buffer(f)
		}
	}
}

func (r *Recorder) buffer(f Frame) {
	if len(f.Data) == 0 {
		return
	}
	if err := r.ring.Enqueue(f); err != nil {
		r.logger.Warnf("dropping capture frame: %v", err)
	}
}

// Stop finalizes the session into a single WAV blob, releases the device and
// returns to idle. Calling Stop while idle is a no-op, not an error.
func (r *Recorder) Stop() (*Recording, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.machine.Current() != StateRecording {
		return nil, nil
	}
	r.releaseLocked()

	if err := r.machine.Event(context.Background(), eventStop); err != nil {
		return nil, err
	}
	return r.finalizeLocked(), nil
}

// Close releases the device on teardown, even mid-recording. Buffered audio
// is discarded. Safe to call repeatedly.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.machine.Current() == StateRecording {
		r.releaseLocked()
		_ = r.machine.Event(context.Background(), eventStop)
		r.ring.Drain()
	}
	return r.device.Close()
}

// releaseLocked stops the drain goroutine and the device, waiting until the
// last in-flight frame is buffered.
func (r *Recorder) releaseLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	_ = r.device.Close()
	if r.done != nil {
		<-r.done
		r.done = nil
	}
}

// finalizeLocked concatenates buffered frames in arrival order into one WAV.
func (r *Recorder) finalizeLocked() *Recording {
	frames := r.ring.Drain()

	rate := r.defaultRate
	channels := r.defaultChannels
	total := 0
	for _, f := range frames {
		total += len(f.Data)
	}
	if len(frames) > 0 {
		rate = int(frames[0].SampleRate)
		channels = int(frames[0].Channels)
	}

	data := make([]byte, 0, total)
	for _, f := range frames {
		data = append(data, f.Data...)
	}

	rec := &Recording{
		WAV:        wav.EncodeRaw(data, rate, channels),
		SampleRate: rate,
		Channels:   channels,
	}
	if bps := rate * channels * wav.BytesPerSample; bps > 0 {
		rec.Duration = float64(len(data)) / float64(bps)
	}
	r.logger.Infof("capture finalized: %d frames, %d PCM bytes, %.2fs at %dHz/%dch",
		len(frames), len(data), rec.Duration, rate, channels)
	return rec
}
