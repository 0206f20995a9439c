package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"time"
)

// Device acquisition failures. PermissionDenied means the input exists but
// access was refused; DeviceUnavailable means there is nothing to open.
// Both abort the recording flow with no partial state retained.
var (
	ErrPermissionDenied  = errors.New("audio input permission denied")
	ErrDeviceUnavailable = errors.New("no audio input device available")
	ErrAlreadyRecording  = errors.New("recording already in progress")
	ErrFrameTooLarge     = errors.New("audio frame too large for buffer")
	errDeviceNotAcquired = errors.New("device not acquired")
)

// Frame is one fragment of captured PCM16 audio with its wire parameters.
type Frame struct {
	Data       []byte
	SampleRate int32
	Channels   int16
	Timestamp  time.Time
}

const frameHeaderBytes = 16 // rate(4) + channels(2) + reserved(2) + unix nanos(8)

// MarshalBinary serializes the frame for ring-buffer storage.
func (f Frame) MarshalBinary() ([]byte, error) {
	out := make([]byte, frameHeaderBytes+len(f.Data))
	binary.LittleEndian.PutUint32(out[0:], uint32(f.SampleRate))
	binary.LittleEndian.PutUint16(out[4:], uint16(f.Channels))
	binary.LittleEndian.PutUint64(out[8:], uint64(f.Timestamp.UnixNano()))
	copy(out[frameHeaderBytes:], f.Data)
	return out, nil
}

// UnmarshalBinary restores a frame serialized by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < frameHeaderBytes {
		return errors.New("frame truncated")
	}
	f.SampleRate = int32(binary.LittleEndian.Uint32(data[0:]))
	f.Channels = int16(binary.LittleEndian.Uint16(data[4:]))
	f.Timestamp = time.Unix(0, int64(binary.LittleEndian.Uint64(data[8:])))
	f.Data = make([]byte, len(data)-frameHeaderBytes)
	copy(f.Data, data[frameHeaderBytes:])
	return nil
}

// InputDevice is the microphone-shaped collaborator the Recorder owns for
// the duration of one session. Open acquires it and returns the live frame
// stream; Close releases it and ends that stream. Implementations map their
// native failures onto ErrPermissionDenied / ErrDeviceUnavailable.
type InputDevice interface {
	Open(ctx context.Context) (<-chan Frame, error)
	Close() error
}

// StreamDevice adapts an externally fed frame stream (a websocket ingest,
// a file replay) to the InputDevice contract. Feed pushes frames; Close is
// idempotent and terminates the stream.
type StreamDevice struct {
	mu     sync.Mutex
	frames chan Frame
	open   bool
	closed bool
}

// NewStreamDevice creates a stream-backed device with the given frame
// channel depth.
func NewStreamDevice(depth int) *StreamDevice {
	if depth <= 0 {
		depth = 64
	}
	return &StreamDevice{frames: make(chan Frame, depth)}
}

// Open implements InputDevice.
func (d *StreamDevice) Open(ctx context.Context) (<-chan Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrDeviceUnavailable
	}
	d.open = true
	return d.frames, nil
}

// Feed pushes a captured frame into the stream. Frames fed to a closed
// device are dropped.
func (d *StreamDevice) Feed(f Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || !d.open {
		return errDeviceNotAcquired
	}
	select {
	case d.frames <- f:
		return nil
	default:
		// Producer outpaced the recorder; dropping here keeps the ingest
		// loop from blocking. The ring buffer applies the same policy.
		return nil
	}
}

// Close implements InputDevice.
func (d *StreamDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.closed {
		d.closed = true
		close(d.frames)
	}
	return nil
}

// Closed reports whether the device has been released.
func (d *StreamDevice) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
