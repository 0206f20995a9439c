package capture

import (
	"encoding/binary"
	"sync"

	"github.com/smallnest/ringbuffer"
)

// FrameRing buffers captured frames between the device drain goroutine and
// finalization. Frames are stored size-prefixed inside a byte ring; when the
// ring is full the oldest complete frames are evicted so recording degrades
// by losing the tail of history, never by blocking the capture path.
type FrameRing struct {
	mu   sync.Mutex
	size int
	rb   *ringbuffer.RingBuffer
}

// NewFrameRing creates a ring holding up to size bytes of serialized frames.
func NewFrameRing(size int) *FrameRing {
	return &FrameRing{
		size: size,
		rb:   ringbuffer.New(size),
	}
}

// Capacity returns the ring's byte capacity.
func (r *FrameRing) Capacity() int {
	return r.size
}

// Len returns the number of buffered bytes.
func (r *FrameRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rb.Length()
}

// Enqueue appends a frame, evicting the oldest frames if needed.
func (r *FrameRing) Enqueue(f Frame) error {
	data, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	required := len(data) + 4
	if required > r.size {
		return ErrFrameTooLarge
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for r.rb.Free() < required {
		if !r.dropOldestLocked() {
			r.rb.Reset()
			break
		}
	}

	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(data)))
	if _, err := r.rb.Write(prefix[:]); err != nil {
		return err
	}
	_, err = r.rb.Write(data)
	return err
}

// Dequeue pops the oldest frame.
func (r *FrameRing) Dequeue() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dequeueLocked()
}

// Drain pops every buffered frame in arrival order.
func (r *FrameRing) Drain() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Frame
	for {
		f, ok := r.dequeueLocked()
		if !ok {
			return out
		}
		out = append(out, f)
	}
}

func (r *FrameRing) dequeueLocked() (Frame, bool) {
	if r.rb.IsEmpty() {
		return Frame{}, false
	}
	var prefix [4]byte
	if n, err := r.rb.Read(prefix[:]); err != nil || n != 4 {
		return Frame{}, false
	}
	size := int(binary.LittleEndian.Uint32(prefix[:]))
	data := make([]byte, size)
	if n, err := r.rb.Read(data); err != nil || n != size {
		return Frame{}, false
	}
	var f Frame
	if err := f.UnmarshalBinary(data); err != nil {
		return Frame{}, false
	}
	return f, true
}

func (r *FrameRing) dropOldestLocked() bool {
	if r.rb.IsEmpty() {
		return false
	}
	var prefix [4]byte
	if n, err := r.rb.Read(prefix[:]); err != nil || n != 4 {
		return false
	}
	size := int(binary.LittleEndian.Uint32(prefix[:]))
	skip := make([]byte, size)
	if n, err := r.rb.Read(skip); err != nil || n != size {
		return false
	}
	return true
}
