package pool

import (
	"io"
	"sync"
)

const (
	ScratchBufferDefaultSize  = 64          // numeric rendering scratch
	ScratchBufferMaxThreshold = 1024        // 1KiB
	FrameBufferDefaultSize    = 1024 * 4    // 4KiB
	FrameBufferMaxThreshold   = 1024 * 1024 // 1MiB
)

// ByteBuffer is a reusable byte slice wrapper.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow makes room for requiredBytes more bytes without further reallocation.
// The buffer grows by at least its current capacity so repeated frame
// assembly settles quickly.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := cap(bb.B)
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)
	framePool   = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
)

// GetScratchBuffer retrieves a small buffer used to render numbers.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns a buffer obtained from GetScratchBuffer.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}

// GetFrameBuffer retrieves a buffer used to assemble snapshot frames.
func GetFrameBuffer() *ByteBuffer {
	return framePool.Get()
}

// PutFrameBuffer returns a buffer obtained from GetFrameBuffer.
func PutFrameBuffer(bb *ByteBuffer) {
	framePool.Put(bb)
}
