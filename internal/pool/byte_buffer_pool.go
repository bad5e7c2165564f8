package pool

import (
	"io"
	"sync"
)

const (
	GeometryBufferDefaultSize  = 1024 * 4        // 4KiB, a polygon of ~250 points
	GeometryBufferMaxThreshold = 1024 * 256      // 256KiB
	SetBufferDefaultSize       = 1024 * 256      // 256KiB
	SetBufferMaxThreshold      = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte slice that can be recycled through a
// ByteBufferPool.
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

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary, and
// returns the newly exposed region. The region's content is unspecified.
func (bb *ByteBuffer) ExtendOrGrow(n int) []byte {
	start := len(bb.B)
	if !bb.Extend(n) {
		bb.Grow(n)
		bb.B = bb.B[:start+n]
	}

	return bb.B[start : start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// Small buffers grow by GeometryBufferDefaultSize, larger ones by 25% of
// their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := GeometryBufferDefaultSize
	if cap(bb.B) > 4*GeometryBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

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
// Buffers whose capacity exceeds the optional maximum threshold are dropped
// instead of being returned to the pool.
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
	geometryPool = NewByteBufferPool(GeometryBufferDefaultSize, GeometryBufferMaxThreshold)
	setPool      = NewByteBufferPool(SetBufferDefaultSize, SetBufferMaxThreshold)
)

// GetGeometryBuffer retrieves a buffer sized for a single encoded geometry.
func GetGeometryBuffer() *ByteBuffer {
	return geometryPool.Get()
}

// PutGeometryBuffer returns a buffer obtained from GetGeometryBuffer.
func PutGeometryBuffer(bb *ByteBuffer) {
	geometryPool.Put(bb)
}

// GetSetBuffer retrieves a buffer sized for a geometry set payload.
func GetSetBuffer() *ByteBuffer {
	return setPool.Get()
}

// PutSetBuffer returns a buffer obtained from GetSetBuffer.
func PutSetBuffer(bb *ByteBuffer) {
	setPool.Put(bb)
}
