// Package pool provides growable, poolable byte buffers used where a
// hot loop must not allocate per input line.
package pool

import "sync"

// Default and ceiling sizes for the tokenizer's per-field buffers.
// Chromosome names and remainder columns are short relative to the
// blob-oriented buffers this type was adapted from, so the defaults are
// far smaller.
const (
	FieldBufferDefaultSize  = 256        // 256B, comfortably fits a chromosome name
	FieldBufferMaxThreshold = 1024 * 1024 // 1MiB ceiling before a buffer is discarded rather than pooled
)

// ByteBuffer is a growable byte vector with a clear() that retains
// capacity, so a tokenizer can fill it and hand out views into it
// without per-line allocation.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains its allocated capacity.
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

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)

	return nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy: for small buffers, double the capacity outright; for
// larger ones, grow by 25% to bound amortized copy cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := cap(bb.B)
	if growBy == 0 {
		growBy = FieldBufferDefaultSize
	}
	if cap(bb.B) > 4*FieldBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers via sync.Pool, discarding buffers
// that grew past maxThreshold rather than retaining the memory.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
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

var fieldPool = NewByteBufferPool(FieldBufferDefaultSize, FieldBufferMaxThreshold)

// GetFieldBuffer retrieves a ByteBuffer from the default field pool.
func GetFieldBuffer() *ByteBuffer {
	return fieldPool.Get()
}

// PutFieldBuffer returns a ByteBuffer to the default field pool.
func PutFieldBuffer(bb *ByteBuffer) {
	fieldPool.Put(bb)
}
