package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	data := bb.Bytes()

	assert.Equal(t, []byte("hello"), data)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &data[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_WriteByte(t *testing.T) {
	bb := NewByteBuffer(8)

	require.NoError(t, bb.WriteByte(0x04))
	require.NoError(t, bb.WriteByte(0xFF))
	assert.Equal(t, []byte{0x04, 0xFF}, bb.B)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(PayloadBufferDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	// Growing within capacity is a no-op
	before := cap(bb.B)
	bb.Grow(0)
	assert.Equal(t, before, cap(bb.B))

	// Growing past capacity reallocates but preserves data
	bb.Grow(1024)
	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 1024)
	assert.Equal(t, []byte("12345678"), bb.B)
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("payload"))

	p.Put(bb)

	// A reused buffer comes back reset
	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len())
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(64, 1024)

	assert.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(4096) // exceeds the 128-byte threshold

	// Must not panic; the oversized buffer is dropped rather than pooled
	assert.NotPanics(t, func() {
		p.Put(bb)
	})
}

func TestDefaultPools(t *testing.T) {
	payload := GetPayloadBuffer()
	require.NotNil(t, payload)
	assert.Equal(t, 0, payload.Len())
	payload.MustWrite([]byte{1, 2, 3})
	PutPayloadBuffer(payload)

	frame := GetFrameBuffer()
	require.NotNil(t, frame)
	assert.Equal(t, 0, frame.Len())
	PutFrameBuffer(frame)
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(64, 4096)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				bb.MustWrite([]byte("concurrent"))
				p.Put(bb)
			}
		}()
	}
	wg.Wait()
}
