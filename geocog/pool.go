package geocog

import "sync"

// Buffer pools for the byte buffers chunk decompression and decoding churn
// through on every tile or strip read.

type byteSlicePool struct {
	small  sync.Pool // up to 64KB
	medium sync.Pool // up to 256KB, typical 256x256 tile
	large  sync.Pool // up to 1MB, typical 512x512 tile or strip
	xlarge sync.Pool // up to 4MB
}

const (
	smallBufferSize  = 64 * 1024
	mediumBufferSize = 256 * 1024
	largeBufferSize  = 1024 * 1024
	xlargeBufferSize = 4 * 1024 * 1024
)

var bufferPool = &byteSlicePool{
	small:  sync.Pool{New: func() interface{} { b := make([]byte, smallBufferSize); return &b }},
	medium: sync.Pool{New: func() interface{} { b := make([]byte, mediumBufferSize); return &b }},
	large:  sync.Pool{New: func() interface{} { b := make([]byte, largeBufferSize); return &b }},
	xlarge: sync.Pool{New: func() interface{} { b := make([]byte, xlargeBufferSize); return &b }},
}

// getBuffer returns a byte slice of at least size, drawn from the pool
// closest to the requested size. Call putBuffer when done with it.
func getBuffer(size int) []byte {
	switch {
	case size <= smallBufferSize:
		p := bufferPool.small.Get().(*[]byte)
		return (*p)[:size]
	case size <= mediumBufferSize:
		p := bufferPool.medium.Get().(*[]byte)
		return (*p)[:size]
	case size <= largeBufferSize:
		p := bufferPool.large.Get().(*[]byte)
		return (*p)[:size]
	case size <= xlargeBufferSize:
		p := bufferPool.xlarge.Get().(*[]byte)
		return (*p)[:size]
	default:
		return make([]byte, size)
	}
}

// putBuffer returns buf to the pool it was drawn from. Buffers of
// non-standard capacity (the direct-allocation case above) are dropped.
func putBuffer(buf []byte) {
	c := cap(buf)
	if c == 0 {
		return
	}
	buf = buf[:c]
	switch c {
	case smallBufferSize:
		bufferPool.small.Put(&buf)
	case mediumBufferSize:
		bufferPool.medium.Put(&buf)
	case largeBufferSize:
		bufferPool.large.Put(&buf)
	case xlargeBufferSize:
		bufferPool.xlarge.Put(&buf)
	}
}
