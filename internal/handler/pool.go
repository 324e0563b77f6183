package handler

import (
	"bytes"
	"sync"
)

const (
	// sized for a draft snapshot carrying a full set of image URLs
	initialBufferSize = 1024
	// search pages can balloon a buffer; those are dropped instead of pooled
	maxPooledBufferSize = 64 * 1024
)

var encodeBuffers = sync.Pool{
	New: func() any { return bytes.NewBuffer(make([]byte, 0, initialBufferSize)) },
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
