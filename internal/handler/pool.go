package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical single-item response without growing
const initialBufferSize = 1024

// bufferPool is a pool of bytes.Buffer used for JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf and returns it to the pool.
// Buffers grown by large list responses are dropped instead of pinned in the pool.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*initialBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
