package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds scratch buffers for encoding.
var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}
