package generator

import (
	"bytes"
	"sync"
)

// Tiered buffer sizes by the number of members in a compilation unit
const (
	smallBufferSize  = 4 * 1024  // 4KB for <20 members
	mediumBufferSize = 16 * 1024 // 16KB for 20-100 members
	largeBufferSize  = 64 * 1024 // 64KB for 100+ members
)

var smallBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, smallBufferSize))
	},
}

var mediumBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
	},
}

var largeBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, largeBufferSize))
	},
}

// getTemplateBuffer returns a buffer sized for the member count.
func getTemplateBuffer(members int) *bytes.Buffer {
	var buf *bytes.Buffer
	switch {
	case members < 20:
		buf = smallBufferPool.Get().(*bytes.Buffer)
	case members < 100:
		buf = mediumBufferPool.Get().(*bytes.Buffer)
	default:
		buf = largeBufferPool.Get().(*bytes.Buffer)
	}
	buf.Reset()
	return buf
}

// putTemplateBuffer returns a buffer to the appropriate pool.
func putTemplateBuffer(buf *bytes.Buffer, members int) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 1<<20 {
		return
	}
	switch {
	case members < 20:
		smallBufferPool.Put(buf)
	case members < 100:
		mediumBufferPool.Put(buf)
	default:
		largeBufferPool.Put(buf)
	}
}
