package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
)

// Pool size limits (corpus-validated)
const (
	marshalBufferInitialSize = 4096    // 4KB - covers most fields
	marshalBufferMaxSize     = 1 << 20 // 1MB - prevent memory leaks
)

var marshalBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, marshalBufferInitialSize))
	},
}

// getMarshalBuffer retrieves a buffer from the pool and resets it.
func getMarshalBuffer() *bytes.Buffer {
	buf := marshalBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putMarshalBuffer returns a buffer to the pool if not oversized.
func putMarshalBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if buf.Cap() > marshalBufferMaxSize {
		return // Let GC collect oversized buffers
	}
	marshalBufferPool.Put(buf)
}

// marshalToJSON marshals a value to JSON using a pooled buffer.
// The result matches json.Marshal output (no trailing newline); the pooled
// encoder avoids a fresh allocation per call in the custom MarshalJSON
// implementations, which marshal many small objects per document.
func marshalToJSON(value any) ([]byte, error) {
	buf := getMarshalBuffer()
	defer putMarshalBuffer(buf)

	enc := json.NewEncoder(buf)
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}

	// json.Encoder appends a trailing newline that json.Marshal does not
	out := buf.Bytes()
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}

	// Copy out of the pooled buffer before releasing it
	result := make([]byte, len(out))
	copy(result, out)
	return result, nil
}
