package testutil

import (
	"errors"
	"strings"
	"sync"
)

// ErrSimulated is returned by MockReader when it is told to fail.
var ErrSimulated = errors.New("simulated error")

// MockReader is a test reader that serves a fixed text and can fail after a
// number of Read calls, to exercise error paths of line-oriented consumers.
type MockReader struct {
	mu         sync.Mutex
	r          *strings.Reader
	chunk      int
	errorOnNth int
	readCount  int
	err        error
}

// NewMockReader creates a MockReader over text that returns at most chunk
// bytes per Read. A chunk of 0 means no limit.
func NewMockReader(text string, chunk int) *MockReader {
	return &MockReader{r: strings.NewReader(text), chunk: chunk}
}

// Read implements io.Reader with configurable failures.
func (mr *MockReader) Read(p []byte) (int, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.readCount++

	if mr.errorOnNth > 0 && mr.readCount >= mr.errorOnNth {
		if mr.err != nil {
			return 0, mr.err
		}
		return 0, ErrSimulated
	}

	if mr.chunk > 0 && len(p) > mr.chunk {
		p = p[:mr.chunk]
	}
	return mr.r.Read(p)
}

// ReadCount returns the number of Read calls.
func (mr *MockReader) ReadCount() int {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	return mr.readCount
}

// SetErrorOnNth makes the nth and every later Read fail with err, or with
// ErrSimulated when err is nil.
func (mr *MockReader) SetErrorOnNth(n int, err error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.errorOnNth = n
	mr.err = err
}
