package testutil

import (
	"strings"
	"sync"
)

// WriteRecorder is an io.Writer that records each Write call as one entry.
type WriteRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *WriteRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, string(p))
	return len(p), nil
}

// Calls returns a copy of every recorded write in order.
func (r *WriteRecorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// String returns all writes concatenated.
func (r *WriteRecorder) String() string {
	return strings.Join(r.Calls(), "")
}

// Reset discards recorded writes.
func (r *WriteRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
