// Package pkg provides small utilities shared by ammo's adapters.
package pkg

import (
	"strings"
	"sync"
)

// DefaultTailSize is the number of trailing bytes a Tail keeps when created with a non-positive limit.
const DefaultTailSize = 4096

// Tail is an io.Writer that retains only the last Limit bytes written to it.
// It is safe for concurrent use.
type Tail struct {
	mu    sync.Mutex
	buf   []byte
	limit int
	total uint64
}

// NewTail creates a Tail keeping at most limit bytes.
func NewTail(limit int) *Tail {
	if limit <= 0 {
		limit = DefaultTailSize
	}

	return &Tail{
		buf:   make([]byte, 0, limit),
		limit: limit,
	}
}

// Write implements io.Writer. It never fails.
func (t *Tail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total += uint64(len(p))

	if len(p) >= t.limit {
		t.buf = append(t.buf[:0], p[len(p)-t.limit:]...)
		return len(p), nil
	}

	if overflow := len(t.buf) + len(p) - t.limit; overflow > 0 {
		t.buf = append(t.buf[:0], t.buf[overflow:]...)
	}

	t.buf = append(t.buf, p...)

	return len(p), nil
}

// Bytes returns a copy of the retained bytes.
func (t *Tail) Bytes() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]byte, len(t.buf))
	copy(out, t.buf)

	return out
}

// String returns the retained bytes. When earlier output was dropped the
// partial first line is trimmed so the result starts on a line boundary.
func (t *Tail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := string(t.buf)
	if t.total > uint64(len(t.buf)) {
		if i := strings.IndexByte(s, '\n'); i >= 0 && i < len(s)-1 {
			s = s[i+1:]
		}
	}

	return s
}

// Truncated reports whether output was dropped.
func (t *Tail) Truncated() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total > uint64(len(t.buf))
}
