package alloc

import "sync"

// Locked is a mutex-protected wrapper around an Allocator for concurrent
// access. All operations are serialised, so it is as slow as its most
// contended caller.
type Locked struct {
	mu sync.Mutex
	a  Allocator
}

// NewLocked wraps a.
func NewLocked(a Allocator) *Locked {
	return &Locked{a: a}
}

// Alloc thread-safely allocates n bytes.
func (l *Locked) Alloc(n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Alloc(n)
}

// Resize thread-safely resizes old to n bytes.
func (l *Locked) Resize(old []byte, n int) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.a.Resize(old, n)
}

// Free thread-safely releases b.
func (l *Locked) Free(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.Free(b)
}

// FreeAll thread-safely releases everything allocated from the wrapped
// allocator.
func (l *Locked) FreeAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.a.FreeAll()
}

// Caps reports the wrapped allocator's operations.
func (l *Locked) Caps() Caps {
	return l.a.Caps()
}

// Unwrap returns the wrapped allocator.
func (l *Locked) Unwrap() Allocator {
	return l.a
}
