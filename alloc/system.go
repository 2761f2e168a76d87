package alloc

import "sync/atomic"

// System allocates from the Go heap. It supports Alloc, Resize and Free;
// FreeAll is fatal. Counters are atomic, so a single System may be shared
// between goroutines.
type System struct {
	live    atomic.Int64
	allocs  atomic.Uint64
	resizes atomic.Uint64
	frees   atomic.Uint64
}

// NewSystem returns a heap allocator.
func NewSystem() *System {
	return &System{}
}

// Alloc returns n zeroed bytes from the heap.
func (s *System) Alloc(n int) []byte {
	if n < 0 {
		Fatal("system.Alloc", ErrInvalidSize)
	}
	if n == 0 {
		return nil
	}
	s.allocs.Add(1)
	s.live.Add(int64(n))
	return make([]byte, n)
}

// Resize copies old into a fresh n-byte region. The old region stays valid
// for holders of earlier slices until the garbage collector reclaims it.
func (s *System) Resize(old []byte, n int) []byte {
	if n < 0 {
		Fatal("system.Resize", ErrInvalidSize)
	}
	s.resizes.Add(1)
	s.live.Add(int64(n - len(old)))
	if n == 0 {
		return nil
	}
	if n <= len(old) {
		return old[:n:n]
	}
	b := make([]byte, n)
	copy(b, old)
	return b
}

// Free drops b from the live byte count.
func (s *System) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	s.frees.Add(1)
	s.live.Add(-int64(len(b)))
}

// FreeAll is not supported by the heap allocator.
func (s *System) FreeAll() {
	Fatal("system.FreeAll", ErrUnsupported)
}

// Caps implements Allocator.
func (s *System) Caps() Caps {
	return CapAlloc | CapResize | CapFree
}

// Stats returns a snapshot of the allocator counters.
func (s *System) Stats() Stats {
	return Stats{
		Live:    s.live.Load(),
		Allocs:  s.allocs.Load(),
		Resizes: s.resizes.Load(),
		Frees:   s.frees.Load(),
	}
}

// Stats counts the traffic seen by a general-purpose allocator.
type Stats struct {
	Live    int64  // Bytes handed out and not yet freed
	Allocs  uint64 // Alloc calls
	Resizes uint64 // Resize calls
	Frees   uint64 // Free calls
}
