package alloc

// Caps is the set of operations an Allocator implements. Invoking an
// operation outside the set is fatal, except Free, which an allocator may
// legally treat as a no-op.
type Caps uint8

const (
	CapAlloc Caps = 1 << iota
	CapResize
	CapFree
	CapFreeAll
)

// Has reports whether every operation in op is supported.
func (c Caps) Has(op Caps) bool {
	return c&op == op
}

func (c Caps) String() string {
	if c == 0 {
		return "none"
	}
	names := [...]string{"alloc", "resize", "free", "free-all"}
	s := ""
	for i, name := range names {
		if c&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}

// Allocator hands out raw, zeroed memory. Implementations are passed
// explicitly to every operation that allocates; there is no package-level
// default instance.
//
// Memory returned by an Allocator may live outside the Go heap, so it must
// only ever hold pointer-free data.
type Allocator interface {
	// Alloc returns n zeroed bytes. Alloc(0) returns nil.
	Alloc(n int) []byte
	// Resize grows or shrinks old, a slice previously returned by this
	// allocator, to n bytes. The first min(len(old), n) bytes are preserved
	// and any added bytes are zero. The result may be relocated.
	Resize(old []byte, n int) []byte
	// Free releases a single allocation.
	Free(b []byte)
	// FreeAll releases everything ever allocated from the allocator.
	FreeAll()
	// Caps reports the supported operations.
	Caps() Caps
}

// Grow resizes old to n bytes through a. Allocators without CapResize are
// served by allocating a fresh region, copying and freeing the old one.
func Grow(a Allocator, old []byte, n int) []byte {
	if a.Caps().Has(CapResize) {
		return a.Resize(old, n)
	}
	b := a.Alloc(n)
	copy(b, old)
	if len(old) > 0 {
		a.Free(old)
	}
	return b
}
