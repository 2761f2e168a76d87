package alloc

// DefaultArenaSize is the capacity an Arena reserves on construction.
const DefaultArenaSize = 8096

// Arena is a bump allocator over a buffer obtained from a backing
// allocator. The buffer doubles when it runs out; memory is reclaimed only in
// bulk by FreeAll. Not goroutine-safe: give each concurrent parse its own
// Arena, or wrap it with NewLocked.
//
// Offsets are not aligned: Alloc(n) advances by exactly n bytes. Typed views
// (New, MakeSlice, Array) align within the bytes they request.
//
// Growth takes a fresh buffer from the backing allocator and copies the used
// prefix. The replaced buffer is retired, not freed, so slices handed out
// before the growth stay valid until the next FreeAll or Release.
type Arena struct {
	base     []byte
	used     int
	capacity int
	backing  Allocator
	init     int
	retired  [][]byte
	released bool

	peak   int
	grows  int
	allocs int
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithInitialCapacity sets the first reservation. Values <= 0 select
// DefaultArenaSize.
func WithInitialCapacity(n int) ArenaOption {
	return func(a *Arena) {
		if n > 0 {
			a.init = n
		}
	}
}

// NewArena creates an Arena on top of backing and reserves its initial
// capacity. A nil backing selects a fresh System allocator.
func NewArena(backing Allocator, opts ...ArenaOption) *Arena {
	if backing == nil {
		backing = NewSystem()
	}
	a := &Arena{backing: backing, init: DefaultArenaSize}
	for _, opt := range opts {
		opt(a)
	}
	a.grow(a.init)
	return a
}

// Alloc returns n zeroed bytes from the arena. Alloc(0) returns nil.
func (a *Arena) Alloc(n int) []byte {
	a.panicIfReleased("arena.Alloc")
	if n < 0 {
		Fatal("arena.Alloc", ErrInvalidSize)
	}
	if n == 0 {
		return nil
	}
	off := a.used
	if off+n > a.capacity {
		a.grow(off + n)
	}
	b := a.base[off : off+n : off+n]
	clear(b)
	a.used = off + n
	a.allocs++
	if a.used > a.peak {
		a.peak = a.used
	}
	return b
}

// Resize is not supported by the arena. Use Grow for allocator-neutral
// growth.
func (a *Arena) Resize(old []byte, n int) []byte {
	Fatal("arena.Resize", ErrUnsupported)
	return nil
}

// Free is a no-op; arena memory is reclaimed by FreeAll.
func (a *Arena) Free(b []byte) {}

// FreeAll rewinds the arena to offset zero and frees buffers retired by
// growth. The current buffer and its capacity are kept, so the next
// allocation reuses the first bytes of the same buffer.
func (a *Arena) FreeAll() {
	a.panicIfReleased("arena.FreeAll")
	a.used = 0
	a.freeRetired()
}

// Caps implements Allocator.
func (a *Arena) Caps() Caps {
	return CapAlloc | CapFreeAll
}

// Release returns the buffer to the backing allocator and makes the arena
// unusable. Any subsequent operation is fatal.
func (a *Arena) Release() {
	if a.released {
		return
	}
	a.freeRetired()
	if a.base != nil {
		a.backing.Free(a.base)
	}
	a.base = nil
	a.used = 0
	a.capacity = 0
	a.released = true
}

// grow doubles the capacity until need bytes fit.
func (a *Arena) grow(need int) {
	newCap := a.init
	if a.capacity > 0 {
		newCap = a.capacity * 2
	}
	for newCap < need {
		newCap *= 2
	}
	base := a.backing.Alloc(newCap)
	if len(base) < newCap {
		Fatal("arena.grow", ErrExhausted)
	}
	if a.base != nil {
		copy(base, a.base[:a.used])
		a.retired = append(a.retired, a.base)
	}
	a.base = base
	a.capacity = newCap
	a.grows++
}

func (a *Arena) freeRetired() {
	for i, b := range a.retired {
		a.backing.Free(b)
		a.retired[i] = nil
	}
	a.retired = a.retired[:0]
}

func (a *Arena) panicIfReleased(op string) {
	if a.released {
		Fatal(op, ErrReleased)
	}
}
