package alloc

import (
	"testing"
	"unsafe"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestNew(t *testing.T) {
	a := NewArena(NewSystem(), WithInitialCapacity(1024))

	ptr := New[int](a)
	if ptr == nil {
		t.Fatal("New[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("New[int] value = %d, want 0 (zeroed)", *ptr)
	}

	s := New[testStruct](a)
	if s.a != 0 || s.b != 0 || s.c != 0 || s.d != 0 {
		t.Errorf("New[testStruct] not properly zeroed: %+v", *s)
	}

	*ptr = 42
	s.a = 100
	if *ptr != 42 || s.a != 100 {
		t.Error("Could not write to allocated memory")
	}
	if addr := uintptr(unsafe.Pointer(s)); addr%unsafe.Alignof(*s) != 0 {
		t.Errorf("New[testStruct] misaligned at %#x", addr)
	}
}

func TestNewRejectsPointers(t *testing.T) {
	a := NewArena(NewSystem())
	expectFatal(t, ErrPointerElem, func() { New[*int](a) })
	expectFatal(t, ErrPointerElem, func() { New[string](a) })
	expectFatal(t, ErrPointerElem, func() { New[struct{ b []byte }](a) })
	expectFatal(t, ErrInvalidSize, func() { New[struct{}](a) })
}

func TestMakeSlice(t *testing.T) {
	a := NewArena(NewSystem(), WithInitialCapacity(1024))

	slice := MakeSlice[int32](a, 10)
	if len(slice) != 10 {
		t.Errorf("MakeSlice[int32](10) length = %d, want 10", len(slice))
	}
	for i := range slice {
		if slice[i] != 0 {
			t.Fatalf("slice[%d] = %d, want 0", i, slice[i])
		}
		slice[i] = int32(i * 2)
	}
	if slice[9] != 18 {
		t.Errorf("slice[9] = %d, want 18", slice[9])
	}

	if s := MakeSlice[int](a, 0); s != nil {
		t.Errorf("MakeSlice(0) = %v, want nil", s)
	}
	if s := MakeSlice[int](a, -1); s != nil {
		t.Errorf("MakeSlice(-1) = %v, want nil", s)
	}
}

func TestHasPointers(t *testing.T) {
	type inner struct {
		x [4]uint16
		f float64
	}
	type withPtr struct {
		n int
		p *inner
	}
	tests := []struct {
		name string
		fn   func() bool
		want bool
	}{
		{"int", func() bool { return hasPointers(typeOf[int]()) }, false},
		{"array of struct", func() bool { return hasPointers(typeOf[[3]inner]()) }, false},
		{"zero-length array of pointers", func() bool { return hasPointers(typeOf[[0]*int]()) }, false},
		{"struct with pointer", func() bool { return hasPointers(typeOf[withPtr]()) }, true},
		{"interface", func() bool { return hasPointers(typeOf[any]()) }, true},
		{"map", func() bool { return hasPointers(typeOf[map[int]int]()) }, true},
	}
	for _, tt := range tests {
		if got := tt.fn(); got != tt.want {
			t.Errorf("hasPointers(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSystem(t *testing.T) {
	s := NewSystem()

	b := s.Alloc(10)
	if len(b) != 10 {
		t.Fatalf("Alloc(10) length = %d, want 10", len(b))
	}
	copy(b, "0123456789")

	b = s.Resize(b, 20)
	if string(b[:10]) != "0123456789" {
		t.Errorf("Resize lost prefix: %q", b[:10])
	}
	for i, c := range b[10:] {
		if c != 0 {
			t.Fatalf("grown byte %d = %#x, want 0", i, c)
		}
	}

	b = s.Resize(b, 4)
	if string(b) != "0123" {
		t.Errorf("shrunk slice = %q, want %q", b, "0123")
	}

	s.Free(b)
	st := s.Stats()
	if st.Live != 0 {
		t.Errorf("Live = %d, want 0", st.Live)
	}
	if st.Allocs != 1 || st.Resizes != 2 || st.Frees != 1 {
		t.Errorf("Stats = %+v", st)
	}

	expectFatal(t, ErrUnsupported, func() { s.FreeAll() })
	expectFatal(t, ErrInvalidSize, func() { s.Alloc(-5) })
}

func TestPagesCaps(t *testing.T) {
	caps := NewPages().Caps()
	for _, op := range []Caps{CapAlloc, CapResize, CapFree} {
		if !caps.Has(op) {
			t.Errorf("Pages caps %v missing %v", caps, op)
		}
	}
	if caps.Has(CapFreeAll) {
		t.Errorf("Pages caps %v include FreeAll", caps)
	}
}

func TestPages(t *testing.T) {
	p := NewPages()

	b := p.Alloc(100)
	if len(b) != 100 {
		t.Fatalf("Alloc(100) length = %d, want 100", len(b))
	}
	for i := range b {
		b[i] = byte(i)
	}

	// Within the mapped page the region is reused.
	b = p.Resize(b, 200)
	if b[99] != 99 || b[150] != 0 {
		t.Errorf("Resize within page: b[99]=%d b[150]=%d", b[99], b[150])
	}

	big := p.Resize(b, 3*pageSizeForTest())
	if big[99] != 99 {
		t.Errorf("Resize across pages lost data: big[99]=%d", big[99])
	}

	p.Free(big)
	if live := p.Stats().Live; live != 0 {
		t.Errorf("mapped bytes after Free = %d, want 0", live)
	}
	expectFatal(t, ErrUnsupported, func() { p.FreeAll() })
}

func TestGrowWithoutResize(t *testing.T) {
	a := NewArena(NewSystem(), WithInitialCapacity(256))
	old := a.Alloc(8)
	copy(old, "abcdefgh")

	b := Grow(a, old, 32)
	if string(b[:8]) != "abcdefgh" {
		t.Errorf("Grow lost prefix: %q", b[:8])
	}
	if len(b) != 32 {
		t.Errorf("Grow length = %d, want 32", len(b))
	}
}

func TestCaps(t *testing.T) {
	if got := NewArena(nil).Caps().String(); got != "alloc|free-all" {
		t.Errorf("arena caps = %q", got)
	}
	if got := NewSystem().Caps().String(); got != "alloc|resize|free" {
		t.Errorf("system caps = %q", got)
	}
	if got := Caps(0).String(); got != "none" {
		t.Errorf("empty caps = %q", got)
	}
	if NewSystem().Caps().Has(CapFreeAll) {
		t.Error("system must not advertise free-all")
	}
}
