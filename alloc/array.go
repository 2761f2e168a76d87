package alloc

// initialArrayCap is the element count reserved by an Array's first growth.
const initialArrayCap = 16

// Array is a growable sequence of pointer-free T stored in memory from an
// Allocator. Capacity starts at 16 elements and doubles; it never shrinks.
type Array[T any] struct {
	buf   []byte // as returned by the allocator
	off   int    // start of items within buf
	items []T    // len(items) is the capacity
	count int
	size  int
	align int
	a     Allocator
}

// NewArray returns an empty Array that allocates from a. No memory is
// obtained until the first append.
func NewArray[T any](a Allocator) *Array[T] {
	size, align := layout[T]("alloc.NewArray")
	return &Array[T]{a: a, size: size, align: align}
}

// Append adds a zeroed element at the end and returns a pointer to it. The
// pointer is valid until the next growth.
func (s *Array[T]) Append() *T {
	if s.count+1 > len(s.items) {
		s.grow()
	}
	p := &s.items[s.count]
	var zero T
	*p = zero
	s.count++
	return p
}

// Push appends v.
func (s *Array[T]) Push(v T) {
	*s.Append() = v
}

// AppendSlice appends every element of vs.
func (s *Array[T]) AppendSlice(vs []T) {
	for s.count+len(vs) > len(s.items) {
		s.grow()
	}
	copy(s.items[s.count:], vs)
	s.count += len(vs)
}

// Pop removes and returns the last element. Popping an empty Array is fatal.
func (s *Array[T]) Pop() T {
	if s.count == 0 {
		Fatal("array.Pop", ErrEmpty)
	}
	s.count--
	return s.items[s.count]
}

// Top returns a pointer to the last element. Fatal when empty.
func (s *Array[T]) Top() *T {
	if s.count == 0 {
		Fatal("array.Top", ErrEmpty)
	}
	return &s.items[s.count-1]
}

// At returns a pointer to element i.
func (s *Array[T]) At(i int) *T {
	return &s.Items()[i]
}

// Items returns the live elements. The slice aliases the Array's storage and
// is valid until the next growth.
func (s *Array[T]) Items() []T {
	return s.items[:s.count]
}

// Len returns the number of elements.
func (s *Array[T]) Len() int {
	return s.count
}

// Cap returns the number of elements that fit without growing.
func (s *Array[T]) Cap() int {
	return len(s.items)
}

// Truncate drops every element at index n and beyond.
func (s *Array[T]) Truncate(n int) {
	if n < 0 || n > s.count {
		Fatal("array.Truncate", ErrInvalidSize)
	}
	s.count = n
}

// Reset empties the Array and keeps its capacity.
func (s *Array[T]) Reset() {
	s.count = 0
}

// Release hands the storage back to the allocator.
func (s *Array[T]) Release() {
	if s.buf != nil {
		s.a.Free(s.buf)
	}
	s.buf = nil
	s.off = 0
	s.items = nil
	s.count = 0
}

func (s *Array[T]) grow() {
	newCap := initialArrayCap
	if len(s.items) > 0 {
		newCap = len(s.items) * 2
	}
	need := s.size*newCap + s.align - 1
	buf := Grow(s.a, s.buf, need)
	if len(buf) < need {
		Fatal("array.grow", ErrExhausted)
	}
	// Grow keeps byte positions; move the elements if the aligned start moved.
	off := alignOffset(buf, s.align)
	if off != s.off && s.count > 0 {
		copy(buf[off:], buf[s.off:s.off+s.count*s.size])
	}
	s.buf = buf
	s.off = off
	s.items = view[T](buf[off:], newCap)
}
