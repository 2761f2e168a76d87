package alloc

import (
	"reflect"
	"unsafe"
)

// New returns a pointer to a zeroed T placed in memory obtained from a.
// T must be pointer-free. The value lives until the allocator reclaims it,
// for an Arena that is the next FreeAll.
func New[T any](a Allocator) *T {
	size, align := layout[T]("alloc.New")
	b := a.Alloc(size + align - 1)
	b = b[alignOffset(b, align):]
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice returns n zeroed elements of T placed in memory obtained from a.
// T must be pointer-free. Returns nil if n <= 0.
func MakeSlice[T any](a Allocator, n int) []T {
	size, align := layout[T]("alloc.MakeSlice")
	if n <= 0 {
		return nil
	}
	b := a.Alloc(size*n + align - 1)
	return view[T](b[alignOffset(b, align):], n)
}

// view reinterprets the first n*sizeof(T) bytes of b as []T. b must be
// aligned for T.
func view[T any](b []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// layout returns sizeof(T) and alignof(T), failing when T cannot live in
// raw memory.
func layout[T any](op string) (size, align int) {
	typ := reflect.TypeFor[T]()
	if hasPointers(typ) {
		Fatal(op, ErrPointerElem)
	}
	size = int(typ.Size())
	if size == 0 {
		Fatal(op, ErrInvalidSize)
	}
	return size, typ.Align()
}

// alignOffset returns how many leading bytes of b to skip so that the rest
// starts on an align boundary. Allocators make no alignment promise, so
// typed views request align-1 extra bytes and skip them here.
func alignOffset(b []byte, align int) int {
	if len(b) == 0 || align <= 1 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
}

// hasPointers reports whether values of t contain Go pointers the garbage
// collector would have to see.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
