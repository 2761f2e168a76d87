//go:build !unix

package alloc

// Pages falls back to the heap on platforms without anonymous mmap.
type Pages struct {
	sys System
}

// NewPages returns a page allocator.
func NewPages() *Pages {
	return &Pages{}
}

// Alloc returns n zeroed bytes from the heap.
func (p *Pages) Alloc(n int) []byte {
	return p.sys.Alloc(n)
}

// Resize grows or shrinks old, keeping its prefix.
func (p *Pages) Resize(old []byte, n int) []byte {
	return p.sys.Resize(old, n)
}

// Free releases b.
func (p *Pages) Free(b []byte) {
	p.sys.Free(b)
}

// FreeAll is unsupported.
func (p *Pages) FreeAll() {
	Fatal("pages.FreeAll", ErrUnsupported)
}

// Caps matches System.
func (p *Pages) Caps() Caps {
	return p.sys.Caps()
}

// Stats returns counters for the heap fallback.
func (p *Pages) Stats() Stats {
	return p.sys.Stats()
}
