//go:build unix

package alloc

import (
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Pages allocates anonymous memory mappings outside the Go heap. Every
// allocation is rounded up to whole pages. It supports Alloc, Resize and
// Free; FreeAll is fatal.
//
// Resize may move the region and unmaps the old one, so slices obtained
// before a Resize must not be used afterwards.
type Pages struct {
	mapped  atomic.Int64
	maps    atomic.Uint64
	resizes atomic.Uint64
	frees   atomic.Uint64
}

// NewPages returns a page allocator.
func NewPages() *Pages {
	return &Pages{}
}

var pageSize = os.Getpagesize()

func roundPages(n int) int {
	return (n + pageSize - 1) &^ (pageSize - 1)
}

// Alloc maps enough pages for n bytes and returns the first n.
func (p *Pages) Alloc(n int) []byte {
	if n < 0 {
		Fatal("pages.Alloc", ErrInvalidSize)
	}
	if n == 0 {
		return nil
	}
	size := roundPages(n)
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		Fatal("pages.Alloc", fmt.Errorf("%w: mmap %d bytes: %v", ErrExhausted, size, err))
	}
	p.maps.Add(1)
	p.mapped.Add(int64(size))
	return data[:n]
}

// Resize grows within the mapped pages when possible and otherwise maps a
// new region, copies and unmaps the old one.
func (p *Pages) Resize(old []byte, n int) []byte {
	if n < 0 {
		Fatal("pages.Resize", ErrInvalidSize)
	}
	p.resizes.Add(1)
	if n == 0 {
		p.Free(old)
		return nil
	}
	if old != nil && n <= cap(old) {
		if n > len(old) {
			clear(old[len(old):n])
		}
		return old[:n]
	}
	b := p.Alloc(n)
	copy(b, old)
	p.Free(old)
	return b
}

// Free unmaps the region backing b.
func (p *Pages) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	full := b[:cap(b)]
	if err := unix.Munmap(full); err != nil {
		Fatal("pages.Free", fmt.Errorf("munmap: %w", err))
	}
	p.frees.Add(1)
	p.mapped.Add(-int64(len(full)))
}

// FreeAll is not supported by the page allocator.
func (p *Pages) FreeAll() {
	Fatal("pages.FreeAll", ErrUnsupported)
}

// Caps implements Allocator.
func (p *Pages) Caps() Caps {
	return CapAlloc | CapResize | CapFree
}

// Stats returns a snapshot of the allocator counters. Live counts mapped
// bytes, including page rounding.
func (p *Pages) Stats() Stats {
	return Stats{
		Live:    p.mapped.Load(),
		Allocs:  p.maps.Load(),
		Resizes: p.resizes.Load(),
		Frees:   p.frees.Load(),
	}
}
