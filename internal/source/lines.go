package source

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Lines maps byte offsets of a buffer to line and column numbers.
// Offsets must fit in uint32.
type Lines struct {
	newlines *roaring.Bitmap
	size     int
}

// NewLines indexes the newlines of src.
func NewLines(src []byte) *Lines {
	if uint64(len(src)) > math.MaxUint32 {
		panic("source: buffer too large to index")
	}
	bm := roaring.New()
	for i, c := range src {
		if c == '\n' {
			bm.Add(uint32(i))
		}
	}
	bm.RunOptimize()
	return &Lines{newlines: bm, size: len(src)}
}

// Count returns the number of lines. A trailing newline does not start a new
// line; empty input has one line.
func (l *Lines) Count() int {
	n := int(l.newlines.GetCardinality())
	if n > 0 && l.newlines.Contains(uint32(l.size-1)) {
		return n
	}
	return n + 1
}

// Position returns the 1-based line and byte column of off. Offsets past the
// end are clamped.
func (l *Lines) Position(off int) (line, col int) {
	off = max(0, min(off, l.size))
	before := 0
	if off > 0 {
		before = int(l.newlines.Rank(uint32(off - 1)))
	}
	start := l.LineStart(before + 1)
	return before + 1, off - start + 1
}

// LineStart returns the offset of the first byte of 1-based line n.
func (l *Lines) LineStart(n int) int {
	if n <= 1 {
		return 0
	}
	nl, err := l.newlines.Select(uint32(n - 2))
	if err != nil {
		return l.size
	}
	return int(nl) + 1
}
