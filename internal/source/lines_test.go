package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesPosition(t *testing.T) {
	src := []byte("(a\n  b)\n\n c")
	l := NewLines(src)
	assert.Equal(t, 4, l.Count())

	tests := []struct {
		off       int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{5, 2, 3},
		{8, 3, 1},
		{9, 4, 1},
		{10, 4, 2},
		{11, 4, 3}, // end of input
		{99, 4, 3},
		{-1, 1, 1},
	}
	for _, tt := range tests {
		line, col := l.Position(tt.off)
		assert.Equal(t, tt.line, line, "line of %d", tt.off)
		assert.Equal(t, tt.col, col, "col of %d", tt.off)
	}
}

func TestLinesCount(t *testing.T) {
	assert.Equal(t, 1, NewLines(nil).Count())
	assert.Equal(t, 1, NewLines([]byte("abc")).Count())
	assert.Equal(t, 1, NewLines([]byte("abc\n")).Count())
	assert.Equal(t, 2, NewLines([]byte("abc\nd")).Count())
}

func TestLinesLineStart(t *testing.T) {
	l := NewLines([]byte("ab\ncd\n"))
	assert.Equal(t, 0, l.LineStart(1))
	assert.Equal(t, 3, l.LineStart(2))
	assert.Equal(t, 6, l.LineStart(3))
	assert.Equal(t, 6, l.LineStart(10))
}
