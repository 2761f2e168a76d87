package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeno-lang/zeno/alloc"
)

func TestFormat(t *testing.T) {
	tree := NewTree(alloc.NewSystem())
	inner := tree.NewTuple(5, []Ref{
		tree.NewIdentifier(6, []byte("c")),
		tree.NewString(8, []byte("q\"\\\n\t\x01")),
	})
	outer := tree.NewTuple(0, []Ref{
		tree.NewIdentifier(1, []byte("a")),
		tree.NewNumber(3, Float(1.5)),
		inner,
		tree.NewTuple(20, nil),
	})

	assert.Equal(t, `(a 1.5 (c "q\"\\\n\t\x01") ())`, tree.Format(outer))
	assert.Equal(t, "c", tree.Format(tree.Children(inner)[0]))
	assert.Equal(t, "x=a", string(tree.AppendFormat([]byte("x="), tree.Children(outer)[0])))
}

func TestFormatDeepTree(t *testing.T) {
	tree := NewTree(alloc.NewSystem())
	const depth = 100000
	ref := tree.NewIdentifier(0, []byte("x"))
	for i := 0; i < depth; i++ {
		ref = tree.NewTuple(0, []Ref{ref})
	}
	out := tree.Format(ref)
	assert.Equal(t, strings.Repeat("(", depth)+"x"+strings.Repeat(")", depth), out)
	assert.Equal(t, depth, tree.Depth(ref))
}

func TestDepth(t *testing.T) {
	tree := NewTree(alloc.NewSystem())
	atom := tree.NewIdentifier(0, []byte("a"))
	assert.Equal(t, 0, tree.Depth(atom))

	empty := tree.NewTuple(0, nil)
	assert.Equal(t, 1, tree.Depth(empty))

	mixed := tree.NewTuple(0, []Ref{
		tree.NewTuple(0, []Ref{tree.NewTuple(0, nil)}),
		tree.NewIdentifier(0, []byte("b")),
	})
	assert.Equal(t, 3, tree.Depth(mixed))
}

func TestWalk(t *testing.T) {
	tree := NewTree(alloc.NewSystem())
	b := tree.NewIdentifier(3, []byte("b"))
	inner := tree.NewTuple(2, []Ref{b})
	root := tree.NewTuple(0, []Ref{tree.NewIdentifier(1, []byte("a")), inner, tree.NewNumber(6, Int(1))})

	var seen []string
	tree.Walk(root, func(ref Ref, depth int) bool {
		seen = append(seen, strings.Repeat(".", depth)+tree.Format(ref))
		return true
	})
	assert.Equal(t, []string{"(a (b) 1)", ".a", ".(b)", "..b", ".1"}, seen)

	seen = seen[:0]
	tree.Walk(root, func(ref Ref, depth int) bool {
		seen = append(seen, tree.Kind(ref).String())
		return ref != inner
	})
	assert.Equal(t, []string{"tuple", "identifier", "tuple", "number"}, seen)
}
