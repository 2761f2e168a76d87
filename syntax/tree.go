package syntax

import (
	"math"
	"unsafe"

	"github.com/zeno-lang/zeno/alloc"
)

// Tree owns a set of nodes. Every tuple's children are a contiguous run of
// the tree's child list that no other tuple shares, so the nodes reachable
// from a Ref always form a tree.
//
// Slices returned by Tree methods alias the tree's storage and are valid
// until the tree is next modified.
type Tree struct {
	nodes *alloc.Array[Code]
	kids  *alloc.Array[Ref]
	text  *alloc.Array[byte]
}

// NewTree returns an empty tree whose storage comes from a.
func NewTree(a alloc.Allocator) *Tree {
	t := &Tree{
		nodes: alloc.NewArray[Code](a),
		kids:  alloc.NewArray[Ref](a),
		text:  alloc.NewArray[byte](a),
	}
	t.nodes.Append() // Nil
	return t
}

// NewIdentifier adds an identifier node holding a copy of name.
func (t *Tree) NewIdentifier(loc int, name []byte) Ref {
	return t.add(Code{Kind: Identifier, Loc: loc, Span: t.intern(name)})
}

// NewString adds a string node holding a copy of the unescaped text s.
func (t *Tree) NewString(loc int, s []byte) Ref {
	return t.add(Code{Kind: String, Loc: loc, Span: t.intern(s)})
}

// NewNumber adds a number node.
func (t *Tree) NewNumber(loc int, n Numeric) Ref {
	return t.add(Code{Kind: Number, Loc: loc, Num: n})
}

// NewTuple adds a tuple node whose children are copied from children. Each
// child must be a node of t that is not yet the child of another tuple, and
// children must not alias the tree's own storage.
func (t *Tree) NewTuple(loc int, children []Ref) Ref {
	span := Span{Off: t.kids.Len(), Len: len(children)}
	t.kids.AppendSlice(children)
	return t.add(Code{Kind: Tuple, Loc: loc, Span: span})
}

func (t *Tree) add(c Code) Ref {
	ref := refFor(t.nodes.Len())
	t.nodes.Push(c)
	return ref
}

// refFor names the node at index n. Refs are 32 bits wide.
func refFor(n int) Ref {
	if uint64(n) > math.MaxUint32 {
		alloc.Fatal("syntax.add", alloc.ErrExhausted)
	}
	return Ref(n)
}

func (t *Tree) intern(b []byte) Span {
	span := Span{Off: t.text.Len(), Len: len(b)}
	t.text.AppendSlice(b)
	return span
}

// Node returns a copy of the node named by ref. It panics on Nil or a ref
// from another tree.
func (t *Tree) Node(ref Ref) Code {
	if ref == Nil {
		panic("syntax: Node(Nil)")
	}
	return *t.nodes.At(int(ref))
}

// Kind returns the kind of ref, or Invalid for Nil.
func (t *Tree) Kind(ref Ref) Kind {
	if ref == Nil {
		return Invalid
	}
	return t.nodes.At(int(ref)).Kind
}

// Loc returns the source offset of ref.
func (t *Tree) Loc(ref Ref) int {
	return t.Node(ref).Loc
}

// Bytes returns the text of an identifier or string node and nil for other
// kinds.
func (t *Tree) Bytes(ref Ref) []byte {
	c := t.Node(ref)
	switch c.Kind {
	case Identifier, String:
		return t.text.Items()[c.Span.Off:c.Span.End()]
	default:
		return nil
	}
}

// Text returns the text of an identifier or string node.
func (t *Tree) Text(ref Ref) string {
	return string(t.Bytes(ref))
}

// Number returns the value of a number node.
func (t *Tree) Number(ref Ref) Numeric {
	return t.Node(ref).Num
}

// Children returns the children of a tuple node and nil for other kinds.
func (t *Tree) Children(ref Ref) []Ref {
	c := t.Node(ref)
	if c.Kind != Tuple {
		return nil
	}
	return t.kids.Items()[c.Span.Off:c.Span.End()]
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.nodes.Len() - 1
}

// Size returns the bytes of node, child and text storage in use.
func (t *Tree) Size() int {
	return t.nodes.Len()*int(unsafe.Sizeof(Code{})) + t.kids.Len()*int(unsafe.Sizeof(Nil)) + t.text.Len()
}

// Reset drops every node and keeps the storage for reuse.
func (t *Tree) Reset() {
	t.nodes.Truncate(1)
	t.kids.Reset()
	t.text.Reset()
}

// Release returns the storage to the allocator. The tree must not be used
// afterwards.
func (t *Tree) Release() {
	t.nodes.Release()
	t.kids.Release()
	t.text.Release()
}
