package syntax

// Format returns the canonical text of ref: identifiers verbatim, numbers
// in literal form, strings quoted with escapes and tuples as (a b c).
// Reading the result back yields an equal tree.
func (t *Tree) Format(ref Ref) string {
	return string(t.AppendFormat(nil, ref))
}

// AppendFormat appends the canonical text of ref to dst. Deep trees are
// walked with an explicit stack.
func (t *Tree) AppendFormat(dst []byte, ref Ref) []byte {
	type item struct {
		ref  Ref
		next int // index of the next child to print, -1 before "("
	}
	stack := []item{{ref: ref, next: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		c := t.Node(top.ref)
		switch c.Kind {
		case Identifier:
			dst = append(dst, t.Bytes(top.ref)...)
		case Number:
			dst = c.Num.AppendText(dst)
		case String:
			dst = appendQuoted(dst, t.Bytes(top.ref))
		case Tuple:
			kids := t.Children(top.ref)
			if top.next < 0 {
				dst = append(dst, '(')
				top.next = 0
			}
			if top.next < len(kids) {
				if top.next > 0 {
					dst = append(dst, ' ')
				}
				child := kids[top.next]
				top.next++
				stack = append(stack, item{ref: child, next: -1})
				continue
			}
			dst = append(dst, ')')
		}
		stack = stack[:len(stack)-1]
	}
	return dst
}

const hexDigits = "0123456789abcdef"

// appendQuoted quotes s using only escapes the reader understands.
func appendQuoted(dst, s []byte) []byte {
	dst = append(dst, '"')
	for _, c := range s {
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\r':
			dst = append(dst, '\\', 'r')
		case 0:
			dst = append(dst, '\\', '0')
		default:
			if c < 0x20 || c == 0x7f {
				dst = append(dst, '\\', 'x', hexDigits[c>>4], hexDigits[c&0xf])
				continue
			}
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

// Depth returns the tuple nesting depth of ref: 0 for an atom, one more than
// the deepest child for a tuple.
func (t *Tree) Depth(ref Ref) int {
	type item struct {
		ref   Ref
		depth int
	}
	deepest := 0
	stack := []item{{ref: ref, depth: 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.Kind(it.ref) != Tuple {
			continue
		}
		d := it.depth + 1
		if d > deepest {
			deepest = d
		}
		for _, child := range t.Children(it.ref) {
			stack = append(stack, item{ref: child, depth: d})
		}
	}
	return deepest
}

// Walk calls fn for ref and every node below it in source order. Returning
// false from fn skips the node's children.
func (t *Tree) Walk(ref Ref, fn func(ref Ref, depth int) bool) {
	type item struct {
		ref   Ref
		depth int
	}
	stack := []item{{ref: ref}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.ref, it.depth) || t.Kind(it.ref) != Tuple {
			continue
		}
		kids := t.Children(it.ref)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{ref: kids[i], depth: it.depth + 1})
		}
	}
}
