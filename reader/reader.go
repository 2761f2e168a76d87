// Package reader turns zeno source text into syntax trees, one top-level
// form per call.
//
// The reader is iterative: open tuples live on an explicit stack in scratch
// memory, so nesting depth is bounded by memory rather than by the goroutine
// stack. Finished nodes go to a syntax.Tree backed by a separate, longer-lived
// allocator.
package reader

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/syntax"
)

type frameKind uint8

const (
	frameTuple  frameKind = iota // (
	frameCode                    // '
	frameInsert                  // ,
	frameLine                    // tuple opened by a line's first form
)

// frame is an open form on the reader stack. For tuples, start indexes the
// first pending child. Line frames record the column they opened at.
type frame struct {
	loc    int
	start  int
	indent int
	kind   frameKind
}

func (f frame) collects() bool {
	return f.kind == frameTuple || f.kind == frameLine
}

// Reader reads top-level forms. It is not goroutine-safe.
type Reader struct {
	tree       *syntax.Tree
	scratch    alloc.Allocator
	file         string
	quoteSugar   bool
	indentTuples bool

	stack   *alloc.Array[frame]
	pending *alloc.Array[syntax.Ref]
	text    *alloc.Array[byte]
}

// New returns a Reader that adds nodes to tree and keeps its working state
// in scratch, typically an *alloc.Arena.
//
// The Reader never rewinds scratch itself. Callers that pass an arena should
// call FreeAll between Read calls; memory from one call is not used by the
// next.
func New(tree *syntax.Tree, scratch alloc.Allocator, opts ...Option) *Reader {
	r := &Reader{tree: tree, scratch: scratch}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tree returns the tree nodes are added to.
func (r *Reader) Tree() *syntax.Tree {
	return r.tree
}

// Read reads one top-level form from src starting at offset p. It returns
// the form and the offset just past it. At end of input, with only layout
// left, it returns syntax.Nil and a nil error. Syntax errors are returned as
// *Error; the returned offset is where scanning stopped.
//
// Allocator failures are fatal and panic with *alloc.FatalError.
func (r *Reader) Read(src []byte, p int) (syntax.Ref, int, error) {
	if p < 0 || p > len(src) {
		panic(fmt.Sprintf("reader: offset %d outside input of %d bytes", p, len(src)))
	}
	r.stack = alloc.NewArray[frame](r.scratch)
	r.pending = alloc.NewArray[syntax.Ref](r.scratch)
	r.text = alloc.NewArray[byte](r.scratch)
	defer r.release()

	s := scanner{src: src, pos: p}
	for {
		s.skipLayout()
		if s.eof() {
			if ref := r.closeLines(-1); ref != syntax.Nil {
				return ref, s.pos, nil
			}
			if r.stack.Len() == 0 {
				return syntax.Nil, s.pos, nil
			}
			return syntax.Nil, s.pos, r.unclosed()
		}

		start := s.pos
		c := s.peek()
		if r.indentTuples && r.atLayoutLevel() {
			if indent, first := s.lineIndent(start); first {
				if ref := r.closeLines(indent); ref != syntax.Nil {
					return ref, start, nil
				}
				if c != '(' && c != ')' {
					r.stack.Push(frame{loc: start, start: r.pending.Len(), indent: indent, kind: frameLine})
				}
			}
		}
		var ref syntax.Ref
		switch {
		case c == '(':
			s.pos++
			r.stack.Push(frame{loc: start, start: r.pending.Len(), kind: frameTuple})
			continue
		case c == ')':
			s.pos++
			if r.stack.Len() == 0 {
				return syntax.Nil, s.pos, r.errorf(UnmatchedCloseParen, start, "unexpected closing parenthesis")
			}
			f := r.stack.Pop()
			if f.kind == frameLine {
				// A line tuple never spans an explicit close.
				return syntax.Nil, s.pos, r.errorf(UnmatchedCloseParen, start, "unexpected closing parenthesis")
			}
			if f.kind != frameTuple {
				return syntax.Nil, s.pos, r.dangling(f)
			}
			ref = r.tree.NewTuple(f.loc, r.pending.Items()[f.start:])
			r.pending.Truncate(f.start)
		case c == '"':
			var err error
			if ref, err = r.readString(&s); err != nil {
				return syntax.Nil, s.pos, err
			}
		case r.quoteSugar && (c == '\'' || c == ','):
			s.pos++
			kind := frameCode
			if c == ',' {
				kind = frameInsert
			}
			r.stack.Push(frame{loc: start, kind: kind})
			continue
		default:
			ref = r.readAtom(&s)
		}

		if ref = r.complete(ref); ref != syntax.Nil {
			return ref, s.pos, nil
		}
	}
}

// complete hands a finished node to the innermost open form. It returns the
// node once it is a whole top-level form, and Nil while forms remain open.
func (r *Reader) complete(ref syntax.Ref) syntax.Ref {
	for r.stack.Len() > 0 {
		if r.stack.Top().collects() {
			r.pending.Push(ref)
			return syntax.Nil
		}
		ref = r.quote(r.stack.Pop(), ref)
	}
	return ref
}

// atLayoutLevel reports whether line layout applies: no explicit tuple or
// quote prefix is open.
func (r *Reader) atLayoutLevel() bool {
	return r.stack.Len() == 0 || r.stack.Top().kind == frameLine
}

// closeLines closes the open line tuples at column indent or deeper; a
// negative indent closes them all. It returns the top-level form if closing
// finished one.
func (r *Reader) closeLines(indent int) syntax.Ref {
	for r.stack.Len() > 0 {
		f := r.stack.Top()
		if f.kind != frameLine || (indent >= 0 && f.indent < indent) {
			return syntax.Nil
		}
		r.stack.Pop()
		ref := r.tree.NewTuple(f.loc, r.pending.Items()[f.start:])
		r.pending.Truncate(f.start)
		if ref = r.complete(ref); ref != syntax.Nil {
			return ref
		}
	}
	return syntax.Nil
}

// quote wraps ref for a quote prefix: 'x is ($code x), ,x is ($insert "%" x).
func (r *Reader) quote(f frame, ref syntax.Ref) syntax.Ref {
	var kids [3]syntax.Ref
	n := 0
	switch f.kind {
	case frameCode:
		kids[0] = r.tree.NewIdentifier(f.loc, []byte("$code"))
		kids[1] = ref
		n = 2
	case frameInsert:
		kids[0] = r.tree.NewIdentifier(f.loc, []byte("$insert"))
		kids[1] = r.tree.NewString(f.loc, []byte("%"))
		kids[2] = ref
		n = 3
	}
	return r.tree.NewTuple(f.loc, kids[:n])
}

func (r *Reader) readAtom(s *scanner) syntax.Ref {
	start := s.pos
	tok := s.scanAtom()
	if n, ok := ParseNumber(tok); ok {
		return r.tree.NewNumber(start, n)
	}
	return r.tree.NewIdentifier(start, tok)
}

// readString reads a string literal starting at the opening quote.
func (r *Reader) readString(s *scanner) (syntax.Ref, error) {
	start := s.pos
	s.pos++
	r.text.Reset()
	for !s.eof() {
		switch c := s.peek(); c {
		case '"':
			s.pos++
			return r.tree.NewString(start, r.text.Items()), nil
		case '\\':
			if err := r.readEscape(s, start); err != nil {
				return syntax.Nil, err
			}
		default:
			r.text.Push(c)
			s.pos++
		}
	}
	return syntax.Nil, r.errorf(UnterminatedString, start, "missing closing quote")
}

// readEscape decodes the escape sequence at the backslash under s.
func (r *Reader) readEscape(s *scanner, strStart int) error {
	at := s.pos
	s.pos++
	if s.eof() {
		return r.errorf(UnterminatedString, strStart, "missing closing quote")
	}
	c := s.peek()
	s.pos++
	switch c {
	case 'n':
		r.text.Push('\n')
	case 't':
		r.text.Push('\t')
	case 'r':
		r.text.Push('\r')
	case '0':
		r.text.Push(0)
	case '"', '\\', '\'':
		r.text.Push(c)
	case 'x':
		v, err := r.readHex(s, at, strStart, 2)
		if err != nil {
			return err
		}
		r.text.Push(byte(v))
	case 'u':
		v, err := r.readHex(s, at, strStart, 4)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(rune(v)) {
			return r.errorf(InvalidEscape, at, "invalid escape sequence %q: surrogate code point", s.src[at:s.pos])
		}
		var buf [utf8.UTFMax]byte
		r.text.AppendSlice(buf[:utf8.EncodeRune(buf[:], rune(v))])
	default:
		return r.errorf(InvalidEscape, at, "invalid escape sequence %q", s.src[at:s.pos])
	}
	return nil
}

// readHex reads n hex digits of an escape that began at at.
func (r *Reader) readHex(s *scanner, at, strStart, n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		if s.eof() {
			return 0, r.errorf(UnterminatedString, strStart, "missing closing quote")
		}
		d, ok := unhex(s.peek())
		if !ok {
			return 0, r.errorf(InvalidEscape, at, "invalid escape sequence %q", s.src[at:s.pos+1])
		}
		v = v<<4 | uint32(d)
		s.pos++
	}
	return v, nil
}

// unclosed reports the innermost form still open at end of input.
func (r *Reader) unclosed() error {
	f := r.stack.Pop()
	if f.kind != frameTuple {
		return r.dangling(f)
	}
	return r.errorf(UnterminatedTuple, f.loc, "missing closing parenthesis")
}

func (r *Reader) dangling(f frame) error {
	prefix := "'"
	if f.kind == frameInsert {
		prefix = ","
	}
	return r.errorf(DanglingQuote, f.loc, "quote prefix %s has no following form", prefix)
}

func (r *Reader) errorf(kind ErrorKind, loc int, format string, args ...any) error {
	return &Error{Kind: kind, File: r.file, Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

func (r *Reader) release() {
	r.stack.Release()
	r.pending.Release()
	r.text.Release()
	r.stack, r.pending, r.text = nil, nil, nil
}
