// Package zeno reads zeno source text into syntax trees.
//
// A Parser pairs a syntax.Tree on a long-lived allocator with a scratch
// alloc.Arena for the reader's working state, and rewinds the arena before
// every top-level form:
//
//	p := zeno.NewParser(alloc.NewSystem(), zeno.WithFile("main.zn"))
//	defer p.Close()
//	err := p.Forms(src, func(ref syntax.Ref) error {
//		fmt.Println(p.Tree().Format(ref))
//		return nil
//	})
//
// The packages underneath are usable on their own: alloc for the allocator
// capability, syntax for the tree and reader for the form-at-a-time reader.
package zeno

import (
	"github.com/zeno-lang/zeno/alloc"
	"github.com/zeno-lang/zeno/reader"
	"github.com/zeno-lang/zeno/syntax"
)

type options struct {
	file         string
	quoteSugar   bool
	indentTuples bool
	arenaSize    int
	scratch      alloc.Allocator
}

// Option configures a Parser.
type Option func(*options)

// WithFile names the source in error messages.
func WithFile(name string) Option {
	return func(o *options) {
		o.file = name
	}
}

// WithQuoteSugar enables the ' and , quote prefixes.
func WithQuoteSugar(enabled bool) Option {
	return func(o *options) {
		o.quoteSugar = enabled
	}
}

// WithIndentTuples reads each unparenthesized line as a tuple, nesting more
// deeply indented lines inside it.
func WithIndentTuples(enabled bool) Option {
	return func(o *options) {
		o.indentTuples = enabled
	}
}

// WithArenaSize sets the initial capacity of the scratch arena.
func WithArenaSize(n int) Option {
	return func(o *options) {
		o.arenaSize = n
	}
}

// WithScratchBacking sets the allocator the scratch arena grows from.
// Defaults to a fresh alloc.System.
func WithScratchBacking(a alloc.Allocator) Option {
	return func(o *options) {
		o.scratch = a
	}
}

// Parser reads every top-level form of a buffer into one tree.
type Parser struct {
	tree   *syntax.Tree
	arena  *alloc.Arena
	reader *reader.Reader
	forms  int
}

// NewParser returns a Parser whose tree allocates from permanent.
func NewParser(permanent alloc.Allocator, opts ...Option) *Parser {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	tree := syntax.NewTree(permanent)
	arena := alloc.NewArena(o.scratch, alloc.WithInitialCapacity(o.arenaSize))
	return &Parser{
		tree:  tree,
		arena: arena,
		reader: reader.New(tree, arena,
			reader.WithFile(o.file),
			reader.WithQuoteSugar(o.quoteSugar),
			reader.WithIndentTuples(o.indentTuples),
		),
	}
}

// Forms reads src from the start and calls fn with each top-level form in
// source order. It stops at the first syntax error or the first error from
// fn and returns it.
func (p *Parser) Forms(src []byte, fn func(ref syntax.Ref) error) error {
	for pos := 0; ; {
		p.arena.FreeAll()
		ref, next, err := p.reader.Read(src, pos)
		if err != nil {
			return err
		}
		if ref == syntax.Nil {
			return nil
		}
		p.forms++
		if err := fn(ref); err != nil {
			return err
		}
		pos = next
	}
}

// Tree returns the tree forms are read into.
func (p *Parser) Tree() *syntax.Tree {
	return p.tree
}

// Arena returns the scratch arena, for metrics.
func (p *Parser) Arena() *alloc.Arena {
	return p.arena
}

// Count returns how many top-level forms have been read.
func (p *Parser) Count() int {
	return p.forms
}

// Close releases the scratch arena and the tree's storage.
func (p *Parser) Close() {
	p.arena.Release()
	p.tree.Release()
}

// ReadAll reads every top-level form of src into a new tree on the heap.
func ReadAll(src []byte, opts ...Option) (*syntax.Tree, []syntax.Ref, error) {
	p := NewParser(alloc.NewSystem(), opts...)
	defer p.arena.Release()
	var forms []syntax.Ref
	err := p.Forms(src, func(ref syntax.Ref) error {
		forms = append(forms, ref)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return p.tree, forms, nil
}
