package reader

// Option configures a Reader.
type Option func(*Reader)

// WithFile names the input in error messages.
func WithFile(name string) Option {
	return func(r *Reader) {
		r.file = name
	}
}

// WithQuoteSugar enables the quote prefixes: 'x reads as ($code x) and ,x
// as ($insert "%" x). Off by default, in which case ' and , are ordinary
// atom characters.
func WithQuoteSugar(enabled bool) Option {
	return func(r *Reader) {
		r.quoteSugar = enabled
	}
}

// WithIndentTuples enables line layout. Outside parentheses, a line whose
// first form is not a tuple opens an implicit tuple holding that line's
// forms and the tuples of the more deeply indented lines after it. The tuple
// closes at the next line indented no deeper, or at end of input.
// Inside parentheses layout is ignored. Off by default.
func WithIndentTuples(enabled bool) Option {
	return func(r *Reader) {
		r.indentTuples = enabled
	}
}
