package reader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a syntax error.
type ErrorKind uint8

const (
	UnmatchedCloseParen ErrorKind = iota + 1
	UnterminatedString
	UnterminatedTuple
	InvalidEscape
	DanglingQuote
)

var (
	ErrUnmatchedCloseParen = errors.New("unexpected closing parenthesis")
	ErrUnterminatedString  = errors.New("missing closing quote")
	ErrUnterminatedTuple   = errors.New("missing closing parenthesis")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrDanglingQuote       = errors.New("quote prefix without a form")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnmatchedCloseParen:
		return ErrUnmatchedCloseParen
	case UnterminatedString:
		return ErrUnterminatedString
	case UnterminatedTuple:
		return ErrUnterminatedTuple
	case InvalidEscape:
		return ErrInvalidEscape
	case DanglingQuote:
		return ErrDanglingQuote
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "unknown syntax error"
}

// Error is a recoverable syntax error at a byte offset of the input.
type Error struct {
	Kind ErrorKind
	File string
	Loc  int
	Msg  string
}

// Error formats the error as file[offset] parse error: message.
func (e *Error) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s[%d] parse error: %s", file, e.Loc, e.Msg)
}

// Unwrap returns the sentinel for e.Kind, so errors.Is(err,
// ErrUnterminatedTuple) and friends work.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Incomplete reports whether err means the input ended inside a form, so more
// input could complete it.
func Incomplete(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case UnterminatedTuple, UnterminatedString:
		return true
	}
	return false
}
