package reader

import (
	"strconv"

	"github.com/zeno-lang/zeno/syntax"
)

// ParseNumber parses an atom as a number. It succeeds only when the whole
// token is a numeric literal: an optional sign, then a decimal, 0x, 0o or 0b
// integer, or a decimal or hexadecimal float. Integers that overflow int64
// are read as floats.
func ParseNumber(tok []byte) (syntax.Numeric, bool) {
	digits := numericStart(tok)
	if digits < 0 {
		return syntax.Numeric{}, false
	}
	s := string(tok)
	base := 10
	if hasBasePrefix(tok[digits:]) {
		base = 0
	}
	if v, err := strconv.ParseInt(s, base, 64); err == nil {
		return syntax.Int(v), true
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return syntax.Float(v), true
	}
	return syntax.Numeric{}, false
}

// numericStart returns the index just past the sign if tok starts like a
// number, or -1.
func numericStart(tok []byte) int {
	i := 0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		i++
	}
	j := i
	if j < len(tok) && tok[j] == '.' {
		j++
	}
	if j < len(tok) && isDigit(tok[j]) {
		return i
	}
	return -1
}

func hasBasePrefix(b []byte) bool {
	if len(b) < 2 || b[0] != '0' {
		return false
	}
	switch b[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
