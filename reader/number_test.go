package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeno-lang/zeno/syntax"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		tok  string
		want syntax.Numeric
		ok   bool
	}{
		{"0", syntax.Int(0), true},
		{"-0x10", syntax.Int(-16), true},
		{"0o17", syntax.Int(15), true},
		{"9223372036854775807", syntax.Int(9223372036854775807), true},
		{"9223372036854775808", syntax.Float(9223372036854775808), true},
		{"1.", syntax.Float(1), true},
		{"0x1p4", syntax.Float(16), true},
		{"0x", syntax.Numeric{}, false},
		{"1e", syntax.Numeric{}, false},
		{"-x", syntax.Numeric{}, false},
		{".", syntax.Numeric{}, false},
		{"", syntax.Numeric{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber([]byte(tt.tok))
		assert.Equal(t, tt.ok, ok, "token %q", tt.tok)
		assert.Equal(t, tt.want, got, "token %q", tt.tok)
	}
}
