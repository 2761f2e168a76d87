// Package syntax defines the tree produced by the zeno reader.
//
// A Tree stores every node, every tuple's child list and every text payload
// in memory obtained from one allocator, so a tree built on a long-lived
// allocator outlives the scratch memory used while reading it. Nodes are
// addressed by Ref handles; Ref 0 (Nil) is reserved and never names a node.
package syntax

import "strconv"

// Kind discriminates the variants of Code.
type Kind uint8

const (
	Invalid Kind = iota
	Identifier
	Number
	String
	Tuple
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Tuple:
		return "tuple"
	default:
		return "invalid"
	}
}

// Ref is a handle to a node in a Tree.
type Ref uint32

// Nil is the reserved handle that names no node.
const Nil Ref = 0

// Span is a half-open range [Off, Off+Len).
type Span struct {
	Off int
	Len int
}

// End returns Off+Len.
func (s Span) End() int {
	return s.Off + s.Len
}

// Numeric is the value of a Number node: an int64 unless the literal only
// parses as a float.
type Numeric struct {
	Int     int64
	Float   float64
	IsFloat bool
}

// Int returns an integral Numeric.
func Int(v int64) Numeric {
	return Numeric{Int: v}
}

// Float returns a floating-point Numeric.
func Float(v float64) Numeric {
	return Numeric{Float: v, IsFloat: true}
}

func (n Numeric) String() string {
	return string(n.AppendText(nil))
}

// AppendText appends the literal form of n, which reads back as the same
// value.
func (n Numeric) AppendText(dst []byte) []byte {
	if !n.IsFloat {
		return strconv.AppendInt(dst, n.Int, 10)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, n.Float, 'g', -1, 64)
	for _, c := range dst[start:] {
		if c == '.' || c == 'e' || c == 'n' || c == 'N' {
			return dst
		}
	}
	return append(dst, ".0"...)
}

// Code is one syntax node. The meaning of Span depends on Kind:
//
//   - Identifier, String: the node's text in the tree's text pool.
//   - Tuple: the node's children in the tree's child list.
//   - Number: unused; the value is in Num.
type Code struct {
	Kind Kind
	Loc  int // byte offset of the node's first character
	Span Span
	Num  Numeric
}
