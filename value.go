package optstring

import (
	"bytes"
	"strings"
)

// Value is the parsed value of a single option. Exactly one of the
// concrete types Scalar, List or TupleList is produced per pair; the
// shape is determined by the option string itself (presence of [...]
// and of = inside it).
type Value interface {
	// String returns a human-readable rendering of the value, used in
	// error messages. It is not guaranteed to re-parse.
	String() string
	valueNode()
}

// Scalar is a single string value.
type Scalar string

func (s Scalar) valueNode()     {}
func (s Scalar) String() string { return string(s) }

// List is an ordered sequence of scalar values.
type List []string

func (l List) valueNode() {}
func (l List) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	out.WriteString(strings.Join(l, ", "))
	out.WriteString("]")
	return out.String()
}

// Pair is a single name=value tuple inside a list. Items without a
// name (plain scalars mixed into a tuple list) carry an empty Name.
type Pair struct {
	Name  string
	Value string
}

func (p Pair) String() string {
	if p.Name == "" {
		return p.Value
	}
	return p.Name + "=" + p.Value
}

// TupleList is an ordered sequence of name=value tuples. The scanner
// classifies a list as a TupleList as soon as at least one item
// carries a name; it does not reject lists mixing named and unnamed
// items. Manager's coercion does.
type TupleList []Pair

func (t TupleList) valueNode() {}
func (t TupleList) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, p := range t {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString("]")
	return out.String()
}
