package optstring

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Scanner reads an option string one character at a time and emits
// (name, value) pairs as they complete. Successive calls to Scan
// advance through the input:
//
//	s := optstring.NewScanner("a=1,b=[2,3]")
//	for s.Scan() {
//		name, value := s.Name(), s.Value()
//		// ...
//	}
//	if err := s.Err(); err != nil {
//		// ...
//	}
//
// A Scanner holds no state across inputs; create a new one per
// string. Scanning stops at the first malformed character.
type Scanner struct {
	input string
	pos   int // byte offset of the next rune
	buf   bytes.Buffer

	escaped bool
	quoted  bool
	inList  bool

	name     string // current option name; empty means not yet seen
	tupleKey string // pending tuple name inside a list; empty means none
	items    []Pair // accumulated list items

	optName  string
	optValue Value
	err      error
	done     bool
}

// NewScanner creates a Scanner for the given option string.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Scan advances to the next (name, value) pair, which is then
// available through Name and Value. It returns false when the input
// is exhausted or malformed; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	for s.pos < len(s.input) {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		off := s.pos
		s.pos += size
		emitted, err := s.step(r, off)
		if err != nil {
			s.err = err
			return false
		}
		if emitted {
			return true
		}
	}
	s.done = true
	return s.finish()
}

// Name returns the name of the last pair emitted by Scan.
func (s *Scanner) Name() string { return s.optName }

// Value returns the value of the last pair emitted by Scan.
func (s *Scanner) Value() Value { return s.optValue }

// Err returns the first error encountered while scanning, or nil if
// the input was consumed cleanly.
func (s *Scanner) Err() error { return s.err }

// step dispatches a single character. It reports whether a pair was
// emitted. The dispatch order matters: escapes beat quotes, quotes
// beat everything else.
func (s *Scanner) step(r rune, off int) (bool, error) {
	if s.escaped {
		s.buf.WriteRune(r)
		s.escaped = false
		return false, nil
	}

	if s.quoted || r == '"' {
		if r == '"' {
			s.quoted = !s.quoted
		} else {
			// Inside quotes the backslash has no escape meaning.
			s.buf.WriteRune(r)
		}
		return false, nil
	}

	switch r {
	case '\\':
		s.escaped = true

	case ' ':
		// Insignificant outside quoted and escaped contexts.

	case '[':
		if s.inList {
			return false, &ParseError{Offset: off, Msg: "nested lists are not supported"}
		}
		if s.name == "" {
			return false, &ParseError{Offset: off, Msg: "option without name"}
		}
		s.inList = true
		s.items = []Pair{}

	case ']':
		if !s.inList {
			return false, &ParseError{Offset: off, Msg: "']' outside of a list"}
		}
		s.flushItem()
		s.inList = false
		s.emit(s.name, s.listValue())
		return true, nil

	case '=':
		switch {
		case s.name == "":
			if s.buf.Len() == 0 {
				return false, &ParseError{Offset: off, Msg: "option without name"}
			}
			s.name = s.takeBuf()
		case s.inList && s.tupleKey == "":
			if s.buf.Len() == 0 {
				return false, &ParseError{Offset: off, Msg: "empty name in list"}
			}
			s.tupleKey = s.takeBuf()
		default:
			return false, &ParseError{Offset: off, Msg: "two '=' found"}
		}

	case ',':
		if s.inList {
			s.flushItem()
			return false, nil
		}
		if s.name == "" {
			// A bare comma after an emitted list is a separator. A
			// buffered value without a name is not.
			if s.buf.Len() > 0 {
				return false, &ParseError{Offset: off, Msg: fmt.Sprintf("option without name: %s", s.takeBuf())}
			}
			return false, nil
		}
		s.emit(s.name, Scalar(s.takeBuf()))
		return true, nil

	default:
		s.buf.WriteRune(r)
	}
	return false, nil
}

// finish applies the end-of-input rules: a still-open list or a
// buffered value without a name is an error, a pending name emits its
// trailing scalar (no explicit trailing comma needed).
func (s *Scanner) finish() bool {
	switch {
	case s.inList:
		s.err = &ParseError{Offset: len(s.input), Msg: "unterminated list"}
		return false
	case s.name == "":
		if s.buf.Len() > 0 {
			s.err = &ParseError{Offset: len(s.input), Msg: fmt.Sprintf("option without name: %s", s.takeBuf())}
		}
		return false
	default:
		s.emit(s.name, Scalar(s.takeBuf()))
		return true
	}
}

// flushItem moves the buffer into the list accumulator, as a
// (tupleKey, buffer) pair if a tuple name is pending and as a plain
// item otherwise.
func (s *Scanner) flushItem() {
	s.items = append(s.items, Pair{Name: s.tupleKey, Value: s.takeBuf()})
	s.tupleKey = ""
}

// listValue classifies the accumulated items. A single named item
// makes the whole list a TupleList; shape mixing is left for the
// consumer to reject.
func (s *Scanner) listValue() Value {
	for _, p := range s.items {
		if p.Name != "" {
			return TupleList(s.items)
		}
	}
	l := make(List, len(s.items))
	for i, p := range s.items {
		l[i] = p.Value
	}
	return l
}

func (s *Scanner) emit(name string, v Value) {
	s.optName = name
	s.optValue = v
	s.name = ""
	s.items = nil
	s.buf.Reset()
}

func (s *Scanner) takeBuf() string {
	v := s.buf.String()
	s.buf.Reset()
	return v
}
