package optstring

import "fmt"

// A ParseError reports a malformed option string. Offset is the byte
// position of the offending character, or the input length for
// end-of-input errors.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("optstring: parse error at offset %d: %s", e.Offset, e.Msg)
}

// A DuplicateOptionError reports a Register call for a name already
// present in either registry.
type DuplicateOptionError struct {
	Name string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("optstring: option %q already registered", e.Name)
}

// An UnknownTypeError reports a Type outside the closed set, either
// at registration or when processing a corrupted schema entry.
type UnknownTypeError struct {
	Name string
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("optstring: option %q has unknown type %d", e.Name, int(e.Type))
}

// A MissingOptionError reports a required option that was absent from
// the input, or present but coerced to an absent value (empty string,
// empty list).
type MissingOptionError struct {
	Name string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("optstring: required option not found: %s", e.Name)
}

// A TypeMismatchError reports a parsed value whose shape or content
// disagrees with the declared type of its option. For TypeDate the
// underlying date-parsing error is preserved and available via Unwrap.
type TypeMismatchError struct {
	Name  string
	Value Value
	Type  Type
	Err   error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("optstring: value (%s) for %q is not compatible with its type %s", e.Value, e.Name, e.Type)
	if e.Err != nil {
		msg += fmt.Sprintf(" (%s)", e.Err)
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }
