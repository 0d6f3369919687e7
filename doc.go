/*
Package optstring parses and validates string-encoded options.

An option string is a flat, comma-separated sequence of name=value
pairs. A value is a scalar, a list of scalars, or a list of
name=value tuples:

	retries=3,verbose=yes,hosts=[alpha,beta],limits=[cpu=2,mem=512]

The mini-language is scanned one character at a time with the
following rules:

  - \ escapes the next character; it loses any special meaning and is
    stored verbatim.
  - " toggles a quoted section; every character inside it, including
    backslashes, is stored verbatim. The quotes themselves are not
    part of the value.
  - Spaces outside quoted or escaped contexts are insignificant.
  - [ opens a list and ] closes it. Lists do not nest.
  - = ends the current option name (or, inside a list, the current
    tuple name).
  - , ends the current pair, or the current list item inside a list.

The package offers two layers. The Scanner (and the Parse and Collect
helpers built on it) turns an option string into an ordered sequence
of (name, Value) pairs, where Value is one of Scalar, List or
TupleList. The Manager holds a schema of required and optional
options, each with a declared Type, and validates a parsed map into
typed Go values.

Typical usage:

	m := optstring.NewManager()
	m.Register("since", optstring.TypeDate, true)
	m.Register("force", optstring.TypeBool, false)

	opts, err := optstring.Collect("since=1970-01-01,force=yes")
	if err != nil {
		// handle parse error
	}

	typed, err := m.Process(opts)
	if err != nil {
		// handle validation error
	}
	// typed["since"] is a time.Time, typed["force"] is a bool.

Parse and Process report failures with typed errors (ParseError,
MissingOptionError, TypeMismatchError, ...) that can be inspected
with errors.As.
*/
package optstring
