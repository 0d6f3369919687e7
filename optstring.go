package optstring

// Option is a single (name, value) pair produced by parsing an
// option string.
type Option struct {
	Name  string
	Value Value
}

// Parse scans text and returns its (name, value) pairs in input
// order. It returns a *ParseError if the text is malformed; no
// partial result is returned.
func Parse(text string) ([]Option, error) {
	var opts []Option
	s := NewScanner(text)
	for s.Scan() {
		opts = append(opts, Option{Name: s.Name(), Value: s.Value()})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Collect parses text into a name-to-value map, ready to be handed
// to Manager.Process. Later occurrences of a name overwrite earlier
// ones.
func Collect(text string) (map[string]Value, error) {
	opts, err := Parse(text)
	if err != nil {
		return nil, err
	}
	m := make(map[string]Value, len(opts))
	for _, o := range opts {
		m[o.Name] = o.Value
	}
	return m, nil
}
