package optstring

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the ISO calendar-date form accepted by TypeDate.
const dateLayout = "2006-01-02"

type schemaEntry struct {
	name string
	typ  Type
}

// Manager holds a schema of named, typed options and validates
// parsed values against it. Options are split into a required and an
// optional registry; both preserve registration order, which is the
// order Usage renders and Process validates in.
//
// A Manager is safe for concurrent use by multiple goroutines once
// registration is done. Register calls themselves are not
// synchronized.
type Manager struct {
	required []schemaEntry
	optional []schemaEntry
	names    map[string]bool
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{names: make(map[string]bool)}
}

// Register adds an option to the schema. The name must be unique
// across both registries and the type must be a member of the closed
// Type set; otherwise a *DuplicateOptionError or *UnknownTypeError is
// returned and the schema is unchanged.
func (m *Manager) Register(name string, typ Type, required bool) error {
	if m.names[name] {
		return &DuplicateOptionError{Name: name}
	}
	if !typ.known() {
		return &UnknownTypeError{Name: name, Type: typ}
	}
	m.names[name] = true
	e := schemaEntry{name: name, typ: typ}
	if required {
		m.required = append(m.required, e)
	} else {
		m.optional = append(m.optional, e)
	}
	return nil
}

// Usage returns a comma-separated usage token for every registered
// option, required options first, each rendered according to its
// type.
func (m *Manager) Usage() string {
	var out strings.Builder
	for _, e := range m.required {
		if out.Len() > 0 {
			out.WriteString(",")
		}
		out.WriteString(usageToken(e.name, e.typ, true))
	}
	for _, e := range m.optional {
		if out.Len() > 0 {
			out.WriteString(",")
		}
		out.WriteString(usageToken(e.name, e.typ, false))
	}
	return out.String()
}

func usageToken(name string, typ Type, required bool) string {
	qual := "optional"
	if required {
		qual = "required"
	}
	switch typ {
	case TypeString:
		return fmt.Sprintf("%s=<%s>", name, qual)
	case TypeList:
		return fmt.Sprintf("%s=[<%s>, ..., <%s>]", name, qual, qual)
	case TypeTuples:
		return fmt.Sprintf("%s=[<item_name>=<%s>, ..., <item_name>=<%s>]", name, qual, qual)
	case TypeBool:
		return fmt.Sprintf("%s=<yes/no (%s)>", name, qual)
	case TypeDate:
		return fmt.Sprintf("%s=<yyyy-mm-dd (%s)>", name, qual)
	default:
		return ""
	}
}

// Process validates a parsed map against the schema and coerces each
// present option to its typed Go value:
//
//	TypeString  string
//	TypeBool    bool
//	TypeList    []string
//	TypeTuples  []Pair
//	TypeDate    time.Time
//
// Required options are checked first, in registration order; a
// required option that is absent, or whose value coerces to an
// absent result (empty string, empty list), yields a
// *MissingOptionError. Optional options coercing to an absent result
// are silently omitted from the returned map. Processing stops at the
// first error.
func (m *Manager) Process(opts map[string]Value) (map[string]any, error) {
	typed := make(map[string]any)
	for _, e := range m.required {
		raw, ok := opts[e.name]
		if !ok {
			return nil, &MissingOptionError{Name: e.name}
		}
		v, err := coerce(e.name, e.typ, raw)
		if err != nil {
			return nil, err
		}
		if v == nil {
			// Present but empty counts as absent.
			return nil, &MissingOptionError{Name: e.name}
		}
		typed[e.name] = v
	}
	for _, e := range m.optional {
		raw, ok := opts[e.name]
		if !ok {
			continue
		}
		v, err := coerce(e.name, e.typ, raw)
		if err != nil {
			return nil, err
		}
		if v != nil {
			typed[e.name] = v
		}
	}
	return typed, nil
}

// coerce validates raw against typ and converts it. A nil result
// with a nil error means the value is absent (empty), which the
// caller resolves per required/optional.
func coerce(name string, typ Type, raw Value) (any, error) {
	switch typ {
	case TypeString:
		s, ok := raw.(Scalar)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
		}
		if s == "" {
			return nil, nil
		}
		return string(s), nil

	case TypeBool:
		s, ok := raw.(Scalar)
		if !ok || (s != "yes" && s != "no") {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
		}
		return s == "yes", nil

	case TypeList:
		l, ok := raw.(List)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
		}
		if len(l) == 0 {
			return nil, nil
		}
		return []string(l), nil

	case TypeTuples:
		t, ok := raw.(TupleList)
		if !ok {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
		}
		for _, p := range t {
			// Unnamed items come from lists mixing tuple and plain
			// entries, which the scanner lets through.
			if p.Name == "" {
				return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
			}
		}
		if len(t) == 0 {
			return nil, nil
		}
		return []Pair(t), nil

	case TypeDate:
		s, ok := raw.(Scalar)
		if !ok || s == "" {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ}
		}
		d, err := time.Parse(dateLayout, string(s))
		if err != nil {
			return nil, &TypeMismatchError{Name: name, Value: raw, Type: typ, Err: err}
		}
		return d, nil

	default:
		return nil, &UnknownTypeError{Name: name, Type: typ}
	}
}
