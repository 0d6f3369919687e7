package optstring

// Type declares how a registered option is validated and coerced.
// The set is closed: Manager rejects any other value.
type Type int

const (
	// TypeString accepts any non-empty scalar and yields a string.
	TypeString Type = iota + 1
	// TypeBool accepts the scalars "yes" and "no" and yields a bool.
	TypeBool
	// TypeList accepts a non-empty list of scalars and yields []string.
	TypeList
	// TypeTuples accepts a non-empty list of name=value tuples and
	// yields []Pair.
	TypeTuples
	// TypeDate accepts a scalar in ISO yyyy-mm-dd form and yields a
	// time.Time.
	TypeDate
)

// String returns the name of the type, used in usage strings and
// error messages.
func (t Type) String() string {
	switch t {
	case TypeString:
		return "STRING"
	case TypeBool:
		return "BOOL"
	case TypeList:
		return "LIST"
	case TypeTuples:
		return "LIST_OF_TUPLES"
	case TypeDate:
		return "YMD_DATE"
	default:
		return "UNKNOWN"
	}
}

// known reports whether t is a member of the closed type set.
func (t Type) known() bool {
	switch t {
	case TypeString, TypeBool, TypeList, TypeTuples, TypeDate:
		return true
	}
	return false
}
