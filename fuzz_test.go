package optstring_test

import (
	"errors"
	"testing"

	"github.com/cromero/go-optstring"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	f.Add("a=b,c=d")
	f.Add("a=[1,2,3]")
	f.Add("a=[x=1,y=2]")
	f.Add(`a="b, c",d=\,`)
	f.Add("=value")
	f.Add("a=[1,[2]]")
	f.Add("")
	f.Add(`"`)

	f.Fuzz(func(t *testing.T, input string) {
		// The parser must never panic; it either returns pairs or a
		// ParseError. The fuzz engine catches panics on its own.
		opts, err := optstring.Parse(input)
		if err != nil {
			var perr *optstring.ParseError
			require.True(t, errors.As(err, &perr), "non-ParseError from Parse: %v", err)
			return
		}

		// Every emitted name is usable as a map key and every value
		// has one of the three shapes.
		for _, o := range opts {
			switch o.Value.(type) {
			case optstring.Scalar, optstring.List, optstring.TupleList:
			default:
				t.Fatalf("unexpected value shape %T", o.Value)
			}
		}

		// Scanning is deterministic and holds no cross-call state.
		again, err := optstring.Parse(input)
		require.NoError(t, err)
		require.Equal(t, opts, again)
	})
}
