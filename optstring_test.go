package optstring_test

import (
	"testing"
	"time"

	"github.com/cromero/go-optstring"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	t.Run("later names overwrite earlier ones", func(t *testing.T) {
		opts, err := optstring.Collect("a=1,a=2")
		require.NoError(t, err)
		require.Equal(t, map[string]optstring.Value{"a": optstring.Scalar("2")}, opts)
	})

	t.Run("parse errors propagate", func(t *testing.T) {
		_, err := optstring.Collect("=broken")
		var perr *optstring.ParseError
		require.ErrorAs(t, err, &perr)
	})
}

func TestEndToEnd(t *testing.T) {
	m := optstring.NewManager()
	require.NoError(t, m.Register("since", optstring.TypeDate, true))
	require.NoError(t, m.Register("hosts", optstring.TypeList, true))
	require.NoError(t, m.Register("force", optstring.TypeBool, false))
	require.NoError(t, m.Register("limits", optstring.TypeTuples, false))
	require.NoError(t, m.Register("note", optstring.TypeString, false))

	opts, err := optstring.Collect(`since=1970-01-01,hosts=[alpha,beta],limits=[cpu=2,mem=512],note="a, quoted [note]"`)
	require.NoError(t, err)

	typed, err := m.Process(opts)
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"since":  time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
		"hosts":  []string{"alpha", "beta"},
		"limits": []optstring.Pair{{Name: "cpu", Value: "2"}, {Name: "mem", Value: "512"}},
		"note":   "a, quoted [note]",
	}, typed)

	// "force" was optional and not supplied: no entry, not a nil marker.
	_, ok := typed["force"]
	require.False(t, ok)
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name  string
		value optstring.Value
		want  string
	}{
		{"scalar", optstring.Scalar("x"), "x"},
		{"list", optstring.List{"1", "2"}, "[1, 2]"},
		{"tuple list", optstring.TupleList{{Name: "a", Value: "1"}, {Name: "", Value: "2"}}, "[a=1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.value.String())
		})
	}
}
