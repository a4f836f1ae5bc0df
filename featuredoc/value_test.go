package featuredoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed returns a next func serving the given lines in order.
func feed(lines ...string) func() (string, bool) {
	i := 0

	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}

		line := lines[i]
		i++

		return line, true
	}
}

func TestReadBalanced(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		first   string
		lines   []string
		want    string
		wantErr bool
	}{
		"no brackets returns first line": {
			first: ` "1.3"`,
			want:  ` "1.3"`,
		},
		"single line balanced": {
			first: ` { version = "1.2", optional = true }`,
			want:  ` { version = "1.2", optional = true }`,
		},
		"trailing comment stripped": {
			first: ` [] # done`,
			want:  ` [] `,
		},
		"hash inside quotes kept": {
			first: ` { registry = "crates#io" }`,
			want:  ` { registry = "crates#io" }`,
		},
		"escaped quote does not close string": {
			first: ` { name = "a\"#b" }`,
			want:  ` { name = "a\"#b" }`,
		},
		"multi line joins": {
			first: ` [`,
			lines: []string{`"a", # one`, `"b",`, `]`},
			want:  ` ["a", "b",]`,
		},
		"nested brackets": {
			first: ` { features = [`,
			lines: []string{`"a" ] }`},
			want:  ` { features = ["a" ] }`,
		},
		"close without open": {
			first:   ` ]`,
			wantErr: true,
		},
		"input exhausted": {
			first:   ` [ x = {`,
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := readBalanced(tc.first, feed(tc.lines...))
			if tc.wantErr {
				require.ErrorIs(t, err, errUnbalanced)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Quote state resets on each physical line, so a bracket inside a string
// that spans lines is counted and a `#` on the continuation is stripped.
// Accepted limitation of the line-based scanner; see the package doc.
func TestReadBalancedQuoteStatePerLine(t *testing.T) {
	t.Parallel()

	got, err := readBalanced(` { path = "un`, feed(`closed]", optional = true }`))
	require.NoError(t, err)

	// The `]` on the continuation is inside the string, but with per-line
	// quote tracking it counts as closing the `{` opened on the first line,
	// so the value terminates after this line.
	assert.Equal(t, ` { path = "unclosed]", optional = true }`, got)
}

func TestOptionalTrue(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		value string
		want  bool
	}{
		"spaced":        {value: ` { version = "1.2", optional = true }`, want: true},
		"compact":       {value: `{optional=true}`, want: true},
		"false":         {value: ` { optional = false }`, want: false},
		"absent":        {value: ` { version = "1.2" }`, want: false},
		"no assignment": {value: ` { optional }`, want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, optionalTrue(tc.value))
		})
	}
}
