package featuredoc

import (
	"errors"
	"strings"
)

// errUnbalanced is returned by [readBalanced] when input ends before all
// opened brackets are closed, or a closing bracket has no opener. Callers
// wrap it with the key name and [ErrParse].
var errUnbalanced = errors.New("unbalanced brackets in value")

// readBalanced returns the value text following `=`, consuming further
// physical lines from next until every `{` or `[` opened outside a quoted
// string is closed. A value without brackets returns after the first line.
//
// Each line is truncated at its first unquoted `#` (a trailing same-line
// comment). Quote and escape state reset on every physical line: a literal
// `#` inside a string that spans lines is also stripped. That is a known
// simplification of TOML, kept because output depends on it.
func readBalanced(first string, next func() (string, bool)) (string, error) {
	var value strings.Builder

	line := first
	depth := 0

	for {
		quoted := false
		escaped := false

	scan:
		for i := range len(line) {
			if escaped {
				escaped = false

				continue
			}

			switch line[i] {
			case '\\':
				if quoted {
					escaped = true
				}

			case '"', '\'':
				quoted = !quoted

			case '#':
				if !quoted {
					line = line[:i]

					break scan
				}

			case '{', '[':
				if !quoted {
					depth++
				}

			case '}', ']':
				if !quoted {
					depth--
					if depth < 0 {
						return "", errUnbalanced
					}
				}
			}
		}

		value.WriteString(line)

		if depth == 0 {
			return value.String(), nil
		}

		var ok bool

		line, ok = next()
		if !ok {
			return "", errUnbalanced
		}
	}
}
