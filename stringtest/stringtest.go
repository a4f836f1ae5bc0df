// Package stringtest provides helpers for constructing multi-line string
// fixtures in tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct test input with explicit Windows line endings.
//
// Example:
//
//	in := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\r\nline2\r\nline3"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Input dedents a raw string literal fixture. It drops a leading newline
// and strips the common leading tab indentation of the remaining lines, so
// fixtures can be written inline at their natural code indentation:
//
//	in := stringtest.Input(`
//		[features]
//		## docs
//		foo = []
//	`)
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")

	lines := strings.Split(s, "\n")

	// Common indentation is taken from the first non-blank line.
	indent := ""

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent = line[:len(line)-len(strings.TrimLeft(line, "\t"))]

		break
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = strings.TrimPrefix(line, indent)
	}

	return strings.Join(lines, "\n")
}
