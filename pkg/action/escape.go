package action

import (
	"strconv"
	"strings"
)

// ResolveEscapeSequences substitutes backslash escape tokens in s with their
// literal byte meaning. Supported escapes are \n, \r, \t, \f, \v, \0 and \\;
// an unrecognized escape (including a trailing lone backslash) is left in the
// output untouched.
func ResolveEscapeSequences(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\\':
			b.WriteByte('\\')
		default:
			// Not an escape we know, keep both characters.
			b.WriteByte(c)
			b.WriteByte(s[i+1])
		}
		i++
	}

	return b.String()
}

// HexToBytes decodes s as a sequence of hexadecimal byte pairs. Whitespace
// and common separators are ignored and parsing is case-insensitive. The
// decode is best-effort: a pair that is not valid hex contributes no byte,
// and the function never returns an error.
func HexToBytes(s string) []byte {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ':', '-':
			return -1
		}
		return r
	}, s)

	out := make([]byte, 0, len(cleaned)/2)
	for i := 0; i < len(cleaned); i += 2 {
		end := i + 2
		if end > len(cleaned) {
			end = len(cleaned)
		}
		v, err := strconv.ParseUint(cleaned[i:end], 16, 8)
		if err != nil {
			continue
		}
		out = append(out, byte(v))
	}

	return out
}

// simplify trims leading and trailing whitespace and collapses internal
// whitespace runs into single spaces.
func simplify(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
