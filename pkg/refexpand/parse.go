package refexpand

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isIDChar reports whether r may appear in a group identifier.
func isIDChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseID scans a group identifier at the start of s, optionally bounded
// by the open and close delimiter strings. Empty delimiter strings mean
// bare scanning: the identifier is the longest (possibly empty) prefix of
// identifier characters.
//
// Returns the identifier, the number of bytes consumed from s including
// any delimiters, and whether the scan matched. With delimiters set, the
// scan fails unless both delimiters are present in position.
func parseID(s, open, close string) (id string, skip int, ok bool) {
	rest := s
	if open != "" {
		if !strings.HasPrefix(rest, open) {
			return "", 0, false
		}
		rest = rest[len(open):]
	}

	end := 0
	for end < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[end:])
		if !isIDChar(r) {
			break
		}
		end += size
	}
	id = rest[:end]

	if close != "" {
		if !strings.HasPrefix(rest[end:], close) {
			return "", 0, false
		}
		return id, len(open) + end + len(close), true
	}
	return id, len(open) + end, true
}

// parseDecimal scans the longest run of ASCII digits in s starting at
// byte offset start. Returns the end offset of the run and its value as a
// non-negative integer. Fails when no digits are present or the value
// overflows the host int.
func parseDecimal(s string, start int) (end, value int, ok bool) {
	end = start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, 0, false
	}
	value, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, 0, false
	}
	return end, value, true
}
