package dataset

import "strings"

// ParseListField converts a list-literal encoded field like ['A', "B"] into
// the flat string "A, B". The grammar is restricted to a bracketed,
// comma-separated sequence of quoted strings. Anything that does not parse,
// including plain unbracketed strings, is returned unchanged; this function
// never fails.
func ParseListField(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return raw
	}

	elems, ok := parseListElements(s[1 : len(s)-1])
	if !ok {
		return raw
	}

	return strings.Join(elems, ", ")
}

// parseListElements parses the interior of a list literal: quoted strings
// separated by commas, with optional whitespace. Backslash escapes the next
// byte inside a quoted string.
func parseListElements(s string) ([]string, bool) {
	var elems []string
	i, n := 0, len(s)

	for {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			if len(elems) == 0 {
				// empty list
				return nil, true
			}
			// trailing comma
			return nil, false
		}

		quote := s[i]
		if quote != '\'' && quote != '"' {
			return nil, false
		}
		i++

		var b strings.Builder
		closed := false
		for i < n {
			c := s[i]
			if c == '\\' && i+1 < n {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			if c == quote {
				closed = true
				i++
				break
			}
			b.WriteByte(c)
			i++
		}
		if !closed {
			return nil, false
		}
		elems = append(elems, b.String())

		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= n {
			return elems, true
		}
		if s[i] != ',' {
			return nil, false
		}
		i++
	}
}
