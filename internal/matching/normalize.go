package matching

import "strings"

// Normalize lowercases text and replaces every rune outside
// {a-z, 0-9, +, #, -, .} with a single space, so tech tokens like
// "c++", "c#" and "node.js" survive cleanup. Runs of separators
// collapse to one space and the result carries no leading or
// trailing space. Empty input yields an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if isTokenRune(r) {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// TokenSet normalizes text and splits it into a deduplicated set of tokens.
func TokenSet(s string) map[string]struct{} {
	fields := strings.Fields(Normalize(s))
	set := make(map[string]struct{}, len(fields))
	for _, t := range fields {
		set[t] = struct{}{}
	}
	return set
}

func isTokenRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '#' || r == '-' || r == '.':
		return true
	}
	return false
}
