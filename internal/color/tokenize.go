package color

import (
	"regexp"
	"strconv"
	"strings"
)

const numberPattern = `-?\d+(?:\.\d*)?%?`

var (
	// functionShape matches name(n1, n2, n3[, n4]) with comma or space separators.
	functionShape = regexp.MustCompile(
		`^[a-z]{3,4}\(\s*` + numberPattern + `(?:(?:\s*,\s*|\s+)` + numberPattern + `){0,3}\s*\)$`,
	)
	numberToken = regexp.MustCompile(numberPattern)
)

// Tokenize extracts up to four integer components from a string shaped like
// "rgb(255, 31, 22)" or "hsl(120 20% 20%)". Fractional parts are truncated
// toward zero and "%" suffixes are ignored.
//
// It returns nil when the string does not have that shape; callers must treat
// nil as "no tokens", not as a zero color.
func Tokenize(s string) []int {
	if !functionShape.MatchString(s) {
		return nil
	}
	open := strings.IndexByte(s, '(')
	raw := numberToken.FindAllString(s[open+1:len(s)-1], -1)
	out := make([]int, 0, len(raw))
	for _, tok := range raw {
		n, ok := truncateToken(tok)
		if !ok {
			return nil
		}
		out = append(out, n)
	}
	return out
}

// truncateToken parses "12", "12.9", "-3%" into an int, dropping the fraction.
func truncateToken(tok string) (int, bool) {
	tok = strings.TrimSuffix(tok, "%")
	whole, _, _ := strings.Cut(tok, ".")
	n, err := strconv.Atoi(whole)
	if err != nil {
		return 0, false
	}
	return n, true
}
