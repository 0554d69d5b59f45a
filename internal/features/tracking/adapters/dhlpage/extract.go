package dhlpage

import (
	"regexp"
	"strings"
)

// initialStatePattern captures the JSON.parse argument up to the rightmost quote followed
// by a closing parenthesis on the matched line.
var initialStatePattern = regexp.MustCompile(`initialState: JSON\.parse\((.*"[ \t]*)\)`)

// ExtractJSON finds the initialState blob in a DHL tracking page and returns it as JSON text.
// Only the first match in the document is used.
func ExtractJSON(html string) (string, error) {
	m := initialStatePattern.FindStringSubmatch(html)
	if m == nil {
		return "", ErrPatternNotFound
	}

	literal := strings.TrimSpace(m[1])
	if len(literal) < 2 {
		return "", ErrMalformedLiteral
	}

	return strings.ReplaceAll(literal[1:len(literal)-1], `\"`, `"`), nil
}
