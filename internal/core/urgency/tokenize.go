package urgency

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers carry transformer state and must not be shared across goroutines
var casePool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// lower applies full Unicode lowercasing
func lower(s string) string {
	if s == "" {
		return s
	}
	c := casePool.Get().(*cases.Caser)
	out := c.String(s)
	casePool.Put(c)
	return out
}

// tokenize lowercases s and splits it on whitespace. Punctuation stays attached to its word
func tokenize(s string) []string {
	return strings.Fields(lower(s))
}

// learnable reports whether a token is long enough to carry a weight
func learnable(tok string) bool {
	return utf8.RuneCountInString(tok) >= minTokenRunes
}
