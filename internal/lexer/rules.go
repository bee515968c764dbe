package lexer

import (
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/ucc/internal/token"
)

// rule classifies the text matched by re. A rule whose classify returns
// false does not match, and the scanner tries the next rule.
type rule struct {
	name     string
	re       *coregex.Regexp
	classify func(text string) (token.Token, bool)
}

// rules is consulted in order at every scan position. Keywords come before
// identifiers and both match the whole identifier-class run, so "internal"
// is one identifier and never "int" followed by "ernal".
var rules = []rule{
	{"whitespace", mustCompile(`^[\s\v\x{85}\p{Z}]+`), fixed(token.WHITESPACE)},
	{"keyword", mustCompile(`^[a-zA-Z]\w*`), keyword},
	{"identifier", mustCompile(`^[a-zA-Z]\w*`), fixed(token.IDENT)},
	{"operator", mustCompile(`^[~!\-+/*]`), operator},
	{"integer", mustCompile(`^[0-9]+`), fixed(token.NUMBER)},
	{"punctuation", mustCompile(`^[{}();]`), punct},
}

// window is the initial number of bytes a rule is matched against. An
// anchored pattern that fails at offset 0 is still retried at later
// offsets, so rules never see more than a bounded prefix of the input.
const window = 64

// match returns the token type and length of the longest prefix of s
// accepted by the first applicable rule.
func match(s string) (token.Token, int, bool) {
	for i := range rules {
		r := &rules[i]
		n := r.prefix(s)
		if n == 0 {
			continue
		}
		if tok, ok := r.classify(s[:n]); ok {
			return tok, n, true
		}
	}
	return token.ILLEGAL, 0, false
}

// prefix returns the length of the match of r at the start of s, or 0.
// The window doubles while the match runs to its end, so the total work
// stays proportional to the length of the token.
func (r *rule) prefix(s string) int {
	for w := window; ; w *= 2 {
		chunk := s
		if w < len(s) {
			chunk = s[:runeStart(s, w)]
		}
		loc := r.re.FindStringIndex(chunk)
		if loc == nil || loc[0] != 0 {
			return 0
		}
		if loc[1] < len(chunk) || len(chunk) == len(s) {
			return loc[1]
		}
	}
}

// runeStart moves i back to the start of the UTF-8 sequence containing it.
func runeStart(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

func fixed(t token.Token) func(string) (token.Token, bool) {
	return func(string) (token.Token, bool) { return t, true }
}

func keyword(text string) (token.Token, bool) {
	tok := token.LookupKeyword(text)
	return tok, tok != token.ILLEGAL
}

func operator(text string) (token.Token, bool) {
	tok := token.LookupOperator(text)
	return tok, tok != token.ILLEGAL
}

func punct(text string) (token.Token, bool) {
	tok := token.LookupPunct(text)
	return tok, tok != token.ILLEGAL
}

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic("lexer: bad pattern " + pattern + ": " + err.Error())
	}
	return re
}
