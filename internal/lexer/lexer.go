// Package lexer provides tokenization of ucc source code.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kolkov/ucc/internal/token"
)

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string // Matched text, a substring of the source
	Int   uint64 // Value of a NUMBER token
}

// String formats the token the way it is written in diagnostics,
// e.g. Keyword(int), Identifier(main), IntegerLiteral(2), Semicolon.
func (t Token) String() string {
	switch {
	case t.Type.IsKeyword():
		return "Keyword(" + t.Value + ")"
	case t.Type.IsOperator():
		return "Operator(" + t.Value + ")"
	}
	switch t.Type {
	case token.IDENT:
		return "Identifier(" + t.Value + ")"
	case token.NUMBER:
		return "IntegerLiteral(" + strconv.FormatUint(t.Int, 10) + ")"
	case token.WHITESPACE:
		return fmt.Sprintf("Whitespace(%q)", t.Value)
	case token.LBRACE:
		return "OpenBrace"
	case token.RBRACE:
		return "CloseBrace"
	case token.LPAREN:
		return "OpenParen"
	case token.RPAREN:
		return "CloseParen"
	case token.SEMICOLON:
		return "Semicolon"
	default:
		return t.Type.String()
	}
}

// UnrecognizedInputError reports source text left over when no rule matches.
// It is advisory: the tokens scanned before it are complete and usable.
type UnrecognizedInputError struct {
	Pos  token.Position // Position of the first unrecognized byte
	Text string         // Remaining source text
}

const maxQuoted = 20

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("%s: unrecognized input %q", e.Pos, Excerpt(e.Text))
}

// Excerpt shortens leftover source for messages: the first line only, cut
// to a few bytes.
func Excerpt(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if len(text) > maxQuoted {
		text = text[:maxQuoted] + "..."
	}
	return text
}

// Lexer tokenizes ucc source code.
type Lexer struct {
	src  string
	rest string         // Unscanned suffix of src
	pos  token.Position // Position of rest[0]
	err  error
	done bool
}

// New creates a new Lexer for the given source code.
func New(src string) *Lexer {
	l := &Lexer{src: src}
	l.Reset()
	return l
}

// Reset rewinds the lexer to the start of its source.
func (l *Lexer) Reset() {
	l.rest = l.src
	l.pos = token.Start
	l.err = nil
	l.done = false
}

// Scan returns the next token, skipping whitespace. It returns false once
// no rule matches; Err then reports any text that was not consumed.
func (l *Lexer) Scan() (Token, bool) {
	for !l.done {
		typ, n, ok := match(l.rest)
		if !ok {
			l.stop()
			break
		}
		tok := Token{Type: typ, Pos: l.pos, Value: l.rest[:n]}
		if typ == token.NUMBER {
			v, err := strconv.ParseUint(tok.Value, 10, 64)
			if err != nil {
				// Out of range for 64 bits: stop here and report the literal.
				l.stop()
				break
			}
			tok.Int = v
		}
		l.pos = l.pos.Advance(tok.Value)
		l.rest = l.rest[n:]
		if typ == token.WHITESPACE {
			continue
		}
		return tok, true
	}
	return Token{}, false
}

// Err returns an *UnrecognizedInputError if scanning stopped before the end
// of the source, nil otherwise.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) stop() {
	l.done = true
	if l.rest != "" {
		l.err = &UnrecognizedInputError{Pos: l.pos, Text: l.rest}
	}
}

// Lex scans src completely and returns the tokens in source order.
// A non-nil error is an *UnrecognizedInputError; the returned tokens are
// still everything matched up to that point.
func Lex(src string) ([]Token, error) {
	l := New(src)
	var toks []Token
	for {
		tok, ok := l.Scan()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, l.Err()
}
