// Package token defines lexical tokens for the ucc C subset.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL    Token = iota // <illegal>
	WHITESPACE              // <whitespace>

	// Keywords
	keywordStart
	INT    // int
	RETURN // return
	keywordEnd

	// Operators
	operatorStart
	COMPL // ~
	NOT   // !
	SUB   // -
	ADD   // +
	DIV   // /
	MUL   // *
	operatorEnd

	// Punctuation
	LBRACE    // {
	RBRACE    // }
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;

	// Literals
	IDENT  // identifier
	NUMBER // integer literal
)

var names = [...]string{
	ILLEGAL:    "<illegal>",
	WHITESPACE: "<whitespace>",
	INT:        "int",
	RETURN:     "return",
	COMPL:      "~",
	NOT:        "!",
	SUB:        "-",
	ADD:        "+",
	DIV:        "/",
	MUL:        "*",
	LBRACE:     "{",
	RBRACE:     "}",
	LPAREN:     "(",
	RPAREN:     ")",
	SEMICOLON:  ";",
	IDENT:      "identifier",
	NUMBER:     "integer literal",
}

// String returns the source spelling of fixed tokens and a descriptive
// name for the others.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsKeyword returns true if the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsOperator returns true if the token is one of ~ ! - + / *.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

var keywords = map[string]Token{
	"int":    INT,
	"return": RETURN,
}

var operators = map[string]Token{
	"~": COMPL,
	"!": NOT,
	"-": SUB,
	"+": ADD,
	"/": DIV,
	"*": MUL,
}

var punct = map[string]Token{
	"{": LBRACE,
	"}": RBRACE,
	"(": LPAREN,
	")": RPAREN,
	";": SEMICOLON,
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(name string) Token {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return ILLEGAL
}

// LookupOperator returns the token type for an operator spelling, or ILLEGAL.
func LookupOperator(s string) Token {
	if tok, ok := operators[s]; ok {
		return tok
	}
	return ILLEGAL
}

// LookupPunct returns the token type for a punctuation character, or ILLEGAL.
func LookupPunct(s string) Token {
	if tok, ok := punct[s]; ok {
		return tok
	}
	return ILLEGAL
}
