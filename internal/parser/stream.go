package parser

import (
	"github.com/kolkov/ucc/internal/ast"
	"github.com/kolkov/ucc/internal/lexer"
	"github.com/kolkov/ucc/internal/token"
)

// stream is the unconsumed remainder of the token slice. Sub-parsers never
// modify it; they return a shorter stream on success.
type stream []lexer.Token

// peek returns the next token type, or ILLEGAL when the stream is empty.
func (s stream) peek() token.Token {
	if len(s) == 0 {
		return token.ILLEGAL
	}
	return s[0].Type
}

// eat consumes one token of type t.
func eat(s stream, t token.Token) (stream, lexer.Token, bool) {
	if len(s) == 0 || s[0].Type != t {
		return s, lexer.Token{}, false
	}
	return s[1:], s[0], true
}

// exprParser parses an expression from the front of a stream.
type exprParser func(stream) (stream, ast.Expr, bool)

// firstOf tries each alternative on the same input and returns the first
// success. Order matters: alternatives are only disambiguated by which
// one accepts the leading token.
func firstOf(alts ...exprParser) exprParser {
	return func(s stream) (stream, ast.Expr, bool) {
		for _, alt := range alts {
			if rest, e, ok := alt(s); ok {
				return rest, e, true
			}
		}
		return s, nil, false
	}
}

// leftAssoc parses operand { op operand } and folds the results to the
// left, so a - b - c becomes (a - b) - c. The operator is only consumed
// once it is known to belong to this precedence level.
func leftAssoc(operand exprParser, ops map[token.Token]ast.BinaryOp) exprParser {
	return func(s stream) (stream, ast.Expr, bool) {
		s, acc, ok := operand(s)
		if !ok {
			return s, nil, false
		}
		for {
			op, isOp := ops[s.peek()]
			if !isOp {
				return s, acc, true
			}
			rest, rhs, ok := operand(s[1:])
			if !ok {
				return s, nil, false
			}
			s, acc = rest, ast.Binary(op, acc, rhs)
		}
	}
}
