package parser

import (
	"github.com/kolkov/ucc/internal/ast"
	"github.com/kolkov/ucc/internal/lexer"
	"github.com/kolkov/ucc/internal/token"
)

// Grammar, lowest to highest precedence:
//
//	program    ::= function
//	function   ::= "int" identifier "(" ")" "{" statement "}"
//	statement  ::= "return" expression ";"
//	expression ::= term { ("+" | "-") term }
//	term       ::= factor { ("*" | "/") factor }
//	factor     ::= "(" expression ")" | unary_op factor | integer_literal
//	unary_op   ::= "~" | "!" | "-"

var (
	additive = map[token.Token]ast.BinaryOp{
		token.ADD: ast.Addition,
		token.SUB: ast.Subtraction,
	}
	multiplicative = map[token.Token]ast.BinaryOp{
		token.MUL: ast.Multiplication,
		token.DIV: ast.Division,
	}
	unaryOps = map[token.Token]ast.UnaryOp{
		token.SUB:   ast.Negation,
		token.COMPL: ast.BitwiseComplement,
		token.NOT:   ast.LogicalNegation,
	}
)

var (
	parseExpression exprParser
	parseTerm       exprParser
	parseFactor     exprParser
)

func init() {
	// The rules are mutually recursive, so they are tied together here
	// rather than in the variable declarations.
	parseFactor = firstOf(parseParenExpr, parseUnaryExpr, parseConstant)
	parseTerm = leftAssoc(parseFactor, multiplicative)
	parseExpression = leftAssoc(parseTerm, additive)
}

// ParseProgram parses a complete program. It is a pure function of its
// input: the slice is not modified and the same tokens always yield an
// equal tree. Any failure, including tokens left after the closing brace,
// returns ErrNoParse and no tree.
func ParseProgram(tokens []lexer.Token) (*ast.Program, error) {
	rest, fn, ok := parseFunction(stream(tokens))
	if !ok || len(rest) != 0 {
		return nil, ErrNoParse
	}
	return &ast.Program{Function: fn}, nil
}

// Parse lexes and parses src. Lexer diagnostics are not reported here; a
// truncated token stream simply fails to parse.
func Parse(src string) (*ast.Program, error) {
	toks, _ := lexer.Lex(src)
	return ParseProgram(toks)
}

// ParseExpr parses a single expression (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	toks, _ := lexer.Lex(src)
	rest, e, ok := parseExpression(stream(toks))
	if !ok || len(rest) != 0 {
		return nil, ErrNoParse
	}
	return e, nil
}

func parseFunction(s stream) (stream, *ast.Function, bool) {
	s, _, ok := eat(s, token.INT)
	if !ok {
		return s, nil, false
	}
	s, name, ok := eat(s, token.IDENT)
	if !ok {
		return s, nil, false
	}
	for _, t := range []token.Token{token.LPAREN, token.RPAREN, token.LBRACE} {
		if s, _, ok = eat(s, t); !ok {
			return s, nil, false
		}
	}
	s, body, ok := parseStatement(s)
	if !ok {
		return s, nil, false
	}
	if s, _, ok = eat(s, token.RBRACE); !ok {
		return s, nil, false
	}
	return s, &ast.Function{Name: name.Value, Body: body}, true
}

func parseStatement(s stream) (stream, ast.Stmt, bool) {
	s, _, ok := eat(s, token.RETURN)
	if !ok {
		return s, nil, false
	}
	s, e, ok := parseExpression(s)
	if !ok {
		return s, nil, false
	}
	if s, _, ok = eat(s, token.SEMICOLON); !ok {
		return s, nil, false
	}
	return s, &ast.ReturnStmt{Value: e}, true
}

func parseParenExpr(s stream) (stream, ast.Expr, bool) {
	s, _, ok := eat(s, token.LPAREN)
	if !ok {
		return s, nil, false
	}
	s, e, ok := parseExpression(s)
	if !ok {
		return s, nil, false
	}
	if s, _, ok = eat(s, token.RPAREN); !ok {
		return s, nil, false
	}
	return s, e, true
}

func parseUnaryExpr(s stream) (stream, ast.Expr, bool) {
	op, ok := unaryOps[s.peek()]
	if !ok {
		return s, nil, false
	}
	rest, operand, ok := parseFactor(s[1:])
	if !ok {
		return s, nil, false
	}
	return rest, ast.Unary(op, operand), true
}

func parseConstant(s stream) (stream, ast.Expr, bool) {
	s, tok, ok := eat(s, token.NUMBER)
	if !ok {
		return s, nil, false
	}
	return s, ast.Const(tok.Int), true
}
