package parser

import (
	"reflect"
	"testing"

	"github.com/nalgeon/be"

	"github.com/kolkov/ucc/internal/ast"
	"github.com/kolkov/ucc/internal/lexer"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2", "Constant(2)"},
		{"(2)", "Constant(2)"},
		{"((((7))))", "Constant(7)"},
		{"-2", "Negation(Constant(2))"},
		{"--2", "Negation(Negation(Constant(2)))"},
		{"!0", "LogicalNegation(Constant(0))"},
		{"~5", "BitwiseComplement(Constant(5))"},
		{
			"~-!~!3",
			"BitwiseComplement(Negation(LogicalNegation(BitwiseComplement(LogicalNegation(Constant(3))))))",
		},
		{"1 + 2", "Addition(Constant(1), Constant(2))"},
		{"8 - 4 - 2", "Subtraction(Subtraction(Constant(8), Constant(4)), Constant(2))"},
		{"8 / 4 / 2", "Division(Division(Constant(8), Constant(4)), Constant(2))"},
		{"2 + 3 * 4", "Addition(Constant(2), Multiplication(Constant(3), Constant(4)))"},
		{"2 * 3 + 4", "Addition(Multiplication(Constant(2), Constant(3)), Constant(4))"},
		{"(2 + 3) * 4", "Multiplication(Addition(Constant(2), Constant(3)), Constant(4))"},
		{"8 - (4 - 2)", "Subtraction(Constant(8), Subtraction(Constant(4), Constant(2)))"},
		{"1 - 2 + 3", "Addition(Subtraction(Constant(1), Constant(2)), Constant(3))"},
		{"6 * 2 / 3", "Division(Multiplication(Constant(6), Constant(2)), Constant(3))"},
		{"2 * 3 - 4 / 2", "Subtraction(Multiplication(Constant(2), Constant(3)), Division(Constant(4), Constant(2)))"},
		{"-2 * 3", "Multiplication(Negation(Constant(2)), Constant(3))"},
		{"-(2 * 3)", "Negation(Multiplication(Constant(2), Constant(3)))"},
		{"1 - -1", "Subtraction(Constant(1), Negation(Constant(1)))"},
		{"3 * (3 + 5 * 2)", "Multiplication(Constant(3), Addition(Constant(3), Multiplication(Constant(5), Constant(2))))"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := ParseExpr(tt.src)
			be.Err(t, err, nil)
			be.Equal(t, ast.Sprint(e), tt.want)
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	tests := []string{
		"",
		"(",
		"()",
		"(1",
		"1)",
		"1 +",
		"* 2",
		"+2",
		"1 2",
		"1 + * 2",
		"(1 + 2))",
		"main",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			e, err := ParseExpr(src)
			be.Err(t, err, ErrNoParse)
			be.True(t, e == nil)
		})
	}
}

func TestParseProgram(t *testing.T) {
	toks, err := lexer.Lex("int main() { return 2; }")
	be.Err(t, err, nil)

	prog, err := ParseProgram(toks)
	be.Err(t, err, nil)

	want := &ast.Program{Function: &ast.Function{
		Name: "main",
		Body: &ast.ReturnStmt{Value: ast.Const(2)},
	}}
	be.True(t, reflect.DeepEqual(prog, want))
	be.Equal(t, prog.String(), "Program(Function(main, Return(Constant(2))))")
}

func TestParseProgramName(t *testing.T) {
	prog, err := Parse("int internal ( ) {\n\treturn 0;\n}\n")
	be.Err(t, err, nil)
	be.Equal(t, prog.Function.Name, "internal")
}

func TestParseProgramErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"missing semicolon", "int main() { return 2 }"},
		{"missing return", "int main() { 2; }"},
		{"unbalanced open paren", "int main() { return (2; }"},
		{"unbalanced close paren", "int main() { return 2); }"},
		{"missing close brace", "int main() { return 2;"},
		{"missing open brace", "int main() return 2; }"},
		{"missing name", "int () { return 2; }"},
		{"keyword as name", "int return() { return 2; }"},
		{"wrong return type", "void main() { return 2; }"},
		{"parameters", "int main(x) { return 2; }"},
		{"two statements", "int main() { return 1; return 2; }"},
		{"trailing tokens", "int main() { return 2; } int"},
		{"unknown operator", "int main() { return 2 % 3; }"},
		{"binary plus as unary", "int main() { return +2; }"},
		{"empty return", "int main() { return; }"},
		{"identifier operand", "int main() { return x; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(tt.src)
			be.Err(t, err, ErrNoParse)
			be.True(t, prog == nil)
		})
	}
}

func TestParseIgnoresLexerDiagnostics(t *testing.T) {
	// The lexer stops at '@' but everything before it is a whole program.
	prog, err := Parse("int main() { return 2; } @")
	be.Err(t, err, nil)
	be.Equal(t, prog.String(), "Program(Function(main, Return(Constant(2))))")
}

func TestParseDeterministic(t *testing.T) {
	toks, err := lexer.Lex("int f() { return ~(1 + 2) * -3 / !4 - 5; }")
	be.Err(t, err, nil)

	a, err := ParseProgram(toks)
	be.Err(t, err, nil)
	b, err := ParseProgram(toks)
	be.Err(t, err, nil)

	be.True(t, a != b)
	be.True(t, reflect.DeepEqual(a, b))
}

func TestParseDoesNotModifyTokens(t *testing.T) {
	toks, _ := lexer.Lex("int main() { return 1 + 2 * 3; }")
	saved := append([]lexer.Token(nil), toks...)

	_, err := ParseProgram(toks)
	be.Err(t, err, nil)
	be.Equal(t, toks, saved)
}

func TestParseFormatRoundTrip(t *testing.T) {
	sources := []string{
		"int main() { return 2; }",
		"int main() { return 8 - 4 - 2; }",
		"int main() { return 8 - (4 - 2); }",
		"int main() { return ~-!~!3; }",
		"int main() { return --1; }",
		"int main() { return -(1 + 2) * 3 / (4 - !5); }",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			first, err := Parse(src)
			be.Err(t, err, nil)

			printed := ast.Format(first)
			second, err := Parse(printed)
			be.Err(t, err, nil)
			be.True(t, reflect.DeepEqual(first, second))
		})
	}
}

func TestParseUnaryNesting(t *testing.T) {
	prog, err := Parse("int main() { return ~-!~!3; }")
	be.Err(t, err, nil)

	var ops []ast.UnaryOp
	ast.Walk(prog, func(n ast.Node) bool {
		if u, ok := n.(*ast.UnaryExpr); ok {
			ops = append(ops, u.Op)
		}
		return true
	})
	be.Equal(t, ops, []ast.UnaryOp{
		ast.BitwiseComplement,
		ast.Negation,
		ast.LogicalNegation,
		ast.BitwiseComplement,
		ast.LogicalNegation,
	})
}

func TestFirstOfOrder(t *testing.T) {
	var calls []string
	alt := func(name string, ok bool) exprParser {
		return func(s stream) (stream, ast.Expr, bool) {
			calls = append(calls, name)
			if !ok {
				return s, nil, false
			}
			return s, ast.Const(0), true
		}
	}

	_, _, ok := firstOf(alt("a", false), alt("b", true), alt("c", true))(nil)
	be.True(t, ok)
	be.Equal(t, calls, []string{"a", "b"})
}
