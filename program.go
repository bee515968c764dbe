package ucc

import (
	"context"
	"strings"

	"github.com/kolkov/ucc/internal/ast"
	"github.com/kolkov/ucc/internal/codegen"
	"github.com/kolkov/ucc/internal/lexer"
	"github.com/kolkov/ucc/internal/toolchain"
	"github.com/kolkov/ucc/internal/vm"
)

// Program is a compiled ucc program.
type Program struct {
	source   string
	tokens   []lexer.Token
	tree     *ast.Program
	listing  *codegen.Program
	text     string
	warnings []error
}

// Assembly returns the generated AT&T assembly text.
func (p *Program) Assembly() string {
	return p.text
}

// Tokens returns the token list, one token per line.
func (p *Program) Tokens() string {
	var sb strings.Builder
	for _, tok := range p.tokens {
		sb.WriteString(tok.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AST returns the syntax tree in constructor notation, such as
// "Program(Function(main, Return(Constant(2))))".
func (p *Program) AST() string {
	return ast.Sprint(p.tree)
}

// Source returns the original source code.
func (p *Program) Source() string {
	return p.source
}

// Warnings returns the advisory diagnostics reported during compilation.
func (p *Program) Warnings() []error {
	return p.warnings
}

// Run executes the listing on the built-in interpreter and returns the
// value of %eax at ret.
func (p *Program) Run() (int32, error) {
	v, err := vm.Run(p.listing)
	if err != nil {
		return 0, &RuntimeError{Message: err.Error()}
	}
	return v, nil
}

// Build assembles and links the program into an executable at path using
// the system C compiler.
func (p *Program) Build(ctx context.Context, path string) error {
	return toolchain.Build(ctx, p.text, path)
}
