package codegen

import (
	"fmt"

	"github.com/kolkov/ucc/internal/ast"
)

// CompileError represents a code generation failure. The parser never
// builds a tree that causes one; it signals a broken invariant.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

// Generate walks prog depth-first and returns its listing. Every expression
// leaves its value in %eax; binary operators keep the left operand on the
// stack while the right one is evaluated.
func Generate(prog *ast.Program) (p *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CompileError); ok {
				p, err = nil, ce
			} else {
				panic(r) // Re-panic for non-compile errors
			}
		}
	}()

	if prog == nil || prog.Function == nil {
		fail("program has no function")
	}
	g := &generator{}
	g.function(prog.Function)
	return &Program{Symbol: prog.Function.Name, Code: g.code}, nil
}

type generator struct {
	code []Instr
}

func fail(format string, args ...any) {
	panic(&CompileError{Message: fmt.Sprintf(format, args...)})
}

func (g *generator) emit(op Opcode, args ...Operand) {
	g.code = append(g.code, Instr{Op: op, Args: args})
}

func (g *generator) function(f *ast.Function) {
	if f.Name == "" {
		fail("function has no name")
	}
	g.statement(f.Body)
}

func (g *generator) statement(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ReturnStmt:
		g.expr(s.Value)
		g.emit(Ret)
	default:
		fail("unsupported statement %T", s)
	}
}

func (g *generator) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Constant:
		g.emit(Movl, Imm(e.Value), Reg(EAX))
	case *ast.UnaryExpr:
		g.unary(e)
	case *ast.BinaryExpr:
		g.binary(e)
	default:
		fail("unsupported expression %T", e)
	}
}

func (g *generator) unary(e *ast.UnaryExpr) {
	g.expr(e.Operand)
	switch e.Op {
	case ast.Negation:
		g.emit(Neg, Reg(EAX))
	case ast.BitwiseComplement:
		g.emit(Not, Reg(EAX))
	case ast.LogicalNegation:
		g.emit(Cmpl, Imm(0), Reg(EAX))
		g.emit(Movl, Imm(0), Reg(EAX))
		g.emit(Sete, Reg(AL))
	default:
		fail("unsupported unary operator %d", e.Op)
	}
}

func (g *generator) binary(e *ast.BinaryExpr) {
	if !e.Op.Valid() {
		fail("unsupported binary operator %d", e.Op)
	}

	g.expr(e.Left)
	g.emit(Push, Reg(EAX))
	g.expr(e.Right)

	switch e.Op {
	case ast.Addition:
		g.emit(Pop, Reg(ECX))
		g.emit(Addl, Reg(ECX), Reg(EAX))
	case ast.Multiplication:
		g.emit(Pop, Reg(ECX))
		g.emit(Imul, Reg(ECX), Reg(EAX))
	case ast.Subtraction:
		// Right operand moves to %ecx so the left one is the minuend.
		g.emit(Movl, Reg(EAX), Reg(ECX))
		g.emit(Pop, Reg(EAX))
		g.emit(Subl, Reg(ECX), Reg(EAX))
	case ast.Division:
		// %edx is cleared, not sign-extended: only correct for
		// non-negative dividends.
		g.emit(Movl, Reg(EAX), Reg(ECX))
		g.emit(Movl, Imm(0), Reg(EDX))
		g.emit(Pop, Reg(EAX))
		g.emit(Idivl, Reg(ECX))
	}
}
