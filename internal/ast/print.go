package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer writes nodes back out as ucc source. Binary expressions are fully
// parenthesized, so the output parses to a tree equal to the input.
type Printer struct {
	w      io.Writer
	indent string
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: "    "}
}

// Print writes the source form of node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case nil:
		p.printf("<nil>")
	case *Program:
		if n.Function == nil {
			p.printf("<nil>")
			return
		}
		p.printNode(n.Function)
		p.printf("\n")
	case *Function:
		p.printf("int %s() {\n%s", n.Name, p.indent)
		p.printNode(n.Body)
		p.printf("\n}")
	case *ReturnStmt:
		p.printf("return ")
		p.printNode(n.Value)
		p.printf(";")
	case *Constant:
		p.printf("%d", n.Value)
	case *UnaryExpr:
		p.printf("%s", n.Op.Symbol())
		p.printNode(n.Operand)
	case *BinaryExpr:
		p.printf("(")
		p.printNode(n.Left)
		p.printf(" %s ", n.Op.Symbol())
		p.printNode(n.Right)
		p.printf(")")
	default:
		p.printf("<%T>", node)
	}
}

// Format returns the source form of node.
func Format(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node)
	return sb.String()
}

// Sprint renders node in constructor notation:
//
//	Program(Function(main, Return(Addition(Constant(2), Constant(3)))))
func Sprint(node Node) string {
	if node == nil {
		return "<nil>"
	}
	return Accept[string](node, describer{})
}

type describer struct{}

func (describer) VisitProgram(p *Program) string {
	if p.Function == nil {
		return "Program(<nil>)"
	}
	return "Program(" + Sprint(p.Function) + ")"
}

func (describer) VisitFunction(f *Function) string {
	return "Function(" + f.Name + ", " + Sprint(f.Body) + ")"
}

func (describer) VisitReturnStmt(s *ReturnStmt) string {
	return "Return(" + Sprint(s.Value) + ")"
}

func (describer) VisitConstant(c *Constant) string {
	return "Constant(" + strconv.FormatUint(c.Value, 10) + ")"
}

func (describer) VisitUnaryExpr(e *UnaryExpr) string {
	return e.Op.String() + "(" + Sprint(e.Operand) + ")"
}

func (describer) VisitBinaryExpr(e *BinaryExpr) string {
	return e.Op.String() + "(" + Sprint(e.Left) + ", " + Sprint(e.Right) + ")"
}
