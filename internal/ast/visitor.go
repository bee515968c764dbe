package ast

import "fmt"

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods.
//
// Example usage:
//
//	type depth struct{}
//	func (depth) VisitConstant(*Constant) int { return 1 }
//	func (d depth) VisitUnaryExpr(e *UnaryExpr) int { return 1 + Accept[int](e.Operand, d) }
//	// ... other methods
type Visitor[T any] interface {
	VisitProgram(*Program) T
	VisitFunction(*Function) T
	VisitReturnStmt(*ReturnStmt) T
	VisitConstant(*Constant) T
	VisitUnaryExpr(*UnaryExpr) T
	VisitBinaryExpr(*BinaryExpr) T
}

// Accept dispatches node to the matching method of v.
func Accept[T any](node Node, v Visitor[T]) T {
	switch n := node.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *Function:
		return v.VisitFunction(n)
	case *ReturnStmt:
		return v.VisitReturnStmt(n)
	case *Constant:
		return v.VisitConstant(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", node))
	}
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: count all unary operators
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.UnaryExpr); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		if n.Function != nil {
			Walk(n.Function, fn)
		}
	case *Function:
		Walk(n.Body, fn)
	case *ReturnStmt:
		Walk(n.Value, fn)
	case *UnaryExpr:
		Walk(n.Operand, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	}
}
