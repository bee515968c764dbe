// Package ast defines the abstract syntax tree for ucc programs.
//
// The tree is built once by the parser and never mutated afterwards. Every
// node exclusively owns its children; there are no shared or back references.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce a value
//	│   ├── Constant - unsigned integer literal
//	│   ├── UnaryExpr - negation, bitwise complement, logical negation
//	│   └── BinaryExpr - addition, subtraction, multiplication, division
//	├── Stmt (interface) - statements
//	│   └── ReturnStmt
//	└── Program, Function - top-level structures
package ast

// Node is the interface implemented by all AST nodes.
type Node interface {
	// String renders the node in constructor notation, e.g.
	// Subtraction(Constant(8), Constant(4)).
	String() string
	node()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}
