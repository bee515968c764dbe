package ast

// UnaryOp identifies a prefix operator.
type UnaryOp uint8

const (
	Negation          UnaryOp = iota // -
	BitwiseComplement                // ~
	LogicalNegation                  // !
)

// BinaryOp identifies an infix operator.
type BinaryOp uint8

const (
	Addition       BinaryOp = iota // +
	Subtraction                    // -
	Multiplication                 // *
	Division                       // /
)

var unaryNames = [...]string{
	Negation:          "Negation",
	BitwiseComplement: "BitwiseComplement",
	LogicalNegation:   "LogicalNegation",
}

var unarySymbols = [...]string{
	Negation:          "-",
	BitwiseComplement: "~",
	LogicalNegation:   "!",
}

var binaryNames = [...]string{
	Addition:       "Addition",
	Subtraction:    "Subtraction",
	Multiplication: "Multiplication",
	Division:       "Division",
}

var binarySymbols = [...]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
}

// Valid reports whether op is one of the defined unary operators.
func (op UnaryOp) Valid() bool { return int(op) < len(unaryNames) }

// String returns the operator name, e.g. "Negation".
func (op UnaryOp) String() string {
	if !op.Valid() {
		return "UnaryOp(?)"
	}
	return unaryNames[op]
}

// Symbol returns the source spelling of the operator.
func (op UnaryOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return unarySymbols[op]
}

// Valid reports whether op is one of the defined binary operators.
func (op BinaryOp) Valid() bool { return int(op) < len(binaryNames) }

// String returns the operator name, e.g. "Addition".
func (op BinaryOp) String() string {
	if !op.Valid() {
		return "BinaryOp(?)"
	}
	return binaryNames[op]
}

// Symbol returns the source spelling of the operator.
func (op BinaryOp) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return binarySymbols[op]
}

// Constant is an integer literal. Literals are never negative; -2 is
// Negation applied to Constant(2).
type Constant struct {
	Value uint64
}

// UnaryExpr applies Op to a single operand.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

// BinaryExpr applies Op to Left and Right, in source order.
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Constant) node()       {}
func (*Constant) exprNode()   {}
func (*UnaryExpr) node()      {}
func (*UnaryExpr) exprNode()  {}
func (*BinaryExpr) node()     {}
func (*BinaryExpr) exprNode() {}

func (e *Constant) String() string   { return Sprint(e) }
func (e *UnaryExpr) String() string  { return Sprint(e) }
func (e *BinaryExpr) String() string { return Sprint(e) }

// Unary is shorthand for &UnaryExpr{Op: op, Operand: x}.
func Unary(op UnaryOp, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: x}
}

// Binary is shorthand for &BinaryExpr{Op: op, Left: a, Right: b}.
func Binary(op BinaryOp, a, b Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: a, Right: b}
}

// Const is shorthand for &Constant{Value: v}.
func Const(v uint64) *Constant {
	return &Constant{Value: v}
}

var (
	_ Expr = (*Constant)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*BinaryExpr)(nil)
)
