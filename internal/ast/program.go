package ast

// Program is the root of the tree. It owns exactly one function.
type Program struct {
	Function *Function
}

// Function is a function definition: int name() { body }.
type Function struct {
	Name string
	Body Stmt
}

// ReturnStmt is return <Value>;.
type ReturnStmt struct {
	Value Expr
}

func (*Program) node()  {}
func (*Function) node() {}

func (*ReturnStmt) node()     {}
func (*ReturnStmt) stmtNode() {}

func (p *Program) String() string    { return Sprint(p) }
func (f *Function) String() string   { return Sprint(f) }
func (s *ReturnStmt) String() string { return Sprint(s) }

var (
	_ Node = (*Program)(nil)
	_ Node = (*Function)(nil)
	_ Stmt = (*ReturnStmt)(nil)
)
