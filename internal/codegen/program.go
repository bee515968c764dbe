package codegen

import "strings"

// Program is the generated listing for one function.
type Program struct {
	// Symbol is the function name, declared global and used as its label.
	Symbol string
	// Code is the function body, ending with Ret.
	Code []Instr
}

// Text renders the listing as newline-separated assembly: the global
// declaration, the label, then one instruction per line.
func (p *Program) Text() string {
	var sb strings.Builder
	sb.WriteString(".globl ")
	sb.WriteString(p.Symbol)
	sb.WriteByte('\n')
	sb.WriteString(p.Symbol)
	sb.WriteString(":\n")
	for _, in := range p.Code {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MaxStackDepth returns the largest number of values the listing keeps
// pushed at once.
func (p *Program) MaxStackDepth() int {
	depth, deepest := 0, 0
	for _, in := range p.Code {
		switch in.Op {
		case Push:
			depth++
			deepest = max(deepest, depth)
		case Pop:
			depth--
		}
	}
	return deepest
}
