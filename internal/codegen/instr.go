// Package codegen generates 32-bit x86 assembly (AT&T syntax) from the AST.
package codegen

import (
	"strconv"
	"strings"
)

// Opcode is an x86 instruction mnemonic.
type Opcode uint8

const (
	Movl  Opcode = iota // movl src, dst
	Neg                 // neg dst
	Not                 // not dst
	Cmpl                // cmpl src, dst (sets flags from dst - src)
	Sete                // sete dst8 (dst8 = 1 if ZF else 0)
	Push                // push src
	Pop                 // pop dst
	Addl                // addl src, dst
	Imul                // imul src, dst
	Subl                // subl src, dst (dst = dst - src)
	Idivl               // idivl src (%eax, %edx = %edx:%eax / src, % src)
	Ret                 // ret
)

var mnemonics = [...]string{
	Movl:  "movl",
	Neg:   "neg",
	Not:   "not",
	Cmpl:  "cmpl",
	Sete:  "sete",
	Push:  "push",
	Pop:   "pop",
	Addl:  "addl",
	Imul:  "imul",
	Subl:  "subl",
	Idivl: "idivl",
	Ret:   "ret",
}

func (op Opcode) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// Register names a machine register.
type Register uint8

const (
	EAX Register = iota // accumulator
	ECX                 // secondary operand
	EDX                 // high half of the dividend
	AL                  // low byte of EAX
)

var registerNames = [...]string{
	EAX: "%eax",
	ECX: "%ecx",
	EDX: "%edx",
	AL:  "%al",
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "%r" + strconv.Itoa(int(r))
}

// OperandKind distinguishes immediates from registers.
type OperandKind uint8

const (
	KindNone OperandKind = iota
	KindImm
	KindReg
)

// Operand is an instruction argument.
type Operand struct {
	Kind OperandKind
	Imm  uint64
	Reg  Register
}

// Imm returns an immediate operand.
func Imm(v uint64) Operand { return Operand{Kind: KindImm, Imm: v} }

// Reg returns a register operand.
func Reg(r Register) Operand { return Operand{Kind: KindReg, Reg: r} }

func (o Operand) String() string {
	switch o.Kind {
	case KindImm:
		return "$" + strconv.FormatUint(o.Imm, 10)
	case KindReg:
		return o.Reg.String()
	default:
		return ""
	}
}

// Instr is one instruction. Args are in AT&T order: source first,
// destination last.
type Instr struct {
	Op   Opcode
	Args []Operand
}

// String renders the instruction, e.g. "movl $2, %eax".
func (in Instr) String() string {
	if len(in.Args) == 0 {
		return in.Op.String()
	}
	var sb strings.Builder
	sb.WriteString(in.Op.String())
	for i, a := range in.Args {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}
