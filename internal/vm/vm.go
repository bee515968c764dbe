// Package vm interprets listings produced by codegen. It models the part of
// a 32-bit x86 machine the generator uses: %eax, %ecx and %edx, the zero
// flag, and a push/pop stack.
package vm

import (
	"errors"
	"fmt"

	"github.com/kolkov/ucc/internal/codegen"
)

// Execution errors, wrapped in a *Fault.
var (
	ErrDivide         = errors.New("divide error")
	ErrStackUnderflow = errors.New("pop from empty stack")
	ErrNoReturn       = errors.New("execution ran past the last instruction")
	ErrBadInstr       = errors.New("invalid instruction")
)

// Fault reports the instruction that stopped execution.
type Fault struct {
	PC    int
	Instr codegen.Instr
	Err   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at %d (%s): %v", f.PC, f.Instr, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Machine holds register and stack state. The zero value is ready to use.
type Machine struct {
	regs  [3]uint32 // indexed by EAX, ECX, EDX
	zf    bool
	stack []uint32
}

// Run executes p on a fresh machine and returns %eax at ret.
func Run(p *codegen.Program) (int32, error) {
	var m Machine
	return m.Run(p)
}

// Reg returns the current value of r.
func (m *Machine) Reg(r codegen.Register) uint32 {
	if r == codegen.AL {
		return m.regs[codegen.EAX] & 0xff
	}
	return m.regs[r]
}

// Run resets the machine, executes p from its first instruction until ret
// and returns %eax interpreted as a signed value.
func (m *Machine) Run(p *codegen.Program) (int32, error) {
	m.regs = [3]uint32{}
	m.zf = false
	m.stack = make([]uint32, 0, p.MaxStackDepth())

	for pc, in := range p.Code {
		if in.Op == codegen.Ret {
			return int32(m.regs[codegen.EAX]), nil
		}
		if err := m.step(in); err != nil {
			return 0, &Fault{PC: pc, Instr: in, Err: err}
		}
	}
	return 0, &Fault{PC: len(p.Code), Err: ErrNoReturn}
}

var arity = map[codegen.Opcode]int{
	codegen.Movl:  2,
	codegen.Neg:   1,
	codegen.Not:   1,
	codegen.Cmpl:  2,
	codegen.Sete:  1,
	codegen.Push:  1,
	codegen.Pop:   1,
	codegen.Addl:  2,
	codegen.Imul:  2,
	codegen.Subl:  2,
	codegen.Idivl: 1,
}

func (m *Machine) step(in codegen.Instr) error {
	n, ok := arity[in.Op]
	if !ok || len(in.Args) != n {
		return ErrBadInstr
	}
	for _, a := range in.Args {
		if a.Kind == codegen.KindNone || (a.Kind == codegen.KindReg && a.Reg > codegen.AL) {
			return ErrBadInstr
		}
	}
	// Destinations must be registers.
	switch in.Op {
	case codegen.Push, codegen.Idivl, codegen.Cmpl:
	default:
		if in.Args[n-1].Kind != codegen.KindReg {
			return ErrBadInstr
		}
	}

	args := in.Args
	switch in.Op {
	case codegen.Movl:
		m.write(args[1], m.read(args[0]))
	case codegen.Neg:
		m.write(args[0], -m.read(args[0]))
	case codegen.Not:
		m.write(args[0], ^m.read(args[0]))
	case codegen.Cmpl:
		m.zf = m.read(args[1])-m.read(args[0]) == 0
	case codegen.Sete:
		var v uint32
		if m.zf {
			v = 1
		}
		m.write(args[0], v)
	case codegen.Push:
		m.stack = append(m.stack, m.read(args[0]))
	case codegen.Pop:
		if len(m.stack) == 0 {
			return ErrStackUnderflow
		}
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.write(args[0], top)
	case codegen.Addl:
		m.write(args[1], m.read(args[1])+m.read(args[0]))
	case codegen.Imul:
		m.write(args[1], m.read(args[1])*m.read(args[0]))
	case codegen.Subl:
		m.write(args[1], m.read(args[1])-m.read(args[0]))
	case codegen.Idivl:
		return m.idiv(m.read(args[0]))
	}
	return nil
}

// idiv divides the signed 64-bit value %edx:%eax by divisor. A zero divisor
// or a quotient outside 32 bits raises a divide error, as on hardware.
func (m *Machine) idiv(divisor uint32) error {
	d := int64(int32(divisor))
	if d == 0 {
		return ErrDivide
	}
	dividend := int64(uint64(m.regs[codegen.EDX])<<32 | uint64(m.regs[codegen.EAX]))
	q, r := dividend/d, dividend%d
	if q != int64(int32(q)) {
		return ErrDivide
	}
	m.regs[codegen.EAX] = uint32(int32(q))
	m.regs[codegen.EDX] = uint32(int32(r))
	return nil
}

func (m *Machine) read(o codegen.Operand) uint32 {
	if o.Kind == codegen.KindImm {
		return uint32(o.Imm)
	}
	return m.Reg(o.Reg)
}

func (m *Machine) write(o codegen.Operand, v uint32) {
	if o.Reg == codegen.AL {
		m.regs[codegen.EAX] = m.regs[codegen.EAX]&^0xff | v&0xff
		return
	}
	m.regs[o.Reg] = v
}
