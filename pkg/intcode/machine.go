package intcode

import (
	"context"
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.machine")

// State is the outcome of executing one instruction.
type State int

const (
	// Continue means the machine can execute another instruction.
	Continue State = iota

	// Complete means the machine executed HALT.
	Complete
)

// String returns a human-readable name for State.
func (s State) String() string {
	switch s {
	case Continue:
		return "continue"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Machine executes one Program. It owns a private memory buffer, so distinct
// machines can run concurrently without coordination. A single Machine is
// not safe for concurrent use.
type Machine struct {
	prog Program
	mem  []int64 // Working copy of prog, same length
	pc   int64

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// New creates a machine for prog with memory already reset.
func New(prog Program) *Machine {
	m := &Machine{
		prog: prog,
		mem:  make([]int64, prog.Len()),
	}
	m.Reset()
	return m
}

// Program returns the baseline the machine resets from.
func (m *Machine) Program() Program {
	return m.prog
}

// Memory returns a snapshot of the machine's memory.
func (m *Machine) Memory() []int64 {
	return append([]int64(nil), m.mem...)
}

// PC returns the current program counter. After a failed step it still
// addresses the failing instruction.
func (m *Machine) PC() int64 {
	return m.pc
}

// Reset copies the program into memory and rewinds the program counter.
func (m *Machine) Reset() {
	copy(m.mem, m.prog.words)
	m.pc = 0
}

// Run resets the machine and executes instructions until HALT or an error.
func (m *Machine) Run(in Input, out Output) error {
	return m.RunContext(context.Background(), in, out)
}

// RunContext is like Run but also stops, returning the context's error,
// once ctx is done. The context is checked between instructions; blocking
// hooks must watch ctx themselves.
func (m *Machine) RunContext(ctx context.Context, in Input, out Output) error {
	m.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		state, err := m.Step(in, out)
		if err != nil {
			return err
		}
		if state == Complete {
			return nil
		}
	}
}

// Step executes the instruction at the program counter.
func (m *Machine) Step(in Input, out Output) (State, error) {
	pc := m.pc
	if !m.inBounds(pc) {
		return Continue, &PCError{PC: pc}
	}

	word := m.mem[pc]
	op, modes := Decode(word)

	if m.Trace {
		text, _ := formatInstruction(m.mem, pc)
		log.Debugf("[%04d] %s", pc, text)
	}

	switch op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, err := m.load(pc, 1, modes)
		if err != nil {
			return Continue, err
		}
		b, err := m.load(pc, 2, modes)
		if err != nil {
			return Continue, err
		}
		dest, err := m.store(pc, 3, modes)
		if err != nil {
			return Continue, err
		}

		var result int64
		switch op {
		case OpAdd:
			result = a + b
		case OpMul:
			result = a * b
		case OpLessThan:
			result = boolToWord(a < b)
		case OpEquals:
			result = boolToWord(a == b)
		}
		if err := m.write(pc, dest, result); err != nil {
			return Continue, err
		}
		m.pc = pc + 4

	case OpInput:
		dest, err := m.store(pc, 1, modes)
		if err != nil {
			return Continue, err
		}
		if in == nil {
			return Continue, &IOError{PC: pc, Op: op, Err: ErrInputExhausted}
		}
		v, err := in()
		if err != nil {
			return Continue, &IOError{PC: pc, Op: op, Err: err}
		}
		if err := m.write(pc, dest, v); err != nil {
			return Continue, err
		}
		m.pc = pc + 2

	case OpOutput:
		v, err := m.load(pc, 1, modes)
		if err != nil {
			return Continue, err
		}
		if out != nil {
			if err := out(v); err != nil {
				return Continue, &IOError{PC: pc, Op: op, Err: err}
			}
		}
		m.pc = pc + 2

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := m.load(pc, 1, modes)
		if err != nil {
			return Continue, err
		}
		target, err := m.load(pc, 2, modes)
		if err != nil {
			return Continue, err
		}
		if (cond != 0) == (op == OpJumpIfTrue) {
			m.pc = target
		} else {
			m.pc = pc + 3
		}

	case OpHalt:
		return Complete, nil

	default:
		return Continue, &OpcodeError{PC: pc, Word: word}
	}

	return Continue, nil
}

// load resolves the parameter at pc+offset according to its mode.
func (m *Machine) load(pc, offset int64, modes *Modes) (int64, error) {
	mode, err := m.nextMode(pc, modes)
	if err != nil {
		return 0, err
	}
	raw, err := m.read(pc, pc+offset)
	if err != nil {
		return 0, err
	}
	if mode == ModeImmediate {
		return raw, nil
	}
	return m.read(pc, raw)
}

// store resolves the destination address of the parameter at pc+offset.
func (m *Machine) store(pc, offset int64, modes *Modes) (int64, error) {
	mode, err := m.nextMode(pc, modes)
	if err != nil {
		return 0, err
	}
	if mode != ModePosition {
		return 0, &ModeError{PC: pc, Param: int(offset - 1)}
	}
	return m.read(pc, pc+offset)
}

func (m *Machine) nextMode(pc int64, modes *Modes) (Mode, error) {
	mode, err := modes.Next()
	if err != nil {
		if ume, ok := err.(*UnsupportedModeError); ok {
			ume.PC = pc
		}
		return 0, err
	}
	return mode, nil
}

func (m *Machine) read(pc, addr int64) (int64, error) {
	if !m.inBounds(addr) {
		return 0, &IndexError{PC: pc, Index: addr}
	}
	return m.mem[addr], nil
}

func (m *Machine) write(pc, addr, value int64) error {
	if !m.inBounds(addr) {
		return &IndexError{PC: pc, Index: addr}
	}
	m.mem[addr] = value
	return nil
}

func (m *Machine) inBounds(addr int64) bool {
	return addr >= 0 && addr < int64(len(m.mem))
}

func boolToWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
