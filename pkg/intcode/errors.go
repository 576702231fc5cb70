package intcode

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrPCOutOfBounds        = errors.New("program counter out of bounds")
	ErrUnknownOpcode        = errors.New("unknown opcode")
	ErrInvalidParameterMode = errors.New("invalid parameter mode")
	ErrUnsupportedMode      = errors.New("unsupported parameter mode")
	ErrRead                 = errors.New("read error")
	ErrParse                = errors.New("parse error")
)

// ErrInputExhausted is returned by the Values input when every queued value
// has been consumed.
var ErrInputExhausted = errors.New("input exhausted")

// IndexError reports a memory access outside the machine's memory.
type IndexError struct {
	PC    int64 // Address of the instruction performing the access
	Index int64 // Offending address
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("intcode: index %d out of bounds (pc=%d)", e.Index, e.PC)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// PCError reports an instruction fetch outside the machine's memory.
type PCError struct {
	PC int64
}

func (e *PCError) Error() string {
	return fmt.Sprintf("intcode: pc %d out of bounds", e.PC)
}

func (e *PCError) Unwrap() error { return ErrPCOutOfBounds }

// OpcodeError reports an instruction word whose opcode is not defined.
type OpcodeError struct {
	PC   int64
	Word int64 // Full instruction word, modes included
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("intcode: unknown opcode %d in word %d (pc=%d)", e.Word%100, e.Word, e.PC)
}

func (e *OpcodeError) Unwrap() error { return ErrUnknownOpcode }

// ModeError reports a store destination given in immediate mode.
type ModeError struct {
	PC    int64
	Param int // Zero-based parameter index
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("intcode: parameter %d is a store destination in immediate mode (pc=%d)", e.Param, e.PC)
}

func (e *ModeError) Unwrap() error { return ErrInvalidParameterMode }

// UnsupportedModeError reports a mode digit other than 0 or 1.
type UnsupportedModeError struct {
	PC    int64
	Param int
	Digit int64
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("intcode: unsupported mode %d for parameter %d (pc=%d)", e.Digit, e.Param, e.PC)
}

func (e *UnsupportedModeError) Unwrap() error { return ErrUnsupportedMode }

// IOError wraps a failure returned by an Input or Output hook.
type IOError struct {
	PC  int64
	Op  Opcode
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("intcode: %s at pc %d: %v", e.Op, e.PC, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadError reports a failure reading program text.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("intcode: read program: %v", e.Err)
}

func (e *ReadError) Unwrap() []error { return []error{ErrRead, e.Err} }

// ParseError reports a program token that is not a decimal integer.
type ParseError struct {
	Index int    // Zero-based token index
	Token string // Token as read, whitespace trimmed
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("intcode: parse token %d %q: %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
