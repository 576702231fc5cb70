package intcode

import "fmt"

// Opcode is the operation selected by the low two decimal digits of an
// instruction word.
type Opcode int64

const (
	OpAdd         Opcode = 1  // dest = a + b
	OpMul         Opcode = 2  // dest = a * b
	OpInput       Opcode = 3  // dest = next input value
	OpOutput      Opcode = 4  // emit a
	OpJumpIfTrue  Opcode = 5  // pc = b if a != 0
	OpJumpIfFalse Opcode = 6  // pc = b if a == 0
	OpLessThan    Opcode = 7  // dest = 1 if a < b else 0
	OpEquals      Opcode = 8  // dest = 1 if a == b else 0
	OpHalt        Opcode = 99 // stop
)

// OpcodeInfo provides metadata about each opcode for execution and listings.
type OpcodeInfo struct {
	Name   string // Mnemonic
	Params int    // Number of parameters following the instruction word
	Store  bool   // Last parameter is a store destination
}

var opcodeInfoTable = map[Opcode]OpcodeInfo{
	OpAdd:         {"ADD", 3, true},
	OpMul:         {"MUL", 3, true},
	OpInput:       {"IN", 1, true},
	OpOutput:      {"OUT", 1, false},
	OpJumpIfTrue:  {"JNZ", 2, false},
	OpJumpIfFalse: {"JZ", 2, false},
	OpLessThan:    {"LT", 3, true},
	OpEquals:      {"EQ", 3, true},
	OpHalt:        {"HALT", 0, false},
}

// LookupOpcode returns the metadata for op and whether op is defined.
func LookupOpcode(op Opcode) (OpcodeInfo, bool) {
	info, ok := opcodeInfoTable[op]
	return info, ok
}

// String returns the mnemonic of an opcode.
func (op Opcode) String() string {
	if info, ok := opcodeInfoTable[op]; ok {
		return info.Name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int64(op))
}

// Valid reports whether op is one of the defined opcodes.
func (op Opcode) Valid() bool {
	_, ok := opcodeInfoTable[op]
	return ok
}

// InstructionLen returns the number of memory cells the instruction occupies,
// including the instruction word itself.
func (op Opcode) InstructionLen() int64 {
	return 1 + int64(opcodeInfoTable[op].Params)
}

// IsJump reports whether op may overwrite the program counter.
func (op Opcode) IsJump() bool {
	return op == OpJumpIfTrue || op == OpJumpIfFalse
}

// Mode is a parameter addressing mode.
type Mode uint8

const (
	// ModePosition treats the parameter as an address to dereference.
	ModePosition Mode = 0

	// ModeImmediate treats the parameter as a literal value.
	ModeImmediate Mode = 1
)

// String returns a human-readable name for Mode.
func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Modes is the lazily decoded sequence of parameter modes of one
// instruction word. Each call to Next consumes one decimal digit, least
// significant first. Once the digits run out every further call yields
// ModePosition, since leading zero digits are implicit.
type Modes struct {
	digits int64
	index  int
}

// Next returns the mode of the next parameter. A digit other than 0 or 1 is
// reported as an *UnsupportedModeError.
func (m *Modes) Next() (Mode, error) {
	digit := m.digits % 10
	m.digits /= 10
	index := m.index
	m.index++

	switch digit {
	case 0:
		return ModePosition, nil
	case 1:
		return ModeImmediate, nil
	default:
		return 0, &UnsupportedModeError{Param: index, Digit: digit}
	}
}

// Decode splits an instruction word into its opcode and the sequence of
// parameter modes. Decoding never fails; an undefined opcode is reported
// when the instruction is executed, and a bad mode digit when its parameter
// is requested.
func Decode(word int64) (Opcode, *Modes) {
	return Opcode(word % 100), &Modes{digits: word / 100}
}
