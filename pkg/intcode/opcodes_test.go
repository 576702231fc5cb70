package intcode

import (
	"errors"
	"testing"
)

func TestDecodeOpcode(t *testing.T) {
	tests := []struct {
		word int64
		op   Opcode
	}{
		{1, OpAdd},
		{1002, OpMul},
		{3, OpInput},
		{104, OpOutput},
		{1105, OpJumpIfTrue},
		{1106, OpJumpIfFalse},
		{1107, OpLessThan},
		{1008, OpEquals},
		{99, OpHalt},
		{12345, Opcode(45)},
	}

	for _, tt := range tests {
		op, _ := Decode(tt.word)
		if op != tt.op {
			t.Errorf("Decode(%d) opcode = %v, want %v", tt.word, op, tt.op)
		}
	}
}

func TestDecodeModes(t *testing.T) {
	_, modes := Decode(1002)
	want := []Mode{ModePosition, ModeImmediate, ModePosition, ModePosition}
	for i, w := range want {
		got, err := modes.Next()
		if err != nil {
			t.Fatalf("mode %d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("mode %d = %v, want %v", i, got, w)
		}
	}
}

func TestDecodeImplicitPositionModes(t *testing.T) {
	_, modes := Decode(2)
	for i := 0; i < 5; i++ {
		mode, err := modes.Next()
		if err != nil || mode != ModePosition {
			t.Errorf("mode %d = %v, %v; want position", i, mode, err)
		}
	}
}

func TestDecodeUnsupportedMode(t *testing.T) {
	_, modes := Decode(21101)
	for i := 0; i < 2; i++ {
		if mode, err := modes.Next(); err != nil || mode != ModeImmediate {
			t.Fatalf("mode %d = %v, %v; want immediate", i, mode, err)
		}
	}

	_, err := modes.Next()
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Fatalf("err = %v, want ErrUnsupportedMode", err)
	}
	var modeErr *UnsupportedModeError
	if !errors.As(err, &modeErr) || modeErr.Param != 2 || modeErr.Digit != 2 {
		t.Errorf("error = %+v, want param 2 digit 2", modeErr)
	}
}

func TestOpcodeInfo(t *testing.T) {
	tests := []struct {
		op     Opcode
		name   string
		length int64
		store  bool
	}{
		{OpAdd, "ADD", 4, true},
		{OpMul, "MUL", 4, true},
		{OpInput, "IN", 2, true},
		{OpOutput, "OUT", 2, false},
		{OpJumpIfTrue, "JNZ", 3, false},
		{OpJumpIfFalse, "JZ", 3, false},
		{OpLessThan, "LT", 4, true},
		{OpEquals, "EQ", 4, true},
		{OpHalt, "HALT", 1, false},
	}

	for _, tt := range tests {
		info, ok := LookupOpcode(tt.op)
		if !ok {
			t.Errorf("%d: not defined", tt.op)
			continue
		}
		if info.Name != tt.name || tt.op.String() != tt.name {
			t.Errorf("%d: name = %q, want %q", tt.op, info.Name, tt.name)
		}
		if tt.op.InstructionLen() != tt.length {
			t.Errorf("%s: InstructionLen = %d, want %d", tt.name, tt.op.InstructionLen(), tt.length)
		}
		if info.Store != tt.store {
			t.Errorf("%s: Store = %v, want %v", tt.name, info.Store, tt.store)
		}
	}
}

func TestOpcodeUnknown(t *testing.T) {
	op := Opcode(42)
	if op.Valid() {
		t.Error("opcode 42 should not be valid")
	}
	if op.String() != "UNKNOWN(42)" {
		t.Errorf("String() = %q, want UNKNOWN(42)", op.String())
	}
	if !OpJumpIfFalse.IsJump() || OpAdd.IsJump() {
		t.Error("IsJump misclassifies opcodes")
	}
}
