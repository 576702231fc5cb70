package intcode

import (
	"strings"
	"testing"
)

func TestDisassemble(t *testing.T) {
	prog := NewProgram(3, 15, 1002, 16, 10, 16, 104, -1, 99, 0)
	listing := prog.Disassemble()

	for _, want := range []string{
		"; Intcode listing, 10 words",
		"0000  3        IN    [15]",
		"0002  1002     MUL   [16], #10, [16]",
		"0006  104      OUT   #-1",
		"0008  99       HALT",
		"0009  0        DATA",
	} {
		if !strings.Contains(listing, want) {
			t.Errorf("listing missing %q:\n%s", want, listing)
		}
	}
}

func TestDisassembleTruncatedInstruction(t *testing.T) {
	listing := NewProgram(1, 0).Disassemble()
	if !strings.Contains(listing, "0000  1        DATA") {
		t.Errorf("truncated ADD should be DATA:\n%s", listing)
	}
	if !strings.Contains(listing, "0001  0        DATA") {
		t.Errorf("trailing word should be DATA:\n%s", listing)
	}
}

func TestDisassembleUnsupportedMode(t *testing.T) {
	got := DisassembleAt([]int64{204, 5, 99}, 0)
	if got != "204      OUT   ?5" {
		t.Errorf("DisassembleAt = %q", got)
	}
}

func TestDisassembleRangeClamps(t *testing.T) {
	words := []int64{1101, 1, 2, 0, 99}
	listing := DisassembleRange(words, -5, 100)
	if !strings.Contains(listing, "0000  1101     ADD   #1, #2, [0]") {
		t.Errorf("listing:\n%s", listing)
	}
	if !strings.Contains(listing, "0004  99       HALT") {
		t.Errorf("listing:\n%s", listing)
	}
}

func TestDisassembleAtOutOfBounds(t *testing.T) {
	if got := DisassembleAt([]int64{99}, 3); !strings.Contains(got, "out of bounds") {
		t.Errorf("DisassembleAt = %q", got)
	}
}
