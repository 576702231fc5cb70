package intcode

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of the whole program.
func (p Program) Disassemble() string {
	return DisassembleRange(p.words, 0, int64(len(p.words)))
}

// DisassembleRange returns a listing of words[from:to]. Decoding starts at
// from, so a range should begin on an instruction boundary to be useful.
// Words that do not decode to a complete instruction are listed as DATA.
func DisassembleRange(words []int64, from, to int64) string {
	if from < 0 {
		from = 0
	}
	if to > int64(len(words)) {
		to = int64(len(words))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("; Intcode listing, %d words\n", len(words)))
	for addr := from; addr < to; {
		text, size := formatInstruction(words, addr)
		sb.WriteString(fmt.Sprintf("%04d  %s\n", addr, text))
		addr += size
	}
	return sb.String()
}

// DisassembleAt returns the listing of the single instruction at addr.
func DisassembleAt(words []int64, addr int64) string {
	if addr < 0 || addr >= int64(len(words)) {
		return fmt.Sprintf("<pc %d out of bounds>", addr)
	}
	text, _ := formatInstruction(words, addr)
	return text
}

// formatInstruction renders the instruction at addr and returns the number
// of words it spans. Position parameters are shown as [n], immediate ones
// as #n.
func formatInstruction(words []int64, addr int64) (string, int64) {
	word := words[addr]
	op, modes := Decode(word)
	info, ok := LookupOpcode(op)
	if !ok || addr+int64(info.Params) >= int64(len(words)) {
		return fmt.Sprintf("%-8d DATA", word), 1
	}

	operands := make([]string, 0, info.Params)
	for i := 1; i <= info.Params; i++ {
		raw := words[addr+int64(i)]
		mode, err := modes.Next()
		switch {
		case err != nil:
			operands = append(operands, fmt.Sprintf("?%d", raw))
		case mode == ModeImmediate:
			operands = append(operands, fmt.Sprintf("#%d", raw))
		default:
			operands = append(operands, fmt.Sprintf("[%d]", raw))
		}
	}

	text := fmt.Sprintf("%-8d %-5s %s", word, info.Name, strings.Join(operands, ", "))
	return strings.TrimRight(text, " "), 1 + int64(info.Params)
}
