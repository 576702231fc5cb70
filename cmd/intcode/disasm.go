package main

import (
	"fmt"

	"github.com/chazu/intcode/manifest"
)

// handleDisasmCommand processes the `intcode disasm` subcommand.
func handleDisasmCommand(args []string, m *manifest.Manifest) {
	prog := loadProgram(args, m)
	fmt.Print(prog.Disassemble())
}
