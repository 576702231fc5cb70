// Package intcode implements the Intcode machine: a tiny instruction set
// whose programs are flat sequences of signed integers.
//
// The package is split into a few small pieces:
//
//   - Program: the immutable baseline parsed from comma-separated text.
//     Programs are never mutated; Patch returns a new Program.
//
//   - Decoder: Decode splits an instruction word into its Opcode (the low
//     two decimal digits) and a Modes sequence that yields one addressing
//     mode per parameter on demand.
//
//   - Machine: owns a working copy of a Program (its memory) and a program
//     counter. Step executes one instruction, Run resets memory and steps
//     until the program halts or fails.
//
//   - Disassembler: renders a program listing for diagnostics.
//
// # Input and output
//
// Machines never perform I/O on their own. The IN and OUT instructions call
// an Input and an Output hook supplied by the caller. Hooks may block, which
// makes them the suspension points that let several machines cooperate over
// channels (see package amplifier).
//
// # Errors
//
// Every failure is returned as an error value. The kinds are exposed as
// sentinels (ErrIndexOutOfBounds, ErrPCOutOfBounds, ErrUnknownOpcode,
// ErrInvalidParameterMode, ErrUnsupportedMode, ErrRead, ErrParse) so callers
// can test them with errors.Is, while the concrete error types carry the
// program counter and offending values for diagnostics.
package intcode
