// Package fault records failed Intcode runs as CBOR dumps that carry
// everything needed to reproduce the failure: the program baseline, the
// failing machine's memory and program counter, and the amplifier setup.
package fault

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/intcode/pkg/amplifier"
	"github.com/chazu/intcode/pkg/intcode"
)

// DumpVersion is the current dump format version.
const DumpVersion uint16 = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("fault: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Dump is the serialized record of a failed run.
type Dump struct {
	Version  uint16    `cbor:"1,keyasint"`
	RunID    string    `cbor:"2,keyasint,omitempty"`
	Time     time.Time `cbor:"3,keyasint"`
	Error    string    `cbor:"4,keyasint"`
	Program  []int64   `cbor:"5,keyasint"`
	Memory   []int64   `cbor:"6,keyasint,omitempty"`
	PC       int64     `cbor:"7,keyasint"`
	Word     int64     `cbor:"8,keyasint"`
	Opcode   string    `cbor:"9,keyasint"`
	Topology string    `cbor:"10,keyasint,omitempty"`
	Phases   []int64   `cbor:"11,keyasint,omitempty"`
	Amp      string    `cbor:"12,keyasint,omitempty"`
	Phase    int64     `cbor:"13,keyasint,omitempty"`
}

// FromError builds a dump for err, taking the richest context the error
// chain offers: the trial ordering from *amplifier.TrialError, the machine
// snapshot from *amplifier.Fault. When the chain carries no snapshot, mem
// and pc describe the machine state instead; mem may be nil.
func FromError(prog intcode.Program, mem []int64, pc int64, err error) *Dump {
	d := &Dump{
		Version: DumpVersion,
		Time:    time.Now().UTC(),
		Error:   err.Error(),
		Program: prog.Words(),
		Memory:  mem,
		PC:      pc,
	}

	var trial *amplifier.TrialError
	if errors.As(err, &trial) {
		d.RunID = trial.RunID
		d.Topology = trial.Topology.String()
		d.Phases = trial.Phases
	}

	var f *amplifier.Fault
	if errors.As(err, &f) {
		d.Amp = f.Amplifier
		d.Phase = f.Phase
		d.Memory = f.Memory
		d.PC = f.PC
	}

	d.Word, d.Opcode = d.instruction()
	return d
}

// instruction decodes the word at the failing program counter.
func (d *Dump) instruction() (int64, string) {
	words := d.Memory
	if words == nil {
		words = d.Program
	}
	if d.PC < 0 || d.PC >= int64(len(words)) {
		return 0, "<pc out of bounds>"
	}
	op, _ := intcode.Decode(words[d.PC])
	return words[d.PC], op.String()
}

// Listing returns a disassembly of the failing machine's memory starting at
// the program counter and spanning window words.
func (d *Dump) Listing(window int64) string {
	words := d.Memory
	if words == nil {
		words = d.Program
	}
	return intcode.DisassembleRange(words, d.PC, d.PC+window)
}

// Marshal serializes a Dump to CBOR bytes.
func Marshal(d *Dump) ([]byte, error) {
	return cborEncMode.Marshal(d)
}

// Unmarshal deserializes a Dump from CBOR bytes.
func Unmarshal(data []byte) (*Dump, error) {
	var d Dump
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fault: unmarshal dump: %w", err)
	}
	if d.Version != DumpVersion {
		return nil, fmt.Errorf("fault: unsupported dump version %d", d.Version)
	}
	return &d, nil
}

// WriteFile writes the dump to path.
func WriteFile(path string, d *Dump) error {
	data, err := Marshal(d)
	if err != nil {
		return fmt.Errorf("fault: marshal dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("fault: write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a dump written by WriteFile.
func ReadFile(path string) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fault: read %s: %w", path, err)
	}
	return Unmarshal(data)
}
