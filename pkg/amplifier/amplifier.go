// Package amplifier wires Intcode machines into amplifier networks and
// searches phase-setting orderings for the strongest output signal.
//
// Each Amplifier owns one intcode.Machine and a phase setting that is fed to
// the first input request of every run. Networks come in two topologies:
// a sequential Chain and a concurrent feedback Loop whose amplifiers talk
// over rendezvous Links.
package amplifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/chazu/intcode/pkg/intcode"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.amplifier")

var (
	// ErrNoOutput is returned when a network produced no signal.
	ErrNoOutput = errors.New("amplifier: no output signal")

	// ErrNoAmplifiers is returned for a network without phase settings.
	ErrNoAmplifiers = errors.New("amplifier: no amplifiers")
)

// Amplifier is one machine with its phase setting.
type Amplifier struct {
	Name  string
	Phase int64

	machine *intcode.Machine
}

// New creates an amplifier running prog with the given phase setting.
func New(name string, prog intcode.Program, phase int64) *Amplifier {
	return &Amplifier{
		Name:    name,
		Phase:   phase,
		machine: intcode.New(prog),
	}
}

// Machine returns the amplifier's machine.
func (a *Amplifier) Machine() *intcode.Machine {
	return a.machine
}

// Run executes the program once. The first input request is answered with
// the phase setting, later ones by in. Failures are returned as *Fault.
func (a *Amplifier) Run(ctx context.Context, in intcode.Input, out intcode.Output) error {
	phased := false
	input := func() (int64, error) {
		if !phased {
			phased = true
			return a.Phase, nil
		}
		if in == nil {
			return 0, intcode.ErrInputExhausted
		}
		return in()
	}

	if err := a.machine.RunContext(ctx, input, out); err != nil {
		return a.fault(err)
	}
	return nil
}

func (a *Amplifier) fault(err error) *Fault {
	return &Fault{
		Amplifier: a.Name,
		Phase:     a.Phase,
		PC:        a.machine.PC(),
		Memory:    a.machine.Memory(),
		Err:       err,
	}
}

// Fault is the failure of one amplifier, with a snapshot of its machine
// taken when it stopped.
type Fault struct {
	Amplifier string
	Phase     int64
	PC        int64
	Memory    []int64
	Err       error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("amplifier %s (phase %d): %v", f.Amplifier, f.Phase, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// ampName returns the conventional name of the i-th amplifier: A, B, C...
func ampName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("amp%d", i)
}
