package amplifier

import (
	"context"

	"github.com/chazu/intcode/pkg/intcode"
)

// Chain runs one amplifier per phase setting strictly in sequence. Each
// amplifier receives its phase and then the previous amplifier's output;
// the first one receives signal. The last output of the final amplifier is
// the chain's result.
func Chain(ctx context.Context, prog intcode.Program, phases []int64, signal int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoAmplifiers
	}

	for i, phase := range phases {
		amp := New(ampName(i), prog, phase)

		var out []int64
		if err := amp.Run(ctx, intcode.Values(signal), intcode.Collect(&out)); err != nil {
			return 0, err
		}
		if len(out) == 0 {
			return 0, amp.fault(ErrNoOutput)
		}
		if len(out) > 1 {
			log.Debugf("amplifier %s emitted %d values, forwarding the last", amp.Name, len(out))
		}
		signal = out[len(out)-1]
	}
	return signal, nil
}
