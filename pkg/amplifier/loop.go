package amplifier

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/chazu/intcode/pkg/intcode"
)

// Loop runs one amplifier per phase setting concurrently, wired in a ring:
// each amplifier's output is the next one's input, and the last output is
// routed back to the first amplifier through the driver.
//
// Topology for n amplifiers, with links[i] feeding amplifier i:
//
//	driver -> links[0] -> A -> links[1] -> B ... -> links[n] -> driver
//
// The driver seeds the ring with seed and forwards every value arriving on
// links[n] back into links[0]. An amplifier that halts closes both of its
// links; the driver stops when it can no longer forward or receive, and the
// last value it received is the result.
//
// If an amplifier fails, the group context is cancelled, which releases
// every blocked link operation. The error is returned once all goroutines
// have been joined.
func Loop(ctx context.Context, prog intcode.Program, phases []int64, seed int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoAmplifiers
	}

	n := len(phases)
	links := make([]*Link, n+1)
	for i := range links {
		links[i] = NewLink()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, phase := range phases {
		amp := New(ampName(i), prog, phase)
		in, out := links[i], links[i+1]
		g.Go(func() error {
			if err := amp.Run(gctx, in.Input(gctx), out.Output(gctx)); err != nil {
				log.Debugf("amplifier %s failed: %v", amp.Name, err)
				return err
			}
			in.Close()
			out.Close()
			return nil
		})
	}

	value, observed := seed, false
	for {
		if err := links[0].Send(gctx, value); err != nil {
			break
		}
		next, err := links[n].Receive(gctx)
		if err != nil {
			break
		}
		value, observed = next, true
	}

	// The driver owns the outer ends of the ring; closing them releases an
	// amplifier still waiting on the driver.
	links[0].Close()
	links[n].Close()

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if !observed {
		return 0, ErrNoOutput
	}
	return value, nil
}
