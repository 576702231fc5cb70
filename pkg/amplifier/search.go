package amplifier

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/chazu/intcode/pkg/intcode"
)

// Permutations calls fn for every ordering of values using Heap's
// algorithm, n! calls for n distinct values. The slice passed to fn is
// reused between calls; fn must copy it to keep it. fn returns false to stop
// the enumeration early. Permutations reports whether every ordering was
// visited.
func Permutations(values []int64, fn func(order []int64) bool) bool {
	a := slices.Clone(values)
	c := make([]int, len(a))

	if !fn(a) {
		return false
	}
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !fn(a) {
				return false
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return true
}

// Result is the outcome of a phase-setting search.
type Result struct {
	RunID    string   // Identifies the search in logs and fault dumps
	Topology Topology // Network the trials ran on
	Signal   int64    // Strongest signal found
	Phases   []int64  // Ordering that produced Signal
	Trials   int      // Number of orderings run
}

// TrialError reports the ordering whose trial stopped a search.
type TrialError struct {
	RunID    string
	Topology Topology
	Phases   []int64
	Err      error
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("amplifier: %s trial %v: %v", e.Topology, e.Phases, e.Err)
}

func (e *TrialError) Unwrap() error { return e.Err }

// Search runs the topology once for every ordering of phases, each trial
// with fresh amplifiers, and returns the strongest signal. The first failing
// trial aborts the whole search with a *TrialError.
func Search(ctx context.Context, prog intcode.Program, topology Topology, phases []int64, signal int64) (Result, error) {
	if len(phases) == 0 {
		return Result{}, ErrNoAmplifiers
	}

	res := Result{
		RunID:    uuid.NewString(),
		Topology: topology,
	}
	network := topology.Network()
	log.Debugf("search %s: %s over phases %v", res.RunID, topology, phases)

	var trialErr error
	Permutations(phases, func(order []int64) bool {
		res.Trials++
		sig, err := network(ctx, prog, order, signal)
		if err != nil {
			trialErr = &TrialError{
				RunID:    res.RunID,
				Topology: topology,
				Phases:   slices.Clone(order),
				Err:      err,
			}
			return false
		}
		if res.Phases == nil || sig > res.Signal {
			res.Signal = sig
			res.Phases = slices.Clone(order)
		}
		return true
	})
	if trialErr != nil {
		return Result{}, trialErr
	}

	log.Debugf("search %s: best signal %d from %v after %d trials", res.RunID, res.Signal, res.Phases, res.Trials)
	return res, nil
}
