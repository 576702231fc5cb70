package amplifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/chazu/intcode/pkg/intcode"
)

// Network runs one trial of a topology for an ordering of phase settings
// and returns the resulting signal.
type Network func(ctx context.Context, prog intcode.Program, phases []int64, signal int64) (int64, error)

// Topology selects how amplifiers are connected.
type Topology int

const (
	// TopologyChain runs amplifiers one after the other.
	TopologyChain Topology = iota

	// TopologyLoop runs amplifiers concurrently in a feedback ring.
	TopologyLoop
)

// String returns the configuration name of the topology.
func (t Topology) String() string {
	switch t {
	case TopologyChain:
		return "chain"
	case TopologyLoop:
		return "loop"
	default:
		return fmt.Sprintf("Topology(%d)", t)
	}
}

// ParseTopology parses "chain" or "loop".
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chain":
		return TopologyChain, nil
	case "loop", "feedback":
		return TopologyLoop, nil
	default:
		return 0, fmt.Errorf("amplifier: unknown topology %q", s)
	}
}

// Network returns the function running one trial of the topology.
func (t Topology) Network() Network {
	if t == TopologyLoop {
		return Loop
	}
	return Chain
}

// DefaultPhases returns the phase settings conventionally used with the
// topology: 0..4 for a chain, 5..9 for a loop.
func (t Topology) DefaultPhases() []int64 {
	if t == TopologyLoop {
		return []int64{5, 6, 7, 8, 9}
	}
	return []int64{0, 1, 2, 3, 4}
}
