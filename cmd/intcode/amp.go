package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/amplifier"
	"github.com/chazu/intcode/pkg/intcode"
)

// handleAmpCommand processes the `intcode amp` subcommand.
// Usage:
//
//	intcode amp [program]                       # chain 0..4, loop 5..9
//	intcode amp -chain 0,1,2 -loop 5,6,7 prog   # custom phase sets
func handleAmpCommand(args []string, m *manifest.Manifest) {
	var rest []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-chain", "--chain", "-loop", "--loop":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s requires a phase list\n", args[i])
				os.Exit(1)
			}
			phases, err := parseList(args[i+1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", args[i], err)
				os.Exit(1)
			}
			if args[i] == "-chain" || args[i] == "--chain" {
				m.Chain.Phases = phases
			} else {
				m.Loop.Phases = phases
			}
			i++
		default:
			rest = append(rest, args[i])
		}
	}
	if err := m.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	prog := loadProgram(rest, m)
	ctx := context.Background()

	part1, err := search(ctx, prog, amplifier.TopologyChain, m.Chain)
	if err != nil {
		fail(prog, nil, 0, err, m)
	}
	fmt.Printf("Part 1: %d\n", part1.Signal)

	part2, err := search(ctx, prog, amplifier.TopologyLoop, m.Loop)
	if err != nil {
		fail(prog, nil, 0, err, m)
	}
	fmt.Printf("Part 2: %d\n", part2.Signal)
}

// search runs one topology's phase search under the configured timeout.
func search(ctx context.Context, prog intcode.Program, topology amplifier.Topology, n manifest.Network) (amplifier.Result, error) {
	timeout, err := n.TimeoutDuration()
	if err != nil {
		return amplifier.Result{}, err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := amplifier.Search(ctx, prog, topology, n.Phases, n.Signal)
	if err != nil {
		return res, err
	}
	log.Infof("%s: best %d with phases %v after %d trials (run %s)",
		topology, res.Signal, res.Phases, res.Trials, res.RunID)
	return res, nil
}
