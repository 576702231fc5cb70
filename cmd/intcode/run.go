package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/intcode"
)

// handleRunCommand processes the `intcode run` subcommand.
// Usage:
//
//	intcode run -input 1 prog.txt           # diagnostic run, one output per line
//	intcode run -patch 1=12,2=2 prog.txt    # patched run
//	intcode run -trace prog.txt             # log every instruction (needs -v 2)
func handleRunCommand(args []string, m *manifest.Manifest) {
	var rest []string
	var trace bool
	inputs := m.Program.Input
	patches, err := m.Patches()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-trace", "--trace":
			trace = true
		case "-input", "--input", "-patch", "--patch":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", args[i])
				os.Exit(1)
			}
			if strings.HasSuffix(args[i], "input") {
				inputs, err = parseList(args[i+1])
			} else {
				var extra map[int64]int64
				extra, err = parsePatches(args[i+1])
				maps.Copy(patches, extra)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", args[i], err)
				os.Exit(1)
			}
			i++
		default:
			rest = append(rest, args[i])
		}
	}

	prog := loadProgram(rest, m)
	if len(patches) > 0 {
		prog, err = prog.Patch(patches)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	machine := intcode.New(prog)
	machine.Trace = trace
	out := func(v int64) error {
		fmt.Println(v)
		return nil
	}
	if err := machine.RunContext(context.Background(), intcode.Values(inputs...), out); err != nil {
		fail(prog, machine.Memory(), machine.PC(), err, m)
	}
	fmt.Printf("memory[0]: %d\n", machine.Memory()[0])
}

// parseList parses a comma separated list of integers.
func parseList(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	prog, err := intcode.Parse(s)
	if err != nil {
		return nil, err
	}
	return prog.Words(), nil
}

// parsePatches parses "addr=value" pairs separated by commas.
func parsePatches(s string) (map[int64]int64, error) {
	patches := make(map[int64]int64)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid patch %q (want addr=value)", pair)
		}
		addr, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil || addr < 0 {
			return nil, fmt.Errorf("invalid patch address %q", key)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid patch value %q", value)
		}
		patches[addr] = v
	}
	return patches, nil
}
