// Intcode CLI - runs Intcode programs and amplifier phase searches
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/fault"
	"github.com/chazu/intcode/pkg/intcode"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("intcode")

func main() {
	configPath := flag.String("config", "", "Path to intcode.toml (default: search upward from the working directory)")
	verbosity := flag.Int("v", 0, "Log verbosity (1 = info, 2 = debug)")
	dumpPath := flag.String("dump", "", "Write a CBOR fault dump to this path when a run fails")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: intcode [options] <command> [command options] [program]\n\n")
		fmt.Fprintf(os.Stderr, "Runs Intcode programs. The program path defaults to [program].path in intcode.toml.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  amp      Search amplifier phase orderings (chain and feedback loop)\n")
		fmt.Fprintf(os.Stderr, "  run      Run the program once with fixed inputs\n")
		fmt.Fprintf(os.Stderr, "  disasm   Print a program listing\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  intcode amp 07/input.txt                   # Part 1 and Part 2 signals\n")
		fmt.Fprintf(os.Stderr, "  intcode run -input 5 05/input.txt          # Diagnostic run with input 5\n")
		fmt.Fprintf(os.Stderr, "  intcode run -patch 1=12,2=2 02/input.txt   # Patched run, prints address 0\n")
		fmt.Fprintf(os.Stderr, "  intcode -dump fault.cbor amp prog.txt      # Keep a dump if a trial fails\n")
	}
	flag.Parse()

	m, err := loadManifest(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the configuration file only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			m.Log.Verbosity = *verbosity
		case "dump":
			if abs, err := filepath.Abs(*dumpPath); err == nil {
				m.Fault.Dump = abs
			} else {
				m.Fault.Dump = *dumpPath
			}
		}
	})
	commonlog.Configure(m.Log.Verbosity, m.LogPath())

	args := flag.Args()
	command := "amp"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "amp":
		handleAmpCommand(args, m)
	case "run":
		handleRunCommand(args, m)
	case "disasm":
		handleDisasmCommand(args, m)
	case "help":
		flag.Usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(2)
	}
}

// loadManifest loads an explicit configuration file, or searches upward
// from the working directory, falling back to defaults.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.LoadFile(path)
	}
	m, err := manifest.FindAndLoad(".")
	if err != nil {
		return nil, err
	}
	if m == nil {
		return manifest.Default(), nil
	}
	log.Debugf("using configuration in %s", m.Dir)
	return m, nil
}

// loadProgram reads the program named on the command line or in the
// configuration.
func loadProgram(args []string, m *manifest.Manifest) intcode.Program {
	path := m.ProgramPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no program given")
		fmt.Fprintln(os.Stderr, "  (pass a path or configure [program].path in intcode.toml)")
		os.Exit(1)
	}

	prog, err := intcode.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Infof("loaded %s (%d words)", path, prog.Len())
	return prog
}

// fail reports a failed run with enough context to reproduce it, writes the
// fault dump if one is configured, and exits.
func fail(prog intcode.Program, mem []int64, pc int64, err error, m *manifest.Manifest) {
	log.Errorf("%v", err)

	d := fault.FromError(prog, mem, pc, err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if d.Topology != "" {
		fmt.Fprintf(os.Stderr, "  trial:     %s %v (run %s)\n", d.Topology, d.Phases, d.RunID)
	}
	if d.Amp != "" {
		fmt.Fprintf(os.Stderr, "  amplifier: %s (phase %d)\n", d.Amp, d.Phase)
	}
	fmt.Fprintf(os.Stderr, "  pc:        %d\n", d.PC)
	fmt.Fprintf(os.Stderr, "  word:      %d (%s)\n", d.Word, d.Opcode)
	fmt.Fprint(os.Stderr, d.Listing(m.Fault.Window))

	if path := m.DumpPath(); path != "" {
		if werr := fault.WriteFile(path, d); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", werr)
		} else {
			fmt.Fprintf(os.Stderr, "Fault dump written to %s\n", path)
		}
	}
	os.Exit(1)
}
