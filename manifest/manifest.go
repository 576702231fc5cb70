// Package manifest handles intcode.toml run configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file.
const FileName = "intcode.toml"

// Manifest represents an intcode.toml configuration.
type Manifest struct {
	Program Program `toml:"program"`
	Chain   Network `toml:"chain"`
	Loop    Network `toml:"loop"`
	Log     Log     `toml:"log"`
	Fault   Fault   `toml:"fault"`

	// Dir is the directory containing the intcode.toml file (set at load time).
	Dir string `toml:"-"`
}

// Program configures the program to run.
type Program struct {
	Path string `toml:"path"`

	// Patch overwrites addresses before the run: "1" = 12.
	Patch map[string]int64 `toml:"patch"`

	// Input is the fixed input queue for diagnostic runs.
	Input []int64 `toml:"input"`
}

// Network configures one amplifier topology.
type Network struct {
	Phases  []int64 `toml:"phases"`
	Signal  int64   `toml:"signal"`
	Timeout string  `toml:"timeout"`
}

// Log configures logging.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Fault configures fault dumps.
type Fault struct {
	Dump   string `toml:"dump"`
	Window int64  `toml:"window"`
}

// Default returns the configuration used when no intcode.toml exists.
func Default() *Manifest {
	m := &Manifest{}
	m.Dir, _ = os.Getwd()
	m.applyDefaults()
	return m
}

// Load parses the intcode.toml file in the given directory.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a configuration file at an explicit path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) applyDefaults() {
	if len(m.Chain.Phases) == 0 {
		m.Chain.Phases = []int64{0, 1, 2, 3, 4}
	}
	if len(m.Loop.Phases) == 0 {
		m.Loop.Phases = []int64{5, 6, 7, 8, 9}
	}
	if m.Fault.Window == 0 {
		m.Fault.Window = 16
	}
}

// Validate checks values toml decoding cannot.
func (m *Manifest) Validate() error {
	for name, n := range map[string]Network{"chain": m.Chain, "loop": m.Loop} {
		seen := make(map[int64]bool)
		for _, p := range n.Phases {
			if seen[p] {
				return fmt.Errorf("[%s] duplicate phase %d", name, p)
			}
			seen[p] = true
		}
		if _, err := n.TimeoutDuration(); err != nil {
			return fmt.Errorf("[%s] %w", name, err)
		}
	}
	if _, err := m.Patches(); err != nil {
		return err
	}
	if m.Fault.Window < 0 {
		return fmt.Errorf("[fault] window must not be negative")
	}
	return nil
}

// Patches returns the [program.patch] table keyed by address.
func (m *Manifest) Patches() (map[int64]int64, error) {
	patches := make(map[int64]int64, len(m.Program.Patch))
	for key, value := range m.Program.Patch {
		addr, err := strconv.ParseInt(key, 10, 64)
		if err != nil || addr < 0 {
			return nil, fmt.Errorf("[program.patch] invalid address %q", key)
		}
		patches[addr] = value
	}
	return patches, nil
}

// ProgramPath returns the program path resolved against the manifest
// directory. Returns "" if no path is configured.
func (m *Manifest) ProgramPath() string {
	return m.resolve(m.Program.Path)
}

// DumpPath returns the fault dump path resolved against the manifest
// directory. Returns "" if dumps are disabled.
func (m *Manifest) DumpPath() string {
	return m.resolve(m.Fault.Dump)
}

// LogPath returns the log file path, or nil to log to stderr.
func (m *Manifest) LogPath() *string {
	if m.Log.File == "" {
		return nil
	}
	path := m.resolve(m.Log.File)
	return &path
}

func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.Dir, path)
}

// TimeoutDuration parses Timeout. Zero means no timeout.
func (n Network) TimeoutDuration() (time.Duration, error) {
	if n.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(n.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", n.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: negative", n.Timeout)
	}
	return d, nil
}
