package main

import (
	"context"
	"slices"
	"testing"

	"github.com/chazu/intcode/manifest"
	"github.com/chazu/intcode/pkg/amplifier"
	"github.com/chazu/intcode/pkg/intcode"
)

func TestParseList(t *testing.T) {
	got, err := parseList("1, 5,-3")
	if err != nil {
		t.Fatalf("parseList failed: %v", err)
	}
	if !slices.Equal(got, []int64{1, 5, -3}) {
		t.Errorf("parseList = %v, want [1 5 -3]", got)
	}

	if got, err := parseList(" "); err != nil || got != nil {
		t.Errorf("parseList(blank) = %v, %v; want nil, nil", got, err)
	}
	if _, err := parseList("1,x"); err == nil {
		t.Error("expected error for non-numeric entry")
	}
}

func TestParsePatches(t *testing.T) {
	got, err := parsePatches("1=12, 2 = 2,")
	if err != nil {
		t.Fatalf("parsePatches failed: %v", err)
	}
	if len(got) != 2 || got[1] != 12 || got[2] != 2 {
		t.Errorf("parsePatches = %v, want map[1:12 2:2]", got)
	}

	for _, bad := range []string{"1", "a=1", "-1=4", "1=b"} {
		if _, err := parsePatches(bad); err == nil {
			t.Errorf("parsePatches(%q) should fail", bad)
		}
	}
}

func TestSearch(t *testing.T) {
	prog := intcode.NewProgram(3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0)
	m := manifest.Default()

	res, err := search(context.Background(), prog, amplifier.TopologyChain, m.Chain)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Signal != 43210 || !slices.Equal(res.Phases, []int64{4, 3, 2, 1, 0}) {
		t.Errorf("search = %d %v, want 43210 [4 3 2 1 0]", res.Signal, res.Phases)
	}
}

func TestSearchInvalidTimeout(t *testing.T) {
	prog := intcode.NewProgram(99)
	n := manifest.Network{Phases: []int64{0}, Timeout: "later"}
	if _, err := search(context.Background(), prog, amplifier.TopologyChain, n); err == nil {
		t.Error("expected error for invalid timeout")
	}
}
