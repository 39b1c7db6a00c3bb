package deps_test

import (
	"testing"

	"wallcolle/internal/config"
	"wallcolle/internal/deps"
)

func TestForSelectsExternalToolsOnly(t *testing.T) {
	cfg := config.Default()
	requirements := deps.For(&cfg, true)
	if len(requirements) != 2 {
		t.Fatalf("expected imagemagick and oxipng requirements, got %v", requirements)
	}
	for _, req := range requirements {
		if req.Optional {
			t.Fatalf("retro requirements must not be optional: %+v", req)
		}
	}

	cfg.Tools.Resizer = config.ResizerBuiltin
	cfg.Tools.Optimizer = config.OptimizerBuiltin
	if got := deps.For(&cfg, true); len(got) != 0 {
		t.Fatalf("builtin transforms need no binaries, got %v", got)
	}
}

func TestForNormalVariantIsOptional(t *testing.T) {
	cfg := config.Default()
	for _, req := range deps.For(&cfg, false) {
		if !req.Optional {
			t.Fatalf("normal variant must not hard-require %q", req.Name)
		}
	}
}

func TestCheckBinaries(t *testing.T) {
	results := deps.CheckBinaries([]deps.Requirement{
		{Name: "Shell", Command: "sh"},
		{Name: "Missing", Command: "wallcolle-no-such-binary"},
		{Name: "Unset", Command: ""},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected sh to be available: %+v", results[0])
	}
	if results[1].Available || results[1].Detail == "" {
		t.Fatalf("expected missing binary detail: %+v", results[1])
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected unconfigured detail: %+v", results[2])
	}
}
