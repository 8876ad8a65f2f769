package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/engine"
)

func TestParse_FullDocument(t *testing.T) {
	doc := `
mode: dfs
default_agent: worker
check_convergence: true
evidence_keys:
  - output
  - data.status
budget:
  max_depth: 4
  max_breadth: 3
  max_total_agents: 12
  max_wall_time: 90s
  max_iterations: 30
  stagnation_threshold: 2
`

	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Mode != core.TraversalDFS {
		t.Errorf("mode = %q, want %q", cfg.Mode, core.TraversalDFS)
	}
	if cfg.DefaultAgent != "worker" {
		t.Errorf("default_agent = %q, want %q", cfg.DefaultAgent, "worker")
	}
	if !cfg.CheckConvergence {
		t.Error("check_convergence should be true")
	}
	if len(cfg.EvidenceKeys) != 2 || cfg.EvidenceKeys[1] != "data.status" {
		t.Errorf("evidence_keys = %v", cfg.EvidenceKeys)
	}
	if cfg.Budget.MaxDepth != 4 {
		t.Errorf("max_depth = %d, want 4", cfg.Budget.MaxDepth)
	}
	if cfg.Budget.MaxWallTime != 90*time.Second {
		t.Errorf("max_wall_time = %s, want 90s", cfg.Budget.MaxWallTime)
	}
	if cfg.Budget.StagnationThreshold != 2 {
		t.Errorf("stagnation_threshold = %d, want 2", cfg.Budget.StagnationThreshold)
	}
}

func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Mode != core.TraversalBFS {
		t.Errorf("mode = %q, want %q", cfg.Mode, core.TraversalBFS)
	}
	if cfg.Budget != core.DefaultBudget() {
		t.Errorf("budget = %+v, want defaults", cfg.Budget)
	}
}

func TestParse_PartialBudgetKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("budget:\n  max_depth: 7\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Budget.MaxDepth != 7 {
		t.Errorf("max_depth = %d, want 7", cfg.Budget.MaxDepth)
	}
	if want := core.DefaultBudget().MaxIterations; cfg.Budget.MaxIterations != want {
		t.Errorf("max_iterations = %d, want default %d", cfg.Budget.MaxIterations, want)
	}
}

func TestParse_RejectsUnknownMode(t *testing.T) {
	if _, err := Parse([]byte("mode: sideways\n")); err == nil {
		t.Fatal("unknown mode should error")
	}
}

func TestParse_RejectsNegativeLimit(t *testing.T) {
	if _, err := Parse([]byte("budget:\n  max_depth: -1\n")); err == nil {
		t.Fatal("negative limit should error")
	}
}

func TestParse_RejectsBadDuration(t *testing.T) {
	if _, err := Parse([]byte("budget:\n  max_wall_time: ninety seconds\n")); err == nil {
		t.Fatal("unparseable duration should error")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("default_agent: ${SWARM_TEST_AGENT}\n"), 0600)
	os.Setenv("SWARM_TEST_AGENT", "scout")
	defer os.Unsetenv("SWARM_TEST_AGENT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultAgent != "scout" {
		t.Errorf("default_agent = %q, want %q", cfg.DefaultAgent, "scout")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestEngineOptions_AppliesConfig(t *testing.T) {
	cfg, err := Parse([]byte("mode: adaptive\ndefault_agent: scout\ncheck_convergence: true\nevidence_keys: [output]\nbudget:\n  max_total_agents: 6\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var opts engine.Options
	cfg.EngineOptions()(&opts)

	if opts.Mode != core.TraversalAdaptive {
		t.Errorf("mode = %q, want %q", opts.Mode, core.TraversalAdaptive)
	}
	if opts.DefaultAgent != "scout" {
		t.Errorf("default agent = %q, want %q", opts.DefaultAgent, "scout")
	}
	if !opts.CheckConvergence {
		t.Error("check convergence should be set")
	}
	if opts.Budget.MaxTotalAgents != 6 {
		t.Errorf("max total agents = %d, want 6", opts.Budget.MaxTotalAgents)
	}
	if len(opts.EvidenceKeys) != 1 || opts.EvidenceKeys[0] != "output" {
		t.Errorf("evidence keys = %v", opts.EvidenceKeys)
	}
}

func TestEngineOptions_EmptyDefaultAgentLeavesOption(t *testing.T) {
	cfg := Default()

	opts := engine.Options{DefaultAgent: "existing"}
	cfg.EngineOptions()(&opts)

	if opts.DefaultAgent != "existing" {
		t.Errorf("default agent = %q, want %q", opts.DefaultAgent, "existing")
	}
}
