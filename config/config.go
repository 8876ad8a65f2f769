// Package config loads delegation settings and declarative plans from
// YAML files.
//
// A config document selects the traversal mode and budget for an engine:
//
//	mode: dfs
//	default_agent: worker
//	check_convergence: true
//	evidence_keys:
//	  - output
//	  - data.status
//	budget:
//	  max_depth: 4
//	  max_breadth: 3
//	  max_total_agents: 12
//	  max_wall_time: 90s
//	  max_iterations: 30
//	  stagnation_threshold: 2
//
// Environment variables in the file are expanded before parsing, so
// values like ${SWARM_DEFAULT_AGENT} resolve at load time. Omitted
// fields keep their defaults; budget limits left at zero fall back to
// core.DefaultBudget.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/engine"
)

// Duration is a time.Duration that unmarshals from Go duration strings
// such as "90s" or "2m30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"90s\": %w", err)
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}

	*d = Duration(parsed)

	return nil
}

// Config holds resolved delegation settings ready to hand to an engine.
// Build one with Load, Parse, or Default rather than constructing it
// directly; resolution validates the mode and budget.
type Config struct {
	// Mode is the traversal strategy.
	Mode core.TraversalMode

	// DefaultAgent substitutes for child specs that omit an agent name.
	// Empty keeps the engine's default.
	DefaultAgent string

	// CheckConvergence enables the stagnation detector.
	CheckConvergence bool

	// EvidenceKeys are the outcome fields the detector fingerprints.
	EvidenceKeys []string

	// Budget bounds one delegation run.
	Budget core.Budget
}

// rawConfig is the YAML surface of Config before resolution.
type rawConfig struct {
	Mode             string    `yaml:"mode"`
	DefaultAgent     string    `yaml:"default_agent"`
	CheckConvergence bool      `yaml:"check_convergence"`
	EvidenceKeys     []string  `yaml:"evidence_keys"`
	Budget           rawBudget `yaml:"budget"`
}

type rawBudget struct {
	MaxDepth            int      `yaml:"max_depth"`
	MaxBreadth          int      `yaml:"max_breadth"`
	MaxTotalAgents      int      `yaml:"max_total_agents"`
	MaxWallTime         Duration `yaml:"max_wall_time"`
	MaxIterations       int      `yaml:"max_iterations"`
	StagnationThreshold int      `yaml:"stagnation_threshold"`
}

// Default returns the configuration an empty document resolves to.
func Default() *Config {
	return &Config{
		Mode:   core.TraversalBFS,
		Budget: core.DefaultBudget(),
	}
}

// Load reads a YAML config file, expanding environment variables before
// parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes and resolves a YAML config document.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return raw.resolve()
}

func (r rawConfig) resolve() (*Config, error) {
	mode := core.TraversalBFS

	if r.Mode != "" {
		parsed, err := core.ParseTraversalMode(r.Mode)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		mode = parsed
	}

	// Zero limits keep their defaults; anything else, negatives
	// included, goes through budget validation.
	budget, err := core.NewBudget(func(b *core.Budget) {
		if r.Budget.MaxDepth != 0 {
			b.MaxDepth = r.Budget.MaxDepth
		}
		if r.Budget.MaxBreadth != 0 {
			b.MaxBreadth = r.Budget.MaxBreadth
		}
		if r.Budget.MaxTotalAgents != 0 {
			b.MaxTotalAgents = r.Budget.MaxTotalAgents
		}
		if r.Budget.MaxWallTime != 0 {
			b.MaxWallTime = time.Duration(r.Budget.MaxWallTime)
		}
		if r.Budget.MaxIterations != 0 {
			b.MaxIterations = r.Budget.MaxIterations
		}
		if r.Budget.StagnationThreshold != 0 {
			b.StagnationThreshold = r.Budget.StagnationThreshold
		}
	})
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &Config{
		Mode:             mode,
		DefaultAgent:     r.DefaultAgent,
		CheckConvergence: r.CheckConvergence,
		EvidenceKeys:     append([]string(nil), r.EvidenceKeys...),
		Budget:           budget,
	}, nil
}

// EngineOptions returns an option function applying this configuration
// to an engine.
func (c *Config) EngineOptions() func(o *engine.Options) {
	return func(o *engine.Options) {
		o.Mode = c.Mode
		o.Budget = c.Budget
		o.CheckConvergence = c.CheckConvergence

		if len(c.EvidenceKeys) > 0 {
			o.EvidenceKeys = append([]string(nil), c.EvidenceKeys...)
		}

		if c.DefaultAgent != "" {
			o.DefaultAgent = c.DefaultAgent
		}
	}
}
