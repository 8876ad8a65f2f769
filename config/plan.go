package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentswarm/core"
)

// LoadPlan reads a declarative delegation tree from a YAML file:
//
//	agent: planner
//	prompt: Plan the release
//	children:
//	  - agent: researcher
//	    prompt: Collect open issues
//	  - prompt: Draft the changelog
//
// Nodes that omit an agent fall back to the engine's default agent at
// delegation time.
func LoadPlan(path string) (*core.ChildSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	return ParsePlan([]byte(os.ExpandEnv(string(data))))
}

// ParsePlan decodes a YAML delegation tree.
func ParsePlan(data []byte) (*core.ChildSpec, error) {
	var spec core.ChildSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}

	if spec.Prompt == "" {
		return nil, errors.New("plan: root prompt must not be empty")
	}

	return &spec, nil
}
