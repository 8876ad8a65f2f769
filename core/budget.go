package core

import (
	"fmt"
	"time"
)

// Budget is the immutable set of resource limits applied to one delegation
// run. All fields must be positive; Validate rejects anything else.
//
// The limits are independent dimensions:
//   - MaxDepth bounds how far the engine descends into the declared tree
//   - MaxBreadth bounds how many children one BFS fan-out may launch
//   - MaxTotalAgents bounds the number of agent executions for the run
//   - MaxWallTime bounds elapsed time, checked between units of work
//   - MaxIterations bounds traversal iterations (one per BFS pass, one per
//     DFS node visit)
//   - StagnationThreshold is the number of consecutive identical novelty
//     signatures after which the run counts as converged
//
// A Budget is created once per delegation policy and shared read-only
// across runs.
type Budget struct {
	MaxDepth            int
	MaxBreadth          int
	MaxTotalAgents      int
	MaxWallTime         time.Duration
	MaxIterations       int
	StagnationThreshold int
}

// DefaultBudget returns the baseline limits used when the caller does not
// override them.
func DefaultBudget() Budget {
	return Budget{
		MaxDepth:            3,
		MaxBreadth:          5,
		MaxTotalAgents:      10,
		MaxWallTime:         5 * time.Minute,
		MaxIterations:       20,
		StagnationThreshold: 3,
	}
}

// NewBudget builds a Budget starting from DefaultBudget and applying the
// provided overrides. Construction fails if any resulting limit is
// non-positive.
func NewBudget(optFns ...func(b *Budget)) (Budget, error) {
	b := DefaultBudget()

	for _, fn := range optFns {
		fn(&b)
	}

	if err := b.Validate(); err != nil {
		return Budget{}, err
	}

	return b, nil
}

// Validate reports the first non-positive limit, if any.
func (b Budget) Validate() error {
	switch {
	case b.MaxDepth <= 0:
		return fmt.Errorf("budget: max depth must be positive, got %d", b.MaxDepth)
	case b.MaxBreadth <= 0:
		return fmt.Errorf("budget: max breadth must be positive, got %d", b.MaxBreadth)
	case b.MaxTotalAgents <= 0:
		return fmt.Errorf("budget: max total agents must be positive, got %d", b.MaxTotalAgents)
	case b.MaxWallTime <= 0:
		return fmt.Errorf("budget: max wall time must be positive, got %s", b.MaxWallTime)
	case b.MaxIterations <= 0:
		return fmt.Errorf("budget: max iterations must be positive, got %d", b.MaxIterations)
	case b.StagnationThreshold <= 0:
		return fmt.Errorf("budget: stagnation threshold must be positive, got %d", b.StagnationThreshold)
	}

	return nil
}
