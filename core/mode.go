package core

import "fmt"

// TraversalMode selects the strategy the engine uses to walk a declared
// delegation tree.
type TraversalMode string

const (
	// TraversalBFS executes children of a node concurrently, one level at
	// a time. It never descends past the immediate children of the root of
	// a Delegate call.
	TraversalBFS TraversalMode = "bfs"

	// TraversalDFS executes children sequentially in declaration order,
	// descending into each child's subtree before moving to its sibling.
	TraversalDFS TraversalMode = "dfs"

	// TraversalAdaptive picks BFS for shallow contexts and DFS for deep
	// ones at the moment Delegate is called.
	TraversalAdaptive TraversalMode = "adaptive"
)

// ParseTraversalMode converts a string into a TraversalMode, rejecting
// unknown values.
func ParseTraversalMode(s string) (TraversalMode, error) {
	switch TraversalMode(s) {
	case TraversalBFS, TraversalDFS, TraversalAdaptive:
		return TraversalMode(s), nil
	default:
		return "", fmt.Errorf("unknown traversal mode %q", s)
	}
}
