// Package convergence detects stagnation across successive batches of
// delegation outcomes.
//
// Outcomes are reduced to novelty signatures: configurable evidence keys
// are extracted from each outcome's JSON form and hashed in order. When
// consecutive batches produce identical signatures the work is no longer
// generating new information, and the delegation engine can stop spending
// budget on it.
package convergence
