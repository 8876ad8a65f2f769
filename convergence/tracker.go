package convergence

import "sync"

// Tracker folds batches of delegation outcomes into novelty signatures
// and counts how many consecutive batches produced the same one.
//
// One tracker serves all Delegate calls on an engine, so history spans
// runs until Reset is called. All methods are safe for concurrent use.
type Tracker struct {
	mu              sync.Mutex
	evidenceKeys    []string
	history         []string
	stagnationCount int
}

// NewTracker creates a tracker that fingerprints outcomes by the given
// evidence keys. With no keys every batch hashes identically, so any two
// consecutive batches count as stagnant.
func NewTracker(evidenceKeys []string) *Tracker {
	keys := make([]string, len(evidenceKeys))
	copy(keys, evidenceKeys)

	return &Tracker{evidenceKeys: keys}
}

// CheckNovelty fingerprints one batch of outcomes and returns the
// signature. Batch order matters: the same outcomes in a different order
// produce a different signature. A signature equal to its immediate
// predecessor grows the stagnation count; a novel one resets it to zero.
func (t *Tracker) CheckNovelty(batch ...any) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var values []string
	for _, outcome := range batch {
		values = append(values, extractEvidence(t.evidenceKeys, outcome)...)
	}

	sig := signature(values)

	if n := len(t.history); n > 0 {
		if t.history[n-1] == sig {
			t.stagnationCount++
		} else {
			t.stagnationCount = 0
		}
	}

	t.history = append(t.history, sig)

	return sig
}

// Converged reports whether the stagnation count has reached the given
// threshold.
func (t *Tracker) Converged(threshold int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stagnationCount >= threshold
}

// StagnationCount returns how many consecutive signatures matched their
// predecessor.
func (t *Tracker) StagnationCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stagnationCount
}

// LastSignature returns the most recent signature and whether one exists.
func (t *Tracker) LastSignature() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.history) == 0 {
		return "", false
	}

	return t.history[len(t.history)-1], true
}

// History returns a copy of all signatures in check order.
func (t *Tracker) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, len(t.history))
	copy(out, t.history)

	return out
}

// Reset clears history and the stagnation count. The evidence keys stay.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.history = nil
	t.stagnationCount = 0
}
