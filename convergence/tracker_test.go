package convergence

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentswarm/core"
)

func TestTracker_IdenticalEvidenceStagnates(t *testing.T) {
	tr := NewTracker([]string{"output"})

	sig1 := tr.CheckNovelty(&core.AgentResult{TaskID: "t1", Output: "done"})
	sig2 := tr.CheckNovelty(&core.AgentResult{TaskID: "t2", Output: "done"})
	sig3 := tr.CheckNovelty(&core.AgentResult{TaskID: "t3", Output: "done"})

	assert.Equal(t, sig1, sig2)
	assert.Equal(t, sig2, sig3)
	assert.Equal(t, 2, tr.StagnationCount())
	assert.False(t, tr.Converged(3))
	assert.True(t, tr.Converged(2))
}

func TestTracker_NovelEvidenceResetsCount(t *testing.T) {
	tr := NewTracker([]string{"output"})

	tr.CheckNovelty(&core.AgentResult{Output: "a"})
	tr.CheckNovelty(&core.AgentResult{Output: "a"})
	require.Equal(t, 1, tr.StagnationCount())

	tr.CheckNovelty(&core.AgentResult{Output: "b"})
	assert.Equal(t, 0, tr.StagnationCount())
	assert.False(t, tr.Converged(1))
}

func TestTracker_EvidenceKeysIgnoreOtherFields(t *testing.T) {
	tr := NewTracker([]string{"data.confidence"})

	sig1 := tr.CheckNovelty(&core.AgentResult{TaskID: "t1", Output: "first try", Data: map[string]any{"confidence": 0.9}})
	sig2 := tr.CheckNovelty(&core.AgentResult{TaskID: "t2", Output: "second try", Data: map[string]any{"confidence": 0.9}})

	assert.Equal(t, sig1, sig2, "differing non-evidence fields should not affect the signature")
	assert.Equal(t, 1, tr.StagnationCount())
}

func TestTracker_MissingKeysAreSentinels(t *testing.T) {
	tr := NewTracker([]string{"data.score"})

	sig1 := tr.CheckNovelty(&core.AgentResult{Output: "alpha"})
	sig2 := tr.CheckNovelty(&core.AgentResult{Output: "beta"})

	assert.Equal(t, sig1, sig2, "outcomes missing all evidence keys should fingerprint identically")
}

func TestTracker_ErrorsFeedLikeResults(t *testing.T) {
	tr := NewTracker([]string{"data.confidence"})

	tr.CheckNovelty(core.NewAgentError("t1", "worker", errors.New("boom")))
	tr.CheckNovelty(core.NewAgentError("t2", "worker", errors.New("different boom")))
	tr.CheckNovelty(core.NewAgentError("t3", "worker", errors.New("boom again")))

	assert.Equal(t, 2, tr.StagnationCount(), "repeated failures should stagnate")
}

func TestTracker_BatchProducesOneSignature(t *testing.T) {
	tr := NewTracker([]string{"output"})

	tr.CheckNovelty(
		&core.AgentResult{Output: "a"},
		&core.AgentResult{Output: "b"},
	)

	assert.Len(t, tr.History(), 1)
	assert.Equal(t, 0, tr.StagnationCount())
}

func TestTracker_BatchOrderMatters(t *testing.T) {
	tr := NewTracker([]string{"output"})

	sigAB := tr.CheckNovelty(&core.AgentResult{Output: "a"}, &core.AgentResult{Output: "b"})
	sigBA := tr.CheckNovelty(&core.AgentResult{Output: "b"}, &core.AgentResult{Output: "a"})

	assert.NotEqual(t, sigAB, sigBA)
	assert.Equal(t, 0, tr.StagnationCount())
}

func TestTracker_ValueBoundariesDoNotAlias(t *testing.T) {
	tr := NewTracker([]string{"output", "agent"})

	sig1 := tr.CheckNovelty(&core.AgentResult{Output: "ab", Agent: "c"})
	sig2 := tr.CheckNovelty(&core.AgentResult{Output: "a", Agent: "bc"})

	assert.NotEqual(t, sig1, sig2)
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker([]string{"output"})

	tr.CheckNovelty(&core.AgentResult{Output: "x"})
	tr.CheckNovelty(&core.AgentResult{Output: "x"})
	require.Equal(t, 1, tr.StagnationCount())

	tr.Reset()
	assert.Equal(t, 0, tr.StagnationCount())
	assert.Empty(t, tr.History())

	_, ok := tr.LastSignature()
	assert.False(t, ok)

	tr.CheckNovelty(&core.AgentResult{Output: "x"})
	assert.Equal(t, 0, tr.StagnationCount(), "first check after reset has no predecessor")
}

func TestTracker_LastSignature(t *testing.T) {
	tr := NewTracker([]string{"output"})

	_, ok := tr.LastSignature()
	require.False(t, ok)

	want := tr.CheckNovelty(&core.AgentResult{Output: "x"})
	got, ok := tr.LastSignature()
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestTracker_ConcurrentChecks(t *testing.T) {
	tr := NewTracker([]string{"output"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tr.CheckNovelty(&core.AgentResult{Output: fmt.Sprintf("out-%d", n)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, tr.History(), 20)
}
