package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentswarm/core"
)

func TestBFS_BreadthAndAgentCapsBoundFanOut(t *testing.T) {
	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
		o.Budget = testBudget(t, func(b *core.Budget) {
			b.MaxDepth = 3
			b.MaxBreadth = 2
			b.MaxTotalAgents = 5
			b.MaxWallTime = time.Minute
			b.MaxIterations = 5
		})
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("child-1", "a"),
		core.NewChildSpec("child-2", "b"),
		core.NewChildSpec("child-3", "c"),
		core.NewChildSpec("child-4", "d"),
	)

	assert.True(t, res.Success)
	assert.Equal(t, 3, res.TotalAgents)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, 1, res.MaxDepthReached)
	assert.Equal(t, core.StopReasonCompleted, res.StopReason)

	calls := exec.callOrder()
	assert.ElementsMatch(t, []string{"root", "child-1", "child-2"}, calls)
	assert.NotContains(t, calls, "child-3")
	assert.NotContains(t, calls, "child-4")
}

func TestBFS_RunsSingleLevelOnly(t *testing.T) {
	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("child", "c",
			core.NewChildSpec("grandchild", "never visited in a single pass"),
		),
	)

	assert.Equal(t, 2, res.TotalAgents)
	assert.NotContains(t, exec.callOrder(), "grandchild")
}

func TestBFS_TruncatesFanOutToRemainingAgentBudget(t *testing.T) {
	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
		o.Budget = testBudget(t, func(b *core.Budget) {
			b.MaxBreadth = 5
			b.MaxTotalAgents = 3
		})
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("child-1", "a"),
		core.NewChildSpec("child-2", "b"),
		core.NewChildSpec("child-3", "c"),
		core.NewChildSpec("child-4", "d"),
	)

	// Breadth allows five, but only two agent slots remain after the root.
	assert.Equal(t, 3, res.TotalAgents)
	assert.ElementsMatch(t, []string{"root", "child-1", "child-2"}, exec.callOrder())
}

func TestBFS_DepthLookAheadStopsBeforeDescending(t *testing.T) {
	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
		o.Budget = testBudget(t, func(b *core.Budget) { b.MaxDepth = 1 })
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("child", "one level too deep"),
	)

	assert.Equal(t, 1, res.TotalAgents)
	assert.Equal(t, core.StopReasonDepthLimit, res.StopReason)
	assert.Zero(t, res.MaxDepthReached)
	assert.Equal(t, []string{"root"}, exec.callOrder())
}

func TestBFS_ResultsArriveInCompletionOrder(t *testing.T) {
	slowChild := func(taskID, _ string) (*core.AgentResult, error) {
		time.Sleep(80 * time.Millisecond)
		return &core.AgentResult{TaskID: taskID, Agent: "slow", Output: "late"}, nil
	}
	fastChild := func(taskID, _ string) (*core.AgentResult, error) {
		time.Sleep(5 * time.Millisecond)
		return &core.AgentResult{TaskID: taskID, Agent: "fast", Output: "early"}, nil
	}

	exec := newTestExecutor().onAgent("slow", slowChild).onAgent("fast", fastChild)
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("slow", "s"),
		core.NewChildSpec("fast", "f"),
	)

	require.Len(t, res.Results, 3)
	assert.Equal(t, "root", res.Results[0].Agent)
	assert.Equal(t, "fast", res.Results[1].Agent)
	assert.Equal(t, "slow", res.Results[2].Agent)
}

func TestBFS_FailingChildDoesNotCancelSiblings(t *testing.T) {
	boom := errors.New("no tokens left")

	exec := newTestExecutor().onAgent("broken", func(string, string) (*core.AgentResult, error) {
		return nil, boom
	})
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("worker-1", "a"),
		core.NewChildSpec("broken", "b"),
		core.NewChildSpec("worker-2", "c"),
	)

	assert.False(t, res.Success)
	assert.Equal(t, 4, res.TotalAgents)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "broken", res.Errors[0].Agent)
	assert.ErrorIs(t, res.Errors[0], boom)
	assert.Len(t, res.Results, 3)
	assert.ElementsMatch(t, []string{"root", "worker-1", "broken", "worker-2"}, exec.callOrder())
}

func TestBFS_ChildPanicFailsAlone(t *testing.T) {
	exec := newTestExecutor().onAgent("unstable", func(string, string) (*core.AgentResult, error) {
		panic("segfault in disguise")
	})
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
	})

	var res *core.DelegationResult

	assert.NotPanics(t, func() {
		res = eng.Delegate(context.Background(), "root", "go",
			nil,
			core.NewChildSpec("unstable", "u"),
			core.NewChildSpec("steady", "s"),
		)
	})

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "unstable", res.Errors[0].Agent)
	assert.Contains(t, res.Errors[0].Message, "panic")
	assert.Len(t, res.Results, 2)
}

func TestBFS_ConvergenceStopsAtThreshold(t *testing.T) {
	settled := func(taskID, _ string) (*core.AgentResult, error) {
		return &core.AgentResult{TaskID: taskID, Output: "settled"}, nil
	}

	exec := newTestExecutor().
		onAgent("root", settled).
		onAgent("worker", settled)

	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
		o.CheckConvergence = true
		o.EvidenceKeys = []string{"output"}
		o.Budget = testBudget(t, func(b *core.Budget) {
			b.MaxBreadth = 2
			b.StagnationThreshold = 2
		})
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("worker", "a"),
		core.NewChildSpec("worker", "b"),
		core.NewChildSpec("worker", "c"),
		core.NewChildSpec("worker", "d"),
	)

	assert.Equal(t, 3, res.TotalAgents)
	assert.Equal(t, core.StopReasonConverged, res.StopReason)
	assert.True(t, res.Converged)
	assert.True(t, res.StagnationDetected)
	assert.NotEmpty(t, res.NoveltySignature)
}

func TestBFS_CircularSpecTerminates(t *testing.T) {
	root := core.NewChildSpec("loop", "again")
	root.Children = []*core.ChildSpec{root}

	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalBFS
	})

	res := eng.Delegate(context.Background(), "loop", "again", nil, root)

	// A single pass visits the self-referencing node as root and once as
	// a child, then stops.
	assert.Equal(t, 2, res.TotalAgents)
	assert.Equal(t, core.StopReasonCompleted, res.StopReason)
}
