package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/agentswarm/core"
)

func TestAdaptive_FreshDelegationRunsBreadthFirst(t *testing.T) {
	exec := newTestExecutor()
	eng := newTestEngine(t, exec, func(o *Options) {
		o.Mode = core.TraversalAdaptive
	})

	res := eng.Delegate(context.Background(), "root", "go",
		nil,
		core.NewChildSpec("child", "c",
			core.NewChildSpec("grandchild", "depth-first would reach this"),
		),
	)

	assert.Equal(t, 2, res.TotalAgents)
	assert.Equal(t, 1, res.Iterations)
	assert.NotContains(t, exec.callOrder(), "grandchild")
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  core.TraversalMode
		depth int
		want  core.TraversalMode
	}{
		{name: "bfs stays bfs", mode: core.TraversalBFS, depth: 5, want: core.TraversalBFS},
		{name: "dfs stays dfs", mode: core.TraversalDFS, depth: 0, want: core.TraversalDFS},
		{name: "adaptive shallow picks bfs", mode: core.TraversalAdaptive, depth: 0, want: core.TraversalBFS},
		{name: "adaptive below threshold picks bfs", mode: core.TraversalAdaptive, depth: 1, want: core.TraversalBFS},
		{name: "adaptive at threshold picks dfs", mode: core.TraversalAdaptive, depth: 2, want: core.TraversalDFS},
		{name: "adaptive deep picks dfs", mode: core.TraversalAdaptive, depth: 4, want: core.TraversalDFS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, newTestExecutor(), func(o *Options) {
				o.Mode = tt.mode
			})

			dctx := core.NewDelegationContext()
			for i := 0; i < tt.depth; i++ {
				dctx.PushDepth()
			}

			assert.Equal(t, tt.want, eng.selectMode(dctx))
		})
	}
}
