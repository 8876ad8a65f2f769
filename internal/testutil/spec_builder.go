package testutil

import (
	"fmt"

	"github.com/hupe1980/agentswarm/core"
)

// Chain builds a linear delegation tree: each agent becomes the single
// child of the one before it. Prompts are derived from the agent names.
func Chain(agents ...string) *core.ChildSpec {
	if len(agents) == 0 {
		return nil
	}

	root := core.NewChildSpec(agents[0], "task for "+agents[0])

	node := root
	for _, agent := range agents[1:] {
		child := core.NewChildSpec(agent, "task for "+agent)
		node.Children = []*core.ChildSpec{child}
		node = child
	}

	return root
}

// FanOut builds a two-level delegation tree: a root agent with n
// children named childAgent-1 through childAgent-n.
func FanOut(rootAgent, childAgent string, n int) *core.ChildSpec {
	root := core.NewChildSpec(rootAgent, "task for "+rootAgent)

	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("%s-%d", childAgent, i)
		root.Children = append(root.Children, core.NewChildSpec(name, "task for "+name))
	}

	return root
}
