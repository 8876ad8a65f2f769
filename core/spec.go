package core

// ChildSpec declares one node of a delegation tree: the agent to run, the
// prompt to hand it, and the child tasks below it. The declared tree is a
// plan, not a guarantee. Budget limits decide how much of it actually
// executes, so a tree that references itself is still safe to delegate.
type ChildSpec struct {
	Agent    string       `json:"agent" yaml:"agent"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Children []*ChildSpec `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewChildSpec builds a ChildSpec for the given agent and prompt with
// optional children.
func NewChildSpec(agent, prompt string, children ...*ChildSpec) *ChildSpec {
	return &ChildSpec{
		Agent:    agent,
		Prompt:   prompt,
		Children: children,
	}
}
