package core

// ExecutionContext bundles the collaborator-facing payload of a delegation
// run. The engine forwards it to the Executor untouched; only the
// executor interprets the contents.
type ExecutionContext struct {
	// Session is an opaque session payload, typically a *Session or a
	// caller-defined equivalent.
	Session any

	// Tools is an opaque tool surface. The agent runtime accepts a
	// []tool.Tool here and merges it with the tools registered on the
	// agent definition.
	Tools any

	// Skills lists skill names the executed agents may draw on, in
	// priority order.
	Skills []string
}
