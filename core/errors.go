package core

import "fmt"

// AgentError records one failed agent execution. Failures are data: the
// engine collects them alongside successes and keeps traversing.
type AgentError struct {
	// TaskID identifies the failed execution.
	TaskID string `json:"task_id"`

	// Agent is the name of the agent that failed.
	Agent string `json:"agent"`

	// Message is the failure description surfaced to callers.
	Message string `json:"message"`

	err error
}

// NewAgentError wraps an underlying error as a failed execution outcome.
func NewAgentError(taskID, agent string, err error) *AgentError {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return &AgentError{
		TaskID:  taskID,
		Agent:   agent,
		Message: msg,
		err:     err,
	}
}

// Error implements the error interface.
func (e *AgentError) Error() string {
	return fmt.Sprintf("agent %s (task %s): %s", e.Agent, e.TaskID, e.Message)
}

// Unwrap exposes the underlying error for errors.Is and errors.As.
func (e *AgentError) Unwrap() error {
	return e.err
}
