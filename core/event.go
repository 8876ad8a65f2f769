package core

import (
	"time"

	"github.com/google/uuid"
)

// TaskEvent is one entry in a task's transcript: the user message that
// started an execution, the assistant output an agent produced, or a
// control note. After emission it should be treated as immutable.
type TaskEvent struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Agent     string    `json:"agent,omitempty"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTaskEvent creates an event with a generated ID and UTC timestamp.
// Prefer the role-specific constructors for common cases.
func NewTaskEvent(role, agent, text string) TaskEvent {
	return TaskEvent{
		ID:        NewID(),
		Role:      role,
		Agent:     agent,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}

// NewUserEvent creates a user-authored task event.
func NewUserEvent(text string) TaskEvent {
	return NewTaskEvent("user", "", text)
}

// NewAssistantEvent creates an assistant-authored task event attributed to
// the given agent.
func NewAssistantEvent(agent, text string) TaskEvent {
	return NewTaskEvent("assistant", agent, text)
}

// NewID generates a new unique identifier for tasks and events.
func NewID() string { return uuid.NewString() }
