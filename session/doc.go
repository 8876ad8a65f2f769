// Package session provides storage implementations for per-task sessions.
// The delegation engine keys sessions by task ID, so the transcript and
// state a store holds for one session describe exactly one agent execution
// and its follow-ups.
package session
