package core

import "testing"

func TestSession_ApplyStateDeltaAndClone(t *testing.T) {
	s := NewSession("s1")

	delta := map[string]any{"a": 1, "b": "x"}

	s.ApplyStateDelta(delta)
	if v, ok := s.GetState("a"); !ok || v.(int) != 1 {
		t.Fatalf("State not applied: %+v", s.State)
	}

	clone := s.Clone()
	if clone == s {
		t.Error("Clone should be a different pointer")
	}

	clone.SetState("c", 2)
	if _, exists := s.GetState("c"); exists {
		t.Error("Original should not have clone's new key")
	}
}

func TestSession_AddEventAndTranscript(t *testing.T) {
	s := NewSession("s2")
	s.AddEvent(NewUserEvent("hi"))
	s.AddEvent(NewAssistantEvent("researcher", "hello"))
	s.AddEvent(NewTaskEvent("system", "", "internal note"))

	all := s.Events()
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	orig := all[0].Text
	all[0].Text = "changed"
	if s.Events()[0].Text != orig {
		t.Error("events slice should be copied on read")
	}

	transcript := s.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("expected 2 conversational events, got %d", len(transcript))
	}
	if transcript[0].Role != "user" || transcript[1].Role != "assistant" {
		t.Errorf("transcript order wrong: %+v", transcript)
	}
	if transcript[1].Agent != "researcher" {
		t.Errorf("assistant event should carry agent attribution, got %q", transcript[1].Agent)
	}
}

func TestAgentError_WrapsCause(t *testing.T) {
	cause := NewAgentError("t0", "inner", nil)
	err := NewAgentError("t1", "researcher", cause)

	if err.Error() == "" {
		t.Fatal("error string should not be empty")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should expose the cause")
	}
}
