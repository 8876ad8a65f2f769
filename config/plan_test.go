package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlan(t *testing.T) {
	doc := `
agent: planner
prompt: Plan the release
children:
  - agent: researcher
    prompt: Collect open issues
    children:
      - agent: summarizer
        prompt: Summarize findings
  - prompt: Draft the changelog
`

	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")
	os.WriteFile(path, []byte(doc), 0600)

	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan error: %v", err)
	}

	if plan.Agent != "planner" || plan.Prompt != "Plan the release" {
		t.Errorf("root = %q/%q", plan.Agent, plan.Prompt)
	}
	if len(plan.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(plan.Children))
	}
	if plan.Children[0].Agent != "researcher" {
		t.Errorf("first child agent = %q, want researcher", plan.Children[0].Agent)
	}
	if len(plan.Children[0].Children) != 1 || plan.Children[0].Children[0].Agent != "summarizer" {
		t.Errorf("grandchildren = %+v", plan.Children[0].Children)
	}
	if plan.Children[1].Agent != "" {
		t.Errorf("second child agent = %q, want empty for default fallback", plan.Children[1].Agent)
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	if _, err := LoadPlan("/nonexistent/plan.yaml"); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestParsePlan_RejectsEmptyPrompt(t *testing.T) {
	if _, err := ParsePlan([]byte("agent: worker\n")); err == nil {
		t.Fatal("plan without a root prompt should error")
	}
}

func TestParsePlan_RejectsMalformedYAML(t *testing.T) {
	if _, err := ParsePlan([]byte("prompt: [unclosed\n")); err == nil {
		t.Fatal("malformed yaml should error")
	}
}
