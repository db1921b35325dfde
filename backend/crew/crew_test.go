package crew

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeModel records every call and replies from a canned list.
type fakeModel struct {
	systems []string
	prompts []string
	replies []string
	errs    []error
}

func (f *fakeModel) Complete(ctx context.Context, system, prompt string) (string, error) {
	call := len(f.prompts)
	f.systems = append(f.systems, system)
	f.prompts = append(f.prompts, prompt)
	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.replies) {
		return f.replies[call], nil
	}
	return fmt.Sprintf("reply-%d", call), nil
}

func TestKickoff_RunsTasksSequentially(t *testing.T) {
	model := &fakeModel{replies: []string{"processed", "final answer"}}
	c := NewConversationCrew(model)

	out, err := c.Kickoff(context.Background(), map[string]string{"user_input": "hello"})
	if err != nil {
		t.Fatal(err)
	}

	if out != "final answer" {
		t.Errorf("Expected last task output, got %q", out)
	}
	if len(model.prompts) != 2 {
		t.Fatalf("Expected 2 completion calls, got %d", len(model.prompts))
	}
	// First task sees the interpolated input, second sees the first's output.
	if !strings.Contains(model.prompts[0], "'hello'") {
		t.Errorf("First prompt should contain the user input: %q", model.prompts[0])
	}
	if !strings.Contains(model.prompts[1], "processed") {
		t.Errorf("Second prompt should carry the first task's output: %q", model.prompts[1])
	}
}

func TestKickoff_AgentRolesInSystemPrompts(t *testing.T) {
	model := &fakeModel{}
	c := NewConversationCrew(model)

	if _, err := c.Kickoff(context.Background(), map[string]string{"user_input": "x"}); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(model.systems[0], "Input Analysis Specialist") {
		t.Errorf("First system prompt missing role: %q", model.systems[0])
	}
	if !strings.Contains(model.systems[1], "Content Generation Expert") {
		t.Errorf("Second system prompt missing role: %q", model.systems[1])
	}
}

func TestKickoff_ErrorAbortsRun(t *testing.T) {
	model := &fakeModel{errs: []error{errors.New("model unavailable")}}
	c := NewConversationCrew(model)

	_, err := c.Kickoff(context.Background(), map[string]string{"user_input": "x"})
	if err == nil {
		t.Fatal("Expected error from failing first task")
	}
	if len(model.prompts) != 1 {
		t.Errorf("Expected run to abort after first task, got %d calls", len(model.prompts))
	}
	if !strings.Contains(err.Error(), "Input Analysis Specialist") {
		t.Errorf("Error should name the failing agent: %v", err)
	}
}

func TestInterpolate(t *testing.T) {
	got := interpolate("say {a} and {b}, then {a}", map[string]string{"a": "one", "b": "two"})
	if got != "say one and two, then one" {
		t.Errorf("Unexpected interpolation result: %q", got)
	}
}
