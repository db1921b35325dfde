// Package crew runs a fixed sequence of agent tasks against a chat model.
// Agents and tasks are declarative; all actual generation is delegated to the
// Model implementation.
package crew

import (
	"context"
	"fmt"
	"strings"
)

// Model is the one capability the crew needs from a language model backend.
type Model interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Agent describes a role. It holds no state; the same agent can back
// multiple tasks.
type Agent struct {
	Role      string
	Goal      string
	Backstory string
}

// systemPrompt renders the agent description into the system message for its
// task's completion call.
func (a *Agent) systemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.\n", a.Role)
	fmt.Fprintf(&b, "Your goal: %s\n", a.Goal)
	fmt.Fprintf(&b, "Background: %s", a.Backstory)
	return b.String()
}

// Task is one unit of work assigned to an agent. Description may contain
// {placeholder} tokens filled from the kickoff inputs.
type Task struct {
	Description    string
	ExpectedOutput string
	Agent          *Agent
}

// Crew executes its tasks in order. The output of each task is handed to the
// next one as context; the final task's output is the crew result.
type Crew struct {
	model Model
	tasks []*Task
}

func New(model Model, tasks ...*Task) *Crew {
	return &Crew{model: model, tasks: tasks}
}

// Kickoff runs the sequence. inputs fills {placeholder} tokens in task
// descriptions. The first failing task aborts the run.
func (c *Crew) Kickoff(ctx context.Context, inputs map[string]string) (string, error) {
	var previous string
	var output string

	for i, task := range c.tasks {
		prompt := interpolate(task.Description, inputs)
		if previous != "" {
			prompt += "\n\nContext from the previous task:\n" + previous
		}
		if task.ExpectedOutput != "" {
			prompt += "\n\nExpected output: " + task.ExpectedOutput
		}

		out, err := c.model.Complete(ctx, task.Agent.systemPrompt(), prompt)
		if err != nil {
			return "", fmt.Errorf("task %d (%s): %w", i+1, task.Agent.Role, err)
		}
		previous = out
		output = out
	}

	return output, nil
}

func interpolate(s string, inputs map[string]string) string {
	for key, value := range inputs {
		s = strings.ReplaceAll(s, "{"+key+"}", value)
	}
	return s
}
