// Copyright (c) Microsoft. All rights reserved.

package agentdef

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var fields = validator.New(validator.WithRequiredStructEnabled())

// Check runs [Validate] and returns a [*ValidationError] carrying every
// problem, or nil when the definitions are consistent.
func Check(agents []AgentDefinition, tools []ToolDefinition) error {
	if ok, errs := Validate(agents, tools); !ok {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Validate checks definitions for missing required fields, duplicate names,
// agent-kind tools that name no agent, agents that reference unknown tools,
// and cyclic agent dependencies. All checks run so that every problem is
// reported in one pass.
func Validate(agents []AgentDefinition, tools []ToolDefinition) (bool, []string) {
	var errs []string

	errs = append(errs, checkFields(agents, tools)...)
	errs = append(errs, checkDuplicates(agents, tools)...)

	g := NewGraph(agents, tools)

	for _, t := range tools {
		if t.IsAgent() {
			if _, ok := g.Agent(t.Name); !ok {
				errs = append(errs, fmt.Sprintf("Tool '%s' of kind 'agent' references non-existent agent '%s'", t.Name, t.Name))
			}
		}
	}

	for _, a := range agents {
		for _, toolName := range a.Tools {
			if _, ok := g.Tool(toolName); !ok {
				errs = append(errs, fmt.Sprintf("Agent '%s' references non-existent tool '%s'", a.Name, toolName))
			}
		}
	}

	for _, a := range agents {
		if cycle := g.FindCycle(a.Name); cycle != nil {
			errs = append(errs, "Cyclic dependency detected: "+formatCycle(cycle))
		}
	}

	return len(errs) == 0, errs
}

func checkFields(agents []AgentDefinition, tools []ToolDefinition) []string {
	var errs []string
	for i, a := range agents {
		errs = append(errs, fieldErrors(a, "Agent", a.Name, i)...)
	}
	for i, t := range tools {
		errs = append(errs, fieldErrors(t, "Tool", t.Name, i)...)
	}
	return errs
}

func fieldErrors(def any, what, name string, index int) []string {
	err := fields.Struct(def)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{fmt.Sprintf("%s #%d: %v", what, index+1, err)}
	}

	label := fmt.Sprintf("%s #%d", what, index+1)
	if name != "" {
		label = fmt.Sprintf("%s '%s'", what, name)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is missing required field '%s'", label, fe.Field()))
	}
	return msgs
}

func checkDuplicates(agents []AgentDefinition, tools []ToolDefinition) []string {
	var errs []string
	seen := make(map[string]bool, len(agents))
	for _, a := range agents {
		k := nameKey(a.Name)
		if a.Name != "" && seen[k] {
			errs = append(errs, fmt.Sprintf("Duplicate agent name '%s'", a.Name))
		}
		seen[k] = true
	}
	seen = make(map[string]bool, len(tools))
	for _, t := range tools {
		k := nameKey(t.Name)
		if t.Name != "" && seen[k] {
			errs = append(errs, fmt.Sprintf("Duplicate tool name '%s'", t.Name))
		}
		seen[k] = true
	}
	return errs
}
