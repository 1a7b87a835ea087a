// Copyright (c) Microsoft. All rights reserved.

package agentdef

import "fmt"

// Order returns agents arranged so that every agent used as a connected-agent
// tool comes before the agents that use it. Agents without dependencies keep
// their relative input order.
//
// The definitions must have passed [Validate]. If a cycle is found anyway,
// Order stops and returns an error matching [ErrCyclicDependency].
func Order(agents []AgentDefinition, tools []ToolDefinition) ([]AgentDefinition, error) {
	g := NewGraph(agents, tools)

	ordered := make([]AgentDefinition, 0, len(agents))
	visited := make(map[string]bool, len(agents))
	onPath := make(map[string]bool)
	var path []string

	var visit func(a AgentDefinition) error
	visit = func(a AgentDefinition) error {
		k := nameKey(a.Name)
		if onPath[k] {
			return fmt.Errorf("%w: %s", ErrCyclicDependency, formatCycle(append(path, a.Name)))
		}
		if visited[k] {
			return nil
		}
		visited[k] = true
		onPath[k] = true
		path = append(path, a.Name)

		for _, dep := range g.deps[k] {
			depAgent, ok := g.Agent(dep)
			if !ok {
				continue
			}
			if err := visit(depAgent); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		onPath[k] = false
		ordered = append(ordered, a)
		return nil
	}

	for _, a := range agents {
		if err := visit(a); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
