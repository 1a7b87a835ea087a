// Copyright (c) Microsoft. All rights reserved.

package agentdef

import (
	"slices"
	"strings"
)

// Graph is the agent dependency graph induced by agent-kind tool references.
// An edge A -> B exists when A lists a tool named B whose kind is "agent".
// Duplicate names collapse last-wins; [Validate] reports them separately.
type Graph struct {
	agents map[string]AgentDefinition
	tools  map[string]ToolDefinition
	deps   map[string][]string
}

// NewGraph builds the adjacency structure for agents and tools.
func NewGraph(agents []AgentDefinition, tools []ToolDefinition) *Graph {
	g := &Graph{
		agents: make(map[string]AgentDefinition, len(agents)),
		tools:  make(map[string]ToolDefinition, len(tools)),
		deps:   make(map[string][]string, len(agents)),
	}
	for _, t := range tools {
		g.tools[nameKey(t.Name)] = t
	}
	for _, a := range agents {
		k := nameKey(a.Name)
		g.agents[k] = a

		var deps []string
		for _, toolName := range a.Tools {
			if t, ok := g.tools[nameKey(toolName)]; ok && t.IsAgent() {
				deps = append(deps, t.Name)
			}
		}
		g.deps[k] = deps
	}
	return g
}

// Agent returns the agent registered under name.
func (g *Graph) Agent(name string) (AgentDefinition, bool) {
	a, ok := g.agents[nameKey(name)]
	return a, ok
}

// Tool returns the tool registered under name.
func (g *Graph) Tool(name string) (ToolDefinition, bool) {
	t, ok := g.tools[nameKey(name)]
	return t, ok
}

// Dependencies returns the names of agent-kind tools used by the named agent,
// in the agent's tool-list order. The referenced agents need not exist.
func (g *Graph) Dependencies(name string) []string {
	return slices.Clone(g.deps[nameKey(name)])
}

// FindCycle walks the graph depth-first from start and returns the path to
// the first name revisited while still on the current path, ending with the
// revisited name. It returns nil when no cycle is reachable from start.
func (g *Graph) FindCycle(start string) []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	var path []string

	var walk func(name string) []string
	walk = func(name string) []string {
		k := nameKey(name)
		if onPath[k] {
			return append(slices.Clone(path), name)
		}
		if visited[k] {
			return nil
		}
		visited[k] = true
		onPath[k] = true
		path = append(path, name)

		for _, dep := range g.deps[k] {
			if cycle := walk(dep); cycle != nil {
				return cycle
			}
		}

		path = path[:len(path)-1]
		onPath[k] = false
		return nil
	}
	return walk(start)
}

func formatCycle(path []string) string {
	return strings.Join(path, " -> ")
}
