// Copyright (c) Microsoft. All rights reserved.

package agentdef

import "strings"

// Tool kinds understood by the deployer. Kinds are compared case-insensitively;
// other kinds parse and validate but are not deployable.
const (
	KindOpenAPI = "OpenAPI"
	KindAgent   = "agent"
)

// Document is the root of a definitions file.
type Document struct {
	Agents []AgentDefinition `yaml:"agents" json:"agents,omitempty"`
	Tools  []ToolDefinition  `yaml:"tools" json:"tools,omitempty"`
}

// AgentDefinition describes one agent to deploy.
type AgentDefinition struct {
	Type         string   `yaml:"type" json:"type,omitempty"`
	Name         string   `yaml:"name" json:"name" validate:"required" jsonschema:"required"`
	Model        string   `yaml:"model" json:"model,omitempty" jsonschema:"description=Model deployment name"`
	Instructions string   `yaml:"instructions" json:"instructions,omitempty" jsonschema:"description=System instructions; {placeholder} tokens are substituted at deploy time"`
	Tools        []string `yaml:"tools" json:"tools,omitempty" jsonschema:"description=Names of tools from the tools section"`
}

// ToolDefinition describes a tool that agents can reference by name.
// A tool of kind [KindAgent] refers to the agent with the same name.
type ToolDefinition struct {
	Type        string `yaml:"type" json:"type,omitempty"`
	Name        string `yaml:"name" json:"name" validate:"required" jsonschema:"required"`
	Kind        string `yaml:"kind" json:"kind" validate:"required" jsonschema:"required,example=OpenAPI,example=agent"`
	Description string `yaml:"description" json:"description,omitempty"`
	SpecURL     string `yaml:"spec_url" json:"spec_url,omitempty" jsonschema:"format=uri,description=OpenAPI specification location (OpenAPI tools only)"`
}

// IsAgent reports whether the tool wraps another agent.
func (t ToolDefinition) IsAgent() bool { return strings.EqualFold(t.Kind, KindAgent) }

// IsOpenAPI reports whether the tool wraps an OpenAPI-described HTTP API.
func (t ToolDefinition) IsOpenAPI() bool { return strings.EqualFold(t.Kind, KindOpenAPI) }

// FindAgent returns the first agent whose name matches case-insensitively.
func FindAgent(agents []AgentDefinition, name string) (AgentDefinition, bool) {
	for _, a := range agents {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return AgentDefinition{}, false
}

// FindTool returns the first tool whose name matches case-insensitively.
func FindTool(tools []ToolDefinition, name string) (ToolDefinition, bool) {
	for _, t := range tools {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return ToolDefinition{}, false
}

// ToolsByKind returns the tools of the given kind in source order.
func ToolsByKind(tools []ToolDefinition, kind string) []ToolDefinition {
	var out []ToolDefinition
	for _, t := range tools {
		if strings.EqualFold(t.Kind, kind) {
			out = append(out, t)
		}
	}
	return out
}

// AgentNames returns the names of agents in order.
func AgentNames(agents []AgentDefinition) []string {
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.Name
	}
	return names
}

// nameKey is the lookup key for case-insensitive names.
func nameKey(name string) string { return strings.ToLower(name) }
