// Copyright (c) Microsoft. All rights reserved.

package deploy

import (
	"context"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

// AgentService is the remote agent-hosting service. Provider packages
// (e.g., foundry) implement this interface.
type AgentService interface {
	// ListAgents returns the agents that already exist on the service.
	ListAgents(ctx context.Context) ([]RemoteAgent, error)

	// CreateAgent creates a new agent.
	CreateAgent(ctx context.Context, req AgentRequest) (*RemoteAgent, error)

	// UpdateAgent replaces the model, instructions and tools of an existing agent.
	UpdateAgent(ctx context.Context, id string, req AgentRequest) (*RemoteAgent, error)
}

// SpecFetcher downloads OpenAPI specification documents.
type SpecFetcher interface {
	// Download returns the raw bytes at url. Failures match [ErrDownload].
	Download(ctx context.Context, url string) ([]byte, error)
}

// RemoteAgent is an agent as known to the agent service.
type RemoteAgent struct {
	ID           string
	Name         string
	Model        string
	Instructions string
	ToolCount    int
}

// AgentRequest carries the resolved configuration of one agent.
type AgentRequest struct {
	Name         string
	Model        string
	Instructions string
	Tools        []Tool
}

// Tool is a resolved tool attached to an [AgentRequest]. It is one of
// [OpenAPITool] or [ConnectedAgentTool].
type Tool interface {
	Kind() string
}

// OpenAPITool exposes an HTTP API described by an OpenAPI document.
type OpenAPITool struct {
	Name          string
	Description   string
	Spec          []byte
	DefaultParams []string
}

// ConnectedAgentTool exposes an already-created agent as a callable sub-agent.
type ConnectedAgentTool struct {
	ID          string
	Name        string
	Description string
}

func (OpenAPITool) Kind() string        { return agentdef.KindOpenAPI }
func (ConnectedAgentTool) Kind() string { return agentdef.KindAgent }
