// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/microsoft/foundry-agent-samples/go/deploy"
)

// agentBody is the create/update request body.
type agentBody struct {
	Model        string     `json:"model"`
	Name         string     `json:"name,omitempty"`
	Instructions string     `json:"instructions"`
	Tools        []toolSpec `json:"tools"`
}

type toolSpec struct {
	Type           string          `json:"type"`
	OpenAPI        *openAPISpec    `json:"openapi,omitempty"`
	ConnectedAgent *connectedAgent `json:"connected_agent,omitempty"`
}

type openAPISpec struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Spec          json.RawMessage `json:"spec"`
	Auth          openAPIAuth     `json:"auth"`
	DefaultParams []string        `json:"default_params,omitempty"`
}

type openAPIAuth struct {
	Type string `json:"type"`
}

type connectedAgent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// agentObject is an agent as returned by the service.
type agentObject struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	Name         string            `json:"name"`
	Model        string            `json:"model"`
	Instructions string            `json:"instructions"`
	Tools        []json.RawMessage `json:"tools"`
}

type agentList struct {
	Data    []agentObject `json:"data"`
	FirstID string        `json:"first_id"`
	LastID  string        `json:"last_id"`
	HasMore bool          `json:"has_more"`
}

func (o *agentObject) toRemote() deploy.RemoteAgent {
	return deploy.RemoteAgent{
		ID:           o.ID,
		Name:         o.Name,
		Model:        o.Model,
		Instructions: o.Instructions,
		ToolCount:    len(o.Tools),
	}
}

// buildBody converts a deploy request into the service request body.
func buildBody(req deploy.AgentRequest, includeName bool) (*agentBody, error) {
	body := &agentBody{
		Model:        req.Model,
		Instructions: req.Instructions,
		Tools:        make([]toolSpec, 0, len(req.Tools)),
	}
	if includeName {
		body.Name = req.Name
	}

	for _, tool := range req.Tools {
		switch t := tool.(type) {
		case deploy.OpenAPITool:
			spec, err := specJSON(t.Spec)
			if err != nil {
				return nil, fmt.Errorf("tool %q: %w", t.Name, err)
			}
			body.Tools = append(body.Tools, toolSpec{
				Type: "openapi",
				OpenAPI: &openAPISpec{
					Name:          t.Name,
					Description:   t.Description,
					Spec:          spec,
					Auth:          openAPIAuth{Type: "anonymous"},
					DefaultParams: t.DefaultParams,
				},
			})
		case deploy.ConnectedAgentTool:
			body.Tools = append(body.Tools, toolSpec{
				Type: "connected_agent",
				ConnectedAgent: &connectedAgent{
					ID:          t.ID,
					Name:        t.Name,
					Description: t.Description,
				},
			})
		default:
			return nil, fmt.Errorf("%w: unsupported tool kind %q", ErrInvalidRequest, tool.Kind())
		}
	}
	return body, nil
}

// specJSON returns an OpenAPI document as JSON. YAML documents are converted.
func specJSON(spec []byte) (json.RawMessage, error) {
	if json.Valid(spec) {
		return json.RawMessage(spec), nil
	}
	var doc any
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return nil, fmt.Errorf("OpenAPI specification is neither JSON nor YAML: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("OpenAPI specification is empty")
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert OpenAPI specification to JSON: %w", err)
	}
	return b, nil
}
