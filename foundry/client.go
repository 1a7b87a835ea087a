// Copyright (c) Microsoft. All rights reserved.

// Package foundry provides a [deploy.AgentService] implementation backed by
// the Azure AI Foundry agent service.
//
// Create a client with [New] and pass it to [deploy.New]:
//
//	cred, _ := azidentity.NewDefaultAzureCredential(nil)
//	client := foundry.New(projectEndpoint, foundry.WithCredential(cred))
//	d := deploy.New(client, nil)
package foundry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/microsoft/foundry-agent-samples/go/deploy"
)

const defaultPageSize = 100

// Client implements [deploy.AgentService] using the Foundry agents REST API.
// Use [New] to create one.
type Client struct {
	tp       transport
	pageSize int
}

// Verify interface compliance at compile time.
var _ deploy.AgentService = (*Client)(nil)

// New creates a Foundry [Client] for the given project endpoint, e.g.
// https://<resource>.services.ai.azure.com/api/projects/<project>.
func New(endpoint string, opts ...Option) *Client {
	cfg := &clientConfig{pageSize: defaultPageSize}
	for _, o := range opts {
		o(cfg)
	}
	return &Client{
		tp:       newHTTPTransport(endpoint, cfg),
		pageSize: cfg.pageSize,
	}
}

// ListAgents returns every agent in the project, following pagination.
func (c *Client) ListAgents(ctx context.Context) ([]deploy.RemoteAgent, error) {
	var agents []deploy.RemoteAgent
	after := ""
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(c.pageSize))
		q.Set("order", "asc")
		if after != "" {
			q.Set("after", after)
		}

		var page agentList
		if err := c.call(ctx, http.MethodGet, "/assistants", q, nil, &page); err != nil {
			return nil, err
		}
		for i := range page.Data {
			agents = append(agents, page.Data[i].toRemote())
		}

		if !page.HasMore || page.LastID == "" || page.LastID == after {
			return agents, nil
		}
		after = page.LastID
	}
}

// CreateAgent creates a new agent.
func (c *Client) CreateAgent(ctx context.Context, req deploy.AgentRequest) (*deploy.RemoteAgent, error) {
	body, err := buildBody(req, true)
	if err != nil {
		return nil, err
	}
	var obj agentObject
	if err := c.call(ctx, http.MethodPost, "/assistants", nil, body, &obj); err != nil {
		return nil, err
	}
	agent := obj.toRemote()
	return &agent, nil
}

// UpdateAgent replaces the model, instructions and tools of the agent with id.
func (c *Client) UpdateAgent(ctx context.Context, id string, req deploy.AgentRequest) (*deploy.RemoteAgent, error) {
	body, err := buildBody(req, false)
	if err != nil {
		return nil, err
	}
	var obj agentObject
	if err := c.call(ctx, http.MethodPost, "/assistants/"+url.PathEscape(id), nil, body, &obj); err != nil {
		return nil, err
	}
	agent := obj.toRemote()
	return &agent, nil
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.tp.do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrInvalidResponse, method, path, err)
	}
	return nil
}
