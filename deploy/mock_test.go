// Copyright (c) Microsoft. All rights reserved.

package deploy_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/microsoft/foundry-agent-samples/go/deploy"
)

type call struct {
	Op  string
	ID  string
	Req deploy.AgentRequest
}

// mockService is an in-memory AgentService that records every call.
type mockService struct {
	mu       sync.Mutex
	existing []deploy.RemoteAgent
	calls    []call
	nextID   int
	listErr  error
	failOn   string
	events   *eventLog
}

func (m *mockService) ListAgents(ctx context.Context) ([]deploy.RemoteAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call{Op: "list"})
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]deploy.RemoteAgent(nil), m.existing...), nil
}

func (m *mockService) CreateAgent(ctx context.Context, req deploy.AgentRequest) (*deploy.RemoteAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call{Op: "create", Req: req})
	m.events.add("create " + req.Name)
	if req.Name == m.failOn {
		return nil, fmt.Errorf("service unavailable")
	}
	m.nextID++
	return &deploy.RemoteAgent{
		ID:           fmt.Sprintf("asst_%d", m.nextID),
		Name:         req.Name,
		Model:        req.Model,
		Instructions: req.Instructions,
		ToolCount:    len(req.Tools),
	}, nil
}

func (m *mockService) UpdateAgent(ctx context.Context, id string, req deploy.AgentRequest) (*deploy.RemoteAgent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call{Op: "update", ID: id, Req: req})
	m.events.add("update " + req.Name)
	if req.Name == m.failOn {
		return nil, fmt.Errorf("service unavailable")
	}
	return &deploy.RemoteAgent{
		ID:           id,
		Name:         req.Name,
		Model:        req.Model,
		Instructions: req.Instructions,
		ToolCount:    len(req.Tools),
	}, nil
}

// mutations returns calls other than list.
func (m *mockService) mutations() []call {
	var out []call
	for _, c := range m.calls {
		if c.Op != "list" {
			out = append(out, c)
		}
	}
	return out
}

// mockFetcher serves specifications from a map keyed by URL.
type mockFetcher struct {
	mu     sync.Mutex
	specs  map[string]string
	err    error
	urls   []string
	events *eventLog
}

func (f *mockFetcher) Download(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	f.events.add("download " + url)
	if f.err != nil {
		return nil, f.err
	}
	spec, ok := f.specs[url]
	if !ok {
		return nil, &deploy.DownloadError{URL: url, StatusCode: 404, Err: fmt.Errorf("not found")}
	}
	return []byte(spec), nil
}

// eventLog records an ordering of calls across collaborators. A nil log ignores events.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}
