// Copyright (c) Microsoft. All rights reserved.

package deploy

import (
	"context"
	"log/slog"
	"time"
)

// Middleware wraps an [AgentService] to add cross-cutting behavior.
type Middleware func(next AgentService) AgentService

// chainMiddleware applies middleware in order (first in list = outermost wrapper).
func chainMiddleware(svc AgentService, mws ...Middleware) AgentService {
	for i := len(mws) - 1; i >= 0; i-- {
		svc = mws[i](svc)
	}
	return svc
}

// LoggingMiddleware returns a [Middleware] that logs agent service calls using slog.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next AgentService) AgentService {
		return &loggingService{next: next, logger: logger}
	}
}

type loggingService struct {
	next   AgentService
	logger *slog.Logger
}

func (s *loggingService) ListAgents(ctx context.Context) ([]RemoteAgent, error) {
	start := time.Now()
	agents, err := s.next.ListAgents(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list agents failed", "duration", time.Since(start), "error", err)
		return nil, err
	}
	s.logger.DebugContext(ctx, "listed agents", "duration", time.Since(start), "count", len(agents))
	return agents, nil
}

func (s *loggingService) CreateAgent(ctx context.Context, req AgentRequest) (*RemoteAgent, error) {
	return s.observe(ctx, "create", req, func() (*RemoteAgent, error) {
		return s.next.CreateAgent(ctx, req)
	})
}

func (s *loggingService) UpdateAgent(ctx context.Context, id string, req AgentRequest) (*RemoteAgent, error) {
	return s.observe(ctx, "update", req, func() (*RemoteAgent, error) {
		return s.next.UpdateAgent(ctx, id, req)
	})
}

func (s *loggingService) observe(ctx context.Context, op string, req AgentRequest, call func() (*RemoteAgent, error)) (*RemoteAgent, error) {
	start := time.Now()
	s.logger.DebugContext(ctx, "agent call started",
		"op", op,
		"agent_name", req.Name,
		"model", req.Model,
		"tool_count", len(req.Tools),
	)

	agent, err := call()

	duration := time.Since(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "agent call failed",
			"op", op,
			"agent_name", req.Name,
			"duration", duration,
			"error", err,
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "agent call completed",
		"op", op,
		"agent_name", req.Name,
		"agent_id", agent.ID,
		"duration", duration,
	)
	return agent, nil
}
