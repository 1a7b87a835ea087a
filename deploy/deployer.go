// Copyright (c) Microsoft. All rights reserved.

package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

// defaultParams are the OpenAPI parameters the service fills in itself.
var defaultParams = []string{"format"}

// Action describes what a deployment did to one agent.
type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionUnchanged Action = "unchanged"
)

// Result is the outcome of a successful deployment.
type Result struct {
	// RunID identifies the deployment in logs.
	RunID string `json:"run_id"`

	// Agents maps agent names to remote agent IDs.
	Agents map[string]string `json:"agents"`

	// Order lists agent names in the order they were applied.
	Order []string `json:"order"`

	// Actions maps agent names to what was done to them.
	Actions map[string]Action `json:"actions"`

	// DryRun is true when no create or update call was made.
	DryRun bool `json:"dry_run,omitempty"`
}

// Deployer applies agent definitions to an [AgentService].
// Create one with [New].
type Deployer struct {
	service      AgentService
	fetcher      SpecFetcher
	logger       *slog.Logger
	placeholders map[string]string
	concurrency  int
	middleware   []Middleware
	dryRun       bool
}

// New creates a Deployer for the given service. A nil fetcher uses
// [NewHTTPFetcher] with default settings.
func New(service AgentService, fetcher SpecFetcher, opts ...Option) *Deployer {
	d := &Deployer{
		fetcher:     fetcher,
		logger:      slog.Default(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.fetcher == nil {
		d.fetcher = NewHTTPFetcher(nil)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.service = chainMiddleware(service, d.middleware...)
	return d
}

// DeployFile parses the definitions file at path and deploys it.
func (d *Deployer) DeployFile(ctx context.Context, path string) (*Result, error) {
	doc, err := agentdef.ParseFile(path)
	if err != nil {
		return nil, err
	}
	d.logger.InfoContext(ctx, "parsed agent definitions",
		"path", path,
		"agents", len(doc.Agents),
		"tools", len(doc.Tools),
	)
	return d.Deploy(ctx, doc)
}

// Deploy validates, orders and applies the definitions in doc. Validation
// failures are returned as a [*agentdef.ValidationError] before any remote
// call is made. The first download or service failure stops the run; agents
// applied before it are left in place.
func (d *Deployer) Deploy(ctx context.Context, doc *agentdef.Document) (*Result, error) {
	r := &run{
		Deployer: d,
		id:       uuid.NewString(),
		graph:    agentdef.NewGraph(doc.Agents, doc.Tools),
		created:  make(map[string]RemoteAgent),
	}
	r.logger = d.logger.With("run_id", r.id)
	return r.execute(ctx, doc)
}

// run holds the per-deployment state. It is discarded when Deploy returns.
type run struct {
	*Deployer
	id      string
	logger  *slog.Logger
	graph   *agentdef.Graph
	specs   map[string][]byte
	created map[string]RemoteAgent

	existing       []RemoteAgent
	existingLoaded bool
}

func (r *run) execute(ctx context.Context, doc *agentdef.Document) (*Result, error) {
	if err := agentdef.Check(doc.Agents, doc.Tools); err != nil {
		var verr *agentdef.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Errors {
				r.logger.ErrorContext(ctx, "validation error", "error", msg)
			}
		}
		return nil, err
	}
	r.logger.InfoContext(ctx, "all definitions validated")

	ordered, err := agentdef.Order(doc.Agents, doc.Tools)
	if err != nil {
		return nil, err
	}
	order := agentdef.AgentNames(ordered)
	r.logger.InfoContext(ctx, "agents will be applied in order", "order", strings.Join(order, ", "))

	if r.specs, err = r.downloadSpecs(ctx, doc.Tools); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   r.id,
		Agents:  make(map[string]string, len(ordered)),
		Order:   order,
		Actions: make(map[string]Action, len(ordered)),
		DryRun:  r.dryRun,
	}
	for _, def := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		agent, action, err := r.applyAgent(ctx, def)
		if err != nil {
			return nil, err
		}
		r.created[strings.ToLower(def.Name)] = *agent
		res.Agents[def.Name] = agent.ID
		res.Actions[def.Name] = action
	}

	r.logger.InfoContext(ctx, "deployment completed", "agents", len(res.Agents), "dry_run", r.dryRun)
	return res, nil
}

// downloadSpecs fetches every OpenAPI specification concurrently and returns
// them keyed by lower-cased tool name. Tools without a spec URL are skipped;
// agents that use them fail later with ErrMissingSpec.
func (r *run) downloadSpecs(ctx context.Context, tools []agentdef.ToolDefinition) (map[string][]byte, error) {
	specs := make(map[string][]byte)
	openAPITools := agentdef.ToolsByKind(tools, agentdef.KindOpenAPI)
	if len(openAPITools) == 0 {
		r.logger.DebugContext(ctx, "no OpenAPI tools to download")
		return specs, nil
	}

	r.logger.InfoContext(ctx, "downloading OpenAPI specifications", "count", len(openAPITools))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for _, tool := range openAPITools {
		if tool.SpecURL == "" {
			r.logger.WarnContext(ctx, "tool is missing spec_url", "tool", tool.Name)
			continue
		}
		g.Go(func() error {
			spec, err := r.fetcher.Download(gctx, tool.SpecURL)
			if err != nil {
				if !errors.Is(err, ErrDownload) {
					err = &DownloadError{URL: tool.SpecURL, Err: err}
				}
				return fmt.Errorf("tool %q: %w", tool.Name, err)
			}

			mu.Lock()
			specs[strings.ToLower(tool.Name)] = spec
			mu.Unlock()

			r.logger.DebugContext(gctx, "downloaded OpenAPI specification", "tool", tool.Name, "bytes", len(spec))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return specs, nil
}

func (r *run) applyAgent(ctx context.Context, def agentdef.AgentDefinition) (*RemoteAgent, Action, error) {
	tools, err := r.resolveTools(ctx, def)
	if err != nil {
		return nil, "", err
	}

	req := AgentRequest{
		Name:         def.Name,
		Model:        def.Model,
		Instructions: SubstitutePlaceholders(def.Instructions, r.placeholders),
		Tools:        tools,
	}

	existing := r.findExisting(ctx, def.Name)

	switch {
	case existing == nil:
		if r.dryRun {
			r.logger.InfoContext(ctx, "would create agent", "agent_name", def.Name, "tool_count", len(tools))
			return &RemoteAgent{ID: "dryrun-" + def.Name, Name: def.Name, Model: def.Model, Instructions: req.Instructions, ToolCount: len(tools)}, ActionCreated, nil
		}
		agent, err := r.service.CreateAgent(ctx, req)
		if err != nil {
			return nil, "", &OperationError{Agent: def.Name, Op: "create", Err: err}
		}
		r.logger.InfoContext(ctx, "created agent", "agent_name", def.Name, "agent_id", agent.ID, "tool_count", len(tools))
		return agent, ActionCreated, nil

	case existing.Instructions != req.Instructions || existing.ToolCount != len(req.Tools):
		if r.dryRun {
			r.logger.InfoContext(ctx, "would update agent", "agent_name", def.Name, "agent_id", existing.ID)
			return existing, ActionUpdated, nil
		}
		agent, err := r.service.UpdateAgent(ctx, existing.ID, req)
		if err != nil {
			return nil, "", &OperationError{Agent: def.Name, Op: "update", Err: err}
		}
		r.logger.InfoContext(ctx, "updated agent", "agent_name", def.Name, "agent_id", agent.ID, "tool_count", len(tools))
		return agent, ActionUpdated, nil

	default:
		r.logger.InfoContext(ctx, "agent is up to date", "agent_name", def.Name, "agent_id", existing.ID)
		return existing, ActionUnchanged, nil
	}
}

func (r *run) resolveTools(ctx context.Context, def agentdef.AgentDefinition) ([]Tool, error) {
	tools := make([]Tool, 0, len(def.Tools))
	for _, toolName := range def.Tools {
		toolDef, ok := r.graph.Tool(toolName)
		if !ok {
			r.logger.WarnContext(ctx, "tool not found", "agent_name", def.Name, "tool", toolName)
			continue
		}

		switch {
		case toolDef.IsOpenAPI():
			spec, ok := r.specs[strings.ToLower(toolDef.Name)]
			if !ok {
				return nil, fmt.Errorf("%w: tool %q used by agent %q", ErrMissingSpec, toolDef.Name, def.Name)
			}
			tools = append(tools, OpenAPITool{
				Name:          toolDef.Name,
				Description:   toolDef.Description,
				Spec:          spec,
				DefaultParams: defaultParams,
			})
			r.logger.DebugContext(ctx, "added OpenAPI tool", "agent_name", def.Name, "tool", toolDef.Name)

		case toolDef.IsAgent():
			connected, ok := r.created[strings.ToLower(toolDef.Name)]
			if !ok {
				return nil, fmt.Errorf("%w: agent %q used by agent %q", ErrDependencyNotReady, toolDef.Name, def.Name)
			}
			tools = append(tools, ConnectedAgentTool{
				ID:          connected.ID,
				Name:        connected.Name,
				Description: toolDef.Description,
			})
			r.logger.DebugContext(ctx, "added connected agent tool", "agent_name", def.Name, "tool", toolDef.Name)

		default:
			r.logger.WarnContext(ctx, "unsupported tool kind", "agent_name", def.Name, "tool", toolDef.Name, "kind", toolDef.Kind)
		}
	}
	return tools, nil
}

// findExisting looks up an agent by exact name. The service is listed once
// per run; a listing failure is logged and treated as "no agents".
func (r *run) findExisting(ctx context.Context, name string) *RemoteAgent {
	if !r.existingLoaded {
		r.existingLoaded = true
		agents, err := r.service.ListAgents(ctx)
		if err != nil {
			r.logger.WarnContext(ctx, "error checking for existing agents", "error", err)
		}
		r.existing = agents
	}
	for i := range r.existing {
		if r.existing[i].Name == name {
			found := r.existing[i]
			return &found
		}
	}
	return nil
}
