// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/microsoft/foundry-agent-samples/go/config"
	"github.com/microsoft/foundry-agent-samples/go/deploy"
)

// DeployCmd creates or updates every agent in a definitions file.
type DeployCmd struct {
	DryRun       bool
	Concurrency  int
	JSON         bool
	Placeholders placeholderFlag
}

func (c *DeployCmd) Name() string { return "deploy" }

func (c *DeployCmd) Description() string {
	return "Create or update agents in dependency order"
}

func (c *DeployCmd) Setup(fs *flag.FlagSet) {
	c.Placeholders = placeholderFlag{}
	fs.BoolVar(&c.DryRun, "dry-run", false, "resolve every agent without creating or updating")
	fs.IntVar(&c.Concurrency, "concurrency", 4, "maximum concurrent OpenAPI spec downloads")
	fs.BoolVar(&c.JSON, "json", false, "print the result as JSON")
	fs.Var(c.Placeholders, "set", "instruction placeholder as key=value (repeatable)")
}

func (c *DeployCmd) Run(env *Env, args []string) error {
	path, err := definitionsPath(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(env.ConfigDir)
	if err != nil {
		return err
	}
	service, err := env.NewService(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !c.JSON {
		fmt.Fprintln(env.Stdout, "=== Agent Deployment ===")
		fmt.Fprintf(env.Stdout, "Using definitions file: %s\n", path)
		fmt.Fprintf(env.Stdout, "Project endpoint: %s\n\n", cfg.ProjectEndpoint)
	}

	d := deploy.New(service, nil,
		deploy.WithLogger(env.Logger),
		deploy.WithPlaceholders(c.Placeholders),
		deploy.WithConcurrency(c.Concurrency),
		deploy.WithMiddleware(deploy.LoggingMiddleware(env.Logger)),
		deploy.WithDryRun(c.DryRun),
	)
	res, err := d.DeployFile(ctx, path)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	for _, name := range res.Order {
		fmt.Fprintf(env.Stdout, "✓ %-10s %s (%s)\n", res.Actions[name], name, res.Agents[name])
	}
	if res.DryRun {
		fmt.Fprintf(env.Stdout, "\n=== Dry run: %d agent(s) checked, nothing deployed ===\n", len(res.Order))
	} else {
		fmt.Fprintf(env.Stdout, "\n=== Successfully deployed %d agent(s) ===\n", len(res.Order))
	}
	return nil
}
