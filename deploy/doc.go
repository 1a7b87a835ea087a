// Copyright (c) Microsoft. All rights reserved.

// Package deploy creates or updates agents on an agent service from a set of
// agent and tool definitions.
//
// A [Deployer] validates the definitions, orders agents so that connected
// agents exist before the agents that use them, downloads OpenAPI
// specifications, and then applies each agent in turn:
//
//	d := deploy.New(client, deploy.NewHTTPFetcher(nil),
//	    deploy.WithLogger(slog.Default()),
//	    deploy.WithPlaceholders(map[string]string{"city": "Berlin"}),
//	)
//	res, err := d.DeployFile(ctx, "agents.yaml")
//
// Re-running a deployment is idempotent: an existing agent with the same
// name, instructions and tool count is left untouched.
package deploy
