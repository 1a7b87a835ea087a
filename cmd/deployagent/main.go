// Copyright (c) Microsoft. All rights reserved.

// Command deployagent validates a YAML file of agent and tool definitions and
// deploys the agents to an Azure AI Foundry project, dependencies first.
//
// Usage:
//
//	export PROJECT_ENDPOINT=https://<resource>.services.ai.azure.com/api/projects/<project>
//	deployagent validate agents.yaml
//	deployagent plan agents.yaml
//	deployagent deploy -set company=Contoso agents.yaml
//	deployagent deploy -dry-run agents.yaml
//	deployagent schema > agents.schema.json
//
// Authentication uses PROJECT_API_KEY when set and DefaultAzureCredential
// otherwise. Settings may also come from appsettings.json or a .env file.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

var registry = NewRegistry(
	&ValidateCmd{},
	&PlanCmd{},
	&DeployCmd{},
	&SchemaCmd{},
)

func main() {
	// Enable debug logging if requested
	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := registry.Run(newEnv(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		os.Exit(1)
	}
}
