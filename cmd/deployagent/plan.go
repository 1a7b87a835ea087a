// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

// PlanCmd prints the order agents would be deployed in.
type PlanCmd struct{}

func (c *PlanCmd) Name() string { return "plan" }

func (c *PlanCmd) Description() string {
	return "Validate and print the deployment order"
}

func (c *PlanCmd) Setup(fs *flag.FlagSet) {}

func (c *PlanCmd) Run(env *Env, args []string) error {
	path, err := definitionsPath(args)
	if err != nil {
		return err
	}
	doc, err := agentdef.ParseFile(path)
	if err != nil {
		return err
	}
	if err := agentdef.Check(doc.Agents, doc.Tools); err != nil {
		return err
	}
	ordered, err := agentdef.Order(doc.Agents, doc.Tools)
	if err != nil {
		return err
	}

	graph := agentdef.NewGraph(doc.Agents, doc.Tools)
	for i, agent := range ordered {
		fmt.Fprintf(env.Stdout, "%d. %s", i+1, agent.Name)
		if deps := graph.Dependencies(agent.Name); len(deps) > 0 {
			fmt.Fprintf(env.Stdout, " (after %s)", strings.Join(deps, ", "))
		}
		fmt.Fprintln(env.Stdout)
	}
	return nil
}
