// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

// ValidateCmd checks a definitions file without contacting the service.
type ValidateCmd struct{}

func (c *ValidateCmd) Name() string { return "validate" }

func (c *ValidateCmd) Description() string {
	return "Check tool references, agent tools and dependency cycles"
}

func (c *ValidateCmd) Setup(fs *flag.FlagSet) {}

func (c *ValidateCmd) Run(env *Env, args []string) error {
	path, err := definitionsPath(args)
	if err != nil {
		return err
	}
	doc, err := agentdef.ParseFile(path)
	if err != nil {
		return err
	}

	if err := agentdef.Check(doc.Agents, doc.Tools); err != nil {
		var verr *agentdef.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Errors {
				fmt.Fprintf(env.Stdout, "✗ %s\n", msg)
			}
		}
		return err
	}
	fmt.Fprintf(env.Stdout, "✓ %s: %d agent(s), %d tool(s) are valid\n", path, len(doc.Agents), len(doc.Tools))
	return nil
}
