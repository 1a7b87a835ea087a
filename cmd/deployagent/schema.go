// Copyright (c) Microsoft. All rights reserved.

package main

import (
	"encoding/json"
	"flag"

	"github.com/invopop/jsonschema"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

// SchemaCmd prints the JSON Schema of a definitions file, for editor
// completion and CI linting.
type SchemaCmd struct{}

func (c *SchemaCmd) Name() string { return "schema" }

func (c *SchemaCmd) Description() string {
	return "Print the JSON Schema for definitions files"
}

func (c *SchemaCmd) Setup(fs *flag.FlagSet) {}

func (c *SchemaCmd) Run(env *Env, args []string) error {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&agentdef.Document{})
	schema.Title = "Agent definitions"

	enc := json.NewEncoder(env.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
