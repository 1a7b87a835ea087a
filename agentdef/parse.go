// Copyright (c) Microsoft. All rights reserved.

package agentdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseFile reads and parses the definitions file at path.
// A missing or unreadable file yields an error matching [ErrNotFound].
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: definitions file %s: %w", ErrNotFound, path, err)
	}
	return parse(path, data)
}

// Parse decodes a definitions document. Unknown fields are ignored and
// source order is preserved. Malformed input yields a [*ParseError].
func Parse(data []byte) (*Document, error) {
	return parse("definitions", data)
}

func parse(source string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	if doc.Agents == nil {
		doc.Agents = []AgentDefinition{}
	}
	if doc.Tools == nil {
		doc.Tools = []ToolDefinition{}
	}
	for i := range doc.Agents {
		if doc.Agents[i].Tools == nil {
			doc.Agents[i].Tools = []string{}
		}
	}
	return &doc, nil
}
