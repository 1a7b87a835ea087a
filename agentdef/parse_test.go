// Copyright (c) Microsoft. All rights reserved.

package agentdef_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/foundry-agent-samples/go/agentdef"
)

const sampleYAML = `
agents:
  - type: agent
    name: weather-agent
    model: gpt-4o
    instructions: You answer weather questions for {city}.
    tools:
      - weather-api
    temperature: 0.2
  - type: agent
    name: triage-agent
    model: gpt-4o-mini
    instructions: Route questions.
    tools: [weather-agent]
  - type: agent
    name: bare-agent
    model: gpt-4o
    instructions: No tools.
tools:
  - type: tool
    name: weather-api
    kind: OpenAPI
    description: Current weather by city.
    spec_url: https://example.com/weather.json
    auth: anonymous
  - type: tool
    name: weather-agent
    kind: agent
    description: Answers weather questions.
version: 2
`

func TestParse_Document(t *testing.T) {
	doc, err := agentdef.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, doc.Agents, 3)
	require.Len(t, doc.Tools, 2)

	assert.Equal(t, []string{"weather-agent", "triage-agent", "bare-agent"}, agentdef.AgentNames(doc.Agents))

	weather := doc.Agents[0]
	assert.Equal(t, "agent", weather.Type)
	assert.Equal(t, "gpt-4o", weather.Model)
	assert.Equal(t, "You answer weather questions for {city}.", weather.Instructions)
	assert.Equal(t, []string{"weather-api"}, weather.Tools)

	assert.Equal(t, []string{"weather-agent"}, doc.Agents[1].Tools)

	api := doc.Tools[0]
	assert.Equal(t, "OpenAPI", api.Kind)
	assert.Equal(t, "https://example.com/weather.json", api.SpecURL)
	assert.True(t, api.IsOpenAPI())
	assert.False(t, api.IsAgent())

	assert.Empty(t, doc.Tools[1].SpecURL)
	assert.True(t, doc.Tools[1].IsAgent())
}

func TestParse_Defaults(t *testing.T) {
	doc, err := agentdef.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	bare := doc.Agents[2]
	assert.NotNil(t, bare.Tools)
	assert.Empty(t, bare.Tools)
}

func TestParse_Empty(t *testing.T) {
	doc, err := agentdef.Parse(nil)
	require.NoError(t, err)
	assert.NotNil(t, doc.Agents)
	assert.NotNil(t, doc.Tools)
	assert.Empty(t, doc.Agents)
	assert.Empty(t, doc.Tools)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated flow sequence", "agents: [\n"},
		{"agents is a scalar", "agents: hello\n"},
		{"tabs for indentation", "agents:\n\t- name: a\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := agentdef.Parse([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, agentdef.ErrParse)
			assert.ErrorIs(t, err, agentdef.ErrDefinition)

			var perr *agentdef.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "definitions", perr.Source)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	doc, err := agentdef.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Agents, 3)
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := agentdef.ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, agentdef.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, agentdef.ErrParse)
}

func TestParseFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools: {"), 0644))

	_, err := agentdef.ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, agentdef.ErrParse)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestLookups(t *testing.T) {
	doc, err := agentdef.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	a, ok := agentdef.FindAgent(doc.Agents, "TRIAGE-AGENT")
	require.True(t, ok)
	assert.Equal(t, "triage-agent", a.Name)

	_, ok = agentdef.FindAgent(doc.Agents, "nobody")
	assert.False(t, ok)

	tool, ok := agentdef.FindTool(doc.Tools, "Weather-Api")
	require.True(t, ok)
	assert.Equal(t, "weather-api", tool.Name)

	assert.Len(t, agentdef.ToolsByKind(doc.Tools, "openapi"), 1)
	assert.Len(t, agentdef.ToolsByKind(doc.Tools, "AGENT"), 1)
	assert.Empty(t, agentdef.ToolsByKind(doc.Tools, "function"))
}
