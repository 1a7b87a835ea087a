// Copyright (c) Microsoft. All rights reserved.

// Package agentdef loads, validates and orders declarative agent and tool
// definitions.
//
// A definitions document lists agents and the tools they reference:
//
//	agents:
//	  - type: agent
//	    name: weather-agent
//	    model: gpt-4o
//	    instructions: You answer weather questions for {city}.
//	    tools: [weather-api]
//	  - type: agent
//	    name: triage-agent
//	    model: gpt-4o
//	    instructions: Route questions to the right agent.
//	    tools: [weather-agent]
//	tools:
//	  - type: tool
//	    name: weather-api
//	    kind: OpenAPI
//	    description: Current weather by city.
//	    spec_url: https://example.com/weather/openapi.json
//	  - type: tool
//	    name: weather-agent
//	    kind: agent
//	    description: Answers weather questions.
//
// A tool of kind "agent" is a reference to the agent with the same name
// (a "connected agent"). Such references form a dependency graph that must
// be acyclic: an agent can only be created once every agent it uses as a
// tool already exists.
//
// Typical use:
//
//	doc, err := agentdef.ParseFile("agents.yaml")
//	if err != nil { ... }
//	if err := agentdef.Check(doc.Agents, doc.Tools); err != nil { ... }
//	ordered, err := agentdef.Order(doc.Agents, doc.Tools)
package agentdef
