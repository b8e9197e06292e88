/*
Package talekeeper is the deterministic core of a voice-driven conversational
agent: a scene-graph state machine, a fuzzy reference resolver, and an
append-only order ledger, exposed to an LLM conversation driver as a set of
named tools.

The driver (speech pipeline, LLM orchestration, transport) lives outside this
module. It decides which tool to call with what arguments; every tool reads or
mutates one session's state and returns human-readable text for the driver to
speak. Internal faults never escape as raw diagnostics.

# Architecture

  - pkg/world: static scene-graph and product-catalog registries, read-only at
    runtime and shared safely across sessions.
  - pkg/resolve: ordered tier pipelines mapping free-text phrases to scene
    choices and catalog products. Tie-breaks follow tier priority and candidate
    declaration order, never relevance scoring.
  - pkg/engine: the transition/action engine and the tool surface.
  - pkg/ledger: the process-wide append-only order store (file, memory, Redis).
  - pkg/session: per-conversation state persistence.
  - pkg/adapters: MCP and HTTP frontends over the tool surface.

# Usage

	agent, _, err := talekeeper.New(talekeeper.Options{})
	if err != nil {
		log.Fatal(err)
	}

	text, err := agent.Dispatch(ctx, engine.ToolStartAdventure,
		map[string]any{"player_name": "Mira"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(text)
*/
package talekeeper
