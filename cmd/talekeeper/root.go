package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talekeeper",
	Short: "Talekeeper is the tool backend for a voice-driven adventure and shopping agent",
	Long: `Talekeeper runs the deterministic core of a voice agent: a scene-graph
state machine, a fuzzy reference resolver, and an append-only order ledger.
A conversation driver (LLM + speech pipeline) invokes it through MCP or HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("world", "", "YAML world definition (empty uses a built-in world)")
	rootCmd.PersistentFlags().String("world-name", "", "Built-in world: stormglass or fallen-kingdom")
	rootCmd.PersistentFlags().String("persona", "", "Agent persona: gamemaster or shopkeeper")
}
