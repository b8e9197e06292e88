package talekeeper_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/andsky/talekeeper"
	"github.com/andsky/talekeeper/pkg/engine"
	"github.com/andsky/talekeeper/pkg/ledger"
)

// A session is a plain sequence of tool calls: start, act, shop, order.
func Example() {
	agent, _, err := talekeeper.New(talekeeper.Options{
		Ledger: ledger.NewMemoryLedger(),
	})
	if err != nil {
		panic(err)
	}

	out := agent.StartAdventure("Mira")
	fmt.Println(strings.SplitN(out, "\n", 2)[0])

	agent.AddToCart("mug-001", 1, "")
	confirmation := agent.PlaceOrder(context.Background(), true)
	fmt.Println(strings.HasPrefix(confirmation, "Order ORD-"))

	// Output:
	// Welcome, Mira! The Stormglass Isles are waiting. Find the Heartlight before the storms return.
	// true
}

// Dispatch routes by tool name, which is how the MCP and HTTP adapters drive
// the agent.
func Example_dispatch() {
	agent, _, err := talekeeper.New(talekeeper.Options{
		Ledger:  ledger.NewMemoryLedger(),
		Persona: engine.PersonaShopkeeper,
	})
	if err != nil {
		panic(err)
	}

	text, err := agent.Dispatch(context.Background(), engine.ToolShowCart, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(text)

	// Output:
	// Your cart is empty.
}
