package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andsky/talekeeper/pkg/domain"
	"github.com/andsky/talekeeper/pkg/engine"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session interactively in the terminal",
	Long: `Runs the agent locally with a line-based prompt. Useful for authoring
worlds and checking how free-text input resolves, without a conversation
driver in the loop.

Anything you type is a player action. Commands start with a slash:
  /catalog [query]   list products
  /add <ref> [qty] [size]   add a product to the cart
  /cart  /clear  /order  /last  /journal  /restart  /quit`,
	Run: func(cmd *cobra.Command, args []string) {
		app, err := buildEnv(cmd)
		if err != nil {
			fmt.Printf("Error initializing talekeeper: %v\n", err)
			os.Exit(1)
		}

		name, _ := cmd.Flags().GetString("name")

		agent := engine.NewAgent(app.registry, app.orders,
			engine.WithPersona(app.persona),
			engine.WithLogger(app.logger),
		)

		render := newRenderer()
		printBanner()
		render(agent.StartAdventure(name))

		ctx := context.Background()
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "/quit" || line == "/exit" {
				fmt.Println("Farewell, traveler.")
				break
			}
			render(runPlayCommand(ctx, agent, line))
		}
	},
}

func runPlayCommand(ctx context.Context, agent *engine.Agent, line string) string {
	if !strings.HasPrefix(line, "/") {
		return agent.PlayerAction(line)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/journal":
		return agent.ShowJournal()
	case "/restart":
		return agent.RestartAdventure()
	case "/catalog":
		return agent.ShowCatalog(domain.Filter{Query: strings.Join(fields[1:], " ")})
	case "/add":
		if len(fields) < 2 {
			return "Usage: /add <ref> [qty] [size]"
		}
		qty := 1
		size := ""
		rest := fields[2:]
		if len(rest) > 0 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				qty = n
				rest = rest[1:]
			}
		}
		if len(rest) > 0 {
			size = rest[0]
		}
		return agent.AddToCart(fields[1], qty, size)
	case "/cart":
		return agent.ShowCart()
	case "/clear":
		return agent.ClearCart()
	case "/order":
		return agent.PlaceOrder(ctx, true)
	case "/last":
		return agent.LastOrder(ctx)
	default:
		return "Unknown command. Try /catalog, /add, /cart, /order, /journal, or plain text to act."
	}
}

// newRenderer returns a printer. On a TTY it renders through glamour so the
// scene text reads like a page; piped output stays plain.
func newRenderer() func(string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func(s string) { fmt.Println(s) }
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return func(s string) { fmt.Println(s) }
	}
	return func(s string) {
		out, err := r.Render(s)
		if err != nil {
			fmt.Println(s)
			return
		}
		fmt.Print(out)
	}
}

func printBanner() {
	p := termenv.ColorProfile()
	lines := []string{
		` _        _ _                                  `,
		`| |_ __ _| | | _____  ___  ___ _ __   ___ _ __ `,
		`| __/ _' | | |/ / _ \/ _ \/ _ \ '_ \ / _ \ '__|`,
		`| || (_| | |   <  __/  __/  __/ |_) |  __/ |   `,
		` \__\__,_|_|_|\_\___|\___|\___| .__/ \___|_|   `,
		`                              |_|              `,
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

	fmt.Println()
	for i, l := range lines {
		fmt.Println(termenv.String(l).Foreground(p.Color(colors[i%len(colors)])))
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().String("name", "traveler", "Player name for the session")
}
