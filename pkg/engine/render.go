package engine

import (
	"fmt"
	"strings"

	"github.com/andsky/talekeeper/pkg/domain"
)

// fallbackPrompt is rendered when the current scene id is missing from the
// registry. A data error degrades to this rather than failing the call.
const fallbackPrompt = "You stand in a blank fragment of unreality. What do you do?"

// scenePrompt renders a scene description with its enumerated choices.
func (a *Agent) scenePrompt(sceneID string) string {
	scene, ok := a.registry.GetScene(sceneID)
	if !ok {
		return fallbackPrompt
	}

	var b strings.Builder
	b.WriteString(scene.Desc)
	b.WriteString("\n\nChoices:\n")
	for _, c := range scene.Choices {
		fmt.Fprintf(&b, "- %s (say: %s)\n", c.Desc, c.ID)
	}
	b.WriteString("\nWhat do you do?")
	return b.String()
}

func renderProductLine(p *domain.Product) string {
	line := fmt.Sprintf("- %s, %d %s (say: %s)", p.Name, p.Price, p.Currency, p.ID)
	if len(p.Sizes) > 0 {
		line += fmt.Sprintf(" [sizes: %s]", strings.Join(p.Sizes, ", "))
	}
	return line
}

func renderOrder(o *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s (%s), placed %s:\n", o.ID, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s x %d = %d %s", item.Name, item.Quantity, item.LineTotal, item.Currency)
		if item.Size != "" {
			fmt.Fprintf(&b, " (size %s)", item.Size)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %d %s", o.Total, o.Currency)
	return b.String()
}
