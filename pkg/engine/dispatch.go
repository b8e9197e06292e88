package engine

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/andsky/talekeeper/pkg/domain"
)

// Tool names exposed to the conversation driver.
const (
	ToolStartAdventure   = "start_adventure"
	ToolGetScene         = "get_scene"
	ToolPlayerAction     = "player_action"
	ToolShowJournal      = "show_journal"
	ToolRestartAdventure = "restart_adventure"
	ToolShowCatalog      = "show_catalog"
	ToolAddToCart        = "add_to_cart"
	ToolShowCart         = "show_cart"
	ToolClearCart        = "clear_cart"
	ToolPlaceOrder       = "place_order"
	ToolLastOrder        = "last_order"
)

// ToolNames lists every tool in a stable order.
func ToolNames() []string {
	return []string{
		ToolStartAdventure, ToolGetScene, ToolPlayerAction, ToolShowJournal,
		ToolRestartAdventure, ToolShowCatalog, ToolAddToCart, ToolShowCart,
		ToolClearCart, ToolPlaceOrder, ToolLastOrder,
	}
}

// Argument shapes for the tools that take any. Decoded weakly typed since
// JSON-RPC and HTTP clients send numbers as float64 and booleans as strings.
type startAdventureArgs struct {
	PlayerName string `mapstructure:"player_name"`
}

type playerActionArgs struct {
	Action string `mapstructure:"action"`
}

type showCatalogArgs struct {
	Query    string `mapstructure:"query"`
	Category string `mapstructure:"category"`
	MinPrice int    `mapstructure:"min_price"`
	MaxPrice int    `mapstructure:"max_price"`
	Color    string `mapstructure:"color"`
	Size     string `mapstructure:"size"`
}

type addToCartArgs struct {
	Product  string `mapstructure:"product"`
	Quantity int    `mapstructure:"quantity"`
	Size     string `mapstructure:"size"`
}

type placeOrderArgs struct {
	Confirm *bool `mapstructure:"confirm"`
}

// Dispatch routes a named tool invocation to the agent. The returned error
// covers driver mistakes only (unknown tool, malformed arguments); domain
// failures come back as renderable text.
func (a *Agent) Dispatch(ctx context.Context, name string, args map[string]any) (string, error) {
	switch name {
	case ToolStartAdventure:
		var in startAdventureArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		return a.StartAdventure(in.PlayerName), nil

	case ToolGetScene:
		return a.GetScene(), nil

	case ToolPlayerAction:
		var in playerActionArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		return a.PlayerAction(in.Action), nil

	case ToolShowJournal:
		return a.ShowJournal(), nil

	case ToolRestartAdventure:
		return a.RestartAdventure(), nil

	case ToolShowCatalog:
		var in showCatalogArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		return a.ShowCatalog(domain.Filter{
			Query:    in.Query,
			Category: in.Category,
			MinPrice: in.MinPrice,
			MaxPrice: in.MaxPrice,
			Color:    in.Color,
			Size:     in.Size,
		}), nil

	case ToolAddToCart:
		var in addToCartArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		return a.AddToCart(in.Product, in.Quantity, in.Size), nil

	case ToolShowCart:
		return a.ShowCart(), nil

	case ToolClearCart:
		return a.ClearCart(), nil

	case ToolPlaceOrder:
		var in placeOrderArgs
		if err := decodeArgs(args, &in); err != nil {
			return "", err
		}
		confirm := true
		if in.Confirm != nil {
			confirm = *in.Confirm
		}
		return a.PlaceOrder(ctx, confirm), nil

	case ToolLastOrder:
		return a.LastOrder(ctx), nil

	default:
		return "", fmt.Errorf("tool not found: %s", name)
	}
}

func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build argument decoder: %w", err)
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid tool arguments: %w", err)
	}
	return nil
}
