package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/railbaron/stockround/internal/game"
)

// ensureTurn begins a turn for the player unless one is already open.
func ensureTurn(state *scenarioState, player *game.Player) {
	if state.active == player {
		return
	}
	state.step.Setup(player)
	state.active = player
}

func resolvePlayer(state *scenarioState, args map[string]any) (*game.Player, error) {
	if state.setup == nil {
		return nil, fmt.Errorf("no game in progress; add a game step first")
	}
	name := requiredString(args, "player")
	if name == "" {
		return nil, fmt.Errorf("player is required")
	}
	player, ok := state.players[name]
	if !ok {
		return nil, fmt.Errorf("unknown player %q", name)
	}
	return player, nil
}

func resolveCorporation(state *scenarioState, args map[string]any) (*game.Corporation, error) {
	if state.setup == nil {
		return nil, fmt.Errorf("no game in progress; add a game step first")
	}
	name := requiredString(args, "corporation")
	if name == "" {
		return nil, fmt.Errorf("corporation is required")
	}
	corp, ok := state.corporations[name]
	if !ok {
		return nil, fmt.Errorf("unknown corporation %q", name)
	}
	return corp, nil
}

// resolveEntity looks up a cash holder by name: a player, a corporation,
// or the bank.
func resolveEntity(state *scenarioState, args map[string]any) (game.Entity, error) {
	if state.setup == nil {
		return nil, fmt.Errorf("no game in progress; add a game step first")
	}
	name := requiredString(args, "entity")
	if name == "" {
		return nil, fmt.Errorf("entity is required")
	}
	if player, ok := state.players[name]; ok {
		return player, nil
	}
	if corp, ok := state.corporations[name]; ok {
		return corp, nil
	}
	if strings.EqualFold(name, "bank") {
		return state.setup.State.Bank(), nil
	}
	return nil, fmt.Errorf("unknown entity %q", name)
}

// buyableBundle selects the certificates a buy step targets: treasury or
// pool shares of the corporation, smallest certificates first, the
// president's certificate only on request.
func buyableBundle(state *scenarioState, corp *game.Corporation, args map[string]any) (*game.Bundle, error) {
	source := optionalString(args, "source", "ipo")
	count := optionalInt(args, "shares", 1)
	wantPresident := optionalBool(args, "president", false)

	var shares []*game.Share
	switch source {
	case "ipo":
		shares = corp.IPOShares()
	case "market":
		shares = state.setup.State.Pool().SharesOf(corp)
	default:
		return nil, fmt.Errorf("unknown share source %q", source)
	}

	var candidates []*game.Share
	for _, share := range shares {
		if share.President() != wantPresident {
			continue
		}
		candidates = append(candidates, share)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Percent() < candidates[j].Percent()
	})
	if len(candidates) < count {
		return nil, fmt.Errorf("%s has %d matching shares in %s, want %d", corp.Name(), len(candidates), source, count)
	}
	return game.NewBundle(candidates[:count]...), nil
}

func requiredString(args map[string]any, key string) string {
	value, ok := args[key]
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

func optionalString(args map[string]any, key, fallback string) string {
	if value := requiredString(args, key); value != "" {
		return value
	}
	return fallback
}

func readInt(args map[string]any, key string) (int, bool) {
	value, ok := args[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func optionalInt(args map[string]any, key string, fallback int) int {
	if value, ok := readInt(args, key); ok {
		return value
	}
	return fallback
}

func optionalBool(args map[string]any, key string, fallback bool) bool {
	value, ok := args[key]
	if !ok {
		return fallback
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return fallback
}

func stringList(args map[string]any, key string) []string {
	value, ok := args[key]
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var output []string
	for _, item := range items {
		if text, ok := item.(string); ok {
			output = append(output, text)
		}
	}
	return output
}
