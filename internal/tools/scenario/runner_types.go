package scenario

import (
	"github.com/railbaron/stockround/internal/catalog"
	"github.com/railbaron/stockround/internal/game"
	"github.com/railbaron/stockround/internal/stock"
)

// scenarioState is the mutable world a running scenario operates on. It
// exists once the "game" step has built a title.
type scenarioState struct {
	setup *catalog.Setup
	round *stock.Round
	step  *stock.Step

	players      map[string]*game.Player
	corporations map[string]*game.Corporation
	companies    map[string]*game.Company
	programs     map[string]*stock.BuyProgram

	active *game.Player
}
