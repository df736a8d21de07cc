package catalog

import (
	"strconv"

	apperrors "github.com/railbaron/stockround/internal/errors"
	"github.com/railbaron/stockround/internal/game"
	"github.com/railbaron/stockround/internal/journal"
	"github.com/railbaron/stockround/internal/stock"
)

// Setup is a title built for a concrete player list, ready for a stock
// round.
type Setup struct {
	State   *game.State
	Players []*game.Player
	Policy  stock.TradingPolicy
	Log     *journal.Log
}

// Build assembles the title into a playable state for the named players.
// Starting cash and certificate limit come from the title's table for
// that player count.
func (t *Title) Build(playerNames []string) (*Setup, error) {
	count := len(playerNames)
	cash, ok := valueForPlayers(t.StartingCash, count)
	if !ok {
		return nil, playerCountError(t.Name, count)
	}
	certLimit, ok := valueForPlayers(t.CertLimits, count)
	if !ok {
		return nil, playerCountError(t.Name, count)
	}

	players := make([]*game.Player, 0, count)
	for _, name := range playerNames {
		players = append(players, game.NewPlayer(name, cash))
	}

	corporations := make([]*game.Corporation, 0, len(t.Corporations))
	for _, def := range t.Corporations {
		corporations = append(corporations, game.NewCorporation(game.CorporationConfig{
			Name:         def.Name,
			FullName:     def.FullName,
			ShareSplit:   def.ShareSplit,
			FloatPercent: def.FloatPercent,
			BuyMultiple:  def.BuyMultiple,
			HoldingLimit: def.HoldingLimit,
		}))
	}

	companies := make([]*game.Company, 0, len(t.Companies))
	for _, def := range t.Companies {
		companies = append(companies, game.NewCompany(def.Name, def.Value))
	}

	phase := game.NewPhase(t.PhaseStatuses...)
	log := journal.New()

	state := game.NewState(game.StateConfig{
		BankCash:        t.BankCash,
		Market:          game.NewStockMarket(t.Market.Ladder, t.Market.ParPrices),
		Phase:           phase,
		Players:         players,
		Corporations:    corporations,
		Companies:       companies,
		CertLimit:       certLimit,
		FirstStockRound: !t.FirstStockRoundSales,
		CurrencySymbol:  t.Currency,
		Log:             log,
	})

	return &Setup{
		State:   state,
		Players: players,
		Policy:  t.Policy(),
		Log:     log,
	}, nil
}

// Policy maps the title's variant fields onto a trading policy.
func (t *Title) Policy() stock.TradingPolicy {
	policy := stock.TradingPolicy{MustSellInBlocks: t.MustSellInBlocks}
	switch t.SellBuyOrder {
	case "sell_buy":
		policy.SellBuyOrder = stock.SellBuy
	case "sell_buy_sell":
		policy.SellBuyOrder = stock.SellBuySell
	default:
		policy.SellBuyOrder = stock.SellBuyOrBuySell
	}
	return policy
}

func playerCountError(title string, count int) error {
	return apperrors.WithMetadata(apperrors.CodeCatalogPlayerCount, title+" does not support "+strconv.Itoa(count)+" players", map[string]string{
		"title":   title,
		"players": strconv.Itoa(count),
	})
}
