// Package stock implements the share-trading turn step of a stock round:
// computing the legal action set for the active entity, validating and
// applying submitted actions, tracking the intra-turn history the
// ordering rules depend on, and synthesizing actions for programmed
// players.
package stock

// SellBuyOrder selects how sells and buys may be ordered within one turn.
type SellBuyOrder int

const (
	// SellBuyOrBuySell allows one sell phase and one buy phase in either
	// order, but no selling after a sell-then-buy sequence.
	SellBuyOrBuySell SellBuyOrder = iota
	// SellBuy requires all sells to happen before any purchase.
	SellBuy
	// SellBuySell allows sells and buys to interleave freely.
	SellBuySell
)

// TradingPolicy carries the variant-dependent trading rules, fixed at
// game-configuration time.
type TradingPolicy struct {
	SellBuyOrder     SellBuyOrder
	MustSellInBlocks bool
}

// Description returns the human-readable label for the step under this
// policy.
func (p TradingPolicy) Description() string {
	switch p.SellBuyOrder {
	case SellBuy:
		return "Sell then Buy Shares"
	case SellBuySell:
		return "Sell/Buy/Sell Shares"
	default:
		return "Buy or Sell Shares"
	}
}
