package stock

import (
	"slices"

	"github.com/railbaron/stockround/internal/game"
)

// BuyProgram is a standing auto-play instruction: keep buying one
// corporation's treasury stock, optionally stopping once it floats.
type BuyProgram struct {
	Corporation *game.Corporation
	UntilFloat  bool
}

// AutoActions synthesizes zero or more actions for a programmed player.
// It never fails: when the program cannot continue it emits a
// ProgramDisable signal so the turn loop keeps running under manual
// control.
func (s *Step) AutoActions(entity game.Entity, program *BuyProgram) []Action {
	if program == nil || program.Corporation == nil {
		return nil
	}
	kinds := s.Actions(entity)
	corp := program.Corporation

	if slices.Contains(kinds, KindBuyShares) {
		if program.UntilFloat && corp.Floated() {
			return []Action{NewProgramDisable(entity, corp.Name()+" is floated")}
		}
		share := cheapestTreasuryShare(corp)
		if share == nil {
			return []Action{NewProgramDisable(entity, corp.Name()+" has no treasury shares left")}
		}
		bundle := share.ToBundle()
		if s.CanBuy(entity, bundle) {
			return []Action{NewBuyShares(entity, bundle)}
		}
		return []Action{NewProgramDisable(entity, "Cannot buy "+corp.Name())}
	}

	// Buy-then-sell variants need the explicit pass after the buy.
	if s.round.Bought() && slices.Contains(kinds, KindPass) {
		return []Action{NewPass(entity)}
	}
	return nil
}

func cheapestTreasuryShare(corp *game.Corporation) *game.Share {
	var cheapest *game.Share
	for _, share := range corp.IPOShares() {
		if !share.Buyable() {
			continue
		}
		if cheapest == nil || share.Price() < cheapest.Price() {
			cheapest = share
		}
	}
	return cheapest
}
