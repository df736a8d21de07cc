package stock

import "github.com/railbaron/stockround/internal/game"

// Kind identifies an action type in the step's action menu.
type Kind string

const (
	KindBuyShares  Kind = "buy_shares"
	KindSellShares Kind = "sell_shares"
	KindPar        Kind = "par"
	KindBuyCompany Kind = "buy_company"
	KindPass       Kind = "pass"
)

// Action is a single submitted move. Actions are immutable once submitted
// and recorded in the turn history in submission order.
type Action interface {
	Kind() Kind
	Entity() game.Entity
}

// IsPurchase reports whether the action is purchase-class: buying shares,
// parring, or buying a company.
func IsPurchase(a Action) bool {
	switch a.Kind() {
	case KindBuyShares, KindPar, KindBuyCompany:
		return true
	}
	return false
}

type base struct {
	entity game.Entity
}

func (b base) Entity() game.Entity {
	return b.entity
}

// BuyShares buys a bundle from the treasury or the open market. Swap
// marks an exchange-style purchase that bypasses the legality re-check.
type BuyShares struct {
	base
	Bundle *game.Bundle
	Swap   bool
}

// NewBuyShares creates a buy-shares action.
func NewBuyShares(entity game.Entity, bundle *game.Bundle) *BuyShares {
	return &BuyShares{base: base{entity: entity}, Bundle: bundle}
}

// Kind returns KindBuyShares.
func (a *BuyShares) Kind() Kind { return KindBuyShares }

// SellShares sells a bundle into the open market.
type SellShares struct {
	base
	Bundle *game.Bundle
	Swap   bool
}

// NewSellShares creates a sell-shares action.
func NewSellShares(entity game.Entity, bundle *game.Bundle) *SellShares {
	return &SellShares{base: base{entity: entity}, Bundle: bundle}
}

// Kind returns KindSellShares.
func (a *SellShares) Kind() Kind { return KindSellShares }

// Par sets a corporation's opening share price.
type Par struct {
	base
	Corporation *game.Corporation
	SharePrice  int
}

// NewPar creates a par action.
func NewPar(entity game.Entity, corp *game.Corporation, sharePrice int) *Par {
	return &Par{base: base{entity: entity}, Corporation: corp, SharePrice: sharePrice}
}

// Kind returns KindPar.
func (a *Par) Kind() Kind { return KindPar }

// BuyCompany buys a private company from a player or the market.
type BuyCompany struct {
	base
	Company *game.Company
	Price   int
}

// NewBuyCompany creates a buy-company action.
func NewBuyCompany(entity game.Entity, company *game.Company, price int) *BuyCompany {
	return &BuyCompany{base: base{entity: entity}, Company: company, Price: price}
}

// Kind returns KindBuyCompany.
func (a *BuyCompany) Kind() Kind { return KindBuyCompany }

// Pass ends the entity's turn.
type Pass struct {
	base
}

// NewPass creates a pass action.
func NewPass(entity game.Entity) *Pass {
	return &Pass{base: base{entity: entity}}
}

// Kind returns KindPass.
func (a *Pass) Kind() Kind { return KindPass }

// ProgramDisable is synthesized by auto-play to switch a player back to
// manual control, with the reason shown to the player.
type ProgramDisable struct {
	base
	Reason string
}

// NewProgramDisable creates a program-disable signal.
func NewProgramDisable(entity game.Entity, reason string) *ProgramDisable {
	return &ProgramDisable{base: base{entity: entity}, Reason: reason}
}

// Kind returns "program_disable"; the signal never enters the turn
// history.
func (a *ProgramDisable) Kind() Kind { return "program_disable" }
