package stock

import "github.com/railbaron/stockround/internal/game"

// Game is the queryable game-state service the step consumes. It is the
// only way the step reads or mutates state it does not own; the concrete
// implementation lives in the game package.
type Game interface {
	Corporations() []*game.Corporation
	Bank() game.Entity
	Pool() *game.SharePool
	Phase() *game.Phase

	CertLimit() int
	NumCerts(entity game.Entity) int
	CanHoldAboveLimit(entity game.Entity) bool

	ParPrices() []int
	CanPar(corp *game.Corporation, entity game.Entity) bool
	SetPar(corp *game.Corporation, price int) error
	AfterPar(corp *game.Corporation)
	FloatIfNeeded(corp *game.Corporation)

	BundlesForCorporation(entity game.Entity, corp *game.Corporation) []*game.Bundle
	CheckSaleTiming(entity game.Entity, corp *game.Corporation) bool
	FitInBank(b *game.Bundle) bool
	SellSharesAndChangePrice(b *game.Bundle) error

	PurchasableCompanies(entity game.Entity) []*game.Company
	FormatCurrency(amount int) string
}
