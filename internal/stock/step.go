package stock

import (
	"github.com/railbaron/stockround/internal/game"
	"github.com/railbaron/stockround/internal/journal"

	apperrors "github.com/railbaron/stockround/internal/errors"
)

var (
	// ErrNotActiveEntity indicates an action submitted out of turn.
	ErrNotActiveEntity = apperrors.New(apperrors.CodeStockNotActiveEntity, "not the active entity")
	// ErrCannotBuyShares indicates a buy that fails the legality re-check.
	ErrCannotBuyShares = apperrors.New(apperrors.CodeStockCannotBuyShares, "cannot buy shares")
	// ErrCannotSellShares indicates a sale that fails the legality re-check.
	ErrCannotSellShares = apperrors.New(apperrors.CodeStockCannotSellShares, "cannot sell shares")
	// ErrCannotPar indicates a par on a corporation that cannot be parred.
	ErrCannotPar = apperrors.New(apperrors.CodeStockCannotPar, "corporation cannot be parred")
	// ErrCorporateSeller indicates a company purchase from a corporation.
	ErrCorporateSeller = apperrors.New(apperrors.CodeStockCorporateSeller, "companies may only be bought from players or the market")
	// ErrUnsupportedAction indicates an action kind the step cannot process.
	ErrUnsupportedAction = apperrors.New(apperrors.CodeStockUnsupportedAction, "unsupported action")
)

// Step is the share-trading turn step. It evaluates legality against the
// current game state and turn history, and applies submitted actions
// transactionally. The step owns no state beyond what the round controller
// passes in.
type Step struct {
	game   Game
	policy TradingPolicy
	round  *Round
	log    *journal.Log
}

// NewStep creates a trading step over the given game state, variant
// policy, and round bookkeeping.
func NewStep(g Game, policy TradingPolicy, round *Round, log *journal.Log) *Step {
	if log == nil {
		log = journal.New()
	}
	return &Step{game: g, policy: policy, round: round, log: log}
}

// Round returns the round bookkeeping the step operates on.
func (s *Step) Round() *Round {
	return s.round
}

// Policy returns the configured trading policy.
func (s *Step) Policy() TradingPolicy {
	return s.policy
}

// Setup starts the entity's turn: sale tags from the previous turn are
// demoted and the turn action log is cleared.
func (s *Step) Setup(entity game.Entity) {
	s.round.BeginTurn(entity)
}

// Actions computes the legal action menu for the entity. An entity forced
// over the certificate or holding limit may only sell.
func (s *Step) Actions(entity game.Entity) []Kind {
	if entity == nil || entity != s.round.Active() {
		return nil
	}
	if s.MustSell(entity) {
		return []Kind{KindSellShares}
	}

	var kinds []Kind
	if s.canBuyAny(entity) {
		kinds = append(kinds, KindBuyShares)
	}
	if s.canIPOAny(entity) {
		kinds = append(kinds, KindPar)
	}
	if len(s.PurchasableCompanies(entity)) > 0 {
		kinds = append(kinds, KindBuyCompany)
	}
	if s.canSellAny(entity) {
		kinds = append(kinds, KindSellShares)
	}
	if len(kinds) > 0 {
		kinds = append(kinds, KindPass)
	}
	return kinds
}

// MustSell reports whether the entity is over the certificate limit or a
// holding limit and must sell before doing anything else.
func (s *Step) MustSell(entity game.Entity) bool {
	if s.game.CanHoldAboveLimit(entity) {
		return false
	}
	if s.game.NumCerts(entity) > s.game.CertLimit() {
		return true
	}
	for _, corp := range s.game.Corporations() {
		if !corp.HoldingOK(entity) {
			return true
		}
	}
	return false
}

// CanBuy reports whether the entity may buy the bundle right now. Selling
// a corporation's stock bars buying it back this round, and a second buy
// in one turn needs the corporation's multi-buy eligibility.
func (s *Step) CanBuy(entity game.Entity, bundle *game.Bundle) bool {
	if bundle == nil || !bundle.Buyable() {
		return false
	}
	corp := bundle.Corporation()
	if entity.Cash() < bundle.Price() {
		return false
	}
	if s.round.Sold(entity, corp) != SaleNone {
		return false
	}
	if s.round.Bought() && !s.canBuyMultiple(entity, corp) {
		return false
	}
	return s.canGain(entity, bundle)
}

// canBuyMultiple reports whether the corporation allows another buy this
// turn: no par action yet, and no earlier buy of a different corporation.
func (s *Step) canBuyMultiple(entity game.Entity, corp *game.Corporation) bool {
	if !corp.BuyMultiple() {
		return false
	}
	for _, a := range s.round.Actions() {
		if a.Kind() == KindPar {
			return false
		}
		if buy, ok := a.(*BuyShares); ok && buy.Bundle.Corporation() != corp {
			return false
		}
	}
	return true
}

// canGain checks certificate and holding limits after the gain.
func (s *Step) canGain(entity game.Entity, bundle *game.Bundle) bool {
	if s.game.CanHoldAboveLimit(entity) {
		return true
	}
	if s.game.NumCerts(entity)+len(bundle.Shares()) > s.game.CertLimit() {
		return false
	}
	corp := bundle.Corporation()
	return entity.PercentOf(corp)+bundle.Percent() <= corp.HoldingLimit()
}

// CanSell reports whether the entity may sell the bundle right now.
func (s *Step) CanSell(entity game.Entity, bundle *game.Bundle) bool {
	if bundle == nil {
		return false
	}
	corp := bundle.Corporation()
	if !s.game.CheckSaleTiming(entity, corp) {
		return false
	}
	if s.policy.MustSellInBlocks && s.round.Sold(entity, corp) == SaleNow {
		return false
	}
	if !s.canSellOrder() {
		return false
	}
	if !s.game.FitInBank(bundle) {
		return false
	}
	return bundle.CanDump(entity)
}

// canSellOrder applies the variant's sell ordering rule to the turn
// history so far.
func (s *Step) canSellOrder() bool {
	switch s.policy.SellBuyOrder {
	case SellBuy:
		return !s.round.Bought()
	case SellBuySell:
		return true
	default:
		last := s.round.LastAction()
		return !(s.round.DistinctKinds() == 2 && last != nil && IsPurchase(last))
	}
}

func (s *Step) canSellAny(entity game.Entity) bool {
	for _, corp := range s.game.Corporations() {
		for _, bundle := range s.game.BundlesForCorporation(entity, corp) {
			if s.CanSell(entity, bundle) {
				return true
			}
		}
	}
	return false
}

func (s *Step) canBuyAny(entity game.Entity) bool {
	return s.canBuyAnyFromMarket(entity) || s.canBuyAnyFromIPO(entity)
}

func (s *Step) canBuyAnyFromMarket(entity game.Entity) bool {
	byCorp := make(map[*game.Corporation][]*game.Share)
	for _, share := range s.game.Pool().Shares() {
		byCorp[share.Corporation()] = append(byCorp[share.Corporation()], share)
	}
	for _, shares := range byCorp {
		if s.canBuyShares(entity, shares) {
			return true
		}
	}
	return false
}

func (s *Step) canBuyAnyFromIPO(entity game.Entity) bool {
	for _, corp := range s.game.Corporations() {
		if !corp.Ipoed() {
			continue
		}
		if s.canBuyShares(entity, corp.IPOShares()) {
			return true
		}
	}
	return false
}

// canBuyShares checks the smallest buyable share in the group.
func (s *Step) canBuyShares(entity game.Entity, shares []*game.Share) bool {
	var minShare *game.Share
	for _, share := range shares {
		if !share.Buyable() {
			continue
		}
		if minShare == nil || share.Percent() < minShare.Percent() {
			minShare = share
		}
	}
	if minShare == nil {
		return false
	}
	return s.CanBuy(entity, minShare.ToBundle())
}

// canIPOAny reports whether the entity could par some corporation: no
// purchase yet this turn, an affordable par price, and an unparred
// corporation it did not sell this round.
func (s *Step) canIPOAny(entity game.Entity) bool {
	if s.round.Bought() {
		return false
	}
	if len(s.ParPrices(entity)) == 0 {
		return false
	}
	for _, corp := range s.game.Corporations() {
		if !s.game.CanPar(corp, entity) {
			continue
		}
		if s.round.Sold(entity, corp) != SaleNone {
			continue
		}
		if len(corp.IPOShares()) == 0 {
			continue
		}
		return true
	}
	return false
}

// ParPrices returns the par prices the entity can afford. The president's
// certificate costs two shares at par.
func (s *Step) ParPrices(entity game.Entity) []int {
	var prices []int
	for _, price := range s.game.ParPrices() {
		if price*2 <= entity.Cash() {
			prices = append(prices, price)
		}
	}
	return prices
}

// PurchasableCompanies returns the companies the entity could buy this
// turn: none once the entity has bought, is broke, or the phase forbids
// company trading.
func (s *Step) PurchasableCompanies(entity game.Entity) []*game.Company {
	if s.round.Bought() || entity.Cash() <= 0 ||
		!s.game.Phase().HasStatus(game.StatusCanBuyCompanies) {
		return nil
	}
	return s.game.PurchasableCompanies(entity)
}

// Process validates and applies a single submitted action. Every
// precondition violation surfaces as a coded error; nothing is silently
// skipped.
func (s *Step) Process(a Action) error {
	if a.Entity() != s.round.Active() {
		return apperrors.WithMetadata(apperrors.CodeStockNotActiveEntity, a.Entity().Name()+" is not the active entity", map[string]string{
			"entity": a.Entity().Name(),
		})
	}
	switch a := a.(type) {
	case *BuyShares:
		return s.ProcessBuyShares(a)
	case *SellShares:
		return s.ProcessSellShares(a)
	case *Par:
		return s.ProcessPar(a)
	case *BuyCompany:
		return s.ProcessBuyCompany(a)
	case *Pass:
		return s.ProcessPass(a)
	default:
		return apperrors.WithMetadata(apperrors.CodeStockUnsupportedAction, "unsupported action "+string(a.Kind()), map[string]string{
			"kind": string(a.Kind()),
		})
	}
}

// ProcessBuyShares applies a buy, re-checking legality at execution time.
func (s *Step) ProcessBuyShares(a *BuyShares) error {
	entity := a.Entity()
	if !s.CanBuy(entity, a.Bundle) && !a.Swap {
		return apperrors.WithMetadata(apperrors.CodeStockCannotBuyShares, entity.Name()+" cannot buy shares of "+a.Bundle.Corporation().Name(), map[string]string{
			"entity":      entity.Name(),
			"corporation": a.Bundle.Corporation().Name(),
		})
	}
	if err := s.buyShares(entity, a.Bundle); err != nil {
		return err
	}
	s.round.SetLastToAct(entity)
	s.round.Record(a)
	return nil
}

// ProcessSellShares applies a sale: the turn history is tagged before the
// market adjusts the price and pools the shares.
func (s *Step) ProcessSellShares(a *SellShares) error {
	entity := a.Entity()
	if !s.CanSell(entity, a.Bundle) && !a.Swap {
		return apperrors.WithMetadata(apperrors.CodeStockCannotSellShares, entity.Name()+" cannot sell shares of "+a.Bundle.Corporation().Name(), map[string]string{
			"entity":      entity.Name(),
			"corporation": a.Bundle.Corporation().Name(),
		})
	}
	s.round.RecordSale(a.Bundle.Owner(), a.Bundle.Corporation())
	if err := s.game.SellSharesAndChangePrice(a.Bundle); err != nil {
		return err
	}
	s.round.SetLastToAct(entity)
	s.round.Record(a)
	return nil
}

// ProcessPar opens a corporation: the par price is set and the first
// treasury share is bought as an implicit purchase by the parring entity.
func (s *Step) ProcessPar(a *Par) error {
	entity := a.Entity()
	corp := a.Corporation
	if !s.game.CanPar(corp, entity) {
		return apperrors.WithMetadata(apperrors.CodeStockCannotPar, corp.Name()+" cannot be parred", map[string]string{
			"corporation": corp.Name(),
		})
	}
	if err := s.game.SetPar(corp, a.SharePrice); err != nil {
		return err
	}
	s.log.Addf("%s pars %s at %s", entity.Name(), corp.Name(), s.game.FormatCurrency(a.SharePrice))

	if ipo := corp.IPOShares(); len(ipo) > 0 {
		if err := s.buyShares(entity, ipo[0].ToBundle()); err != nil {
			return err
		}
	}
	s.game.AfterPar(corp)
	s.round.SetLastToAct(entity)
	s.round.Record(a)
	return nil
}

// ProcessBuyCompany transfers a private company from a player or the
// market. Corporations cannot be sellers here.
func (s *Step) ProcessBuyCompany(a *BuyCompany) error {
	entity := a.Entity()
	company := a.Company
	owner := company.Owner()
	if owner != nil && owner.IsCorporation() {
		return apperrors.WithMetadata(apperrors.CodeStockCorporateSeller, entity.Name()+" cannot buy "+company.Name()+" from "+owner.Name(), map[string]string{
			"entity":  entity.Name(),
			"company": company.Name(),
		})
	}

	receiver := owner
	if receiver == nil {
		receiver = s.game.Bank()
	}
	if err := entity.Spend(a.Price, receiver); err != nil {
		return err
	}

	if owner != nil {
		owner.RemoveCompany(company)
	}
	company.SetOwner(entity)
	entity.AddCompany(company)
	s.round.Record(a)

	if owner != nil {
		s.log.Addf("-- %s buys %s from %s for %s", entity.Name(), company.Name(), owner.Name(), s.game.FormatCurrency(a.Price))
	} else {
		s.log.Addf("%s buys %s from the market for %s", entity.Name(), company.Name(), s.game.FormatCurrency(a.Price))
	}
	return nil
}

// ProcessPass ends the turn. A turn with actions leaves the entity
// active and out of the pass order; an empty turn marks it passed.
func (s *Step) ProcessPass(a *Pass) error {
	entity := a.Entity()
	if len(s.round.Actions()) > 0 {
		s.round.RemoveFromPassOrder(entity)
		entity.Unpass()
	} else {
		s.round.AppendPassOrder(entity)
		entity.MarkPassed()
	}
	s.LogPass(entity)
	return nil
}

// buyShares transfers the bundle and spends the price into the bank,
// floating the corporation when its threshold is crossed.
func (s *Step) buyShares(entity game.Entity, bundle *game.Bundle) error {
	corp := bundle.Corporation()
	source := sourceName(bundle, corp)

	if err := entity.Spend(bundle.Price(), s.game.Bank()); err != nil {
		return err
	}
	bundle.TransferTo(entity)

	if len(bundle.Shares()) == 1 {
		s.log.Addf("%s buys a %d%% share of %s from %s for %s",
			entity.Name(), bundle.Percent(), corp.Name(), source, s.game.FormatCurrency(bundle.Price()))
	} else {
		s.log.Addf("%s buys %d%% of %s from %s for %s",
			entity.Name(), bundle.Percent(), corp.Name(), source, s.game.FormatCurrency(bundle.Price()))
	}
	s.game.FloatIfNeeded(corp)
	return nil
}

func sourceName(bundle *game.Bundle, corp *game.Corporation) string {
	switch owner := bundle.Owner().(type) {
	case *game.Corporation:
		if owner == corp {
			return "the IPO"
		}
		return owner.Name()
	case *game.SharePool:
		return "the market"
	default:
		return owner.Name()
	}
}

// LogPass writes the pass log line: an explicit pass on an empty turn, or
// a declines-to-trade line after a one-sided turn.
func (s *Step) LogPass(entity game.Entity) {
	if len(s.round.Actions()) == 0 {
		s.log.Addf("%s passes", entity.Name())
		return
	}
	if s.round.Bought() && s.round.SoldAny() {
		return
	}
	if s.round.Bought() {
		s.log.Addf("%s declines to sell shares", entity.Name())
		return
	}
	s.log.Addf("%s declines to buy shares", entity.Name())
}

// LogSkip writes the skip line for an entity with no legal actions. The
// entity is not marked passed; skipping is not an explicit pass.
func (s *Step) LogSkip(entity game.Entity) {
	s.log.Addf("%s has no valid actions and passes", entity.Name())
}

// Description returns the variant-dependent step label.
func (s *Step) Description() string {
	return s.policy.Description()
}

// PassDescription labels the pass button: Pass before any action this
// turn, Done after.
func (s *Step) PassDescription() string {
	if len(s.round.Actions()) == 0 {
		return "Pass (Share)"
	}
	return "Done (Share)"
}
