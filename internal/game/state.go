package game

import (
	"fmt"
	"slices"

	"github.com/railbaron/stockround/internal/currency"
	"github.com/railbaron/stockround/internal/journal"
)

// State is the queryable game-state service the trading step consults. It
// owns the bank, the open-market pool, the stock market, and every player,
// corporation, and company in play.
type State struct {
	bank            *Bank
	pool            *SharePool
	market          *StockMarket
	phase           *Phase
	players         []*Player
	corporations    []*Corporation
	companies       []*Company
	certLimit       int
	holdAboveLimit  bool
	firstStockRound bool
	format          *currency.Formatter
	log             *journal.Log
}

// StateConfig assembles a game state.
type StateConfig struct {
	BankCash            int
	Market              *StockMarket
	Phase               *Phase
	Players             []*Player
	Corporations        []*Corporation
	Companies           []*Company
	CertLimit           int
	AllowHoldAboveLimit bool
	FirstStockRound     bool
	CurrencySymbol      string
	Log                 *journal.Log
}

// NewState creates a game state ready for a stock round.
func NewState(cfg StateConfig) *State {
	symbol := cfg.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	log := cfg.Log
	if log == nil {
		log = journal.New()
	}
	phase := cfg.Phase
	if phase == nil {
		phase = NewPhase()
	}
	return &State{
		bank:            NewBank(cfg.BankCash),
		pool:            NewSharePool(),
		market:          cfg.Market,
		phase:           phase,
		players:         cfg.Players,
		corporations:    cfg.Corporations,
		companies:       cfg.Companies,
		certLimit:       cfg.CertLimit,
		holdAboveLimit:  cfg.AllowHoldAboveLimit,
		firstStockRound: cfg.FirstStockRound,
		format:          currency.NewFormatter(symbol),
		log:             log,
	}
}

// Bank returns the bank.
func (st *State) Bank() Entity {
	return st.bank
}

// Pool returns the open-market share pool.
func (st *State) Pool() *SharePool {
	return st.pool
}

// Market returns the stock market.
func (st *State) Market() *StockMarket {
	return st.market
}

// Phase returns the current phase.
func (st *State) Phase() *Phase {
	return st.phase
}

// Players returns every player in seating order.
func (st *State) Players() []*Player {
	return st.players
}

// Corporations returns every corporation in the game.
func (st *State) Corporations() []*Corporation {
	return st.corporations
}

// Companies returns every private company in the game.
func (st *State) Companies() []*Company {
	return st.companies
}

// Log returns the narrative game log.
func (st *State) Log() *journal.Log {
	return st.log
}

// CertLimit returns the certificate limit per player.
func (st *State) CertLimit() int {
	return st.certLimit
}

// NumCerts returns how many certificates the entity holds.
func (st *State) NumCerts(entity Entity) int {
	return len(entity.Shares())
}

// CanHoldAboveLimit reports whether the entity may exceed holding limits.
func (st *State) CanHoldAboveLimit(entity Entity) bool {
	return st.holdAboveLimit
}

// CanPar reports whether the entity may set the corporation's par price.
func (st *State) CanPar(corp *Corporation, entity Entity) bool {
	if corp.Ipoed() {
		return false
	}
	_, isPlayer := entity.(*Player)
	return isPlayer
}

// ParPrices returns the market's legal opening prices.
func (st *State) ParPrices() []int {
	return st.market.ParPrices()
}

// SetPar opens the corporation at the given price.
func (st *State) SetPar(corp *Corporation, price int) error {
	return st.market.SetPar(corp, price)
}

// AfterPar runs post-par side effects.
func (st *State) AfterPar(corp *Corporation) {
	st.FloatIfNeeded(corp)
}

// MarkFirstStockRoundOver lifts the first-round sale restriction.
func (st *State) MarkFirstStockRoundOver() {
	st.firstStockRound = false
}

// CheckSaleTiming reports whether the entity may sell the corporation's
// stock at all right now: the corporation must be open and sales are
// barred during the first stock round.
func (st *State) CheckSaleTiming(entity Entity, corp *Corporation) bool {
	return corp.Ipoed() && !st.firstStockRound
}

// FitInBank reports whether the bundle fits under the pool cap.
func (st *State) FitInBank(b *Bundle) bool {
	return st.pool.FitInBank(b)
}

// BundlesForCorporation enumerates the bundles the entity could sell of
// one corporation: every prefix of its certificates, smallest first, with
// the president's certificate last.
func (st *State) BundlesForCorporation(entity Entity, corp *Corporation) []*Bundle {
	shares := slices.Clone(entity.SharesOf(corp))
	slices.SortStableFunc(shares, func(a, b *Share) int {
		switch {
		case a.president != b.president && a.president:
			return 1
		case a.president != b.president:
			return -1
		default:
			return a.percent - b.percent
		}
	})

	var bundles []*Bundle
	for i := range shares {
		bundles = append(bundles, NewBundle(shares[:i+1]...))
	}
	return bundles
}

// SellSharesAndChangePrice moves the bundle into the pool, pays the
// seller from the bank, and drops the share price one step per share.
func (st *State) SellSharesAndChangePrice(b *Bundle) error {
	owner := b.Owner()
	corp := b.Corporation()
	num := b.NumShares()

	st.log.Addf("%s sells %s of %s and receives %s",
		owner.Name(), shareCount(num), corp.Name(), st.FormatCurrency(b.Price()))

	b.TransferTo(st.pool)
	if err := st.bank.Spend(b.Price(), owner); err != nil {
		return fmt.Errorf("pay seller: %w", err)
	}
	st.market.MoveDown(corp, num)
	st.log.Addf("%s's share price drops to %s", corp.Name(), st.FormatCurrency(corp.SharePrice()))
	return nil
}

// FloatIfNeeded floats the corporation once enough treasury stock has
// sold, paying in the full capitalization from the bank.
func (st *State) FloatIfNeeded(corp *Corporation) {
	if !corp.Ipoed() || corp.Floated() || corp.PercentSold() < corp.FloatPercent() {
		return
	}
	corp.float()
	capitalization := corp.ParPrice() * (100 / corp.shareUnit)
	if err := st.bank.Spend(capitalization, corp); err != nil {
		st.log.Addf("%s floats but the bank cannot pay its capitalization", corp.Name())
		return
	}
	st.log.Addf("%s floats and receives %s", corp.Name(), st.FormatCurrency(capitalization))
}

// PurchasableCompanies returns the private companies the entity could buy:
// those on the market and those held by other players.
func (st *State) PurchasableCompanies(entity Entity) []*Company {
	var purchasable []*Company
	for _, company := range st.companies {
		owner := company.Owner()
		if owner == entity {
			continue
		}
		if owner == nil {
			purchasable = append(purchasable, company)
			continue
		}
		if _, isPlayer := owner.(*Player); isPlayer {
			purchasable = append(purchasable, company)
		}
	}
	return purchasable
}

// FormatCurrency renders an amount in the title's currency.
func (st *State) FormatCurrency(amount int) string {
	return st.format.Format(amount)
}

func shareCount(num int) string {
	if num == 1 {
		return "a share"
	}
	return fmt.Sprintf("%d shares", num)
}
