// Package game holds the concrete game state a stock round operates on:
// players, corporations, companies, share certificates, the open-market
// share pool, the stock market, and the bank. The trading step consumes
// this state through the narrow interface it defines for itself; all
// mutation of cash and holdings goes through the operations here.
package game

import (
	apperrors "github.com/railbaron/stockround/internal/errors"
)

// ErrInsufficientCash indicates an entity cannot afford a spend.
var ErrInsufficientCash = apperrors.New(apperrors.CodeEntityInsufficientCash, "insufficient cash")

// Entity is anything that can own cash, shares, and companies: a player,
// a corporation, the bank, or the open-market pool.
type Entity interface {
	Name() string
	Cash() int
	// Gain adds cash to the entity.
	Gain(amount int)
	// Spend removes cash from the entity and credits the receiver.
	// A nil receiver discards the money (sink).
	Spend(amount int, to Entity) error

	Shares() []*Share
	SharesOf(corp *Corporation) []*Share
	PercentOf(corp *Corporation) int
	AddShare(s *Share)
	RemoveShare(s *Share)

	Companies() []*Company
	AddCompany(c *Company)
	RemoveCompany(c *Company)

	IsCorporation() bool

	Passed() bool
	MarkPassed()
	Unpass()
}

// holder is the shared portfolio implementation embedded by Player,
// Corporation, Bank, and SharePool.
type holder struct {
	name      string
	cash      int
	shares    []*Share
	companies []*Company
	passed    bool
}

func (h *holder) Name() string {
	return h.name
}

func (h *holder) Cash() int {
	return h.cash
}

func (h *holder) Gain(amount int) {
	h.cash += amount
}

func (h *holder) Spend(amount int, to Entity) error {
	if amount > h.cash {
		return apperrors.WithMetadata(apperrors.CodeEntityInsufficientCash, h.name+" cannot afford spend", map[string]string{
			"entity": h.name,
		})
	}
	h.cash -= amount
	if to != nil {
		to.Gain(amount)
	}
	return nil
}

func (h *holder) Shares() []*Share {
	return h.shares
}

func (h *holder) SharesOf(corp *Corporation) []*Share {
	var owned []*Share
	for _, s := range h.shares {
		if s.corporation == corp {
			owned = append(owned, s)
		}
	}
	return owned
}

func (h *holder) PercentOf(corp *Corporation) int {
	total := 0
	for _, s := range h.shares {
		if s.corporation == corp {
			total += s.percent
		}
	}
	return total
}

func (h *holder) AddShare(s *Share) {
	h.shares = append(h.shares, s)
}

func (h *holder) RemoveShare(s *Share) {
	for i, owned := range h.shares {
		if owned == s {
			h.shares = append(h.shares[:i], h.shares[i+1:]...)
			return
		}
	}
}

func (h *holder) Companies() []*Company {
	return h.companies
}

func (h *holder) AddCompany(c *Company) {
	h.companies = append(h.companies, c)
}

func (h *holder) RemoveCompany(c *Company) {
	for i, owned := range h.companies {
		if owned == c {
			h.companies = append(h.companies[:i], h.companies[i+1:]...)
			return
		}
	}
}

func (h *holder) IsCorporation() bool {
	return false
}

func (h *holder) Passed() bool {
	return h.passed
}

func (h *holder) MarkPassed() {
	h.passed = true
}

func (h *holder) Unpass() {
	h.passed = false
}
