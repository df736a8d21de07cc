package stock

import (
	"slices"

	"github.com/railbaron/stockround/internal/game"
)

// SaleTag distinguishes a sale made during the current turn from one made
// earlier in the same round.
type SaleTag int

const (
	// SaleNone means the entity has not sold this corporation's stock
	// this round.
	SaleNone SaleTag = iota
	// SalePrev means the sale happened in an earlier turn this round.
	SalePrev
	// SaleNow means the sale happened during the current turn.
	SaleNow
)

// Round holds the per-round and per-turn state the step needs: which
// (entity, corporation) pairs sold stock and when, the ordered log of
// actions taken this turn, the pass order, and the last entity to act.
// Sale tags survive turn changes (demoted to SalePrev); the current
// action log is turn-scoped.
type Round struct {
	playersSold map[game.Entity]map[*game.Corporation]SaleTag
	current     []Action
	passOrder   []game.Entity
	lastToAct   game.Entity
	active      game.Entity
}

// NewRound creates an empty round.
func NewRound() *Round {
	return &Round{
		playersSold: make(map[game.Entity]map[*game.Corporation]SaleTag),
	}
}

// BeginTurn starts the given entity's turn: every sale tagged SaleNow is
// demoted to SalePrev and the current-action log is cleared.
func (r *Round) BeginTurn(entity game.Entity) {
	for _, corps := range r.playersSold {
		for corp, tag := range corps {
			if tag == SaleNow {
				corps[corp] = SalePrev
			}
		}
	}
	r.current = nil
	r.active = entity
}

// Active returns the entity whose turn it is.
func (r *Round) Active() game.Entity {
	return r.active
}

// Sold returns the sale tag for the entity and corporation.
func (r *Round) Sold(entity game.Entity, corp *game.Corporation) SaleTag {
	return r.playersSold[entity][corp]
}

// RecordSale tags the pair as sold during the current turn.
func (r *Round) RecordSale(entity game.Entity, corp *game.Corporation) {
	corps := r.playersSold[entity]
	if corps == nil {
		corps = make(map[*game.Corporation]SaleTag)
		r.playersSold[entity] = corps
	}
	corps[corp] = SaleNow
}

// Record appends an action to the current turn's log.
func (r *Round) Record(a Action) {
	r.current = append(r.current, a)
}

// Actions returns the actions taken so far this turn, in order.
func (r *Round) Actions() []Action {
	return r.current
}

// Bought reports whether a purchase-class action happened this turn.
func (r *Round) Bought() bool {
	return slices.ContainsFunc(r.current, IsPurchase)
}

// SoldAny reports whether a sale happened this turn.
func (r *Round) SoldAny() bool {
	return slices.ContainsFunc(r.current, func(a Action) bool {
		return a.Kind() == KindSellShares
	})
}

// DistinctKinds returns how many distinct action kinds happened this turn.
func (r *Round) DistinctKinds() int {
	seen := make(map[Kind]bool, len(r.current))
	for _, a := range r.current {
		seen[a.Kind()] = true
	}
	return len(seen)
}

// LastAction returns the most recent action this turn, or nil.
func (r *Round) LastAction() Action {
	if len(r.current) == 0 {
		return nil
	}
	return r.current[len(r.current)-1]
}

// SetLastToAct records the last entity to take a real action.
func (r *Round) SetLastToAct(entity game.Entity) {
	r.lastToAct = entity
}

// LastToAct returns the last entity to take a real action.
func (r *Round) LastToAct() game.Entity {
	return r.lastToAct
}

// PassOrder returns the entities that passed on an empty turn, in order.
func (r *Round) PassOrder() []game.Entity {
	return r.passOrder
}

// AppendPassOrder adds the entity to the pass order if absent.
func (r *Round) AppendPassOrder(entity game.Entity) {
	if slices.Contains(r.passOrder, entity) {
		return
	}
	r.passOrder = append(r.passOrder, entity)
}

// RemoveFromPassOrder drops the entity from the pass order.
func (r *Round) RemoveFromPassOrder(entity game.Entity) {
	for i, e := range r.passOrder {
		if e == entity {
			r.passOrder = append(r.passOrder[:i], r.passOrder[i+1:]...)
			return
		}
	}
}
