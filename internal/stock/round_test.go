package stock

import (
	"testing"

	"github.com/railbaron/stockround/internal/game"
)

func TestBeginTurnDemotesSaleTags(t *testing.T) {
	alice := game.NewPlayer("Alice", 600)
	bob := game.NewPlayer("Bob", 600)
	prr := game.NewCorporation(game.CorporationConfig{Name: "PRR"})

	round := NewRound()
	round.BeginTurn(alice)
	round.RecordSale(alice, prr)

	if got := round.Sold(alice, prr); got != SaleNow {
		t.Fatalf("tag = %v, want SaleNow", got)
	}

	round.BeginTurn(bob)

	if got := round.Sold(alice, prr); got != SalePrev {
		t.Fatalf("tag after turn change = %v, want SalePrev", got)
	}
	if got := round.Sold(bob, prr); got != SaleNone {
		t.Fatalf("tag for other entity = %v, want SaleNone", got)
	}
	if round.Active() != game.Entity(bob) {
		t.Fatal("expected Bob to be active")
	}
}

func TestBeginTurnClearsCurrentActions(t *testing.T) {
	alice := game.NewPlayer("Alice", 600)
	round := NewRound()
	round.BeginTurn(alice)
	round.Record(NewPass(alice))

	if len(round.Actions()) != 1 {
		t.Fatalf("actions = %d, want 1", len(round.Actions()))
	}

	round.BeginTurn(alice)

	if len(round.Actions()) != 0 {
		t.Fatalf("actions after new turn = %d, want 0", len(round.Actions()))
	}
}

func TestBoughtAndSoldDeriveFromActionLog(t *testing.T) {
	alice := game.NewPlayer("Alice", 600)
	prr := game.NewCorporation(game.CorporationConfig{Name: "PRR"})
	round := NewRound()
	round.BeginTurn(alice)

	if round.Bought() || round.SoldAny() {
		t.Fatal("expected empty turn")
	}

	round.Record(NewSellShares(alice, prr.IPOShares()[0].ToBundle()))
	if round.Bought() {
		t.Fatal("sale should not count as a purchase")
	}
	if !round.SoldAny() {
		t.Fatal("expected SoldAny after a sale")
	}

	round.Record(NewPar(alice, prr, 100))
	if !round.Bought() {
		t.Fatal("par is purchase-class")
	}
	if round.DistinctKinds() != 2 {
		t.Fatalf("distinct kinds = %d, want 2", round.DistinctKinds())
	}
	if last := round.LastAction(); last == nil || last.Kind() != KindPar {
		t.Fatal("expected par to be the last action")
	}
}

func TestPassOrderDeduplicates(t *testing.T) {
	alice := game.NewPlayer("Alice", 600)
	bob := game.NewPlayer("Bob", 600)
	round := NewRound()

	round.AppendPassOrder(alice)
	round.AppendPassOrder(bob)
	round.AppendPassOrder(alice)

	if got := len(round.PassOrder()); got != 2 {
		t.Fatalf("pass order length = %d, want 2", got)
	}

	round.RemoveFromPassOrder(alice)
	order := round.PassOrder()
	if len(order) != 1 || order[0] != game.Entity(bob) {
		t.Fatalf("pass order = %v, want [Bob]", order)
	}
}
