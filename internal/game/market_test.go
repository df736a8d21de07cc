package game

import (
	"errors"
	"testing"
)

func newTestMarket() *StockMarket {
	return NewStockMarket(
		[]int{50, 60, 70, 80, 90, 100},
		[]int{70, 80, 90, 100},
	)
}

func TestSetParOpensCorporation(t *testing.T) {
	market := newTestMarket()
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	if err := market.SetPar(corp, 80); err != nil {
		t.Fatalf("set par: %v", err)
	}

	if !corp.Ipoed() {
		t.Fatal("expected corporation parred")
	}
	if got := corp.ParPrice(); got != 80 {
		t.Fatalf("par price = %d, want 80", got)
	}
	if got := corp.SharePrice(); got != 80 {
		t.Fatalf("share price = %d, want 80", got)
	}
}

func TestSetParRejectsInvalidPrice(t *testing.T) {
	market := newTestMarket()
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	err := market.SetPar(corp, 75)
	if !errors.Is(err, ErrInvalidParPrice) {
		t.Fatalf("error = %v, want ErrInvalidParPrice", err)
	}
	if corp.Ipoed() {
		t.Fatal("corporation should stay unparred")
	}
}

func TestSetParRejectsSecondPar(t *testing.T) {
	market := newTestMarket()
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	if err := market.SetPar(corp, 80); err != nil {
		t.Fatalf("first par: %v", err)
	}
	err := market.SetPar(corp, 90)
	if !errors.Is(err, ErrAlreadyParred) {
		t.Fatalf("error = %v, want ErrAlreadyParred", err)
	}
}

func TestMoveDown(t *testing.T) {
	tests := []struct {
		name  string
		start int
		steps int
		want  int
	}{
		{name: "one step", start: 80, steps: 1, want: 70},
		{name: "several steps", start: 100, steps: 3, want: 70},
		{name: "clamped at floor", start: 60, steps: 5, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			market := newTestMarket()
			corp := NewCorporation(CorporationConfig{Name: "PRR"})
			corp.setSharePrice(tt.start)

			market.MoveDown(corp, tt.steps)

			if got := corp.SharePrice(); got != tt.want {
				t.Fatalf("share price = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolFitInBank(t *testing.T) {
	pool := NewSharePool()
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	shares := corp.IPOShares()
	for i := 1; i <= 4; i++ { // 40% in the pool
		shares[i].ToBundle().TransferTo(pool)
	}

	if !pool.FitInBank(shares[5].ToBundle()) {
		t.Fatal("10% more should fit under the 50% cap")
	}
	if pool.FitInBank(NewBundle(shares[5], shares[6])) {
		t.Fatal("20% more should exceed the 50% cap")
	}
}
