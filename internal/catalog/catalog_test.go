package catalog

import (
	"errors"
	"testing"

	apperrors "github.com/railbaron/stockround/internal/errors"
	"github.com/railbaron/stockround/internal/stock"
)

const minimalTitle = `
name: Minimal
currency: "$"
bank: 6000
starting_cash:
  - { players: 2, value: 500 }
cert_limits:
  - { players: 2, value: 12 }
sell_buy_order: sell_buy
must_sell_in_blocks: true
market:
  ladder: [50, 60, 70, 80]
  par_prices: [60, 70]
corporations:
  - name: PRR
    full_name: Pennsylvania Railroad
  - name: ERIE
    buy_multiple: true
companies:
  - { name: SVR, value: 20 }
`

func TestParseMinimalTitle(t *testing.T) {
	title, err := Parse([]byte(minimalTitle))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if title.Name != "Minimal" {
		t.Fatalf("name = %q, want Minimal", title.Name)
	}
	if got := len(title.Corporations); got != 2 {
		t.Fatalf("corporations = %d, want 2", got)
	}
	if !title.Corporations[1].BuyMultiple {
		t.Fatal("expected ERIE multi-buy flag")
	}
	policy := title.Policy()
	if policy.SellBuyOrder != stock.SellBuy {
		t.Fatalf("sell-buy order = %v, want SellBuy", policy.SellBuyOrder)
	}
	if !policy.MustSellInBlocks {
		t.Fatal("expected block selling")
	}
}

func TestParseRejectsMalformedTitles(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "name: [unclosed"},
		{name: "missing market", doc: `
name: Broken
bank: 6000
starting_cash: [{ players: 2, value: 500 }]
cert_limits: [{ players: 2, value: 12 }]
corporations: [{ name: PRR }]
`},
		{name: "bad sell order", doc: `
name: Broken
bank: 6000
starting_cash: [{ players: 2, value: 500 }]
cert_limits: [{ players: 2, value: 12 }]
sell_buy_order: whenever
market: { ladder: [50], par_prices: [50] }
corporations: [{ name: PRR }]
`},
		{name: "empty corporations", doc: `
name: Broken
bank: 6000
starting_cash: [{ players: 2, value: 500 }]
cert_limits: [{ players: 2, value: 12 }]
market: { ladder: [50], par_prices: [50] }
corporations: []
`},
		{name: "unknown field", doc: `
name: Broken
bank: 6000
trains: [2, 3, 4]
starting_cash: [{ players: 2, value: 500 }]
cert_limits: [{ players: 2, value: 12 }]
market: { ladder: [50], par_prices: [50] }
corporations: [{ name: PRR }]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected parse error")
			}
			var appErr *apperrors.Error
			if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeCatalogInvalidTitle {
				t.Fatalf("error = %v, want CodeCatalogInvalidTitle", err)
			}
		})
	}
}

func TestLoadBuiltinStandard(t *testing.T) {
	title, err := LoadBuiltin("standard")
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}
	if title.Name != "Standard" {
		t.Fatalf("name = %q, want Standard", title.Name)
	}
	if got := len(title.Corporations); got != 8 {
		t.Fatalf("corporations = %d, want 8", got)
	}
}

func TestLoadBuiltinUnknown(t *testing.T) {
	_, err := LoadBuiltin("atlantis")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildForPlayers(t *testing.T) {
	title, err := Parse([]byte(minimalTitle))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	setup, err := title.Build([]string{"Alice", "Bob"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := len(setup.Players); got != 2 {
		t.Fatalf("players = %d, want 2", got)
	}
	for _, p := range setup.Players {
		if p.Cash() != 500 {
			t.Fatalf("%s cash = %d, want 500", p.Name(), p.Cash())
		}
	}
	if got := setup.State.CertLimit(); got != 12 {
		t.Fatalf("cert limit = %d, want 12", got)
	}
	if got := setup.State.Bank().Cash(); got != 6000 {
		t.Fatalf("bank cash = %d, want 6000", got)
	}
	if got := len(setup.State.Corporations()); got != 2 {
		t.Fatalf("corporations = %d, want 2", got)
	}
	if sales := setup.State.CheckSaleTiming(setup.Players[0], setup.State.Corporations()[0]); sales {
		t.Fatal("first stock round should bar sales by default")
	}
}

func TestBuildRejectsUnsupportedPlayerCount(t *testing.T) {
	title, err := Parse([]byte(minimalTitle))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	_, err = title.Build([]string{"Alice", "Bob", "Carol"})
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeCatalogPlayerCount {
		t.Fatalf("error = %v, want CodeCatalogPlayerCount", err)
	}
}
