package game

import (
	"testing"

	"github.com/railbaron/stockround/internal/journal"
)

func newTestState(t *testing.T, players []*Player, corps []*Corporation, companies []*Company) (*State, *journal.Log) {
	t.Helper()
	log := journal.New()
	state := NewState(StateConfig{
		BankCash:     12000,
		Market:       newTestMarket(),
		Phase:        NewPhase(StatusCanBuyCompanies),
		Players:      players,
		Corporations: corps,
		Companies:    companies,
		CertLimit:    11,
		Log:          log,
	})
	return state, log
}

func TestBundlesForCorporationOrder(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	state, _ := newTestState(t, []*Player{alice}, []*Corporation{corp}, nil)
	if err := state.SetPar(corp, 70); err != nil {
		t.Fatalf("set par: %v", err)
	}

	corp.IPOShares()[0].ToBundle().TransferTo(alice) // president, 20%
	corp.IPOShares()[0].ToBundle().TransferTo(alice)
	corp.IPOShares()[0].ToBundle().TransferTo(alice)

	bundles := state.BundlesForCorporation(alice, corp)
	if got := len(bundles); got != 3 {
		t.Fatalf("bundles = %d, want 3", got)
	}

	wantPercents := []int{10, 20, 40}
	for i, want := range wantPercents {
		if got := bundles[i].Percent(); got != want {
			t.Fatalf("bundle %d percent = %d, want %d", i, got, want)
		}
	}
	if bundles[0].ContainsPresident() || bundles[1].ContainsPresident() {
		t.Fatal("president's certificate should only enter the largest bundle")
	}
	if !bundles[2].ContainsPresident() {
		t.Fatal("largest bundle should include the president's certificate")
	}
}

func TestSellSharesAndChangePrice(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	state, log := newTestState(t, []*Player{alice}, []*Corporation{corp}, nil)
	if err := state.SetPar(corp, 90); err != nil {
		t.Fatalf("set par: %v", err)
	}

	corp.IPOShares()[1].ToBundle().TransferTo(alice)
	corp.IPOShares()[1].ToBundle().TransferTo(alice)
	bundle := NewBundle(alice.SharesOf(corp)...)

	if err := state.SellSharesAndChangePrice(bundle); err != nil {
		t.Fatalf("sell: %v", err)
	}

	if got := alice.Cash(); got != 180 {
		t.Fatalf("seller cash = %d, want 180", got)
	}
	if got := alice.PercentOf(corp); got != 0 {
		t.Fatalf("seller holding = %d%%, want 0%%", got)
	}
	if got := state.Pool().PercentOf(corp); got != 20 {
		t.Fatalf("pool holding = %d%%, want 20%%", got)
	}
	if got := corp.SharePrice(); got != 70 {
		t.Fatalf("share price = %d, want 70 after two steps", got)
	}

	entries := log.Entries()
	if len(entries) < 2 {
		t.Fatalf("log entries = %d, want at least 2", len(entries))
	}
	if want := "Alice sells 2 shares of PRR and receives $180"; entries[len(entries)-2].Text != want {
		t.Fatalf("sale log = %q, want %q", entries[len(entries)-2].Text, want)
	}
	if want := "PRR's share price drops to $70"; entries[len(entries)-1].Text != want {
		t.Fatalf("price log = %q, want %q", entries[len(entries)-1].Text, want)
	}
}

func TestFloatIfNeededPaysCapitalization(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	state, log := newTestState(t, []*Player{alice}, []*Corporation{corp}, nil)
	if err := state.SetPar(corp, 70); err != nil {
		t.Fatalf("set par: %v", err)
	}

	for i := 0; i < 5; i++ {
		corp.IPOShares()[1].ToBundle().TransferTo(alice)
	}
	state.FloatIfNeeded(corp)
	if corp.Floated() {
		t.Fatal("50% sold should not float at a 60% threshold")
	}

	corp.IPOShares()[1].ToBundle().TransferTo(alice)
	state.FloatIfNeeded(corp)
	if !corp.Floated() {
		t.Fatal("60% sold should float")
	}
	if got := corp.Cash(); got != 700 {
		t.Fatalf("corporation cash = %d, want full capitalization 700", got)
	}
	entries := log.Entries()
	if want := "PRR floats and receives $700"; entries[len(entries)-1].Text != want {
		t.Fatalf("float log = %q, want %q", entries[len(entries)-1].Text, want)
	}

	bank := state.Bank().Cash()
	state.FloatIfNeeded(corp)
	if got := state.Bank().Cash(); got != bank {
		t.Fatal("floating must pay out only once")
	}
}

func TestCheckSaleTiming(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	log := journal.New()
	state := NewState(StateConfig{
		BankCash:        12000,
		Market:          newTestMarket(),
		Players:         []*Player{alice},
		Corporations:    []*Corporation{corp},
		CertLimit:       11,
		FirstStockRound: true,
		Log:             log,
	})

	if state.CheckSaleTiming(alice, corp) {
		t.Fatal("unparred stock must not be sellable")
	}
	if err := state.SetPar(corp, 70); err != nil {
		t.Fatalf("set par: %v", err)
	}
	if state.CheckSaleTiming(alice, corp) {
		t.Fatal("no sales during the first stock round")
	}
	state.MarkFirstStockRoundOver()
	if !state.CheckSaleTiming(alice, corp) {
		t.Fatal("sales should open once the first stock round ends")
	}
}

func TestPurchasableCompaniesFiltersOwners(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	bob := NewPlayer("Bob", 0)
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	mine := NewCompany("SVR", 40)
	mine.SetOwner(alice)
	theirs := NewCompany("CA", 80)
	theirs.SetOwner(bob)
	corporate := NewCompany("DH", 100)
	corporate.SetOwner(corp)
	market := NewCompany("MH", 120)

	state, _ := newTestState(t, []*Player{alice, bob}, []*Corporation{corp},
		[]*Company{mine, theirs, corporate, market})

	got := state.PurchasableCompanies(alice)
	if len(got) != 2 {
		t.Fatalf("purchasable = %d companies, want 2", len(got))
	}
	names := []string{got[0].Name(), got[1].Name()}
	if names[0] != "CA" || names[1] != "MH" {
		t.Fatalf("purchasable = %v, want [CA MH]", names)
	}
}

func TestCanPar(t *testing.T) {
	alice := NewPlayer("Alice", 0)
	prr := NewCorporation(CorporationConfig{Name: "PRR"})
	nyc := NewCorporation(CorporationConfig{Name: "NYC"})
	state, _ := newTestState(t, []*Player{alice}, []*Corporation{prr, nyc}, nil)

	if !state.CanPar(prr, alice) {
		t.Fatal("player should be able to par an unparred corporation")
	}
	if state.CanPar(prr, nyc) {
		t.Fatal("corporations must not par corporations")
	}
	if err := state.SetPar(prr, 70); err != nil {
		t.Fatalf("set par: %v", err)
	}
	if state.CanPar(prr, alice) {
		t.Fatal("parred corporation must not be parred again")
	}
}

func TestFormatCurrency(t *testing.T) {
	state, _ := newTestState(t, nil, nil, nil)

	if got := state.FormatCurrency(1200); got != "$1,200" {
		t.Fatalf("FormatCurrency(1200) = %q, want $1,200", got)
	}
}
