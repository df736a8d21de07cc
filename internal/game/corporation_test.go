package game

import "testing"

func TestNewCorporationDefaultSplit(t *testing.T) {
	corp := NewCorporation(CorporationConfig{Name: "PRR"})

	if got := len(corp.Certs()); got != 9 {
		t.Fatalf("certificates = %d, want 9", got)
	}
	if !corp.Certs()[0].President() {
		t.Fatal("first certificate should be the president's")
	}
	if got := corp.PresidentPercent(); got != 20 {
		t.Fatalf("president percent = %d, want 20", got)
	}
	if corp.Ipoed() {
		t.Fatal("new corporation should not be parred")
	}
}

func TestNewCorporationCustomSplit(t *testing.T) {
	corp := NewCorporation(CorporationConfig{
		Name:       "B&O",
		ShareSplit: []int{40, 20, 20, 20},
	})

	if got := len(corp.Certs()); got != 4 {
		t.Fatalf("certificates = %d, want 4", got)
	}
	if got := corp.PresidentPercent(); got != 40 {
		t.Fatalf("president percent = %d, want 40", got)
	}
}

func TestPercentSold(t *testing.T) {
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	alice := NewPlayer("Alice", 0)

	if got := corp.PercentSold(); got != 0 {
		t.Fatalf("percent sold = %d, want 0", got)
	}

	corp.IPOShares()[0].ToBundle().TransferTo(alice)
	corp.IPOShares()[0].ToBundle().TransferTo(alice)

	if got := corp.PercentSold(); got != 30 {
		t.Fatalf("percent sold = %d, want 30", got)
	}
}

func TestHoldingOK(t *testing.T) {
	corp := NewCorporation(CorporationConfig{Name: "PRR"})
	alice := NewPlayer("Alice", 0)

	for i := 0; i < 6; i++ {
		corp.IPOShares()[len(corp.IPOShares())-1].ToBundle().TransferTo(alice)
	}
	if !corp.HoldingOK(alice) {
		t.Fatal("60% should satisfy the 60% holding limit")
	}

	corp.IPOShares()[len(corp.IPOShares())-1].ToBundle().TransferTo(alice)
	if corp.HoldingOK(alice) {
		t.Fatal("70% should violate the 60% holding limit")
	}
}
