package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeStockCannotPar, "corporation cannot be parred")
	wrapped := fmt.Errorf("process par: %w", WithMetadata(CodeStockCannotPar, "PRR cannot be parred", map[string]string{"corporation": "PRR"}))

	if !errors.Is(wrapped, sentinel) {
		t.Fatal("expected wrapped error to match sentinel by code")
	}

	other := New(CodeStockCannotBuyShares, "cannot buy shares")
	if errors.Is(wrapped, other) {
		t.Fatal("expected mismatched codes not to match")
	}
}

func TestWrapExposesCause(t *testing.T) {
	cause := errors.New("insufficient cash")
	err := Wrap(CodeEntityInsufficientCash, "spend failed", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "spend failed" {
		t.Fatalf("message = %q, want %q", err.Error(), "spend failed")
	}
}
