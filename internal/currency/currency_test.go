package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		amount int
		want   string
	}{
		{name: "small amount", symbol: "$", amount: 80, want: "$80"},
		{name: "grouped thousands", symbol: "$", amount: 1200, want: "$1,200"},
		{name: "other symbol", symbol: "F ", amount: 600, want: "F 600"},
		{name: "zero", symbol: "$", amount: 0, want: "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFormatter(tt.symbol).Format(tt.amount)
			if got != tt.want {
				t.Fatalf("format %d = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
