package game

import (
	"slices"
	"strconv"

	apperrors "github.com/railbaron/stockround/internal/errors"
)

var (
	// ErrInvalidParPrice indicates a par price outside the market's table.
	ErrInvalidParPrice = apperrors.New(apperrors.CodeMarketInvalidParPrice, "invalid par price")
	// ErrAlreadyParred indicates a second par attempt on a corporation.
	ErrAlreadyParred = apperrors.New(apperrors.CodeMarketAlreadyParred, "corporation already parred")
)

// StockMarket tracks legal par prices and moves share prices along a
// single price ladder as stock is sold.
type StockMarket struct {
	ladder    []int // ascending share prices
	parPrices []int
}

// NewStockMarket creates a market from an ascending price ladder and the
// subset of prices usable as par prices.
func NewStockMarket(ladder, parPrices []int) *StockMarket {
	return &StockMarket{ladder: ladder, parPrices: parPrices}
}

// ParPrices returns the legal opening prices.
func (m *StockMarket) ParPrices() []int {
	return m.parPrices
}

// SetPar opens a corporation at the given price.
func (m *StockMarket) SetPar(corp *Corporation, price int) error {
	if corp.Ipoed() {
		return apperrors.WithMetadata(apperrors.CodeMarketAlreadyParred, corp.Name()+" already has a par price", map[string]string{
			"corporation": corp.Name(),
		})
	}
	if !slices.Contains(m.parPrices, price) {
		return apperrors.WithMetadata(apperrors.CodeMarketInvalidParPrice, strconv.Itoa(price)+" is not a par price", map[string]string{
			"corporation": corp.Name(),
			"price":       strconv.Itoa(price),
		})
	}
	corp.setPar(price)
	return nil
}

// MoveDown drops a corporation's share price the given number of steps,
// bottoming out at the low end of the ladder.
func (m *StockMarket) MoveDown(corp *Corporation, steps int) {
	index := slices.Index(m.ladder, corp.SharePrice())
	if index < 0 {
		return
	}
	index = max(index-steps, 0)
	corp.setSharePrice(m.ladder[index])
}
