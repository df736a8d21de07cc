package game

// SharePool is the open market: shares sold by players sit here until
// bought back. The pool holds at most poolLimit percent of any one
// corporation's stock.
type SharePool struct {
	holder
	poolLimit int
}

// NewSharePool creates an empty open-market pool.
func NewSharePool() *SharePool {
	return &SharePool{
		holder:    holder{name: "the market"},
		poolLimit: 50,
	}
}

// FitInBank reports whether the bundle fits under the pool cap for its
// corporation.
func (p *SharePool) FitInBank(b *Bundle) bool {
	return p.PercentOf(b.Corporation())+b.Percent() <= p.poolLimit
}
