package game

// Phase status flags consulted by the trading step.
const (
	StatusCanBuyCompanies = "can_buy_companies_from_other_players"
)

// Phase is the current game phase, reduced to the status flags the stock
// round cares about.
type Phase struct {
	status map[string]bool
}

// NewPhase creates a phase with the given status flags set.
func NewPhase(status ...string) *Phase {
	p := &Phase{status: make(map[string]bool, len(status))}
	for _, s := range status {
		p.status[s] = true
	}
	return p
}

// HasStatus reports whether a status flag is active.
func (p *Phase) HasStatus(status string) bool {
	return p.status[status]
}

// SetStatus toggles a status flag, for phase changes.
func (p *Phase) SetStatus(status string, active bool) {
	if active {
		p.status[status] = true
		return
	}
	delete(p.status, status)
}
