package game

// Company is a private company that players may trade among themselves
// once the phase permits it. A nil owner means it is still on the market.
type Company struct {
	name  string
	value int
	owner Entity
}

// NewCompany creates a private company with its face value.
func NewCompany(name string, value int) *Company {
	return &Company{name: name, value: value}
}

// Name returns the company name.
func (c *Company) Name() string {
	return c.name
}

// Value returns the company's face value.
func (c *Company) Value() int {
	return c.value
}

// Owner returns the current owner, or nil for a market-held company.
func (c *Company) Owner() Entity {
	return c.owner
}

// SetOwner reassigns the company.
func (c *Company) SetOwner(owner Entity) {
	c.owner = owner
}
