package game

// Corporation is a share company. Its certificates start in the treasury
// (IPO) and move to players and the open-market pool through trading.
type Corporation struct {
	holder

	fullName     string
	certs        []*Share // every certificate issued, regardless of owner
	shareUnit    int      // percent represented by one ordinary share
	parPrice     int
	sharePrice   int
	ipoed        bool
	floated      bool
	floatPercent int
	buyMultiple  bool
	holdingLimit int
}

// CorporationConfig describes a corporation at setup time.
type CorporationConfig struct {
	Name         string
	FullName     string
	ShareSplit   []int // certificate percents, president first; nil means 20,10×8
	FloatPercent int   // percent of IPO stock sold before floating; default 60
	BuyMultiple  bool
	HoldingLimit int // max percent a single player may hold; default 60
}

// NewCorporation creates an unparred corporation with its certificates in
// the treasury.
func NewCorporation(cfg CorporationConfig) *Corporation {
	split := cfg.ShareSplit
	if len(split) == 0 {
		split = []int{20, 10, 10, 10, 10, 10, 10, 10, 10}
	}
	floatPercent := cfg.FloatPercent
	if floatPercent == 0 {
		floatPercent = 60
	}
	holdingLimit := cfg.HoldingLimit
	if holdingLimit == 0 {
		holdingLimit = 60
	}

	corp := &Corporation{
		holder:       holder{name: cfg.Name},
		fullName:     cfg.FullName,
		shareUnit:    10,
		floatPercent: floatPercent,
		buyMultiple:  cfg.BuyMultiple,
		holdingLimit: holdingLimit,
	}
	for i, percent := range split {
		share := &Share{
			corporation: corp,
			percent:     percent,
			president:   i == 0,
			buyable:     true,
			owner:       corp,
		}
		corp.certs = append(corp.certs, share)
		corp.holder.AddShare(share)
	}
	return corp
}

// FullName returns the corporation's long name.
func (c *Corporation) FullName() string {
	return c.fullName
}

// IsCorporation reports true.
func (c *Corporation) IsCorporation() bool {
	return true
}

// Certs returns every certificate the corporation has issued.
func (c *Corporation) Certs() []*Share {
	return c.certs
}

// IPOShares returns the certificates still held in the treasury, the
// president's certificate first.
func (c *Corporation) IPOShares() []*Share {
	return c.SharesOf(c)
}

// Ipoed reports whether the corporation has had its par price set.
func (c *Corporation) Ipoed() bool {
	return c.ipoed
}

// Floated reports whether enough treasury stock has sold to operate.
func (c *Corporation) Floated() bool {
	return c.floated
}

// ParPrice returns the opening share price, or 0 before par.
func (c *Corporation) ParPrice() int {
	return c.parPrice
}

// SharePrice returns the current market price, or 0 before par.
func (c *Corporation) SharePrice() int {
	return c.sharePrice
}

// FloatPercent returns the percent of stock that must sell to float.
func (c *Corporation) FloatPercent() int {
	return c.floatPercent
}

// BuyMultiple reports whether a player may buy more than one of this
// corporation's shares in a single turn.
func (c *Corporation) BuyMultiple() bool {
	return c.buyMultiple
}

// HoldingLimit returns the max percent a single player may hold.
func (c *Corporation) HoldingLimit() int {
	return c.holdingLimit
}

// PresidentPercent returns the percent of the president's certificate.
func (c *Corporation) PresidentPercent() int {
	for _, s := range c.certs {
		if s.president {
			return s.percent
		}
	}
	return 2 * c.shareUnit
}

// PercentSold returns the percent of stock no longer in the treasury.
func (c *Corporation) PercentSold() int {
	return 100 - c.PercentOf(c)
}

// HoldingOK reports whether the entity's stake respects the holding limit.
func (c *Corporation) HoldingOK(entity Entity) bool {
	return entity.PercentOf(c) <= c.holdingLimit
}

func (c *Corporation) setPar(price int) {
	c.parPrice = price
	c.sharePrice = price
	c.ipoed = true
}

func (c *Corporation) setSharePrice(price int) {
	c.sharePrice = price
}

func (c *Corporation) float() {
	c.floated = true
}
