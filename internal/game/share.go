package game

// Share is a single certificate of one corporation's stock. The
// president's certificate represents two ordinary shares.
type Share struct {
	corporation *Corporation
	percent     int
	president   bool
	buyable     bool
	owner       Entity
}

// Corporation returns the corporation the share belongs to.
func (s *Share) Corporation() *Corporation {
	return s.corporation
}

// Percent returns the share's percentage of the corporation.
func (s *Share) Percent() int {
	return s.percent
}

// President reports whether this is the president's certificate.
func (s *Share) President() bool {
	return s.president
}

// Buyable reports whether the share may be bought at all.
func (s *Share) Buyable() bool {
	return s.buyable
}

// Owner returns the entity currently holding the certificate.
func (s *Share) Owner() Entity {
	return s.owner
}

// Price returns the certificate's current price. Treasury shares trade at
// par; everything else trades at the market price.
func (s *Share) Price() int {
	basis := s.corporation.sharePrice
	if s.owner == Entity(s.corporation) {
		basis = s.corporation.parPrice
	}
	return basis * s.percent / s.corporation.shareUnit
}

// ToBundle wraps the single share as a tradable bundle.
func (s *Share) ToBundle() *Bundle {
	return NewBundle(s)
}

// Bundle is an immutable description of a tradable quantity of one
// corporation's stock. It is constructed from shares with a common owner
// and never mutated afterwards.
type Bundle struct {
	shares      []*Share
	corporation *Corporation
	owner       Entity
	percent     int
	price       int
}

// NewBundle groups shares of a single corporation and owner into a bundle.
// All shares must belong to the same corporation and owner.
func NewBundle(shares ...*Share) *Bundle {
	if len(shares) == 0 {
		return nil
	}
	b := &Bundle{
		shares:      shares,
		corporation: shares[0].corporation,
		owner:       shares[0].owner,
	}
	for _, s := range shares {
		b.percent += s.percent
		b.price += s.Price()
	}
	return b
}

// Shares returns the certificates in the bundle.
func (b *Bundle) Shares() []*Share {
	return b.shares
}

// Corporation returns the corporation whose stock the bundle holds.
func (b *Bundle) Corporation() *Corporation {
	return b.corporation
}

// Owner returns the entity the bundle was enumerated for.
func (b *Bundle) Owner() Entity {
	return b.owner
}

// Percent returns the total percentage the bundle represents.
func (b *Bundle) Percent() int {
	return b.percent
}

// Price returns the total price of the bundle.
func (b *Bundle) Price() int {
	return b.price
}

// NumShares returns the bundle size in ordinary-share units.
func (b *Bundle) NumShares() int {
	return b.percent / b.corporation.shareUnit
}

// Buyable reports whether every certificate in the bundle is buyable.
func (b *Bundle) Buyable() bool {
	for _, s := range b.shares {
		if !s.buyable {
			return false
		}
	}
	return true
}

// ContainsPresident reports whether the president's certificate is in the
// bundle.
func (b *Bundle) ContainsPresident() bool {
	for _, s := range b.shares {
		if s.president {
			return true
		}
	}
	return false
}

// CanDump reports whether the entity may sell this bundle when it includes
// the president's certificate: some other player must hold enough stock to
// take over the presidency.
func (b *Bundle) CanDump(entity Entity) bool {
	if !b.ContainsPresident() {
		return true
	}
	presidentPercent := b.corporation.PresidentPercent()
	for _, cert := range b.corporation.certs {
		owner := cert.owner
		if owner == nil || owner == entity {
			continue
		}
		if _, ok := owner.(*Player); !ok {
			continue
		}
		if owner.PercentOf(b.corporation) >= presidentPercent {
			return true
		}
	}
	return false
}

// TransferTo moves every certificate in the bundle to the given entity.
func (b *Bundle) TransferTo(to Entity) {
	for _, s := range b.shares {
		if s.owner != nil {
			s.owner.RemoveShare(s)
		}
		s.owner = to
		to.AddShare(s)
	}
}
