package card

import (
	"errors"
	"fmt"

	"mahjong/internal/domain"
)

// SlotSuit is the suit of a pattern component: a concrete tile suit, or a
// virtual slot that is resolved once per variation.
type SlotSuit int

// Virtual slots. VSuitN resolves to a numbered suit; VDragonN resolves to the
// dragon that belongs to the suit chosen for slot N.
const (
	VSuit1 SlotSuit = 100 + iota
	VSuit2
	VSuit3
	VDragon1
	VDragon2
	VDragon3
)

// MaxRunOffset is the largest consecutive offset a component may carry.
const MaxRunOffset = 7

// Fixed wraps a concrete tile suit.
func Fixed(s domain.Suit) SlotSuit { return SlotSuit(s) }

// IsVirtual reports whether the suit is resolved per variation.
func (s SlotSuit) IsVirtual() bool { return s >= VSuit1 && s <= VDragon3 }

// IsVirtualDragon reports the VDragon slots.
func (s SlotSuit) IsVirtualDragon() bool { return s >= VDragon1 && s <= VDragon3 }

// Slot returns the 0-based virtual slot index, or -1 for fixed suits.
func (s SlotSuit) Slot() int {
	switch {
	case s >= VSuit1 && s <= VSuit3:
		return int(s - VSuit1)
	case s.IsVirtualDragon():
		return int(s - VDragon1)
	}
	return -1
}

// Component is a group of identical tiles in a pattern.
type Component struct {
	Suit   SlotSuit
	Number int // literal number; ignored when Offset > 0
	Offset int // 1..MaxRunOffset for "consecutive" numbers relative to the variation base
	Count  int
}

// JokerEligible reports whether jokers may stand in for this component.
// Singles and pairs must be real tiles.
func (c Component) JokerEligible() bool { return c.Count > 2 }

// Pattern is one hand on the card.
type Pattern struct {
	Description string
	Group       string
	Concealed   bool
	Odd         bool
	Even        bool
	VSuitCount  int
	Components  []Component
}

var errPatternSize = errors.New("pattern does not cover 14 tiles")

// Size returns the number of tiles the pattern needs.
func (p *Pattern) Size() int {
	n := 0
	for _, c := range p.Components {
		n += c.Count
	}
	return n
}

// Validate checks the structural invariants of a catalog entry.
func (p *Pattern) Validate() error {
	if p.Size() != domain.FullHandSize {
		return fmt.Errorf("%s: %w (%d)", p.Description, errPatternSize, p.Size())
	}
	for i, c := range p.Components {
		if c.Count <= 0 {
			return fmt.Errorf("%s: component %d has count %d", p.Description, i, c.Count)
		}
		if c.Offset < 0 || c.Offset > MaxRunOffset {
			return fmt.Errorf("%s: component %d has offset %d", p.Description, i, c.Offset)
		}
		if c.Offset > 0 && (c.Suit < VSuit1 || c.Suit > VSuit3) {
			return fmt.Errorf("%s: component %d uses a run offset without a virtual suit", p.Description, i)
		}
	}
	if p.Odd && p.Even {
		return fmt.Errorf("%s: pattern cannot be both odd and even", p.Description)
	}
	return nil
}

// suitSlots returns how many virtual slots the pattern references, counting
// dragon slots as well as suit slots.
func (p *Pattern) suitSlots() int {
	maxSlot := -1
	for _, c := range p.Components {
		if s := c.Suit.Slot(); s > maxSlot {
			maxSlot = s
		}
	}
	return maxSlot + 1
}

func (p *Pattern) maxOffset() int {
	m := 0
	for _, c := range p.Components {
		if c.Offset > m {
			m = c.Offset
		}
	}
	return m
}

// Catalog helpers keep the card tables close to how hands are printed.

func flowers(count int) Component {
	return Component{Suit: Fixed(domain.Flower), Number: 0, Count: count}
}

func wind(w, count int) Component {
	return Component{Suit: Fixed(domain.Wind), Number: w, Count: count}
}

func dragon(d, count int) Component {
	return Component{Suit: Fixed(domain.Dragon), Number: d, Count: count}
}

// num is a virtual-suit component with a literal number.
func num(slot SlotSuit, number, count int) Component {
	return Component{Suit: slot, Number: number, Count: count}
}

// run is a virtual-suit component at base+offset-1.
func run(slot SlotSuit, offset, count int) Component {
	return Component{Suit: slot, Offset: offset, Count: count}
}

// vdragon is a dragon matched to the suit of the given slot.
func vdragon(slot SlotSuit, count int) Component {
	return Component{Suit: slot, Count: count}
}
