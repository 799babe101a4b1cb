package card

import "mahjong/internal/domain"

const noNumber = 9999

// Validation describes the outcome of checking a hand for mahjong.
type Validation struct {
	Valid      bool
	Pattern    *Pattern
	Variation  Variation
	TileCount  int
	Jokers     int
	MinNumLow  int
	MinNumHigh int
	Suits      int
	AllHidden  bool
}

// ValidateWith checks a 13-tile hand completed by one more tile.
func (c *Card) ValidateWith(hand domain.Hand, t domain.Tile) Validation {
	return c.Validate(hand.WithTile(t))
}

// Validate reports whether the hand (hidden and exposed tiles) completes any
// pattern. Blanks are ignored; exactly 14 other tiles are required.
func (c *Card) Validate(hand domain.Hand) Validation {
	info := Validation{
		MinNumLow:  noNumber,
		MinNumHigh: noNumber,
		AllHidden:  hand.AllHidden(),
	}

	var tiles []domain.Tile
	for _, t := range hand.AllTiles() {
		if !t.IsBlank() {
			tiles = append(tiles, t)
		}
	}
	info.TileCount = len(tiles)
	if len(tiles) != domain.FullHandSize {
		return info
	}

	// Dragons count toward the suit they belong to.
	suits := make(map[int]bool)
	var numbers [10]bool
	for _, t := range tiles {
		s := int(t.Suit)
		if t.IsDragon() {
			s = t.Number
		}
		suits[s] = true
		if t.IsJoker() {
			info.Jokers++
		}
		if t.IsNumbered() {
			numbers[t.Number] = true
			if t.Number < info.MinNumHigh {
				info.MinNumHigh = t.Number
			}
		}
	}
	info.Suits = len(suits)
	// With three or more jokers the run may start below the smallest tile.
	info.MinNumLow = info.MinNumHigh
	if info.Jokers >= 3 {
		info.MinNumLow = 1
	}

	for _, p := range c.patterns {
		if v, ok := matchPattern(tiles, info, numbers, p); ok {
			info.Valid = true
			info.Pattern = p
			info.Variation = v
			return info
		}
	}
	return info
}

func matchPattern(tiles []domain.Tile, info Validation, numbers [10]bool, p *Pattern) (Variation, bool) {
	if p.Concealed && !info.AllHidden {
		return Variation{}, false
	}
	if info.Suits < p.VSuitCount {
		return Variation{}, false
	}
	slots := p.suitSlots()
	if slots > 3 {
		return Variation{}, false
	}
	// Literal numbers may sit below the run base, as in 11 33 55 77 99 11 11.
	for _, base := range p.bases() {
		if !runsPossible(p, base, numbers, info.Jokers) {
			continue
		}
		for _, perm := range permutationTable[slots] {
			v := Variation{Suits: perm, Base: base}
			if matchComponents(tiles, p, v) {
				return v, true
			}
		}
	}
	return Variation{}, false
}

// runsPossible is a quick filter over bases: every run component needs its
// number somewhere in the hand unless jokers alone can fill it.
func runsPossible(p *Pattern, base int, numbers [10]bool, jokers int) bool {
	for _, c := range p.Components {
		if c.Offset == 0 {
			continue
		}
		n := base + c.Offset - 1
		if n > 9 || (!numbers[n] && !(c.JokerEligible() && jokers >= c.Count)) {
			return false
		}
	}
	return true
}

// matchComponents fills every component with exact tiles first and jokers
// second (pungs and larger only). All components must be complete.
func matchComponents(tiles []domain.Tile, p *Pattern, v Variation) bool {
	pool := append([]domain.Tile(nil), tiles...)
	for _, comp := range p.Components {
		want := v.Resolve(comp)
		for count := 0; count < comp.Count; count++ {
			idx := indexOf(pool, func(t domain.Tile) bool { return t.Equals(want) })
			if idx < 0 && comp.JokerEligible() {
				idx = indexOf(pool, domain.Tile.IsJoker)
			}
			if idx < 0 {
				return false
			}
			pool = append(pool[:idx], pool[idx+1:]...)
		}
	}
	return true
}

func indexOf(tiles []domain.Tile, pred func(domain.Tile) bool) int {
	for i, t := range tiles {
		if pred(t) {
			return i
		}
	}
	return -1
}
