package card

import (
	"sort"

	"mahjong/internal/domain"
)

// ComponentMatch holds the hand tiles assigned to one component.
type ComponentMatch struct {
	Component Component
	Resolved  domain.Tile
	Tiles     []domain.Tile
	Exposed   bool // filled by one of the hand's exposures
}

// Missing returns how many tiles the component still lacks.
func (m ComponentMatch) Missing() int {
	return m.Component.Count - len(m.Tiles)
}

// Contains reports whether the assigned tiles include one equal to t.
func (m ComponentMatch) Contains(t domain.Tile) bool {
	return domain.ContainsTile(m.Tiles, t)
}

// RankedPattern is the score of a hand against one pattern variation.
type RankedPattern struct {
	Pattern    *Pattern
	Index      int // position of Pattern in Card.Patterns()
	Variation  Variation
	Rank       float64 // 0..100
	Components []ComponentMatch
}

// Concealed reports whether the ranked pattern must be played fully concealed.
func (r RankedPattern) Concealed() bool {
	return r.Pattern.Concealed
}

// Complete reports whether every slot of the variation is filled.
func (r RankedPattern) Complete() bool {
	return r.Rank >= 100
}

// MatchedTiles returns every hand tile assigned to a component.
func (r RankedPattern) MatchedTiles() []domain.Tile {
	var out []domain.Tile
	for _, c := range r.Components {
		out = append(out, c.Tiles...)
	}
	return out
}

// RankVariations scores the hand against every variation of every pattern.
// The result is unsorted, in catalog then enumeration order.
func (c *Card) RankVariations(hand domain.Hand) []RankedPattern {
	var out []RankedPattern
	for i, p := range c.patterns {
		for v := range p.Variations() {
			out = append(out, rankVariation(hand, p, i, v))
		}
	}
	return out
}

// RankHand scores the hand against every pattern, keeping the best variation of
// each. The result is in catalog order, one entry per pattern.
func (c *Card) RankHand(hand domain.Hand) []RankedPattern {
	out := make([]RankedPattern, 0, len(c.patterns))
	for i, p := range c.patterns {
		out = append(out, rankPattern(hand, p, i))
	}
	return out
}

func rankPattern(hand domain.Hand, p *Pattern, index int) RankedPattern {
	var best RankedPattern
	found := false
	for v := range p.Variations() {
		r := rankVariation(hand, p, index, v)
		if !found || r.Rank > best.Rank {
			best = r
			found = true
		}
	}
	if !found {
		best = RankedPattern{Pattern: p, Index: index}
	}
	return best
}

// rankVariation assigns hand tiles to components greedily: exposures first,
// then hidden non-jokers by exact identity, then hidden jokers into pungs and
// larger groups.
func rankVariation(hand domain.Hand, p *Pattern, index int, v Variation) RankedPattern {
	r := RankedPattern{Pattern: p, Index: index, Variation: v}
	r.Components = make([]ComponentMatch, len(p.Components))
	for i, comp := range p.Components {
		r.Components[i] = ComponentMatch{Component: comp, Resolved: v.Resolve(comp)}
	}

	if p.Concealed && !hand.AllHidden() {
		return r
	}

	for _, e := range hand.Exposures {
		if !assignExposure(r.Components, e) {
			// Exposures must match a component exactly; anything else stops here.
			r.Rank = score(r.Components)
			return r
		}
	}

	var rest, jokers []domain.Tile
	for _, t := range hand.Tiles {
		if t.IsJoker() {
			jokers = append(jokers, t)
		} else {
			rest = append(rest, t)
		}
	}

	for i := range r.Components {
		m := &r.Components[i]
		if len(m.Tiles) > 0 {
			continue
		}
		for j := 0; j < len(rest) && m.Missing() > 0; {
			if rest[j].Equals(m.Resolved) {
				m.Tiles = append(m.Tiles, rest[j])
				rest = append(rest[:j], rest[j+1:]...)
				continue
			}
			j++
		}
	}

	for _, j := range jokers {
		if m := jokerTarget(r.Components); m != nil {
			m.Tiles = append(m.Tiles, j)
		}
	}

	r.Rank = score(r.Components)
	return r
}

func assignExposure(comps []ComponentMatch, e domain.Exposure) bool {
	for i := range comps {
		m := &comps[i]
		if len(m.Tiles) > 0 || m.Component.Count != len(e.Tiles) {
			continue
		}
		fits := true
		for _, t := range e.Tiles {
			if !t.IsJoker() && !t.Equals(m.Resolved) {
				fits = false
				break
			}
		}
		if fits {
			m.Tiles = append([]domain.Tile(nil), e.Tiles...)
			m.Exposed = true
			return true
		}
	}
	return false
}

// jokerTarget picks the component a joker should complete: one missing a
// single tile, else one missing two, else any joker-eligible gap. Among equals
// the last component wins.
func jokerTarget(comps []ComponentMatch) *ComponentMatch {
	var one, two, other *ComponentMatch
	for i := range comps {
		m := &comps[i]
		if !m.Component.JokerEligible() {
			continue
		}
		switch m.Missing() {
		case 0:
		case 1:
			one = m
		case 2:
			two = m
		default:
			other = m
		}
	}
	switch {
	case one != nil:
		return one
	case two != nil:
		return two
	}
	return other
}

func score(comps []ComponentMatch) float64 {
	matched := 0
	for _, m := range comps {
		matched += len(m.Tiles)
	}
	return float64(matched) * 100 / domain.FullHandSize
}

// SortByRank orders ranked patterns best first. Ties keep catalog order.
func SortByRank(ranked []RankedPattern) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rank > ranked[j].Rank
	})
}

// Sorted returns a sorted copy, leaving the input in catalog order.
func Sorted(ranked []RankedPattern) []RankedPattern {
	out := append([]RankedPattern(nil), ranked...)
	SortByRank(out)
	return out
}

// Best returns the highest ranked entry; the earliest wins ties.
func Best(ranked []RankedPattern) (RankedPattern, bool) {
	if len(ranked) == 0 {
		return RankedPattern{}, false
	}
	best := ranked[0]
	for _, r := range ranked[1:] {
		if r.Rank > best.Rank {
			best = r
		}
	}
	return best, true
}
