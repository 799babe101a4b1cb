package card

import "mahjong/internal/domain"

// Generate builds a training hand for the named pattern. Tiles are dealt
// round-robin over the components so partial hands touch every group. Copies
// the wall cannot supply become jokers. n outside 1..14 means a full hand.
func (c *Card) Generate(description string, n int) (domain.Hand, error) {
	p, err := c.Find(description)
	if err != nil {
		return domain.Hand{}, err
	}
	if n <= 0 || n > domain.FullHandSize {
		n = domain.FullHandSize
	}

	v := Variation{Suits: domain.NumberedSuits, Base: 1}
	if p.Even {
		v.Base = 2
	}

	var hand domain.Hand
	counts := make([]int, len(p.Components))
	dealt := make(map[domain.TileKey]int)
	ci := 0
	for i := 0; i < n; i++ {
		comp := p.Components[ci]
		t := v.Resolve(comp)
		// The wall holds four of each identity (eight flowers).
		if counts[ci] >= 4 || (comp.JokerEligible() && !t.IsFlower() && dealt[t.Key()] >= 4) {
			t = domain.NewTile(domain.Joker, 0)
		}
		hand.Tiles = append(hand.Tiles, t)
		dealt[t.Key()]++
		counts[ci]++

		next := -1
		for step := 1; step <= len(p.Components); step++ {
			j := (ci + step) % len(p.Components)
			if counts[j] < p.Components[j].Count {
				next = j
				break
			}
		}
		if next < 0 {
			break
		}
		ci = next
	}
	return hand, nil
}

