package card

import "mahjong/internal/domain"

// Diagnosis explains an invalid hand by its closest pattern.
type Diagnosis struct {
	Pattern     *Pattern
	Rank        float64
	Matching    []domain.Tile
	NonMatching []domain.Tile
}

// Diagnose finds the closest pattern and splits the hand's tiles into those
// that fit it and those that do not.
func (c *Card) Diagnose(hand domain.Hand) Diagnosis {
	best, ok := Best(c.RankHand(hand))
	if !ok {
		return Diagnosis{NonMatching: hand.AllTiles()}
	}

	d := Diagnosis{Pattern: best.Pattern, Rank: best.Rank}
	pool := best.MatchedTiles()
	for _, t := range hand.AllTiles() {
		var taken bool
		pool, taken = takeTile(pool, t)
		if taken {
			d.Matching = append(d.Matching, t)
		} else {
			d.NonMatching = append(d.NonMatching, t)
		}
	}
	return d
}

// takeTile removes t from pool, preferring the same physical tile.
func takeTile(pool []domain.Tile, t domain.Tile) ([]domain.Tile, bool) {
	idx := indexOf(pool, t.SameTile)
	if idx < 0 {
		idx = indexOf(pool, t.Equals)
	}
	if idx < 0 {
		return pool, false
	}
	return append(pool[:idx], pool[idx+1:]...), true
}
