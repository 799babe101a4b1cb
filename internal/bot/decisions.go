package bot

import (
	"sort"

	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// ClaimAction is the engine's answer to a claimable discard.
type ClaimAction int

const (
	ExposeTiles ClaimAction = iota
	DiscardTile
	Mahjong
)

func (a ClaimAction) String() string {
	switch a {
	case ExposeTiles:
		return "expose"
	case DiscardTile:
		return "discard"
	case Mahjong:
		return "mahjong"
	}
	return "unknown"
}

// ClaimDecision carries the action and the tiles it concerns: the group to
// expose, or the declined discard.
type ClaimDecision struct {
	Action ClaimAction
	Tiles  []domain.Tile
}

// ChooseDiscard picks the tile to throw. Blanks are never thrown unless
// nothing else is left. It returns false only for an empty hand.
func (e *Engine) ChooseDiscard(hand domain.Hand) (domain.Tile, bool) {
	recs := e.Recommend(hand).Tiles
	if len(recs) == 0 {
		return domain.Tile{}, false
	}

	var candidates []domain.Tile
	for _, r := range recs {
		if r.Recommendation == Discard && !r.Tile.IsBlank() {
			candidates = append(candidates, r.Tile)
		}
	}
	if len(candidates) > 0 && e.tuning.DiscardRandomness > 0 && e.float64() < e.tuning.DiscardRandomness {
		return candidates[e.intn(min(3, len(candidates)))], true
	}

	for i := len(recs) - 1; i >= 0; i-- {
		if !recs[i].Tile.IsBlank() {
			return recs[i].Tile, true
		}
	}
	return recs[len(recs)-1].Tile, true
}

// ClaimDiscard decides what to do with another player's discard: declare
// mahjong, expose a completed group containing it, or let it go.
func (e *Engine) ClaimDiscard(tile domain.Tile, hand domain.Hand, forceExpose bool) ClaimDecision {
	full := hand.WithTile(tile)
	if e.card.Validate(full).Valid {
		return ClaimDecision{Action: Mahjong}
	}

	best, ok := card.Best(e.card.RankHand(full))
	expose := len(hand.Exposures) > 0 || forceExpose ||
		(ok && !best.Concealed() && best.Rank >= e.tuning.ExposureThreshold)
	if ok && expose {
		for _, m := range best.Components {
			if m.Exposed || !m.Contains(tile) {
				continue
			}
			if m.Component.Count >= 3 && len(m.Tiles) == m.Component.Count {
				return ClaimDecision{Action: ExposeTiles, Tiles: append([]domain.Tile(nil), m.Tiles...)}
			}
		}
	}
	return ClaimDecision{Action: DiscardTile, Tiles: []domain.Tile{tile}}
}

// passable returns the recommendations without jokers or blanks.
func passable(recs []TileRecommendation) []TileRecommendation {
	out := make([]TileRecommendation, 0, len(recs))
	for _, r := range recs {
		if !r.Tile.IsWildcard() {
			out = append(out, r)
		}
	}
	return out
}

// CharlestonPass picks the three least useful tiles to pass.
func (e *Engine) CharlestonPass(hand domain.Hand) []domain.Tile {
	const passSize = 3

	recs := passable(e.Recommend(hand).Tiles)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Recommendation.displayTier() > recs[j].Recommendation.displayTier()
	})
	out := make([]domain.Tile, 0, passSize)
	for _, r := range recs[:min(passSize, len(recs))] {
		out = append(out, r.Tile)
	}
	return out
}

// CharlestonContinueVote votes on a second Charleston. The yes probability
// starts at the tuning's threshold and moves with the hand's best rank.
func (e *Engine) CharlestonContinueVote(hand domain.Hand) bool {
	rank := e.bestRank(hand)
	base := e.tuning.CharlestonContinueThreshold
	t := e.tuning.CourtesyThresholds

	adjusted := base
	switch {
	case rank >= t[2]:
		adjusted = base + 0.2
	case rank >= t[1]:
		adjusted = base + 0.1
	case rank >= t[0]:
	default:
		adjusted = max(base-0.2, 0.3)
	}
	return e.float64() < adjusted
}

// CourtesyVote returns how many tiles (0..3) to offer in the courtesy pass.
// Weaker hands ask for more.
func (e *Engine) CourtesyVote(hand domain.Hand) int {
	rank := e.bestRank(hand)
	t := e.tuning.CourtesyThresholds
	switch {
	case rank < t[0]:
		return 3
	case rank < t[1]:
		return 2
	case rank < t[2]:
		return 1
	}
	return 0
}

// CourtesyPass picks count tiles from the least useful end of the
// recommendations. Jokers and blanks are never passed.
func (e *Engine) CourtesyPass(hand domain.Hand, count int) []domain.Tile {
	recs := e.Recommend(hand).Tiles
	out := make([]domain.Tile, 0, max(count, 0))
	for i := len(recs) - 1; i >= 0 && len(out) < count; i-- {
		if recs[i].Tile.IsWildcard() {
			continue
		}
		out = append(out, recs[i].Tile)
	}
	return out
}
