package bot

import (
	"sort"

	botinternal "mahjong/internal/bot/internal"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// Recommendation is the advice attached to a single hand tile.
type Recommendation string

const (
	Keep    Recommendation = "KEEP"
	Pass    Recommendation = "PASS"
	Discard Recommendation = "DISCARD"
)

func (r Recommendation) displayTier() int {
	switch r {
	case Keep:
		return 0
	case Pass:
		return 1
	}
	return 2
}

// TileRecommendation pairs a hidden tile with its advice.
type TileRecommendation struct {
	Tile           domain.Tile
	Recommendation Recommendation
}

// Recommendations is a display-ordered list of tile advice.
type Recommendations struct {
	Tiles              []TileRecommendation
	ConsideredPatterns int
}

// Recommend tags each hidden tile KEEP or DISCARD against the patterns in the
// tuning's window. Duplicate tiles are kept only as many times as the best
// pattern uses them.
func (e *Engine) Recommend(hand domain.Hand) Recommendations {
	padded := hand.Padded()
	sorted := card.Sorted(e.card.RankHand(padded))
	window := botinternal.PatternWindow(padded.Tiles, sorted, e.tuning.MaxPatterns, e.tuning.MinDiscardable)
	top := sorted[:min(window, len(sorted))]
	needs := botinternal.CalculateTileNeeds(padded.Tiles, top)

	recs := Recommendations{ConsideredPatterns: window}
	for _, t := range padded.Tiles {
		if t.IsInvalid() {
			continue
		}
		r := Discard
		switch {
		case t.IsWildcard():
			r = Keep
		case needs.Take(t):
			r = Keep
		}
		recs.Tiles = append(recs.Tiles, TileRecommendation{Tile: t, Recommendation: r})
	}
	sortForDisplay(recs.Tiles)
	return recs
}

// Hints is the three-tier advice shown to players: tiles used by the three
// best patterns are kept, tiles used by the next five are passable and the
// rest can go. Jokers and blanks are always kept.
func (e *Engine) Hints(hand domain.Hand) Recommendations {
	const keepPatterns, passPatterns = 3, 5

	padded := hand.Padded()
	sorted := card.Sorted(e.card.RankHand(padded))
	keepEnd := min(keepPatterns, len(sorted))
	passEnd := min(keepPatterns+passPatterns, len(sorted))
	keep := botinternal.CalculateTileNeeds(padded.Tiles, sorted[:keepEnd])
	pass := botinternal.CalculateTileNeeds(padded.Tiles, sorted[keepEnd:passEnd])

	recs := Recommendations{ConsideredPatterns: passEnd}
	for _, t := range padded.Tiles {
		if t.IsInvalid() {
			continue
		}
		r := Discard
		switch {
		case t.IsWildcard():
			r = Keep
		case keep.Take(t):
			r = Keep
		case pass.Take(t):
			r = Pass
		}
		recs.Tiles = append(recs.Tiles, TileRecommendation{Tile: t, Recommendation: r})
	}
	sortForDisplay(recs.Tiles)
	return recs
}

// sortForDisplay orders KEEP, PASS, DISCARD; wildcards go last within a tier.
func sortForDisplay(recs []TileRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := recs[i].Recommendation.displayTier(), recs[j].Recommendation.displayTier()
		if ti != tj {
			return ti < tj
		}
		return !recs[i].Tile.IsWildcard() && recs[j].Tile.IsWildcard()
	})
}
