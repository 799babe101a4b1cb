package bot

import (
	"math"

	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// JokerExchange is the outcome of ExchangeJokers. Tile is the hidden tile to
// hand over for an exposed joker.
type JokerExchange struct {
	ShouldExchange bool
	Tile           domain.Tile
	Gain           float64
}

// ExchangeJokers looks for a hidden tile that can redeem an exposed joker
// (candidates as returned by domain.ExchangeCandidates) and would improve the
// hand. The gain is the rank delta over the best JokerTopHands patterns, with
// strong patterns weighted up.
func (e *Engine) ExchangeJokers(hand domain.Hand, candidates []domain.Tile) JokerExchange {
	if len(candidates) == 0 {
		return JokerExchange{}
	}

	hand = hand.Padded()
	ranked := e.card.RankHand(hand)
	sorted := card.Sorted(ranked)
	top := sorted[:min(e.tuning.JokerTopHands, len(sorted))]

	best := JokerExchange{Gain: math.Inf(-1)}
	found := false
	for i, t := range hand.Tiles {
		if t.IsWildcard() || !domain.ContainsTile(candidates, t) {
			continue
		}
		swapped := e.card.RankHand(hand.Replace(i, domain.NewTile(domain.Joker, 0)))

		gain := 0.0
		for _, r := range top {
			scale := 1.0
			if r.Rank > e.tuning.JokerRankThreshold {
				scale = min(r.Rank*e.tuning.JokerScaling, 100)
			}
			gain += (swapped[r.Index].Rank - ranked[r.Index].Rank) * scale
		}
		if gain > best.Gain {
			best = JokerExchange{Tile: t, Gain: gain}
			found = true
		}
	}
	if !found || best.Gain <= 0 {
		return JokerExchange{}
	}
	best.ShouldExchange = true
	return best
}

// BlankExchange is the outcome of ExchangeBlanks.
type BlankExchange struct {
	ShouldExchange bool
	Blank          domain.Tile
	Discard        domain.Tile
	Gain           float64
}

// ExchangeBlanks considers trading a hidden blank for a tile from the discard
// pile. Blanks are only spent when the hand is already strong and the swap
// improves the best rank by more than the tuning's gain.
func (e *Engine) ExchangeBlanks(hand domain.Hand, discards []domain.Tile) BlankExchange {
	hand = hand.Padded()

	var blanks []int
	for i, t := range hand.Tiles {
		if t.IsBlank() {
			blanks = append(blanks, i)
		}
	}
	var swappable []domain.Tile
	for _, t := range discards {
		if !t.IsWildcard() && !t.IsInvalid() {
			swappable = append(swappable, t)
		}
	}
	if len(blanks) == 0 || len(swappable) == 0 {
		return BlankExchange{}
	}

	current := e.bestRank(hand)
	if current < e.tuning.BlankExchangeRank {
		return BlankExchange{}
	}

	var best BlankExchange
	bestGain := e.tuning.BlankExchangeGain
	for _, i := range blanks {
		for _, d := range swappable {
			gain := e.bestRank(hand.Replace(i, d)) - current
			if gain > bestGain {
				bestGain = gain
				best = BlankExchange{ShouldExchange: true, Blank: hand.Tiles[i], Discard: d, Gain: gain}
			}
		}
	}
	return best
}
