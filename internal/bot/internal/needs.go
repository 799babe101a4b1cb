package internal

import (
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// UnlimitedPatterns disables the upper bound on the pattern window.
const UnlimitedPatterns = 999

// Need tracks how many copies of a tile identity the considered patterns use
// and how many the hand holds.
type Need struct {
	Needed int
	Have   int
}

// Needs maps tile identities to their accounting entry.
type Needs map[domain.TileKey]*Need

// Needed returns the remaining need for t, or 0 when t has no entry.
func (n Needs) Needed(t domain.Tile) int {
	if e, ok := n[t.Key()]; ok {
		return e.Needed
	}
	return 0
}

// Take consumes one unit of need for t and reports whether any was left.
func (n Needs) Take(t domain.Tile) bool {
	e, ok := n[t.Key()]
	if !ok || e.Needed <= 0 {
		return false
	}
	e.Needed--
	return true
}

// CalculateTileNeeds accumulates, per identity, the largest number of matched
// copies any single pattern in top uses. Jokers and blanks are never needed.
// Needed is capped at Have.
func CalculateTileNeeds(hand []domain.Tile, top []card.RankedPattern) Needs {
	needs := make(Needs)
	for _, r := range top {
		counts := make(map[domain.TileKey]int)
		for _, t := range r.MatchedTiles() {
			if t.IsWildcard() {
				continue
			}
			counts[t.Key()]++
		}
		for key, count := range counts {
			e := needs.entry(key)
			e.Needed = max(e.Needed, count)
		}
	}

	for _, t := range hand {
		if t.IsWildcard() || t.IsInvalid() {
			continue
		}
		needs.entry(t.Key()).Have++
	}

	for _, e := range needs {
		e.Needed = min(e.Needed, e.Have)
	}
	return needs
}

func (n Needs) entry(key domain.TileKey) *Need {
	e, ok := n[key]
	if !ok {
		e = &Need{}
		n[key] = e
	}
	return e
}

// CountDiscardable counts real, non-wildcard hand tiles none of the top
// patterns use.
func CountDiscardable(hand []domain.Tile, top []card.RankedPattern) int {
	needs := CalculateTileNeeds(hand, top)
	count := 0
	for _, t := range hand {
		if t.IsWildcard() || t.IsInvalid() {
			continue
		}
		if needs.Needed(t) == 0 {
			count++
		}
	}
	return count
}

// PatternWindow picks how many of the sorted patterns to consider. It starts
// from maxPatterns and narrows the window until at least minDiscardable tiles
// are free to go, never going below one pattern.
func PatternWindow(hand []domain.Tile, sorted []card.RankedPattern, maxPatterns, minDiscardable int) int {
	n := len(sorted)
	if maxPatterns < UnlimitedPatterns {
		n = min(n, maxPatterns)
	}
	for n > 1 {
		if CountDiscardable(hand, sorted[:n]) >= minDiscardable {
			break
		}
		n--
	}
	if n == 0 {
		n = 1
	}
	return n
}
