package domain

import "sort"

// FullHandSize is the number of tiles in a complete hand.
const FullHandSize = 14

// Exposure is a group of tiles shown on the table (pung, kong, quint).
type Exposure struct {
	Tiles []Tile
}

// Clone returns a deep copy of the exposure.
func (e Exposure) Clone() Exposure {
	return Exposure{Tiles: append([]Tile(nil), e.Tiles...)}
}

// HasJoker reports whether the exposure holds at least one joker.
func (e Exposure) HasJoker() bool {
	for _, t := range e.Tiles {
		if t.IsJoker() {
			return true
		}
	}
	return false
}

// JokerReplacement returns the identity that can redeem a joker in the exposure.
func JokerReplacement(e Exposure) (Tile, bool) {
	if !e.HasJoker() {
		return Tile{}, false
	}
	for _, t := range e.Tiles {
		if !t.IsJoker() {
			return NewTile(t.Suit, t.Number), true
		}
	}
	return Tile{}, false
}

// ExchangeCandidates collects the distinct identities that redeem exposed jokers.
func ExchangeCandidates(exposures []Exposure) []Tile {
	var out []Tile
	for _, e := range exposures {
		t, ok := JokerReplacement(e)
		if !ok || ContainsTile(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Hand is a player's concealed tiles plus exposures.
type Hand struct {
	Tiles     []Tile
	Exposures []Exposure
}

// NewHand builds a concealed hand from tiles.
func NewHand(tiles []Tile, exposures ...Exposure) Hand {
	return Hand{Tiles: append([]Tile(nil), tiles...), Exposures: exposures}
}

// Len returns hidden plus exposed tile count.
func (h Hand) Len() int {
	n := len(h.Tiles)
	for _, e := range h.Exposures {
		n += len(e.Tiles)
	}
	return n
}

// AllHidden reports whether the hand has no exposures.
func (h Hand) AllHidden() bool {
	return len(h.Exposures) == 0
}

// AllTiles returns hidden tiles followed by exposed tiles.
func (h Hand) AllTiles() []Tile {
	out := make([]Tile, 0, h.Len())
	out = append(out, h.Tiles...)
	for _, e := range h.Exposures {
		out = append(out, e.Tiles...)
	}
	return out
}

// Clone returns a deep copy so hypothetical changes never reach the caller's hand.
func (h Hand) Clone() Hand {
	c := Hand{Tiles: append([]Tile(nil), h.Tiles...)}
	if len(h.Exposures) > 0 {
		c.Exposures = make([]Exposure, len(h.Exposures))
		for i, e := range h.Exposures {
			c.Exposures[i] = e.Clone()
		}
	}
	return c
}

// WithTile returns a copy with t added to the hidden tiles.
func (h Hand) WithTile(t Tile) Hand {
	c := h.Clone()
	c.Tiles = append(c.Tiles, t)
	return c
}

// Replace returns a copy with the hidden tile at i swapped for t.
func (h Hand) Replace(i int, t Tile) Hand {
	c := h.Clone()
	c.Tiles[i] = t
	return c
}

// Padded returns a copy padded with the placeholder when the hand is one tile short.
func (h Hand) Padded() Hand {
	c := h.Clone()
	if c.Len() == FullHandSize-1 {
		c.Tiles = append(c.Tiles, Placeholder())
	}
	return c
}

// CountTile counts hidden tiles equal to t.
func (h Hand) CountTile(t Tile) int {
	n := 0
	for _, ht := range h.Tiles {
		if ht.Equals(t) {
			n++
		}
	}
	return n
}

// SortBySuit orders the hidden tiles by suit then number.
func (h Hand) SortBySuit() {
	sort.SliceStable(h.Tiles, func(i, j int) bool {
		if h.Tiles[i].Suit != h.Tiles[j].Suit {
			return h.Tiles[i].Suit < h.Tiles[j].Suit
		}
		return h.Tiles[i].Number < h.Tiles[j].Number
	})
}

// ContainsTile reports whether tiles holds a tile equal to t.
func ContainsTile(tiles []Tile, t Tile) bool {
	for _, x := range tiles {
		if x.Equals(t) {
			return true
		}
	}
	return false
}

// RemoveTiles removes one matching tile per entry of removed. Physical IDs are
// preferred so that the exact tile chosen by the caller goes away.
func RemoveTiles(tiles []Tile, removed []Tile) []Tile {
	out := append([]Tile{}, tiles...)
	for _, r := range removed {
		idx := -1
		for i := range out {
			if out[i].SameTile(r) {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i := range out {
				if out[i].Equals(r) {
					idx = i
					break
				}
			}
		}
		if idx >= 0 {
			out = append(out[:idx], out[idx+1:]...)
		}
	}
	return out
}
