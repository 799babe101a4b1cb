package domain

import "math/rand"

const (
	// WallSize is the tile count without blanks.
	WallSize = 152
	// WallSizeWithBlanks is the tile count when the optional blanks are in play.
	WallSizeWithBlanks = 160
)

// NewWall returns an ordered wall. Flowers all carry number 0.
func NewWall(useBlanks bool) []Tile {
	size := WallSize
	if useBlanks {
		size = WallSizeWithBlanks
	}
	wall := make([]Tile, 0, size)
	add := func(s Suit, n, copies int) {
		for i := 0; i < copies; i++ {
			wall = append(wall, Tile{Suit: s, Number: n, ID: len(wall)})
		}
	}

	for _, s := range NumberedSuits {
		for n := 1; n <= 9; n++ {
			add(s, n, 4)
		}
	}
	for w := North; w <= East; w++ {
		add(Wind, w, 4)
	}
	for d := Red; d <= White; d++ {
		add(Dragon, d, 4)
	}
	add(Flower, 0, 8)
	add(Joker, 0, 8)
	if useBlanks {
		add(Blank, 0, 8)
	}
	return wall
}

// ShuffleWall returns a shuffled copy of the given wall.
func ShuffleWall(wall []Tile, rng *rand.Rand) []Tile {
	out := make([]Tile, len(wall))
	copy(out, wall)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
