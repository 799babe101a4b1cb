package bot

import (
	"fmt"
	"math/rand"

	"mahjong/internal/card"
)

// NewPolicy creates the AI policy for the specified level.
func NewPolicy(c *card.Card, level Difficulty, rng *rand.Rand) (Policy, error) {
	if c == nil {
		return nil, fmt.Errorf("nil card")
	}
	if _, ok := DefaultTunings[level]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, level)
	}
	return NewEngine(c, level, rng), nil
}
