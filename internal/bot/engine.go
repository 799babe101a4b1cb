package bot

import (
	"math/rand"
	"sync"
	"time"

	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// Engine is the AI player for one card and difficulty. Every decision is
// recomputed from the hand it is given; the only state is the random source.
type Engine struct {
	card   *card.Card
	level  Difficulty
	tuning Tuning
	rng    *lockedRand
}

// lockedRand serializes access to a rand.Rand shared between goroutines.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewEngine builds an engine. A nil rng is replaced by a time-seeded one and an
// unknown level plays as medium.
func NewEngine(c *card.Card, level Difficulty, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if _, ok := DefaultTunings[level]; !ok {
		level = DifficultyMedium
	}
	return &Engine{
		card:   c,
		level:  level,
		tuning: TuningFor(level),
		rng:    &lockedRand{r: rng},
	}
}

// WithTuning returns a copy of the engine using t. The copy shares the random
// source.
func (e *Engine) WithTuning(t Tuning) *Engine {
	return &Engine{card: e.card, level: e.level, tuning: t, rng: e.rng}
}

func (e *Engine) Card() *card.Card       { return e.card }
func (e *Engine) Difficulty() Difficulty { return e.level }
func (e *Engine) Tuning() Tuning         { return e.tuning }

func (e *Engine) float64() float64 {
	e.rng.mu.Lock()
	defer e.rng.mu.Unlock()
	return e.rng.r.Float64()
}

func (e *Engine) intn(n int) int {
	e.rng.mu.Lock()
	defer e.rng.mu.Unlock()
	return e.rng.r.Intn(n)
}

// bestRank ranks the padded hand and returns the best score.
func (e *Engine) bestRank(hand domain.Hand) float64 {
	best, _ := card.Best(e.card.RankHand(hand.Padded()))
	return best.Rank
}
