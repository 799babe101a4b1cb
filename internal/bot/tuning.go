package bot

import (
	"errors"
	"fmt"
	"strings"

	botinternal "mahjong/internal/bot/internal"
)

// Difficulty selects one of the tuning presets.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ErrUnknownDifficulty is returned for names outside Difficulties.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists the presets from weakest to strongest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := DefaultTunings[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Tuning holds the thresholds that shape the policy at one difficulty.
// Ranks are on the 0..100 scale, probabilities in [0, 1].
type Tuning struct {
	MaxPatterns    int // patterns considered for recommendations; 999 means all
	MinDiscardable int

	ExposureThreshold  float64
	CourtesyThresholds [3]float64

	CharlestonContinueThreshold float64

	BlankExchangeRank float64
	BlankExchangeGain float64

	JokerTopHands      int
	JokerRankThreshold float64
	JokerScaling       float64

	DiscardRandomness float64
}

// DefaultTunings are the presets shipped with the engine. Easy never trades
// blanks.
var DefaultTunings = map[Difficulty]Tuning{
	DifficultyEasy: {
		MaxPatterns:                 2,
		MinDiscardable:              5,
		ExposureThreshold:           70,
		CourtesyThresholds:          [3]float64{55, 65, 75},
		CharlestonContinueThreshold: 0.8,
		BlankExchangeRank:           999,
		BlankExchangeGain:           999,
		JokerTopHands:               1,
		JokerRankThreshold:          60,
		JokerScaling:                0.8,
		DiscardRandomness:           0.3,
	},
	DifficultyMedium: {
		MaxPatterns:                 5,
		MinDiscardable:              4,
		ExposureThreshold:           55,
		CourtesyThresholds:          [3]float64{50, 60, 68},
		CharlestonContinueThreshold: 0.65,
		BlankExchangeRank:           85,
		BlankExchangeGain:           25,
		JokerTopHands:               2,
		JokerRankThreshold:          55,
		JokerScaling:                0.9,
		DiscardRandomness:           0.1,
	},
	DifficultyHard: {
		MaxPatterns:                 botinternal.UnlimitedPatterns,
		MinDiscardable:              3,
		ExposureThreshold:           45,
		CourtesyThresholds:          [3]float64{45, 55, 65},
		CharlestonContinueThreshold: 0.6,
		BlankExchangeRank:           80,
		BlankExchangeGain:           20,
		JokerTopHands:               3,
		JokerRankThreshold:          50,
		JokerScaling:                1.0,
		DiscardRandomness:           0,
	},
}

// TuningFor returns the preset for level, falling back to medium.
func TuningFor(level Difficulty) Tuning {
	if t, ok := DefaultTunings[level]; ok {
		return t
	}
	return DefaultTunings[DifficultyMedium]
}
