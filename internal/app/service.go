package app

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// Logger is the logging surface the service needs. Nakama's runtime.Logger
// and the logs package both satisfy it.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	ErrHandSize          = errors.New("hand must hold 13 or 14 tiles")
	ErrEmptyHand         = errors.New("hand is empty")
	ErrUnknownYear       = card.ErrUnknownYear
	ErrUnknownDifficulty = bot.ErrUnknownDifficulty
	ErrCourtesyCount     = errors.New("courtesy count must be between 0 and 3")
)

// Defaults are used when a request leaves year or difficulty unset.
type Defaults struct {
	Year       int
	Difficulty bot.Difficulty
	UseBlanks  bool
}

// Option customizes a Service.
type Option func(*Service)

func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithDefaults(d Defaults) Option {
	return func(s *Service) {
		if d.Year != 0 {
			s.defaults.Year = d.Year
		}
		if d.Difficulty != "" {
			s.defaults.Difficulty = d.Difficulty
		}
		s.defaults.UseBlanks = d.UseBlanks
	}
}

// Service contains the hand-advisor and simulation use-cases.
type Service struct {
	logger   Logger
	defaults Defaults

	mu      sync.Mutex
	rng     *rand.Rand
	engines map[engineKey]*bot.Engine
}

type engineKey struct {
	year  int
	level bot.Difficulty
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{
		logger:   nopLogger{},
		defaults: Defaults{Year: card.DefaultYear, Difficulty: bot.DifficultyMedium},
		rng:      rng,
		engines:  make(map[engineKey]*bot.Engine),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the year and difficulty used for unset request fields.
func (s *Service) Defaults() Defaults {
	return s.defaults
}

// Card resolves a card year, 0 meaning the default.
func (s *Service) Card(year int) (*card.Card, error) {
	if year == 0 {
		year = s.defaults.Year
	}
	return card.Lookup(year)
}

// engine returns the cached engine for year and difficulty. Each engine gets
// its own random source split from the service's.
func (s *Service) engine(year int, difficulty string) (*bot.Engine, error) {
	c, err := s.Card(year)
	if err != nil {
		return nil, err
	}
	level := s.defaults.Difficulty
	if difficulty != "" {
		if level, err = bot.ParseDifficulty(difficulty); err != nil {
			return nil, err
		}
	}

	key := engineKey{year: c.Year, level: level}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.engines[key]; ok {
		return e, nil
	}
	e := bot.NewEngine(c, level, rand.New(rand.NewSource(s.rng.Int63())))
	s.engines[key] = e
	s.logger.Debug("created %s engine for card %d", level, c.Year)
	return e, nil
}

// split derives an independent random source.
func (s *Service) split() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

func checkHandSize(h domain.Hand) error {
	if n := h.Len(); n != domain.FullHandSize-1 && n != domain.FullHandSize {
		return fmt.Errorf("%w: got %d", ErrHandSize, n)
	}
	return nil
}
