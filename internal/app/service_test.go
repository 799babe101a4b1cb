package app

import (
	"errors"
	"math/rand"
	"testing"

	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

func newTestService(seed int64, opts ...Option) *Service {
	return NewService(rand.New(rand.NewSource(seed)), opts...)
}

func request(tiles string, exposures ...string) HandRequest {
	h := domain.NewHand(domain.MustParseTiles(tiles))
	for _, e := range exposures {
		h.Exposures = append(h.Exposures, domain.Exposure{Tiles: domain.MustParseTiles(e)})
	}
	return HandRequest{Hand: h}
}

func TestServiceDefaults(t *testing.T) {
	s := newTestService(1)
	d := s.Defaults()
	if d.Year != card.DefaultYear || d.Difficulty != bot.DifficultyMedium || d.UseBlanks {
		t.Fatalf("defaults = %+v", d)
	}
	c, err := s.Card(0)
	if err != nil || c.Year != card.DefaultYear {
		t.Fatalf("Card(0) = %v, %v", c, err)
	}

	s = newTestService(1, WithDefaults(Defaults{Year: 2017, Difficulty: bot.DifficultyHard, UseBlanks: true}), WithLogger(nil))
	if c, _ := s.Card(0); c.Year != 2017 {
		t.Fatalf("configured year = %d, want 2017", c.Year)
	}
	if !s.Defaults().UseBlanks {
		t.Fatal("UseBlanks not applied")
	}
	if _, ok := s.logger.(nopLogger); !ok {
		t.Fatal("nil logger should keep the no-op logger")
	}
}

func TestServiceEngineCache(t *testing.T) {
	s := newTestService(1)
	a, err := s.engine(0, "hard")
	if err != nil {
		t.Fatalf("engine error: %v", err)
	}
	b, _ := s.engine(2025, "HARD")
	if a != b {
		t.Fatal("same year and difficulty should share an engine")
	}
	m, _ := s.engine(0, "")
	if m == a || m.Difficulty() != bot.DifficultyMedium {
		t.Fatalf("default engine = %s", m.Difficulty())
	}
	if _, err := s.engine(0, "expert"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("err = %v, want ErrUnknownDifficulty", err)
	}
	if _, err := s.engine(1999, ""); !errors.Is(err, ErrUnknownYear) {
		t.Fatalf("err = %v, want ErrUnknownYear", err)
	}
}

func TestServiceRejectsBadRequests(t *testing.T) {
	s := newTestService(1)
	short := request("N N N")

	if _, err := s.Rank(short, 0); !errors.Is(err, ErrHandSize) {
		t.Fatalf("Rank err = %v", err)
	}
	if _, err := s.Recommend(short); !errors.Is(err, ErrHandSize) {
		t.Fatalf("Recommend err = %v", err)
	}
	if _, err := s.Discard(HandRequest{}); !errors.Is(err, ErrEmptyHand) {
		t.Fatalf("Discard err = %v", err)
	}
	if _, err := s.Claim(request("N N N N E E E W W W S S S S"), domain.NewTile(domain.Wind, domain.South), false); !errors.Is(err, ErrHandSize) {
		t.Fatalf("Claim err = %v", err)
	}
	if _, err := s.CourtesyPass(request("N N N N E E E W W W S S S"), 4); !errors.Is(err, ErrCourtesyCount) {
		t.Fatalf("CourtesyPass err = %v", err)
	}
	req := request("N N N N E E E W W W S S S")
	req.Year = 1999
	if _, err := s.Validate(req); !errors.Is(err, ErrUnknownYear) {
		t.Fatalf("Validate err = %v", err)
	}
	req = request("N N N N E E E W W W S S S")
	req.Difficulty = "expert"
	if _, err := s.Hints(req); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("Hints err = %v", err)
	}
}

func TestServiceRankAndValidate(t *testing.T) {
	s := newTestService(1)

	ranked, err := s.Rank(request("N N N N E E E W W W S S S"), 3)
	if err != nil {
		t.Fatalf("Rank error: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("Rank returned %d patterns, want 3", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Rank > ranked[i-1].Rank {
			t.Fatalf("ranks out of order: %v then %v", ranked[i-1].Rank, ranked[i].Rank)
		}
	}
	if ranked[0].Pattern.Description != "NNNN EEE WWW SSS" {
		t.Fatalf("best pattern = %q", ranked[0].Pattern.Description)
	}

	v, err := s.Validate(request("N N N N E E E W W W S S S S"))
	if err != nil || !v.Valid {
		t.Fatalf("Validate = %+v, %v", v, err)
	}
	v, _ = s.Validate(request("N N N N E E E W W W S S S"))
	if v.Valid {
		t.Fatal("13 tiles cannot be mahjong")
	}

	d, err := s.Diagnose(request("N N N N E E E W W W S S S 5D"))
	if err != nil {
		t.Fatalf("Diagnose error: %v", err)
	}
	if len(d.NonMatching) != 1 || !d.NonMatching[0].Equals(domain.NewTile(domain.Dot, 5)) {
		t.Fatalf("NonMatching = %v", d.NonMatching)
	}
}

func TestServiceGenerate(t *testing.T) {
	s := newTestService(1)
	c, _ := s.Card(0)
	for _, p := range c.Patterns() {
		h, err := s.Generate(0, p.Description, domain.FullHandSize)
		if err != nil {
			t.Fatalf("%s: %v", p.Description, err)
		}
		if v := c.Validate(h); !v.Valid {
			t.Fatalf("%s: generated hand %s does not validate", p.Description, domain.FormatTiles(h.AllTiles()))
		}
	}
	if _, err := s.Generate(0, "no such hand", 14); !errors.Is(err, card.ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestServiceDecisions(t *testing.T) {
	s := newTestService(1)
	stray := request("N N N N E E E W W W S S S 5D")
	fiveDot := domain.NewTile(domain.Dot, 5)

	got, err := s.Discard(stray)
	if err != nil || !got.Equals(fiveDot) {
		t.Fatalf("Discard = %v, %v", got, err)
	}

	recs, err := s.Recommend(stray)
	if err != nil {
		t.Fatalf("Recommend error: %v", err)
	}
	last := recs.Tiles[len(recs.Tiles)-1]
	if last.Recommendation != bot.Discard || !last.Tile.Equals(fiveDot) {
		t.Fatalf("last recommendation = %+v", last)
	}

	claim, err := s.Claim(request("N N N N E E E W W W S S S"), domain.NewTile(domain.Wind, domain.South), false)
	if err != nil || claim.Action != bot.Mahjong {
		t.Fatalf("Claim = %+v, %v", claim, err)
	}

	pass, err := s.Charleston(request("N N N N E E E W W W S S 5D"))
	if err != nil || len(pass) != 3 {
		t.Fatalf("Charleston = %v, %v", pass, err)
	}

	vote, err := s.CourtesyVote(request("N N N N E E E W W W S S S S"))
	if err != nil || vote != 0 {
		t.Fatalf("CourtesyVote = %d, %v", vote, err)
	}

	courtesy, err := s.CourtesyPass(stray, 1)
	if err != nil || len(courtesy) != 1 || !courtesy[0].Equals(fiveDot) {
		t.Fatalf("CourtesyPass = %v, %v", courtesy, err)
	}

	if _, err := s.CharlestonContinue(stray); err != nil {
		t.Fatalf("CharlestonContinue error: %v", err)
	}
}

func TestServiceExchanges(t *testing.T) {
	s := newTestService(1)
	req := request("N N N N E E E W W W S S S 5D")
	req.Difficulty = "hard"

	table := []domain.Exposure{
		{Tiles: domain.MustParseTiles("7B 7B 7B")},
		{Tiles: domain.MustParseTiles("5D 5D J")},
	}
	ex, err := s.ExchangeJokers(req, table)
	if err != nil {
		t.Fatalf("ExchangeJokers error: %v", err)
	}
	if !ex.ShouldExchange || !ex.Tile.Equals(domain.NewTile(domain.Dot, 5)) {
		t.Fatalf("ExchangeJokers = %+v", ex)
	}

	blanks, err := s.ExchangeBlanks(request("N N N N E E E W W W S S S X"), domain.MustParseTiles("S"))
	if err != nil {
		t.Fatalf("ExchangeBlanks error: %v", err)
	}
	if blanks.ShouldExchange {
		t.Fatalf("default tuning should hold blanks, got %+v", blanks)
	}
}
