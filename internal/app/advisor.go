package app

import (
	"fmt"

	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// HandRequest identifies a hand and the card and difficulty to judge it by.
// Zero values select the service defaults.
type HandRequest struct {
	Year       int
	Difficulty string
	Hand       domain.Hand
}

// Rank scores the hand against every pattern of the card, best first. A
// positive top limits the result.
func (s *Service) Rank(req HandRequest, top int) ([]card.RankedPattern, error) {
	if err := checkHandSize(req.Hand); err != nil {
		return nil, err
	}
	c, err := s.Card(req.Year)
	if err != nil {
		return nil, err
	}
	ranked := card.Sorted(c.RankHand(req.Hand.Padded()))
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	return ranked, nil
}

// Validate checks a 14-tile hand for mahjong. A 13-tile hand is reported as
// not valid.
func (s *Service) Validate(req HandRequest) (card.Validation, error) {
	if err := checkHandSize(req.Hand); err != nil {
		return card.Validation{}, err
	}
	c, err := s.Card(req.Year)
	if err != nil {
		return card.Validation{}, err
	}
	return c.Validate(req.Hand), nil
}

// Diagnose splits the hand into tiles that fit the closest pattern and tiles
// that do not.
func (s *Service) Diagnose(req HandRequest) (card.Diagnosis, error) {
	if err := checkHandSize(req.Hand); err != nil {
		return card.Diagnosis{}, err
	}
	c, err := s.Card(req.Year)
	if err != nil {
		return card.Diagnosis{}, err
	}
	return c.Diagnose(req.Hand.Padded()), nil
}

// Generate builds a training hand of n tiles for a named pattern.
func (s *Service) Generate(year int, description string, n int) (domain.Hand, error) {
	c, err := s.Card(year)
	if err != nil {
		return domain.Hand{}, err
	}
	return c.Generate(description, n)
}

// decide validates the request and returns the engine for it.
func (s *Service) decide(req HandRequest) (*bot.Engine, error) {
	if err := checkHandSize(req.Hand); err != nil {
		return nil, err
	}
	return s.engine(req.Year, req.Difficulty)
}

// Recommend labels every tile of the hand KEEP, PASS or DISCARD.
func (s *Service) Recommend(req HandRequest) (bot.Recommendations, error) {
	e, err := s.decide(req)
	if err != nil {
		return bot.Recommendations{}, err
	}
	return e.Recommend(req.Hand), nil
}

// Hints is the three-tier advice of the hint panel: tiles of the best three
// patterns are kept, tiles of the next five may be passed.
func (s *Service) Hints(req HandRequest) (bot.Recommendations, error) {
	e, err := s.decide(req)
	if err != nil {
		return bot.Recommendations{}, err
	}
	return e.Hints(req.Hand), nil
}

// Discard picks the tile the AI would throw from the hand.
func (s *Service) Discard(req HandRequest) (domain.Tile, error) {
	if req.Hand.Len() == 0 {
		return domain.Tile{}, ErrEmptyHand
	}
	e, err := s.decide(req)
	if err != nil {
		return domain.Tile{}, err
	}
	t, ok := e.ChooseDiscard(req.Hand)
	if !ok {
		return domain.Tile{}, ErrEmptyHand
	}
	return t, nil
}

// Claim decides what a 13-tile hand does with another player's discard.
func (s *Service) Claim(req HandRequest, tile domain.Tile, forceExpose bool) (bot.ClaimDecision, error) {
	if n := req.Hand.Len(); n != domain.FullHandSize-1 {
		return bot.ClaimDecision{}, fmt.Errorf("%w: claiming needs 13, got %d", ErrHandSize, n)
	}
	e, err := s.engine(req.Year, req.Difficulty)
	if err != nil {
		return bot.ClaimDecision{}, err
	}
	d := e.ClaimDiscard(tile, req.Hand, forceExpose)
	s.logger.Debug("claim %s: %s %s", tile, d.Action, domain.FormatTiles(d.Tiles))
	return d, nil
}

// Charleston picks the three tiles the AI passes.
func (s *Service) Charleston(req HandRequest) ([]domain.Tile, error) {
	e, err := s.decide(req)
	if err != nil {
		return nil, err
	}
	return e.CharlestonPass(req.Hand), nil
}

// CharlestonContinue reports whether the AI votes for a second Charleston.
func (s *Service) CharlestonContinue(req HandRequest) (bool, error) {
	e, err := s.decide(req)
	if err != nil {
		return false, err
	}
	return e.CharlestonContinueVote(req.Hand), nil
}

// CourtesyVote returns how many tiles (0 to 3) the AI offers in the courtesy pass.
func (s *Service) CourtesyVote(req HandRequest) (int, error) {
	e, err := s.decide(req)
	if err != nil {
		return 0, err
	}
	return e.CourtesyVote(req.Hand), nil
}

// CourtesyPass picks count tiles for the agreed courtesy pass.
func (s *Service) CourtesyPass(req HandRequest, count int) ([]domain.Tile, error) {
	if count < 0 || count > MaxCourtesyCount {
		return nil, fmt.Errorf("%w: got %d", ErrCourtesyCount, count)
	}
	e, err := s.decide(req)
	if err != nil {
		return nil, err
	}
	return e.CourtesyPass(req.Hand, count), nil
}

// ExchangeJokers considers redeeming jokers from the given exposures (usually
// other players' groups on the table).
func (s *Service) ExchangeJokers(req HandRequest, table []domain.Exposure) (bot.JokerExchange, error) {
	e, err := s.decide(req)
	if err != nil {
		return bot.JokerExchange{}, err
	}
	return e.ExchangeJokers(req.Hand, domain.ExchangeCandidates(table)), nil
}

// ExchangeBlanks considers trading a blank for a tile from the discard pile.
func (s *Service) ExchangeBlanks(req HandRequest, discards []domain.Tile) (bot.BlankExchange, error) {
	e, err := s.decide(req)
	if err != nil {
		return bot.BlankExchange{}, err
	}
	return e.ExchangeBlanks(req.Hand, discards), nil
}
