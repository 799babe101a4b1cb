// Package wire holds the JSON request and response shapes shared by the
// Nakama RPCs and the HTTP gateway. Tiles travel as space separated notation,
// e.g. "1C 2C 3C N RD F J".
package wire

import (
	"fmt"

	"mahjong/internal/app"
	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// HandRequest is the common part of every hand-based request.
type HandRequest struct {
	Year       int      `json:"year,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
	Tiles      string   `json:"tiles"`
	Exposures  []string `json:"exposures,omitempty"`
}

// ToApp parses the tile notation into an app request.
func (r HandRequest) ToApp() (app.HandRequest, error) {
	h, err := ParseHand(r.Tiles, r.Exposures)
	if err != nil {
		return app.HandRequest{}, err
	}
	return app.HandRequest{Year: r.Year, Difficulty: r.Difficulty, Hand: h}, nil
}

// ParseHand builds a hand from hidden tiles and exposure groups.
func ParseHand(tiles string, exposures []string) (domain.Hand, error) {
	hidden, err := domain.ParseTiles(tiles)
	if err != nil {
		return domain.Hand{}, err
	}
	h := domain.NewHand(hidden)
	for i, e := range exposures {
		group, err := domain.ParseTiles(e)
		if err != nil {
			return domain.Hand{}, fmt.Errorf("exposure %d: %w", i, err)
		}
		h.Exposures = append(h.Exposures, domain.Exposure{Tiles: group})
	}
	return h, nil
}

type RankRequest struct {
	HandRequest
	Top int `json:"top,omitempty"`
}

type ClaimRequest struct {
	HandRequest
	Tile        string `json:"tile"`
	ForceExpose bool   `json:"force_expose,omitempty"`
}

type CourtesyPassRequest struct {
	HandRequest
	Count int `json:"count"`
}

type ExchangeJokersRequest struct {
	HandRequest
	// Table lists exposures on the table that may hold jokers.
	Table []string `json:"table"`
}

type ExchangeBlanksRequest struct {
	HandRequest
	Discards string `json:"discards"`
}

type PatternsRequest struct {
	Year int `json:"year,omitempty"`
}

type GenerateRequest struct {
	Year    int    `json:"year,omitempty"`
	Pattern string `json:"pattern"`
	Count   int    `json:"count,omitempty"`
}

type RankedPattern struct {
	Pattern   string  `json:"pattern"`
	Group     string  `json:"group"`
	Rank      float64 `json:"rank"`
	Concealed bool    `json:"concealed"`
	Complete  bool    `json:"complete"`
	Tiles     string  `json:"tiles"`
}

type RankResponse struct {
	Patterns []RankedPattern `json:"patterns"`
}

func FromRanked(ranked []card.RankedPattern) RankResponse {
	out := RankResponse{Patterns: make([]RankedPattern, 0, len(ranked))}
	for _, r := range ranked {
		out.Patterns = append(out.Patterns, RankedPattern{
			Pattern:   r.Pattern.Description,
			Group:     r.Pattern.Group,
			Rank:      r.Rank,
			Concealed: r.Concealed(),
			Complete:  r.Complete(),
			Tiles:     domain.FormatTiles(r.MatchedTiles()),
		})
	}
	return out
}

type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Pattern string `json:"pattern,omitempty"`
	Group   string `json:"group,omitempty"`
	// Closest and NonMatching explain an invalid hand.
	Closest     string `json:"closest,omitempty"`
	NonMatching string `json:"non_matching,omitempty"`
}

func FromValidation(v card.Validation, d card.Diagnosis) ValidateResponse {
	if v.Valid {
		return ValidateResponse{Valid: true, Pattern: v.Pattern.Description, Group: v.Pattern.Group}
	}
	out := ValidateResponse{NonMatching: domain.FormatTiles(d.NonMatching)}
	if d.Pattern != nil {
		out.Closest = d.Pattern.Description
	}
	return out
}

type TileAdvice struct {
	Tile           string `json:"tile"`
	Recommendation string `json:"recommendation"`
}

type RecommendResponse struct {
	Tiles              []TileAdvice `json:"tiles"`
	ConsideredPatterns int          `json:"considered_patterns"`
}

func FromRecommendations(r bot.Recommendations) RecommendResponse {
	out := RecommendResponse{
		Tiles:              make([]TileAdvice, 0, len(r.Tiles)),
		ConsideredPatterns: r.ConsideredPatterns,
	}
	for _, t := range r.Tiles {
		out.Tiles = append(out.Tiles, TileAdvice{Tile: t.Tile.String(), Recommendation: string(t.Recommendation)})
	}
	return out
}

type TileResponse struct {
	Tile string `json:"tile"`
}

type TilesResponse struct {
	Tiles string `json:"tiles"`
}

type ClaimResponse struct {
	Action string `json:"action"`
	Tiles  string `json:"tiles,omitempty"`
}

func FromClaim(d bot.ClaimDecision) ClaimResponse {
	return ClaimResponse{Action: d.Action.String(), Tiles: domain.FormatTiles(d.Tiles)}
}

type VoteResponse struct {
	Continue bool `json:"continue"`
}

type CourtesyVoteResponse struct {
	Count int `json:"count"`
}

type JokerExchangeResponse struct {
	Exchange bool    `json:"exchange"`
	Tile     string  `json:"tile,omitempty"`
	Gain     float64 `json:"gain,omitempty"`
}

func FromJokerExchange(e bot.JokerExchange) JokerExchangeResponse {
	if !e.ShouldExchange {
		return JokerExchangeResponse{}
	}
	return JokerExchangeResponse{Exchange: true, Tile: e.Tile.String(), Gain: e.Gain}
}

type BlankExchangeResponse struct {
	Exchange bool    `json:"exchange"`
	Blank    string  `json:"blank,omitempty"`
	Discard  string  `json:"discard,omitempty"`
	Gain     float64 `json:"gain,omitempty"`
}

func FromBlankExchange(e bot.BlankExchange) BlankExchangeResponse {
	if !e.ShouldExchange {
		return BlankExchangeResponse{}
	}
	return BlankExchangeResponse{Exchange: true, Blank: e.Blank.String(), Discard: e.Discard.String(), Gain: e.Gain}
}

// Patterns lists a card as nested generic values, ready for structpb or JSON.
func Patterns(c *card.Card) map[string]interface{} {
	groups := make([]interface{}, 0, len(c.Groups))
	for _, g := range c.Groups {
		patterns := make([]interface{}, 0, len(g.Patterns))
		for i := range g.Patterns {
			p := &g.Patterns[i]
			patterns = append(patterns, map[string]interface{}{
				"description": p.Description,
				"concealed":   p.Concealed,
				"variations":  p.VariationCount(),
			})
		}
		groups = append(groups, map[string]interface{}{
			"description": g.Description,
			"patterns":    patterns,
		})
	}
	return map[string]interface{}{
		"year":   c.Year,
		"groups": groups,
	}
}

type SimulateRequest struct {
	Year       int           `json:"year,omitempty"`
	Profiles   []bot.Profile `json:"profiles,omitempty"`
	UseBlanks  bool          `json:"use_blanks,omitempty"`
	Charleston bool          `json:"charleston,omitempty"`
	MaxTurns   int           `json:"max_turns,omitempty"`
	// Events includes the full event log in the response.
	Events bool `json:"events,omitempty"`
}

func (r SimulateRequest) ToApp() app.SimulateRequest {
	return app.SimulateRequest{
		Year:       r.Year,
		Profiles:   r.Profiles,
		UseBlanks:  r.UseBlanks,
		Charleston: r.Charleston,
		MaxTurns:   r.MaxTurns,
	}
}

// Event is a flattened game event. Seat is the acting seat; From is set for
// passes and claims, Owner for joker exchanges.
type Event struct {
	Kind      string `json:"kind"`
	Seat      int    `json:"seat"`
	From      *int   `json:"from,omitempty"`
	Owner     *int   `json:"owner,omitempty"`
	Tiles     string `json:"tiles,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	SelfDrawn bool   `json:"self_drawn,omitempty"`
	Turns     int    `json:"turns,omitempty"`
}

func FromEvent(ev app.Event) Event {
	out := Event{Kind: string(ev.Kind), Seat: -1}
	switch p := ev.Payload.(type) {
	case app.HandDealtPayload:
		out.Seat, out.Tiles = p.Seat, domain.FormatTiles(p.Tiles)
	case app.CharlestonPassPayload:
		out.Seat, out.From, out.Tiles = p.To, &p.From, domain.FormatTiles(p.Tiles)
	case app.TileDrawnPayload:
		out.Seat, out.Tiles = p.Seat, p.Tile.String()
	case app.TileDiscardedPayload:
		out.Seat, out.Tiles = p.Seat, p.Tile.String()
	case app.TileClaimedPayload:
		out.Seat, out.From, out.Tiles = p.Seat, &p.From, p.Tile.String()
	case app.TilesExposedPayload:
		out.Seat, out.Tiles = p.Seat, domain.FormatTiles(p.Tiles)
	case app.JokerExchangedPayload:
		out.Seat, out.Owner, out.Tiles = p.Seat, &p.Owner, p.Tile.String()
	case app.MahjongPayload:
		out.Seat, out.Pattern, out.SelfDrawn = p.Seat, p.Pattern, p.SelfDrawn
	case app.WallGamePayload:
		out.Turns = p.Turns
	}
	return out
}

type SimulateResponse struct {
	Winner        int      `json:"winner"`
	WinnerName    string   `json:"winner_name,omitempty"`
	Pattern       string   `json:"pattern,omitempty"`
	SelfDrawn     bool     `json:"self_drawn,omitempty"`
	Turns         int      `json:"turns"`
	WallRemaining int      `json:"wall_remaining"`
	Hands         []string `json:"hands"`
	Events        []Event  `json:"events,omitempty"`
}

// FromSimulation renders each hand as hidden tiles followed by its exposures
// in brackets.
func FromSimulation(res app.SimulationResult, events []app.Event, withEvents bool) SimulateResponse {
	out := SimulateResponse{
		Winner:        res.Winner,
		WinnerName:    res.WinnerName,
		Pattern:       res.Pattern,
		SelfDrawn:     res.SelfDrawn,
		Turns:         res.Turns,
		WallRemaining: res.WallRemaining,
		Hands:         make([]string, 0, len(res.Hands)),
	}
	for _, h := range res.Hands {
		s := domain.FormatTiles(h.Tiles)
		for _, e := range h.Exposures {
			s += " [" + domain.FormatTiles(e.Tiles) + "]"
		}
		out.Hands = append(out.Hands, s)
	}
	if withEvents {
		out.Events = make([]Event, 0, len(events))
		for _, ev := range events {
			out.Events = append(out.Events, FromEvent(ev))
		}
	}
	return out
}
