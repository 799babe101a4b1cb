package wire

import (
	"encoding/json"
	"errors"
	"testing"

	"mahjong/internal/app"
	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

func TestHandRequestToApp(t *testing.T) {
	tests := []struct {
		name      string
		req       HandRequest
		hidden    int
		exposures int
		wantErr   bool
	}{
		{"hidden only", HandRequest{Tiles: "N N N N E E E W W W S S S"}, 13, 0, false},
		{"commas and exposures", HandRequest{Tiles: "E,E,W,W,W,S,S,S,1C", Exposures: []string{"N N N J"}}, 9, 1, false},
		{"bad hidden tile", HandRequest{Tiles: "N Q"}, 0, 0, true},
		{"bad exposure", HandRequest{Tiles: "N", Exposures: []string{"10C"}}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToApp()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrTileNotation) {
					t.Fatalf("err = %v, want ErrTileNotation", err)
				}
				return
			}
			if len(got.Hand.Tiles) != tt.hidden || len(got.Hand.Exposures) != tt.exposures {
				t.Fatalf("hand = %+v", got.Hand)
			}
		})
	}
}

func TestEmbeddedRequestDecoding(t *testing.T) {
	var req ClaimRequest
	payload := `{"year":2017,"difficulty":"hard","tiles":"N N N N E E E W W W S S S","tile":"S","force_expose":true}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Year != 2017 || req.Difficulty != "hard" || req.Tile != "S" || !req.ForceExpose {
		t.Fatalf("decoded = %+v", req)
	}
}

func TestFromValidation(t *testing.T) {
	c := card.MustLookup(2025)

	complete := domain.NewHand(domain.MustParseTiles("N N N N E E E W W W S S S S"))
	got := FromValidation(c.Validate(complete), c.Diagnose(complete))
	if !got.Valid || got.Pattern != "NNNN EEE WWW SSS" || got.Group == "" {
		t.Fatalf("valid response = %+v", got)
	}

	stray := domain.NewHand(domain.MustParseTiles("N N N N E E E W W W S S S 5D"))
	got = FromValidation(c.Validate(stray), c.Diagnose(stray))
	if got.Valid || got.Closest != "NNNN EEE WWW SSS" || got.NonMatching != "5D" {
		t.Fatalf("invalid response = %+v", got)
	}
}

func TestFromDecisions(t *testing.T) {
	claim := FromClaim(bot.ClaimDecision{Action: bot.ExposeTiles, Tiles: domain.MustParseTiles("E E J")})
	if claim.Action != "expose" || claim.Tiles != "E E J" {
		t.Fatalf("claim = %+v", claim)
	}

	recs := FromRecommendations(bot.Recommendations{
		Tiles: []bot.TileRecommendation{
			{Tile: domain.NewTile(domain.Wind, domain.North), Recommendation: bot.Keep},
			{Tile: domain.NewTile(domain.Dot, 5), Recommendation: bot.Discard},
		},
		ConsideredPatterns: 2,
	})
	if len(recs.Tiles) != 2 || recs.Tiles[1].Tile != "5D" || recs.Tiles[1].Recommendation != "DISCARD" {
		t.Fatalf("recommendations = %+v", recs)
	}

	if got := FromJokerExchange(bot.JokerExchange{Tile: domain.NewTile(domain.Dot, 5)}); got.Exchange || got.Tile != "" {
		t.Fatalf("declined exchange = %+v", got)
	}
	if got := FromBlankExchange(bot.BlankExchange{ShouldExchange: true, Blank: domain.NewTile(domain.Blank, 0), Discard: domain.NewTile(domain.Wind, domain.South), Gain: 30}); got.Blank != "X" || got.Discard != "S" {
		t.Fatalf("blank exchange = %+v", got)
	}
}

func TestPatterns(t *testing.T) {
	c := card.MustLookup(2025)
	got := Patterns(c)
	groups, ok := got["groups"].([]interface{})
	if !ok || len(groups) != len(c.Groups) {
		t.Fatalf("groups = %v", got["groups"])
	}
	total := 0
	for _, g := range groups {
		total += len(g.(map[string]interface{})["patterns"].([]interface{}))
	}
	if total != len(c.Patterns()) {
		t.Fatalf("listed %d patterns, card has %d", total, len(c.Patterns()))
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		ev    app.Event
		seat  int
		from  int
		tiles string
	}{
		{app.Event{Kind: app.EventCharlestonPass, Payload: app.CharlestonPassPayload{From: 0, To: 1, Tiles: domain.MustParseTiles("1C 2C 3C")}}, 1, 0, "1C 2C 3C"},
		{app.Event{Kind: app.EventTileClaimed, Payload: app.TileClaimedPayload{Seat: 2, From: 1, Tile: domain.NewTile(domain.Wind, domain.East)}}, 2, 1, "E"},
		{app.Event{Kind: app.EventTileDiscarded, Payload: app.TileDiscardedPayload{Seat: 3, Tile: domain.NewTile(domain.Dot, 5)}}, 3, -1, "5D"},
		{app.Event{Kind: app.EventWallGame, Payload: app.WallGamePayload{Turns: 90}}, -1, -1, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.ev.Kind), func(t *testing.T) {
			got := FromEvent(tt.ev)
			if got.Kind != string(tt.ev.Kind) || got.Seat != tt.seat || got.Tiles != tt.tiles {
				t.Fatalf("event = %+v", got)
			}
			if (got.From == nil) != (tt.from < 0) || (got.From != nil && *got.From != tt.from) {
				t.Fatalf("from = %v, want %d", got.From, tt.from)
			}
		})
	}
}

func TestFromSimulation(t *testing.T) {
	res := app.SimulationResult{Winner: -1, Turns: 3}
	res.Hands[0] = domain.NewHand(domain.MustParseTiles("1C 2C"), domain.Exposure{Tiles: domain.MustParseTiles("N N N")})
	events := []app.Event{{Kind: app.EventWallGame, Payload: app.WallGamePayload{Turns: 3}}}

	got := FromSimulation(res, events, false)
	if len(got.Hands) != domain.Seats || got.Hands[0] != "1C 2C [N N N]" || got.Events != nil {
		t.Fatalf("simulation = %+v", got)
	}
	if got := FromSimulation(res, events, true); len(got.Events) != 1 || got.Events[0].Turns != 3 {
		t.Fatalf("events = %+v", got.Events)
	}
}
