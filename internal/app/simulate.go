package app

import (
	"fmt"

	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/domain"
)

// SimulateRequest configures a self-play game between four AI seats.
type SimulateRequest struct {
	Year       int
	Profiles   []bot.Profile // seat profiles, reused round-robin
	UseBlanks  bool
	Charleston bool
	MaxTurns   int
}

// SimulationResult summarizes a finished game.
type SimulationResult struct {
	Winner        int // -1 for a wall game
	WinnerName    string
	Pattern       string
	SelfDrawn     bool
	Turns         int
	WallRemaining int
	Hands         [domain.Seats]domain.Hand
	Discards      []domain.Tile
}

// Simulate plays one game: deal, optional Charleston, then draw, discard and
// claim until someone declares mahjong or the wall runs out.
func (s *Service) Simulate(req SimulateRequest) (SimulationResult, []Event, error) {
	c, err := s.Card(req.Year)
	if err != nil {
		return SimulationResult{}, nil, err
	}
	rng := s.split()
	agents, err := bot.NewAgents(c, req.Profiles, domain.Seats, rng)
	if err != nil {
		return SimulationResult{}, nil, fmt.Errorf("seat agents: %w", err)
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	var names [domain.Seats]string
	for i, a := range agents {
		names[i] = a.Profile.Name
	}
	sim := &simulation{
		card:   c,
		agents: agents,
		game:   domain.NewGame(names, domain.ShuffleWall(domain.NewWall(req.UseBlanks), rng), 0),
		logger: s.logger,
	}

	if err := sim.deal(); err != nil {
		return SimulationResult{}, nil, err
	}
	if req.Charleston {
		sim.charleston()
	}
	sim.play(maxTurns)

	res := SimulationResult{
		Winner:        sim.game.Winner,
		Pattern:       sim.pattern,
		SelfDrawn:     sim.selfDrawn,
		Turns:         sim.turns,
		WallRemaining: len(sim.game.Wall),
		Discards:      sim.game.Discards,
	}
	if res.Winner >= 0 {
		res.WinnerName = names[res.Winner]
	}
	for i, p := range sim.game.Players {
		res.Hands[i] = p.Hand
	}
	s.logger.Info("simulated game on card %d: winner %d (%s) after %d turns", c.Year, res.Winner, res.Pattern, res.Turns)
	return res, sim.events, nil
}

type simulation struct {
	card   *card.Card
	agents []*bot.Agent
	game   *domain.Game
	logger Logger

	events    []Event
	turns     int
	pattern   string
	selfDrawn bool
}

func (sim *simulation) emit(ev Event) {
	sim.logger.Debug("event %s: %+v", ev.Kind, ev.Payload)
	sim.events = append(sim.events, ev)
}

func (sim *simulation) player(seat int) *domain.Player {
	return sim.game.Players[seat]
}

// deal gives every seat 13 tiles and the dealer a fourteenth.
func (sim *simulation) deal() error {
	g := sim.game
	for seat := range g.Players {
		count := domain.FullHandSize - 1
		if seat == g.Dealer {
			count++
		}
		p := sim.player(seat)
		for i := 0; i < count; i++ {
			t, err := g.Draw()
			if err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			p.Hand.Tiles = append(p.Hand.Tiles, t)
		}
		sim.emit(Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Tiles: append([]domain.Tile(nil), p.Hand.Tiles...)},
			Recipients: []string{p.Name},
		})
	}
	return nil
}

// charleston runs the first Charleston (right, across, left), an optional
// second one (left, across, right) when every seat votes for it, and a
// courtesy pass between seats facing each other.
func (sim *simulation) charleston() {
	sim.passRound([]int{1, 2, 3}, func(a *bot.Agent, h domain.Hand) []domain.Tile {
		return a.Policy.CharlestonPass(h)
	})

	again := true
	for _, a := range sim.agents {
		if !a.Policy.CharlestonContinueVote(sim.player(a.Seat).Hand) {
			again = false
		}
	}
	if again {
		sim.passRound([]int{3, 2, 1}, func(a *bot.Agent, h domain.Hand) []domain.Tile {
			return a.Policy.CharlestonPass(h)
		})
	}

	for _, pair := range [][2]int{{0, 2}, {1, 3}} {
		a, b := sim.agents[pair[0]], sim.agents[pair[1]]
		count := min(a.Policy.CourtesyVote(sim.player(a.Seat).Hand), b.Policy.CourtesyVote(sim.player(b.Seat).Hand))
		if count == 0 {
			continue
		}
		fromA := a.Policy.CourtesyPass(sim.player(a.Seat).Hand, count)
		fromB := b.Policy.CourtesyPass(sim.player(b.Seat).Hand, count)
		sim.transfer(a.Seat, b.Seat, fromA)
		sim.transfer(b.Seat, a.Seat, fromB)
	}
}

// passRound runs one pass per offset; every seat chooses before any tile moves.
func (sim *simulation) passRound(offsets []int, choose func(*bot.Agent, domain.Hand) []domain.Tile) {
	for _, offset := range offsets {
		passes := make([][]domain.Tile, len(sim.agents))
		for i, a := range sim.agents {
			passes[i] = choose(a, sim.player(a.Seat).Hand)
		}
		for i, a := range sim.agents {
			sim.transfer(a.Seat, (a.Seat+offset)%domain.Seats, passes[i])
		}
	}
}

func (sim *simulation) transfer(from, to int, tiles []domain.Tile) {
	src, dst := sim.player(from), sim.player(to)
	src.Hand.Tiles = domain.RemoveTiles(src.Hand.Tiles, tiles)
	dst.Hand.Tiles = append(dst.Hand.Tiles, tiles...)
	sim.emit(Event{
		Kind:       EventCharlestonPass,
		Payload:    CharlestonPassPayload{From: from, To: to, Tiles: tiles},
		Recipients: []string{src.Name, dst.Name},
	})
}

func (sim *simulation) play(maxTurns int) {
	g := sim.game
	g.Phase = domain.PhasePlaying
	defer func() { g.Phase = domain.PhaseEnded }()

	// The dealer starts with fourteen tiles and may already hold mahjong.
	if sim.declare(g.Dealer, true) {
		return
	}
	draw := false
	for sim.turns < maxTurns {
		seat := g.CurrentSeat
		p := sim.player(seat)
		if draw {
			t, err := g.Draw()
			if err != nil {
				break
			}
			p.Hand.Tiles = append(p.Hand.Tiles, t)
			sim.emit(Event{Kind: EventTileDrawn, Payload: TileDrawnPayload{Seat: seat, Tile: t}, Recipients: []string{p.Name}})
			if sim.declare(seat, true) {
				return
			}
		}

		if sim.exchangeJoker(seat) && sim.declare(seat, true) {
			return
		}

		tile, ok := sim.agents[seat].Policy.ChooseDiscard(p.Hand)
		if !ok {
			break
		}
		p.Hand.Tiles = domain.RemoveTiles(p.Hand.Tiles, []domain.Tile{tile})
		g.Discards = append(g.Discards, tile)
		sim.turns++
		sim.emit(Event{Kind: EventTileDiscarded, Payload: TileDiscardedPayload{Seat: seat, Tile: tile}})

		claimant, won := sim.claimWindow(seat, tile)
		if won {
			return
		}
		if claimant >= 0 {
			g.CurrentSeat = claimant
			draw = false
			continue
		}
		g.CurrentSeat = domain.NextSeat(seat)
		draw = true
	}
	sim.emit(Event{Kind: EventWallGame, Payload: WallGamePayload{Turns: sim.turns}})
}

// declare checks the seat's hand for mahjong and ends the game when it is.
func (sim *simulation) declare(seat int, selfDrawn bool) bool {
	v := sim.card.Validate(sim.player(seat).Hand)
	if !v.Valid {
		return false
	}
	sim.game.Winner = seat
	sim.pattern = v.Pattern.Description
	sim.selfDrawn = selfDrawn
	sim.emit(Event{Kind: EventMahjong, Payload: MahjongPayload{Seat: seat, Pattern: sim.pattern, SelfDrawn: selfDrawn}})
	return true
}

// claimWindow offers the discard to the other seats in turn order. Mahjong
// claims take priority over exposures. It returns the claiming seat (-1 for
// none) and whether the game ended.
func (sim *simulation) claimWindow(from int, tile domain.Tile) (int, bool) {
	decisions := make(map[int]bot.ClaimDecision, domain.Seats-1)
	order := make([]int, 0, domain.Seats-1)
	for i := 1; i < domain.Seats; i++ {
		seat := (from + i) % domain.Seats
		d := sim.agents[seat].Policy.ClaimDiscard(tile, sim.player(seat).Hand, false)
		if d.Action == bot.Mahjong {
			sim.take(seat, from, tile)
			p := sim.player(seat)
			p.Hand.Tiles = append(p.Hand.Tiles, tile)
			if sim.declare(seat, false) {
				return seat, true
			}
			// Not reachable with a consistent validator; keep the tile and play on.
			return seat, false
		}
		decisions[seat] = d
		order = append(order, seat)
	}

	for _, seat := range order {
		d := decisions[seat]
		if d.Action != bot.ExposeTiles {
			continue
		}
		p := sim.player(seat)
		fromHand := removeOne(d.Tiles, tile)
		rest := domain.RemoveTiles(p.Hand.Tiles, fromHand)
		if len(rest) != len(p.Hand.Tiles)-len(fromHand) {
			sim.logger.Warn("seat %d cannot expose %s", seat, domain.FormatTiles(d.Tiles))
			continue
		}
		sim.take(seat, from, tile)
		p.Hand.Tiles = rest
		p.Hand.Exposures = append(p.Hand.Exposures, domain.Exposure{Tiles: append(fromHand, tile)})
		sim.emit(Event{Kind: EventTilesExposed, Payload: TilesExposedPayload{Seat: seat, Tiles: d.Tiles}})
		return seat, false
	}
	return -1, false
}

func (sim *simulation) take(seat, from int, tile domain.Tile) {
	sim.game.TakeLastDiscard()
	sim.emit(Event{Kind: EventTileClaimed, Payload: TileClaimedPayload{Seat: seat, From: from, Tile: tile}})
}

// exchangeJoker lets the seat redeem one joker from any exposure on the table.
func (sim *simulation) exchangeJoker(seat int) bool {
	var table []domain.Exposure
	for _, p := range sim.game.Players {
		table = append(table, p.Hand.Exposures...)
	}
	candidates := domain.ExchangeCandidates(table)
	if len(candidates) == 0 {
		return false
	}

	p := sim.player(seat)
	ex := sim.agents[seat].Policy.ExchangeJokers(p.Hand, candidates)
	if !ex.ShouldExchange {
		return false
	}
	for _, owner := range sim.game.Players {
		for i := range owner.Hand.Exposures {
			e := &owner.Hand.Exposures[i]
			want, ok := domain.JokerReplacement(*e)
			if !ok || !want.Equals(ex.Tile) {
				continue
			}
			j := -1
			for k, t := range e.Tiles {
				if t.IsJoker() {
					j = k
					break
				}
			}
			joker := e.Tiles[j]
			e.Tiles[j] = ex.Tile
			p.Hand.Tiles = append(domain.RemoveTiles(p.Hand.Tiles, []domain.Tile{ex.Tile}), joker)
			sim.emit(Event{Kind: EventJokerExchanged, Payload: JokerExchangedPayload{Seat: seat, Owner: owner.Seat, Tile: ex.Tile}})
			return true
		}
	}
	return false
}

// removeOne returns tiles without one copy of t, preferring the same physical
// tile.
func removeOne(tiles []domain.Tile, t domain.Tile) []domain.Tile {
	idx := -1
	for i, x := range tiles {
		if x.SameTile(t) {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i, x := range tiles {
			if x.Equals(t) {
				idx = i
				break
			}
		}
	}
	out := make([]domain.Tile, 0, len(tiles))
	for i, x := range tiles {
		if i != idx {
			out = append(out, x)
		}
	}
	return out
}
