package domain

import "errors"

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhaseDealing is the state before hands are dealt.
	PhaseDealing Phase = "dealing"
	// PhasePlaying is the draw and discard loop.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after mahjong or an exhausted wall.
	PhaseEnded Phase = "ended"
)

// Seats is the number of players at a table.
const Seats = 4

// ErrWallEmpty is returned when a draw is attempted on an exhausted wall.
var ErrWallEmpty = errors.New("wall is empty")

// Player holds state for one seat.
type Player struct {
	Seat int // 0-based
	Name string
	Hand Hand
}

// Game holds the authoritative table state of a single game.
type Game struct {
	Phase Phase

	Players  [Seats]*Player
	Wall     []Tile
	Discards []Tile

	Dealer      int
	CurrentSeat int
	Winner      int // -1 until someone declares mahjong
}

// NewGame seats the named players around a shuffled wall.
func NewGame(names [Seats]string, wall []Tile, dealer int) *Game {
	g := &Game{
		Phase:       PhaseDealing,
		Wall:        wall,
		Dealer:      dealer,
		CurrentSeat: dealer,
		Winner:      -1,
	}
	for i, name := range names {
		g.Players[i] = &Player{Seat: i, Name: name}
	}
	return g
}

// NextSeat returns the seat after seat, counter-clockwise.
func NextSeat(seat int) int {
	return (seat + 1) % Seats
}

// Draw takes the next tile from the wall.
func (g *Game) Draw() (Tile, error) {
	if len(g.Wall) == 0 {
		return Tile{}, ErrWallEmpty
	}
	t := g.Wall[0]
	g.Wall = g.Wall[1:]
	return t, nil
}

// TakeLastDiscard removes and returns the top of the discard pile.
func (g *Game) TakeLastDiscard() (Tile, bool) {
	if len(g.Discards) == 0 {
		return Tile{}, false
	}
	t := g.Discards[len(g.Discards)-1]
	g.Discards = g.Discards[:len(g.Discards)-1]
	return t, true
}
