package domain

import "testing"

func TestNewGameSeatsPlayers(t *testing.T) {
	g := NewGame([Seats]string{"a", "b", "c", "d"}, NewWall(false), 2)
	if g.Phase != PhaseDealing || g.Winner != -1 || g.CurrentSeat != 2 {
		t.Fatalf("unexpected initial state %+v", g)
	}
	for i, p := range g.Players {
		if p.Seat != i {
			t.Fatalf("player %d has seat %d", i, p.Seat)
		}
	}
}

func TestNextSeat(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	for _, tt := range tests {
		if got := NextSeat(tt.in); got != tt.want {
			t.Errorf("NextSeat(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDrawExhaustsWall(t *testing.T) {
	g := NewGame([Seats]string{}, MustParseTiles("1C 2C"), 0)
	for _, want := range []string{"1C", "2C"} {
		got, err := g.Draw()
		if err != nil || got.String() != want {
			t.Fatalf("Draw = %v, %v; want %s", got, err, want)
		}
	}
	if _, err := g.Draw(); err != ErrWallEmpty {
		t.Fatalf("Draw on empty wall err = %v", err)
	}
}

func TestTakeLastDiscard(t *testing.T) {
	g := NewGame([Seats]string{}, nil, 0)
	if _, ok := g.TakeLastDiscard(); ok {
		t.Fatal("empty pile should have nothing to take")
	}
	g.Discards = MustParseTiles("1C 5D")
	got, ok := g.TakeLastDiscard()
	if !ok || got.String() != "5D" || len(g.Discards) != 1 {
		t.Fatalf("TakeLastDiscard = %v, %v; pile %v", got, ok, g.Discards)
	}
}
