package domain

import (
	"errors"
	"testing"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tile
	}{
		{name: "crack", in: "5C", want: NewTile(Crack, 5)},
		{name: "bam lower case", in: "9b", want: NewTile(Bam, 9)},
		{name: "dot", in: "1D", want: NewTile(Dot, 1)},
		{name: "north", in: "N", want: NewTile(Wind, North)},
		{name: "east", in: "E", want: NewTile(Wind, East)},
		{name: "white dragon", in: "WD", want: NewTile(Dragon, White)},
		{name: "flower", in: "F", want: NewTile(Flower, 0)},
		{name: "joker", in: " J ", want: NewTile(Joker, 0)},
		{name: "blank", in: "X", want: NewTile(Blank, 0)},
		{name: "placeholder", in: "?", want: Placeholder()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTile(tt.in)
			if err != nil {
				t.Fatalf("ParseTile(%q) error: %v", tt.in, err)
			}
			if !got.Equals(tt.want) {
				t.Fatalf("ParseTile(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTileRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "0C", "10B", "5Z", "DR", "JJ"} {
		if _, err := ParseTile(in); !errors.Is(err, ErrTileNotation) {
			t.Errorf("ParseTile(%q) err = %v, want ErrTileNotation", in, err)
		}
	}
}

func TestTileStringRoundTrip(t *testing.T) {
	for _, tile := range NewWall(true) {
		parsed, err := ParseTile(tile.String())
		if err != nil {
			t.Fatalf("ParseTile(%q): %v", tile.String(), err)
		}
		if !parsed.Equals(tile) {
			t.Fatalf("round trip %v -> %v", tile, parsed)
		}
	}
}

func TestTileText(t *testing.T) {
	tests := []struct {
		tile Tile
		want string
	}{
		{NewTile(Crack, 5), "Crack 5"},
		{NewTile(Wind, North), "North wind"},
		{NewTile(Dragon, Red), "Red dragon"},
		{NewTile(Flower, 0), "Flower 1"},
		{NewTile(Joker, 0), "Joker"},
		{Placeholder(), "Invalid"},
	}
	for _, tt := range tests {
		if got := tt.tile.Text(); got != tt.want {
			t.Errorf("%v.Text() = %q, want %q", tt.tile, got, tt.want)
		}
	}
}

func TestEqualsIgnoresID(t *testing.T) {
	a := Tile{Suit: Bam, Number: 3, ID: 4}
	b := Tile{Suit: Bam, Number: 3, ID: 40}
	if !a.Equals(b) {
		t.Fatal("tiles with the same identity should be equal")
	}
	if a.SameTile(b) {
		t.Fatal("different physical tiles reported as the same tile")
	}
	if NewTile(Bam, 3).SameTile(NewTile(Bam, 3)) {
		t.Fatal("synthetic tiles have no physical identity")
	}
}

func TestWildcards(t *testing.T) {
	if !NewTile(Joker, 0).IsWildcard() || !NewTile(Blank, 0).IsWildcard() {
		t.Fatal("jokers and blanks are wildcards")
	}
	if NewTile(Flower, 0).IsWildcard() {
		t.Fatal("flowers are not wildcards")
	}
	if NewTile(Crack, 1).Key() == NewTile(Bam, 1).Key() {
		t.Fatal("keys must differ across suits")
	}
}
