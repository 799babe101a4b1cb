package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Suit identifies the family a tile belongs to.
type Suit int

const (
	Crack Suit = iota
	Bam
	Dot
	Wind
	Dragon
	Flower
	Joker
	Blank

	// Invalid marks the synthetic placeholder used to pad 13-tile hands.
	Invalid Suit = 99
)

// Wind numbers.
const (
	North = iota
	South
	West
	East
)

// Dragon numbers. Each dragon shares its index with the suit it belongs to
// (red with cracks, green with bams, white with dots).
const (
	Red = iota
	Green
	White
)

// NumberedSuits lists the suits that carry numbers 1..9, in catalog order.
var NumberedSuits = [3]Suit{Crack, Bam, Dot}

// ErrTileNotation is returned when a tile string cannot be parsed.
var ErrTileNotation = errors.New("invalid tile notation")

// Tile is a single mahjong tile.
type Tile struct {
	Suit   Suit
	Number int
	ID     int // physical tile index, -1 when synthetic
}

// TileKey is the identity of a tile (suit and number) used for accounting.
type TileKey string

// NewTile returns a synthetic tile with no physical index.
func NewTile(suit Suit, number int) Tile {
	return Tile{Suit: suit, Number: number, ID: -1}
}

// Placeholder returns the tile used to pad a 13-tile hand to 14 slots.
func Placeholder() Tile {
	return NewTile(Invalid, 0)
}

// Equals reports whether two tiles have the same suit and number.
func (t Tile) Equals(other Tile) bool {
	return t.Suit == other.Suit && t.Number == other.Number
}

// SameTile reports whether both values refer to the same physical tile.
func (t Tile) SameTile(other Tile) bool {
	return t.ID >= 0 && t.ID == other.ID
}

func (t Tile) IsJoker() bool    { return t.Suit == Joker }
func (t Tile) IsBlank() bool    { return t.Suit == Blank }
func (t Tile) IsFlower() bool   { return t.Suit == Flower }
func (t Tile) IsWind() bool     { return t.Suit == Wind }
func (t Tile) IsDragon() bool   { return t.Suit == Dragon }
func (t Tile) IsInvalid() bool  { return t.Suit == Invalid }
func (t Tile) IsNumbered() bool { return t.Suit >= Crack && t.Suit <= Dot }

// IsWildcard reports jokers and blanks, which are never needed as a fixed identity.
func (t Tile) IsWildcard() bool { return t.Suit == Joker || t.Suit == Blank }

// Key returns the identity key of the tile.
func (t Tile) Key() TileKey {
	return TileKey(fmt.Sprintf("%d-%d", t.Suit, t.Number))
}

var (
	windLetters   = [4]string{"N", "S", "W", "E"}
	windNames     = [4]string{"North", "South", "West", "East"}
	dragonCodes   = [3]string{"RD", "GD", "WD"}
	dragonNames   = [3]string{"Red dragon", "Green dragon", "White dragon"}
	suitLetters   = [3]string{"C", "B", "D"}
	numberedNames = [3]string{"Crack", "Bam", "Dot"}
)

// String returns the compact notation used by the ports and the CLI.
func (t Tile) String() string {
	switch {
	case t.IsNumbered():
		return fmt.Sprintf("%d%s", t.Number, suitLetters[t.Suit])
	case t.Suit == Wind && t.Number >= North && t.Number <= East:
		return windLetters[t.Number]
	case t.Suit == Dragon && t.Number >= Red && t.Number <= White:
		return dragonCodes[t.Number]
	case t.Suit == Flower:
		return "F"
	case t.Suit == Joker:
		return "J"
	case t.Suit == Blank:
		return "X"
	case t.Suit == Invalid:
		return "?"
	}
	return fmt.Sprintf("<%d:%d>", t.Suit, t.Number)
}

// Text returns a human readable name such as "Crack 5" or "North wind".
func (t Tile) Text() string {
	switch {
	case t.IsNumbered():
		return fmt.Sprintf("%s %d", numberedNames[t.Suit], t.Number)
	case t.Suit == Wind && t.Number >= North && t.Number <= East:
		return windNames[t.Number] + " wind"
	case t.Suit == Dragon && t.Number >= Red && t.Number <= White:
		return dragonNames[t.Number]
	case t.Suit == Flower:
		return fmt.Sprintf("Flower %d", t.Number+1)
	case t.Suit == Joker:
		return "Joker"
	case t.Suit == Blank:
		return "Blank"
	case t.Suit == Invalid:
		return "Invalid"
	}
	return fmt.Sprintf("Unknown tile (%d:%d)", t.Suit, t.Number)
}

// ParseTile parses a single tile in compact notation (e.g. "5B", "N", "RD", "J").
func ParseTile(s string) (Tile, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for i, w := range windLetters {
		if code == w {
			return NewTile(Wind, i), nil
		}
	}
	for i, d := range dragonCodes {
		if code == d {
			return NewTile(Dragon, i), nil
		}
	}
	switch code {
	case "F":
		return NewTile(Flower, 0), nil
	case "J":
		return NewTile(Joker, 0), nil
	case "X":
		return NewTile(Blank, 0), nil
	case "?":
		return Placeholder(), nil
	}
	if len(code) == 2 && code[0] >= '1' && code[0] <= '9' {
		for i, l := range suitLetters {
			if code[1:] == l {
				return NewTile(Suit(i), int(code[0]-'0')), nil
			}
		}
	}
	return Tile{}, fmt.Errorf("%w: %q", ErrTileNotation, s)
}

// ParseTiles parses a whitespace or comma separated list of tiles.
func ParseTiles(s string) ([]Tile, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	tiles := make([]Tile, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTile(f)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// MustParseTiles is ParseTiles for literals known to be valid.
func MustParseTiles(s string) []Tile {
	tiles, err := ParseTiles(s)
	if err != nil {
		panic(err)
	}
	return tiles
}

// FormatTiles renders tiles in compact notation separated by spaces.
func FormatTiles(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
