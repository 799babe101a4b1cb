package app

import "mahjong/internal/domain"

// EventKind identifies events emitted while a game is simulated.
type EventKind string

const (
	EventHandDealt      EventKind = "hand_dealt"
	EventCharlestonPass EventKind = "charleston_pass"
	EventTileDrawn      EventKind = "tile_drawn"
	EventTileDiscarded  EventKind = "tile_discarded"
	EventTileClaimed    EventKind = "tile_claimed"
	EventTilesExposed   EventKind = "tiles_exposed"
	EventJokerExchanged EventKind = "joker_exchanged"
	EventMahjong        EventKind = "mahjong"
	EventWallGame       EventKind = "wall_game"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player names; empty means broadcast
}

type HandDealtPayload struct {
	Seat  int
	Tiles []domain.Tile
}

type CharlestonPassPayload struct {
	From  int
	To    int
	Tiles []domain.Tile
}

type TileDrawnPayload struct {
	Seat int
	Tile domain.Tile
}

type TileDiscardedPayload struct {
	Seat int
	Tile domain.Tile
}

type TileClaimedPayload struct {
	Seat int
	From int
	Tile domain.Tile
}

type TilesExposedPayload struct {
	Seat  int
	Tiles []domain.Tile
}

type JokerExchangedPayload struct {
	Seat  int
	Owner int // seat holding the exposure
	Tile  domain.Tile
}

type MahjongPayload struct {
	Seat      int
	Pattern   string
	SelfDrawn bool
}

type WallGamePayload struct {
	Turns int
}
