package bot

import "mahjong/internal/domain"

// Policy is the set of decisions an AI seat makes during a game.
type Policy interface {
	ChooseDiscard(hand domain.Hand) (domain.Tile, bool)
	ClaimDiscard(tile domain.Tile, hand domain.Hand, forceExpose bool) ClaimDecision
	CharlestonPass(hand domain.Hand) []domain.Tile
	CharlestonContinueVote(hand domain.Hand) bool
	CourtesyVote(hand domain.Hand) int
	CourtesyPass(hand domain.Hand, count int) []domain.Tile
	ExchangeJokers(hand domain.Hand, candidates []domain.Tile) JokerExchange
	ExchangeBlanks(hand domain.Hand, discards []domain.Tile) BlankExchange
}

var _ Policy = (*Engine)(nil)
