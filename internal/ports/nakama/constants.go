package nakama

// RPC ids registered with Nakama.
const (
	RpcRankHand           = "mahjong_rank_hand"
	RpcValidateHand       = "mahjong_validate_hand"
	RpcRecommend          = "mahjong_recommend"
	RpcHints              = "mahjong_hints"
	RpcChooseDiscard      = "mahjong_choose_discard"
	RpcClaimDiscard       = "mahjong_claim_discard"
	RpcCharlestonPass     = "mahjong_charleston_pass"
	RpcCharlestonContinue = "mahjong_charleston_continue"
	RpcCourtesyVote       = "mahjong_courtesy_vote"
	RpcCourtesyPass       = "mahjong_courtesy_pass"
	RpcExchangeJokers     = "mahjong_exchange_jokers"
	RpcExchangeBlanks     = "mahjong_exchange_blanks"
	RpcCardPatterns       = "mahjong_card_patterns"
	RpcGenerateHand       = "mahjong_generate_hand"
	RpcIssueToken         = "mahjong_issue_token"
)

// gRPC status codes used for runtime errors.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeFailedPrecondition = 9
	codeInternal           = 13
)
