package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"mahjong/internal/app"
	"mahjong/internal/card"
	"mahjong/internal/domain"
	"mahjong/internal/ports/wire"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type rpcFunc func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)

// Handlers serves the mahjong RPCs from one service.
type Handlers struct {
	svc    *app.Service
	tokens *app.TokenService
}

func NewHandlers(svc *app.Service, tokens *app.TokenService) *Handlers {
	return &Handlers{svc: svc, tokens: tokens}
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer, h *Handlers) error {
	rpcs := []struct {
		id string
		fn rpcFunc
	}{
		{RpcRankHand, h.RankHand},
		{RpcValidateHand, h.ValidateHand},
		{RpcRecommend, h.Recommend},
		{RpcHints, h.Hints},
		{RpcChooseDiscard, h.ChooseDiscard},
		{RpcClaimDiscard, h.ClaimDiscard},
		{RpcCharlestonPass, h.CharlestonPass},
		{RpcCharlestonContinue, h.CharlestonContinue},
		{RpcCourtesyVote, h.CourtesyVote},
		{RpcCourtesyPass, h.CourtesyPass},
		{RpcExchangeJokers, h.ExchangeJokers},
		{RpcExchangeBlanks, h.ExchangeBlanks},
		{RpcCardPatterns, h.CardPatterns},
		{RpcGenerateHand, h.GenerateHand},
		{RpcIssueToken, h.IssueToken},
	}
	for _, r := range rpcs {
		if err := initializer.RegisterRpc(r.id, r.fn); err != nil {
			return err
		}
	}
	return nil
}

// decode unmarshals the payload; an empty payload yields the zero request.
func decode[T any](logger runtime.Logger, rpc, payload string) (T, error) {
	var req T
	if strings.TrimSpace(payload) == "" {
		return req, nil
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		logger.Warn("%s: invalid payload: %v", rpc, err)
		return req, runtime.NewError("invalid payload", codeInvalidArgument)
	}
	return req, nil
}

func respond(logger runtime.Logger, rpc string, v any, err error) (string, error) {
	if err != nil {
		return "", toRuntimeError(logger, rpc, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("%s: failed to marshal response: %v", rpc, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return string(b), nil
}

func toRuntimeError(logger runtime.Logger, rpc string, err error) error {
	switch {
	case errors.Is(err, app.ErrUnknownYear), errors.Is(err, card.ErrUnknownPattern):
		return runtime.NewError(err.Error(), codeNotFound)
	case errors.Is(err, app.ErrHandSize),
		errors.Is(err, app.ErrEmptyHand),
		errors.Is(err, app.ErrCourtesyCount),
		errors.Is(err, app.ErrUnknownDifficulty),
		errors.Is(err, domain.ErrTileNotation):
		return runtime.NewError(err.Error(), codeInvalidArgument)
	}
	logger.Error("%s: %v", rpc, err)
	return runtime.NewError("internal error", codeInternal)
}

// handRPC runs fn on a decoded request whose embedded hand has been parsed.
func handRPC[T any](logger runtime.Logger, rpc, payload string, hand func(T) wire.HandRequest, fn func(T, app.HandRequest) (any, error)) (string, error) {
	req, err := decode[T](logger, rpc, payload)
	if err != nil {
		return "", err
	}
	ar, err := hand(req).ToApp()
	if err != nil {
		return "", toRuntimeError(logger, rpc, err)
	}
	resp, err := fn(req, ar)
	return respond(logger, rpc, resp, err)
}

func plain(r wire.HandRequest) wire.HandRequest { return r }

// RankHand returns the card's patterns ranked for the hand, best first.
// Payload: {"tiles": "...", "exposures": ["..."], "year": 2025, "top": 5}
func (h *Handlers) RankHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcRankHand, payload, func(r wire.RankRequest) wire.HandRequest { return r.HandRequest },
		func(r wire.RankRequest, ar app.HandRequest) (any, error) {
			ranked, err := h.svc.Rank(ar, r.Top)
			return wire.FromRanked(ranked), err
		})
}

// ValidateHand reports mahjong, or the closest pattern and stray tiles.
func (h *Handlers) ValidateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcValidateHand, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		v, err := h.svc.Validate(ar)
		if err != nil || v.Valid {
			return wire.FromValidation(v, card.Diagnosis{}), err
		}
		d, err := h.svc.Diagnose(ar)
		return wire.FromValidation(v, d), err
	})
}

func (h *Handlers) Recommend(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcRecommend, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		recs, err := h.svc.Recommend(ar)
		return wire.FromRecommendations(recs), err
	})
}

func (h *Handlers) Hints(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcHints, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		recs, err := h.svc.Hints(ar)
		return wire.FromRecommendations(recs), err
	})
}

func (h *Handlers) ChooseDiscard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcChooseDiscard, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		t, err := h.svc.Discard(ar)
		return wire.TileResponse{Tile: t.String()}, err
	})
}

// ClaimDiscard decides on another player's discard.
// Payload: {"tiles": "...", "tile": "5B", "force_expose": false}
func (h *Handlers) ClaimDiscard(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcClaimDiscard, payload, func(r wire.ClaimRequest) wire.HandRequest { return r.HandRequest },
		func(r wire.ClaimRequest, ar app.HandRequest) (any, error) {
			tile, err := domain.ParseTile(r.Tile)
			if err != nil {
				return nil, err
			}
			d, err := h.svc.Claim(ar, tile, r.ForceExpose)
			return wire.FromClaim(d), err
		})
}

func (h *Handlers) CharlestonPass(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcCharlestonPass, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		tiles, err := h.svc.Charleston(ar)
		return wire.TilesResponse{Tiles: domain.FormatTiles(tiles)}, err
	})
}

func (h *Handlers) CharlestonContinue(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcCharlestonContinue, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		yes, err := h.svc.CharlestonContinue(ar)
		return wire.VoteResponse{Continue: yes}, err
	})
}

func (h *Handlers) CourtesyVote(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcCourtesyVote, payload, plain, func(_ wire.HandRequest, ar app.HandRequest) (any, error) {
		n, err := h.svc.CourtesyVote(ar)
		return wire.CourtesyVoteResponse{Count: n}, err
	})
}

func (h *Handlers) CourtesyPass(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcCourtesyPass, payload, func(r wire.CourtesyPassRequest) wire.HandRequest { return r.HandRequest },
		func(r wire.CourtesyPassRequest, ar app.HandRequest) (any, error) {
			tiles, err := h.svc.CourtesyPass(ar, r.Count)
			return wire.TilesResponse{Tiles: domain.FormatTiles(tiles)}, err
		})
}

// ExchangeJokers considers redeeming a joker from the exposures on the table.
// Payload: {"tiles": "...", "table": ["5D 5D J", "N N N J"]}
func (h *Handlers) ExchangeJokers(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcExchangeJokers, payload, func(r wire.ExchangeJokersRequest) wire.HandRequest { return r.HandRequest },
		func(r wire.ExchangeJokersRequest, ar app.HandRequest) (any, error) {
			table, err := wire.ParseHand("", r.Table)
			if err != nil {
				return nil, err
			}
			ex, err := h.svc.ExchangeJokers(ar, table.Exposures)
			return wire.FromJokerExchange(ex), err
		})
}

func (h *Handlers) ExchangeBlanks(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return handRPC(logger, RpcExchangeBlanks, payload, func(r wire.ExchangeBlanksRequest) wire.HandRequest { return r.HandRequest },
		func(r wire.ExchangeBlanksRequest, ar app.HandRequest) (any, error) {
			discards, err := domain.ParseTiles(r.Discards)
			if err != nil {
				return nil, err
			}
			ex, err := h.svc.ExchangeBlanks(ar, discards)
			return wire.FromBlankExchange(ex), err
		})
}

// CardPatterns lists the groups and patterns of a card.
// Payload: {"year": 2025}
func (h *Handlers) CardPatterns(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	req, err := decode[wire.PatternsRequest](logger, RpcCardPatterns, payload)
	if err != nil {
		return "", err
	}
	c, err := h.svc.Card(req.Year)
	if err != nil {
		return "", toRuntimeError(logger, RpcCardPatterns, err)
	}
	st, err := structpb.NewStruct(wire.Patterns(c))
	if err != nil {
		logger.Error("%s: failed to build struct: %v", RpcCardPatterns, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	b, err := protojson.Marshal(st)
	if err != nil {
		logger.Error("%s: failed to marshal struct: %v", RpcCardPatterns, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return string(b), nil
}

// GenerateHand builds a practice hand for a pattern.
// Payload: {"pattern": "NNNN EEE WWW SSS", "count": 14}
func (h *Handlers) GenerateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	req, err := decode[wire.GenerateRequest](logger, RpcGenerateHand, payload)
	if err != nil {
		return "", err
	}
	n := req.Count
	if n <= 0 {
		n = domain.FullHandSize
	}
	hand, err := h.svc.Generate(req.Year, req.Pattern, n)
	return respond(logger, RpcGenerateHand, wire.TilesResponse{Tiles: domain.FormatTiles(hand.Tiles)}, err)
}

// IssueToken signs an HTTP gateway token for the calling user.
// Payload: {"scope": "advise" | "simulate"}
func (h *Handlers) IssueToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("user id required", codeInvalidArgument)
	}
	req, err := decode[struct {
		Scope string `json:"scope"`
	}](logger, RpcIssueToken, payload)
	if err != nil {
		return "", err
	}
	if req.Scope == "" {
		req.Scope = app.TokenScopeAdvise
	}
	if !h.tokens.Enabled() {
		logger.Warn("%s: no auth secret configured", RpcIssueToken)
		return "", runtime.NewError("token service not configured", codeFailedPrecondition)
	}

	token, err := h.tokens.GenerateToken(userID, req.Scope)
	if err != nil {
		logger.Warn("%s [User:%s]: %v", RpcIssueToken, userID, err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	b, _ := json.Marshal(map[string]string{"token": token})
	return string(b), nil
}
