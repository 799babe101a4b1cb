package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"mahjong/internal/app"
	"mahjong/internal/ports/wire"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// recordingInitializer captures registered RPCs; every other method panics.
type recordingInitializer struct {
	runtime.Initializer
	rpcs map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)
}

func (r *recordingInitializer) RegisterRpc(id string, fn func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error)) error {
	if r.rpcs == nil {
		r.rpcs = make(map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error))
	}
	r.rpcs[id] = fn
	return nil
}

func newTestHandlers() *Handlers {
	svc := app.NewService(rand.New(rand.NewSource(1)))
	return NewHandlers(svc, app.NewTokenService("secret", "mahjong", time.Minute))
}

func call(t *testing.T, fn rpcFunc, payload string, out any) {
	t.Helper()
	raw, err := fn(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpc error: %v", err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		t.Fatalf("unmarshal %q: %v", raw, err)
	}
}

func errorCode(t *testing.T, err error) int {
	t.Helper()
	var rerr *runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want *runtime.Error", err)
	}
	return rerr.Code
}

func TestInitModuleRegistersRPCs(t *testing.T) {
	reg := &recordingInitializer{}
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, map[string]string{
		"mahjong.card_year":  "2017",
		"mahjong.difficulty": "hard",
	})
	if err := InitModule(ctx, noopLogger{}, nil, nil, reg); err != nil {
		t.Fatalf("InitModule error: %v", err)
	}
	for _, id := range []string{
		RpcRankHand, RpcValidateHand, RpcRecommend, RpcHints, RpcChooseDiscard,
		RpcClaimDiscard, RpcCharlestonPass, RpcCharlestonContinue, RpcCourtesyVote,
		RpcCourtesyPass, RpcExchangeJokers, RpcExchangeBlanks, RpcCardPatterns,
		RpcGenerateHand, RpcIssueToken,
	} {
		if _, ok := reg.rpcs[id]; !ok {
			t.Fatalf("rpc %s not registered", id)
		}
	}

	var patterns struct {
		Year float64 `json:"year"`
	}
	raw, err := reg.rpcs[RpcCardPatterns](ctx, noopLogger{}, nil, nil, "")
	if err != nil {
		t.Fatalf("card patterns error: %v", err)
	}
	if err := json.Unmarshal([]byte(raw), &patterns); err != nil || patterns.Year != 2017 {
		t.Fatalf("configured card year not used: %s", raw)
	}
}

func TestInitModuleRejectsBadConfig(t *testing.T) {
	for _, env := range []map[string]string{
		{"mahjong.difficulty": "expert"},
		{"mahjong.card_year": "1999"},
	} {
		ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_ENV, env)
		if err := InitModule(ctx, noopLogger{}, nil, nil, &recordingInitializer{}); err == nil {
			t.Fatalf("env %v should fail", env)
		}
	}
}

func TestRankAndValidateRPCs(t *testing.T) {
	h := newTestHandlers()

	var ranked wire.RankResponse
	call(t, h.RankHand, `{"tiles":"N N N N E E E W W W S S S","top":2}`, &ranked)
	if len(ranked.Patterns) != 2 || ranked.Patterns[0].Pattern != "NNNN EEE WWW SSS" {
		t.Fatalf("ranked = %+v", ranked)
	}

	var v wire.ValidateResponse
	call(t, h.ValidateHand, `{"tiles":"N N N N E E E W W W S S S S"}`, &v)
	if !v.Valid || v.Pattern != "NNNN EEE WWW SSS" {
		t.Fatalf("validate = %+v", v)
	}
	call(t, h.ValidateHand, `{"tiles":"N N N N E E E W W W S S S 5D"}`, &v)
	if v.Valid || v.NonMatching != "5D" {
		t.Fatalf("validate stray = %+v", v)
	}
}

func TestDecisionRPCs(t *testing.T) {
	h := newTestHandlers()
	stray := `{"tiles":"N N N N E E E W W W S S S 5D"}`

	var discard wire.TileResponse
	call(t, h.ChooseDiscard, stray, &discard)
	if discard.Tile != "5D" {
		t.Fatalf("discard = %+v", discard)
	}

	var recs wire.RecommendResponse
	call(t, h.Recommend, stray, &recs)
	if n := len(recs.Tiles); n != 14 || recs.Tiles[n-1].Recommendation != "DISCARD" {
		t.Fatalf("recommend = %+v", recs)
	}
	call(t, h.Hints, stray, &recs)
	if recs.ConsideredPatterns != 8 {
		t.Fatalf("hints considered %d patterns", recs.ConsideredPatterns)
	}

	var claim wire.ClaimResponse
	call(t, h.ClaimDiscard, `{"tiles":"N N N N E E E W W W S S S","tile":"S"}`, &claim)
	if claim.Action != "mahjong" {
		t.Fatalf("claim = %+v", claim)
	}

	var pass wire.TilesResponse
	call(t, h.CharlestonPass, stray, &pass)
	if len(strings.Fields(pass.Tiles)) != 3 {
		t.Fatalf("charleston pass = %+v", pass)
	}
	call(t, h.CourtesyPass, `{"tiles":"N N N N E E E W W W S S S 5D","count":1}`, &pass)
	if pass.Tiles != "5D" {
		t.Fatalf("courtesy pass = %+v", pass)
	}

	var vote wire.CourtesyVoteResponse
	call(t, h.CourtesyVote, `{"tiles":"N N N N E E E W W W S S S S"}`, &vote)
	if vote.Count != 0 {
		t.Fatalf("courtesy vote = %+v", vote)
	}

	var cont wire.VoteResponse
	call(t, h.CharlestonContinue, stray, &cont)

	var jokers wire.JokerExchangeResponse
	call(t, h.ExchangeJokers, `{"tiles":"N N N N E E E W W W S S S 5D","difficulty":"hard","table":["5D 5D J"]}`, &jokers)
	if !jokers.Exchange || jokers.Tile != "5D" {
		t.Fatalf("joker exchange = %+v", jokers)
	}

	var blanks wire.BlankExchangeResponse
	call(t, h.ExchangeBlanks, `{"tiles":"N N N N E E E W W W S S S X","discards":"S"}`, &blanks)
	if blanks.Exchange {
		t.Fatalf("blank exchange = %+v", blanks)
	}

	var gen wire.TilesResponse
	call(t, h.GenerateHand, `{"pattern":"NNNN EEE WWW SSS","count":5}`, &gen)
	if gen.Tiles != "N E W S N" {
		t.Fatalf("generate = %+v", gen)
	}
}

func TestRPCErrors(t *testing.T) {
	h := newTestHandlers()
	tests := []struct {
		name    string
		fn      rpcFunc
		payload string
		code    int
	}{
		{"bad json", h.RankHand, `{"tiles":`, codeInvalidArgument},
		{"bad tile", h.Recommend, `{"tiles":"N N ZZ"}`, codeInvalidArgument},
		{"short hand", h.ChooseDiscard, `{"tiles":"N N N"}`, codeInvalidArgument},
		{"empty hand", h.ChooseDiscard, `{}`, codeInvalidArgument},
		{"unknown year", h.Hints, `{"tiles":"N N N N E E E W W W S S S","year":1999}`, codeNotFound},
		{"unknown difficulty", h.Hints, `{"tiles":"N N N N E E E W W W S S S","difficulty":"expert"}`, codeInvalidArgument},
		{"bad claim tile", h.ClaimDiscard, `{"tiles":"N N N N E E E W W W S S S","tile":"Q"}`, codeInvalidArgument},
		{"courtesy count", h.CourtesyPass, `{"tiles":"N N N N E E E W W W S S S","count":5}`, codeInvalidArgument},
		{"unknown pattern", h.GenerateHand, `{"pattern":"nope"}`, codeNotFound},
		{"unknown card", h.CardPatterns, `{"year":1999}`, codeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(context.Background(), noopLogger{}, nil, nil, tt.payload)
			if got := errorCode(t, err); got != tt.code {
				t.Fatalf("code = %d, want %d (%v)", got, tt.code, err)
			}
		})
	}
}

func TestIssueToken(t *testing.T) {
	h := newTestHandlers()
	ctx := context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, "user123")

	raw, err := h.IssueToken(ctx, noopLogger{}, nil, nil, `{"scope":"simulate"}`)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	claims, err := h.tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.Subject != "user123" || claims.Scope != app.TokenScopeSimulate {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := h.IssueToken(context.Background(), noopLogger{}, nil, nil, ""); errorCode(t, err) != codeInvalidArgument {
		t.Fatalf("missing user: %v", err)
	}
	if _, err := h.IssueToken(ctx, noopLogger{}, nil, nil, `{"scope":"admin"}`); errorCode(t, err) != codeInvalidArgument {
		t.Fatalf("bad scope: %v", err)
	}

	disabled := NewHandlers(h.svc, app.NewTokenService("", "mahjong", time.Minute))
	if _, err := disabled.IssueToken(ctx, noopLogger{}, nil, nil, ""); errorCode(t, err) != codeFailedPrecondition {
		t.Fatalf("disabled: %v", err)
	}
}
