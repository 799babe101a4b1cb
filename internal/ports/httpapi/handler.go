package httpapi

import (
	"strconv"

	"mahjong/internal/app"
	"mahjong/internal/domain"
	"mahjong/internal/ports/wire"

	"github.com/gin-gonic/gin"
)

// Handler serves the advisor and simulation use-cases over HTTP.
type Handler struct {
	svc    *app.Service
	logger app.Logger
}

func NewHandler(svc *app.Service, logger app.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// bind decodes the JSON body into req and parses its embedded hand.
func (h *Handler) bind(c *gin.Context, req any, hand *wire.HandRequest) (app.HandRequest, bool) {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("%s bind err: %v", c.FullPath(), err)
		Fail(c, CodeInvalidArgument, err)
		return app.HandRequest{}, false
	}
	ar, err := hand.ToApp()
	if err != nil {
		Fail(c, CodeInvalidArgument, err)
		return app.HandRequest{}, false
	}
	return ar, true
}

func (h *Handler) reply(c *gin.Context, data any, err error) {
	if err != nil {
		code := codeFor(err)
		if code == CodeInternal {
			h.logger.Error("%s err: %v", c.FullPath(), err)
		}
		Fail(c, code, err)
		return
	}
	Success(c, data)
}

func (h *Handler) Rank(c *gin.Context) {
	var req wire.RankRequest
	ar, ok := h.bind(c, &req, &req.HandRequest)
	if !ok {
		return
	}
	ranked, err := h.svc.Rank(ar, req.Top)
	h.reply(c, wire.FromRanked(ranked), err)
}

func (h *Handler) Validate(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	v, err := h.svc.Validate(ar)
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	d, err := h.svc.Diagnose(ar)
	h.reply(c, wire.FromValidation(v, d), err)
}

func (h *Handler) Recommend(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	recs, err := h.svc.Recommend(ar)
	h.reply(c, wire.FromRecommendations(recs), err)
}

func (h *Handler) Hints(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	recs, err := h.svc.Hints(ar)
	h.reply(c, wire.FromRecommendations(recs), err)
}

func (h *Handler) Discard(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	t, err := h.svc.Discard(ar)
	h.reply(c, wire.TileResponse{Tile: t.String()}, err)
}

func (h *Handler) Claim(c *gin.Context) {
	var req wire.ClaimRequest
	ar, ok := h.bind(c, &req, &req.HandRequest)
	if !ok {
		return
	}
	tile, err := domain.ParseTile(req.Tile)
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	d, err := h.svc.Claim(ar, tile, req.ForceExpose)
	h.reply(c, wire.FromClaim(d), err)
}

func (h *Handler) CharlestonPass(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	tiles, err := h.svc.Charleston(ar)
	h.reply(c, wire.TilesResponse{Tiles: domain.FormatTiles(tiles)}, err)
}

func (h *Handler) CharlestonContinue(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	yes, err := h.svc.CharlestonContinue(ar)
	h.reply(c, wire.VoteResponse{Continue: yes}, err)
}

func (h *Handler) CourtesyVote(c *gin.Context) {
	var req wire.HandRequest
	ar, ok := h.bind(c, &req, &req)
	if !ok {
		return
	}
	n, err := h.svc.CourtesyVote(ar)
	h.reply(c, wire.CourtesyVoteResponse{Count: n}, err)
}

func (h *Handler) CourtesyPass(c *gin.Context) {
	var req wire.CourtesyPassRequest
	ar, ok := h.bind(c, &req, &req.HandRequest)
	if !ok {
		return
	}
	tiles, err := h.svc.CourtesyPass(ar, req.Count)
	h.reply(c, wire.TilesResponse{Tiles: domain.FormatTiles(tiles)}, err)
}

func (h *Handler) ExchangeJokers(c *gin.Context) {
	var req wire.ExchangeJokersRequest
	ar, ok := h.bind(c, &req, &req.HandRequest)
	if !ok {
		return
	}
	table, err := wire.ParseHand("", req.Table)
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	ex, err := h.svc.ExchangeJokers(ar, table.Exposures)
	h.reply(c, wire.FromJokerExchange(ex), err)
}

func (h *Handler) ExchangeBlanks(c *gin.Context) {
	var req wire.ExchangeBlanksRequest
	ar, ok := h.bind(c, &req, &req.HandRequest)
	if !ok {
		return
	}
	discards, err := domain.ParseTiles(req.Discards)
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	ex, err := h.svc.ExchangeBlanks(ar, discards)
	h.reply(c, wire.FromBlankExchange(ex), err)
}

func (h *Handler) Generate(c *gin.Context) {
	var req wire.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, CodeInvalidArgument, err)
		return
	}
	n := req.Count
	if n <= 0 {
		n = domain.FullHandSize
	}
	hand, err := h.svc.Generate(req.Year, req.Pattern, n)
	h.reply(c, wire.TilesResponse{Tiles: domain.FormatTiles(hand.Tiles)}, err)
}

// Patterns lists a card; the year comes from the query string.
func (h *Handler) Patterns(c *gin.Context) {
	year := 0
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			Fail(c, CodeInvalidArgument, err)
			return
		}
		year = y
	}
	card, err := h.svc.Card(year)
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	Success(c, wire.Patterns(card))
}

func (h *Handler) Simulate(c *gin.Context) {
	var req wire.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, CodeInvalidArgument, err)
		return
	}
	res, events, err := h.svc.Simulate(req.ToApp())
	if err != nil {
		h.reply(c, nil, err)
		return
	}
	if subject, ok := c.Get(subjectKey); ok {
		h.logger.Info("simulation for %v: %d turns", subject, res.Turns)
	}
	Success(c, wire.FromSimulation(res, events, req.Events))
}
