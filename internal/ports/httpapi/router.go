package httpapi

import (
	"net/http"

	"mahjong/internal/app"

	"github.com/gin-gonic/gin"
)

// NewRouter registers the /v1 routes. Token checks apply only when tokens has
// a secret.
func NewRouter(svc *app.Service, tokens *app.TokenService, logger app.Logger, debug bool) *gin.Engine {
	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), Cors())
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	h := NewHandler(svc, logger)
	v1 := r.Group("/v1")
	v1.GET("/patterns", h.Patterns)

	advise := v1.Group("", Auth(tokens, app.TokenScopeAdvise))
	advise.POST("/rank", h.Rank)
	advise.POST("/validate", h.Validate)
	advise.POST("/generate", h.Generate)
	advise.POST("/recommend", h.Recommend)
	advise.POST("/hints", h.Hints)
	advise.POST("/discard", h.Discard)
	advise.POST("/claim", h.Claim)
	advise.POST("/charleston/pass", h.CharlestonPass)
	advise.POST("/charleston/continue", h.CharlestonContinue)
	advise.POST("/courtesy/vote", h.CourtesyVote)
	advise.POST("/courtesy/pass", h.CourtesyPass)
	advise.POST("/exchange/jokers", h.ExchangeJokers)
	advise.POST("/exchange/blanks", h.ExchangeBlanks)

	v1.POST("/simulate", Auth(tokens, app.TokenScopeSimulate), h.Simulate)
	return r
}
