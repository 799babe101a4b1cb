package httpapi

import (
	"net/http"
	"strings"

	"mahjong/internal/app"

	"github.com/gin-gonic/gin"
)

const subjectKey = "subject"

func Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization")
			c.Header("Access-Control-Max-Age", "172800")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Auth requires a bearer token with the given scope when the token service
// has a secret. A simulate token also grants advise.
func Auth(tokens *app.TokenService, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: CodeUnauthenticated, Msg: "missing bearer token"})
			return
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: CodeUnauthenticated, Msg: err.Error()})
			return
		}
		if claims.Scope != scope && claims.Scope != app.TokenScopeSimulate {
			c.AbortWithStatusJSON(http.StatusForbidden, Result{Code: CodeUnauthenticated, Msg: "token scope " + claims.Scope + " not allowed"})
			return
		}
		c.Set(subjectKey, claims.Subject)
		c.Next()
	}
}
