package httpapi

import (
	"errors"
	"net/http"

	"mahjong/internal/app"
	"mahjong/internal/card"
	"mahjong/internal/domain"

	"github.com/gin-gonic/gin"
)

// Result codes follow the gRPC status numbers used by the Nakama RPCs.
const (
	CodeOK              = 0
	CodeInvalidArgument = 3
	CodeNotFound        = 5
	CodeInternal        = 13
	CodeUnauthenticated = 16
)

type Result struct {
	Code int `json:"code"`
	Msg  any `json:"msg"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Result{Code: CodeOK, Msg: data})
}

func Fail(c *gin.Context, code int, err error) {
	c.JSON(http.StatusOK, Result{Code: code, Msg: err.Error()})
}

// codeFor maps service errors to result codes.
func codeFor(err error) int {
	switch {
	case errors.Is(err, app.ErrUnknownYear), errors.Is(err, card.ErrUnknownPattern):
		return CodeNotFound
	case errors.Is(err, app.ErrHandSize),
		errors.Is(err, app.ErrEmptyHand),
		errors.Is(err, app.ErrCourtesyCount),
		errors.Is(err, app.ErrUnknownDifficulty),
		errors.Is(err, domain.ErrTileNotation):
		return CodeInvalidArgument
	case errors.Is(err, app.ErrInvalidToken):
		return CodeUnauthenticated
	}
	return CodeInternal
}
