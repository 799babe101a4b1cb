// Command nakama is the mahjong advisor packaged as a Nakama runtime plugin:
//
//	go build -buildmode=plugin -trimpath -o ./modules/mahjong.so ./cmd/nakama
//
// Settings come from the runtime env under the "mahjong." prefix, for example
// mahjong.card_year (2017, 2019, 2020 or 2025) and mahjong.difficulty.
package main

import (
	"context"
	"database/sql"

	"mahjong/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule is the symbol Nakama looks up in the plugin. It registers the
// mahjong RPCs and fails the server start on a bad card year or difficulty.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}
