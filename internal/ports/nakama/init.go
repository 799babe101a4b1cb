package nakama

import (
	"context"
	"database/sql"
	"time"

	"mahjong/internal/app"
	"mahjong/internal/bot"
	"mahjong/internal/card"
	"mahjong/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule reads the runtime environment, builds the service and registers
// the RPCs.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	cfg, err := config.FromEnv(env)
	if err != nil {
		logger.Error("Failed to load mahjong config: %v", err)
		return err
	}

	h, err := newHandlers(cfg, logger)
	if err != nil {
		logger.Error("Invalid mahjong config: %v", err)
		return err
	}
	if err := RegisterRPCs(initializer, h); err != nil {
		return err
	}

	logger.Info("Mahjong Go module loaded (card %d, %s AI).", cfg.CardYear, cfg.Difficulty)
	return nil
}

func newHandlers(cfg *config.Config, logger runtime.Logger) (*Handlers, error) {
	level, err := bot.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	if _, err := card.Lookup(cfg.CardYear); err != nil {
		return nil, err
	}
	svc := app.NewService(nil,
		app.WithLogger(logger),
		app.WithDefaults(app.Defaults{Year: cfg.CardYear, Difficulty: level, UseBlanks: cfg.UseBlanks}),
	)
	tokens := app.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TTLSeconds)*time.Second)
	return NewHandlers(svc, tokens), nil
}
