package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mahjong/internal/app"
	"mahjong/internal/config"
	"mahjong/internal/logs"
	"mahjong/internal/metrics"
	"mahjong/internal/ports/httpapi"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (c *cli) tokens() *app.TokenService {
	a := c.cfg.Auth
	return app.NewTokenService(a.Secret, a.Issuer, time.Duration(a.TTLSeconds)*time.Second)
}

func (c *cli) tokenCmd() *cobra.Command {
	var subject, scope string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := c.tokens().GenerateToken(subject, scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject, e.g. a user id")
	cmd.Flags().StringVar(&scope, "scope", app.TokenScopeAdvise, "advise or simulate")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func (c *cli) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the advisor and simulator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.cfg.HTTP.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if c.configFile != "" {
				if _, err := config.Watch(c.configFile, reloader(c.cfg.Log.Level)); err != nil {
					return err
				}
			}

			tokens := c.tokens()
			if !tokens.Enabled() {
				logs.Warn("auth.secret is empty, serving without token checks")
			}
			debug := strings.EqualFold(c.cfg.Log.Level, "debug")
			srv := &http.Server{
				Addr:    addr,
				Handler: httpapi.NewRouter(c.svc, tokens, logs.Printf(), debug),
			}
			if c.cfg.Metrics.Addr != "" {
				go func() {
					if err := metrics.Serve(ctx, c.cfg.Metrics.Addr); err != nil {
						logs.Error("statsviz: %v", err)
					}
				}()
			}

			errc := make(chan error, 1)
			go func() {
				logs.Info("listening on %s (card %d)", addr, c.svc.Defaults().Year)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			logs.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides http.addr")
	return cmd
}

// reloader returns the config watcher callback. It applies a changed log
// level; other settings need a restart.
func reloader(level string) func(*config.Config, error) {
	return func(cfg *config.Config, err error) {
		if err != nil {
			logs.Error("config reload: %v", err)
			return
		}
		if cfg.Log.Level != level {
			level = cfg.Log.Level
			logs.SetLevel(level)
			logs.Info("log level now %s", level)
		}
	}
}
