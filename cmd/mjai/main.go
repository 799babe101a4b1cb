package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"mahjong/internal/app"
	"mahjong/internal/bot"
	"mahjong/internal/config"
	"mahjong/internal/logs"
	"mahjong/internal/ports/wire"

	"github.com/spf13/cobra"
)

// cli holds the flags and the objects built from them before each command.
type cli struct {
	configFile string
	year       int
	difficulty string
	seed       int64

	cfg *config.Config
	svc *app.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "mjai",
		Short:         "American mahjong hand ranking and AI advisor",
		Long:          "mjai ranks hands against the NMJL card, advises on discards and Charleston passes, and runs self-play games.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().IntVar(&c.year, "year", 0, "card year, overrides the config")
	root.PersistentFlags().StringVar(&c.difficulty, "difficulty", "", "AI difficulty: easy, medium or hard")
	root.PersistentFlags().Int64Var(&c.seed, "seed", 0, "random seed, 0 for time based")

	root.AddCommand(
		c.rankCmd(),
		c.validateCmd(),
		c.hintCmd(),
		c.adviseCmd(),
		c.generateCmd(),
		c.simulateCmd(),
		c.tokenCmd(),
		c.serveCmd(),
	)
	return root
}

func (c *cli) setup() error {
	if err := config.Init(c.configFile); err != nil {
		return err
	}
	cfg := *config.Get()
	if c.year != 0 {
		cfg.CardYear = c.year
	}
	if c.difficulty != "" {
		cfg.Difficulty = c.difficulty
	}
	level, err := bot.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	logs.InitLog("mjai", cfg.Log.Level)

	var rng *rand.Rand
	if c.seed != 0 {
		rng = rand.New(rand.NewSource(c.seed))
	}
	c.cfg = &cfg
	c.svc = app.NewService(rng,
		app.WithLogger(logs.Printf()),
		app.WithDefaults(app.Defaults{Year: cfg.CardYear, Difficulty: level, UseBlanks: cfg.UseBlanks}),
	)
	_, err = c.svc.Card(0)
	return err
}

// handArgs parses the tile arguments plus any --exposure groups.
func handArgs(args, exposures []string) (app.HandRequest, error) {
	return wire.HandRequest{Tiles: strings.Join(args, " "), Exposures: exposures}.ToApp()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mjai:", err)
		os.Exit(1)
	}
}
