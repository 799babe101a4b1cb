package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"mahjong/internal/app"
	"mahjong/internal/bot"
	"mahjong/internal/domain"
	"mahjong/internal/logs"
	"mahjong/internal/metrics"
	"mahjong/internal/ports/wire"

	"github.com/spf13/cobra"
)

func (c *cli) simulateCmd() *cobra.Command {
	var (
		games      int
		profiles   string
		charleston bool
		blanks     bool
		maxTurns   int
		events     bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play self-play games between four AI seats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("blanks") {
				blanks = c.cfg.UseBlanks
			}
			if profiles == "" {
				profiles = c.cfg.ProfilesFile
			}
			seats, err := c.seatProfiles(profiles)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if c.cfg.Metrics.Addr != "" {
				go func() {
					if err := metrics.Serve(ctx, c.cfg.Metrics.Addr); err != nil {
						logs.Error("statsviz: %v", err)
					}
				}()
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			wins := make([]int, domain.Seats)
			walls := 0
			for g := 0; g < games; g++ {
				if ctx.Err() != nil {
					break
				}
				res, evs, err := c.svc.Simulate(app.SimulateRequest{
					Profiles:   seats,
					UseBlanks:  blanks,
					Charleston: charleston,
					MaxTurns:   maxTurns,
				})
				if err != nil {
					return err
				}
				if events {
					if err := enc.Encode(wire.FromSimulation(res, evs, true)); err != nil {
						return err
					}
				} else if res.Winner >= 0 {
					how := "discard"
					if res.SelfDrawn {
						how = "self-drawn"
					}
					fmt.Fprintf(out, "game %d: %s wins with %s (%s, %d turns)\n", g+1, res.WinnerName, res.Pattern, how, res.Turns)
				} else {
					fmt.Fprintf(out, "game %d: wall game after %d turns\n", g+1, res.Turns)
				}
				if res.Winner >= 0 {
					wins[res.Winner]++
				} else {
					walls++
				}
			}
			if games > 1 && !events {
				for seat, n := range wins {
					fmt.Fprintf(out, "%-16s %d\n", bot.ProfileForSeat(seats, seat).Name, n)
				}
				fmt.Fprintf(out, "%-16s %d\n", "wall games", walls)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&games, "games", 1, "number of games to play")
	cmd.Flags().StringVar(&profiles, "profiles", "", "JSON file with seat profiles")
	cmd.Flags().BoolVar(&charleston, "charleston", false, "run the Charleston before play")
	cmd.Flags().BoolVar(&blanks, "blanks", false, "add the 8 blank tiles to the wall")
	cmd.Flags().IntVar(&maxTurns, "max-turns", app.DefaultMaxTurns, "turn limit before a wall game")
	cmd.Flags().BoolVar(&events, "events", false, "print each game with its event log as JSON")
	return cmd
}

// seatProfiles loads seat profiles from path, or seats four players at the
// configured difficulty.
func (c *cli) seatProfiles(path string) ([]bot.Profile, error) {
	if path != "" {
		return bot.LoadProfiles(path)
	}
	level := c.svc.Defaults().Difficulty
	out := make([]bot.Profile, domain.Seats)
	for i := range out {
		out[i] = bot.Profile{Name: fmt.Sprintf("AI Player %d", i+1), Difficulty: level}
	}
	return out, nil
}
