package main

import (
	"fmt"
	"strings"

	"mahjong/internal/domain"

	"github.com/spf13/cobra"
)

func (c *cli) rankCmd() *cobra.Command {
	var (
		top       int
		exposures []string
	)
	cmd := &cobra.Command{
		Use:   "rank <tiles...>",
		Short: "Rank a 13 or 14 tile hand against every pattern on the card",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := handArgs(args, exposures)
			if err != nil {
				return err
			}
			ranked, err := c.svc.Rank(req, top)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range ranked {
				fmt.Fprintf(out, "%6.2f  %-50s %s\n", r.Rank, r.Pattern.Description, domain.FormatTiles(r.MatchedTiles()))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "number of patterns to show, 0 for all")
	cmd.Flags().StringArrayVar(&exposures, "exposure", nil, "exposed group, e.g. \"N N N J\" (repeatable)")
	return cmd
}

func (c *cli) validateCmd() *cobra.Command {
	var exposures []string
	cmd := &cobra.Command{
		Use:   "validate <tiles...>",
		Short: "Check whether a hand is mahjong",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := handArgs(args, exposures)
			if err != nil {
				return err
			}
			v, err := c.svc.Validate(req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if v.Valid {
				fmt.Fprintf(out, "mahjong: %s (%s)\n", v.Pattern.Description, v.Pattern.Group)
				return nil
			}
			d, err := c.svc.Diagnose(req)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "not mahjong")
			if d.Pattern != nil {
				fmt.Fprintf(out, "closest: %s (%.2f)\n", d.Pattern.Description, d.Rank)
			}
			fmt.Fprintf(out, "not fitting: %s\n", domain.FormatTiles(d.NonMatching))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&exposures, "exposure", nil, "exposed group (repeatable)")
	return cmd
}

func (c *cli) hintCmd() *cobra.Command {
	var exposures []string
	cmd := &cobra.Command{
		Use:   "hint <tiles...>",
		Short: "Show which tiles to keep, pass or discard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := handArgs(args, exposures)
			if err != nil {
				return err
			}
			recs, err := c.svc.Hints(req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range recs.Tiles {
				fmt.Fprintf(out, "%-3s %s\n", r.Tile, r.Recommendation)
			}
			fmt.Fprintf(out, "(%d patterns considered)\n", recs.ConsideredPatterns)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&exposures, "exposure", nil, "exposed group (repeatable)")
	return cmd
}

func (c *cli) adviseCmd() *cobra.Command {
	var exposures []string
	cmd := &cobra.Command{
		Use:   "advise <tiles...>",
		Short: "Show the AI's discard, Charleston pass and courtesy vote for a hand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := handArgs(args, exposures)
			if err != nil {
				return err
			}
			recs, err := c.svc.Recommend(req)
			if err != nil {
				return err
			}
			keep := make([]string, 0, len(recs.Tiles))
			for _, r := range recs.Tiles {
				keep = append(keep, fmt.Sprintf("%s:%s", r.Tile, strings.ToLower(string(r.Recommendation))))
			}
			discard, err := c.svc.Discard(req)
			if err != nil {
				return err
			}
			pass, err := c.svc.Charleston(req)
			if err != nil {
				return err
			}
			vote, err := c.svc.CourtesyVote(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tiles:      %s\n", strings.Join(keep, " "))
			fmt.Fprintf(out, "discard:    %s\n", discard)
			fmt.Fprintf(out, "charleston: %s\n", domain.FormatTiles(pass))
			fmt.Fprintf(out, "courtesy:   %d\n", vote)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&exposures, "exposure", nil, "exposed group (repeatable)")
	return cmd
}

func (c *cli) generateCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "generate <pattern description>",
		Short: "Build a practice hand for a pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := c.svc.Generate(0, strings.Join(args, " "), count)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.FormatTiles(h.Tiles))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", domain.FullHandSize, "number of tiles")
	return cmd
}
