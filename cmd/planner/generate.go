package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"travelplanner/internal/catalog"
	"travelplanner/internal/config"
	"travelplanner/internal/planner"
	"travelplanner/internal/services"
)

type generateOptions struct {
	city      string
	days      int
	budget    int
	interests []string
	seed      uint64
	format    string
	share     bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an itinerary for a destination",
		Example: `  planner generate --city Jaipur --days 3 --budget 6000 --interest heritage --interest food
  planner generate --city Goa --interest nature --format yaml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.city, "city", "", "destination city")
	f.IntVar(&opts.days, "days", planner.DefaultDays, fmt.Sprintf("trip length in days (%d-%d)", planner.MinDays, planner.MaxDays))
	f.IntVar(&opts.budget, "budget", planner.DefaultBudget, fmt.Sprintf("total budget, at least %d in steps of %d", planner.MinBudget, planner.BudgetStep))
	f.StringArrayVar(&opts.interests, "interest", nil, "interest tag, repeatable (see planner tags)")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible itinerary (0 picks one at random)")
	f.StringVar(&opts.format, "format", formatText, "output format: text, json or yaml")
	f.BoolVar(&opts.share, "share", false, "copy a share link to the clipboard")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, opts generateOptions) error {
	render, err := rendererFor(opts.format)
	if err != nil {
		return err
	}

	form := planner.TripForm{
		City:      opts.city,
		Days:      opts.days,
		Budget:    opts.budget,
		Interests: opts.interests,
	}

	var newRand func() services.Rand
	if opts.seed != 0 {
		newRand = func() services.Rand { return rand.New(rand.NewPCG(opts.seed, opts.seed)) }
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	itinerary, err := services.NewItineraryService(catalog.Static(), 0, newRand, nil, a.logger).Generate(ctx, form)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := render(out, *itinerary); err != nil {
		return err
	}
	if !opts.share {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	link, err := services.NewShareService(cfg.Share.Secret, cfg.Share.BaseURL, cfg.Share.TTL, nil, a.logger).
		CreateShareLink(ctx, *itinerary)
	if err != nil {
		return err
	}

	outcome, err := services.ShareDispatcher{Clipboard: a.clipboard, Logger: a.logger}.Dispatch(ctx, link.Payload)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not copy to clipboard (%v), share this instead:\n\n%s\n", err, link.ClipboardText)
		return nil
	}
	if outcome.Notice != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", outcome.Notice.Title, outcome.Notice.Description)
	}
	a.logger.Debug("itinerary shared", zap.String("method", outcome.Method))
	return nil
}
