package main

import (
	"context"
	"os"

	matchService "github.com/KirkDiggler/tenpin/internal/services/match"
)

type ScoreCmd struct {
	Rolls []int `arg:"" help:"Pins knocked down by each ball, in the order bowled"`
	Quiet bool  `short:"q" help:"Skip the callout after each ball"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	a, err := newApp(g, 0, os.Stdout)
	if err != nil {
		return err
	}

	return c.run(context.Background(), a, g.Names)
}

func (c *ScoreCmd) run(ctx context.Context, a *app, names []string) error {
	match, err := a.startMatch(ctx, names)
	if err != nil {
		return err
	}

	for _, pins := range c.Rolls {
		result, err := a.matches.PostScore(ctx, &matchService.PostScoreInput{
			MatchID: match.ID,
			Pins:    pins,
		})
		if err != nil {
			a.reportError(ctx, err)
			return err
		}

		if !c.Quiet {
			if err := a.callout(ctx, result, pins); err != nil {
				return err
			}
		}
	}

	return a.printResults(ctx, match)
}
