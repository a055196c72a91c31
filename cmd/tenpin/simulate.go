package main

import (
	"context"
	"fmt"
	"os"

	"github.com/KirkDiggler/tenpin/internal/dice"
	"github.com/KirkDiggler/tenpin/internal/models"
	matchService "github.com/KirkDiggler/tenpin/internal/services/match"
)

type SimulateCmd struct {
	Seed  int64 `short:"s" help:"Random seed for a repeatable match"`
	Skill int   `default:"2" help:"Balls thrown per delivery, keeping the best. Higher bowls better."`
	Quiet bool  `short:"q" help:"Skip the callout after each ball"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	a, err := newApp(g, c.Seed, os.Stdout)
	if err != nil {
		return err
	}

	return c.run(context.Background(), a, dice.New(&dice.Config{Seed: c.Seed}), g.Names)
}

func (c *SimulateCmd) run(ctx context.Context, a *app, roller dice.Roller, names []string) error {
	match, err := a.startMatch(ctx, names)
	if err != nil {
		return err
	}

	a.logger.Debug("Simulating match", "matchID", match.ID, "seed", c.Seed, "skill", c.Skill)

	for {
		scores, err := a.matches.GetScores(ctx, &matchService.GetScoresInput{MatchID: match.ID})
		if err != nil {
			return err
		}
		if scores.Status == models.MatchStatusCompleted {
			break
		}

		state, err := a.matches.GetGameState(ctx, &matchService.GetGameStateInput{
			MatchID: match.ID,
			Player:  scores.CurrentPlayer.Number,
		})
		if err != nil {
			return err
		}

		pins := c.deliver(roller, standingPins(state.Frames, a.cfg.Game.PinCount))

		result, err := a.matches.PostScore(ctx, &matchService.PostScoreInput{
			MatchID: match.ID,
			Pins:    pins,
		})
		if err != nil {
			return fmt.Errorf("simulated ball rejected: %w", err)
		}

		if !c.Quiet {
			if err := a.callout(ctx, result, pins); err != nil {
				return err
			}
		}
	}

	return a.printResults(ctx, match)
}

// deliver throws Skill balls at the standing pins and keeps the best
func (c *SimulateCmd) deliver(roller dice.Roller, standing int) int {
	best := 0
	for i := 0; i < max(c.Skill, 1); i++ {
		best = max(best, dice.Bowl(roller, standing))
	}
	return best
}

// standingPins is how many pins the next ball faces
func standingPins(frames []*models.Frame, pinCount int) int {
	if len(frames) == 0 {
		return pinCount
	}

	last := frames[len(frames)-1]
	if last.IsComplete() {
		return pinCount
	}
	return pinCount - last.Pins()
}
