package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KirkDiggler/tenpin/internal/common/clock"
	"github.com/KirkDiggler/tenpin/internal/common/uuid"
	"github.com/KirkDiggler/tenpin/internal/config"
	"github.com/KirkDiggler/tenpin/internal/handlers/terminal"
	"github.com/KirkDiggler/tenpin/internal/models"
	matchRepo "github.com/KirkDiggler/tenpin/internal/repositories/match"
	"github.com/KirkDiggler/tenpin/internal/scoring"
	matchService "github.com/KirkDiggler/tenpin/internal/services/match"
	"github.com/KirkDiggler/tenpin/internal/services/messaging"
	"github.com/charmbracelet/log"
)

// app wires the services behind each command
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	matches  matchService.Service
	messages messaging.Service
	out      io.Writer
}

func newApp(g *Globals, seed int64, out io.Writer) (*app, error) {
	if err := config.LoadDotEnv(g.EnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Command line flags win over the environment
	if g.Players > 0 {
		cfg.Game.NumPlayers = g.Players
	}
	if len(g.Names) > 0 {
		cfg.Game.NumPlayers = len(g.Names)
	}
	if g.Pins > 0 {
		cfg.Game.PinCount = g.Pins
	}
	if g.Frames > 0 {
		cfg.Game.NumFrames = g.Frames
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	matches, err := matchService.New(&matchService.Config{
		PinCount:      cfg.Game.PinCount,
		NumFrames:     cfg.Game.NumFrames,
		MaxPlayers:    cfg.Game.NumPlayers,
		MatchRepo:     matchRepo.NewMemory(),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.Config{Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		matches:  matches,
		messages: messages,
		out:      out,
	}, nil
}

// startMatch creates a match with the configured players, naming any the flags left out
func (a *app) startMatch(ctx context.Context, names []string) (*models.Match, error) {
	players := make([]string, a.cfg.Game.NumPlayers)
	copy(players, names)

	output, err := a.matches.CreateMatch(ctx, &matchService.CreateMatchInput{
		PlayerNames: players,
	})
	if err != nil {
		return nil, err
	}

	return output.Match, nil
}

// callout prints the message for a ball just bowled
func (a *app) callout(ctx context.Context, result *matchService.PostScoreOutput, pins int) error {
	msg, err := a.messages.GetRollMessage(ctx, &messaging.GetRollMessageInput{
		PlayerName:   result.Player.Name,
		Frame:        result.Frame,
		Pins:         pins,
		PinCount:     a.cfg.Game.PinCount,
		StrikeStreak: result.StrikeStreak,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, terminal.RenderCallout(result.Player, msg.Title, msg.Message))
	return nil
}

// printResults prints every scorecard, the standings and, once the match is over, the result
func (a *app) printResults(ctx context.Context, match *models.Match) error {
	states, err := a.matches.GetGameStates(ctx, &matchService.GetGameStatesInput{
		MatchID: match.ID,
	})
	if err != nil {
		return err
	}

	scores, err := a.matches.GetScores(ctx, &matchService.GetScoresInput{
		MatchID: match.ID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, terminal.RenderScorecards(match.Players, states.States, a.cfg.Game.NumFrames))
	fmt.Fprintln(a.out, terminal.RenderLeaderboard(scores.Leaderboard))

	if scores.Status != models.MatchStatusCompleted {
		fmt.Fprintf(a.out, "Up next: %s\n", scores.CurrentPlayer.Name)
		return nil
	}

	final, err := a.messages.GetFinalMessage(ctx, &messaging.GetFinalMessageInput{
		Leaderboard: scores.Leaderboard,
		PinCount:    a.cfg.Game.PinCount,
		NumFrames:   a.cfg.Game.NumFrames,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, terminal.RenderCallout(nil, final.Title, final.Message))
	return nil
}

// reportError prints a friendly message for a rejected ball
func (a *app) reportError(ctx context.Context, err error) {
	msg, msgErr := a.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType(err),
	})
	if msgErr != nil {
		return
	}
	fmt.Fprintln(a.out, terminal.RenderError(msg.Message))
}

func errorType(err error) string {
	switch {
	case errors.Is(err, scoring.ErrOutOfRangeScore):
		return messaging.ErrorTypeOutOfRange
	case errors.Is(err, scoring.ErrFrameOverflow):
		return messaging.ErrorTypeFrameOverflow
	case errors.Is(err, matchService.ErrMatchCompleted):
		return messaging.ErrorTypeMatchCompleted
	case errors.Is(err, matchService.ErrMatchNotFound):
		return messaging.ErrorTypeMatchNotFound
	default:
		return ""
	}
}
