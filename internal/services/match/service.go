package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/KirkDiggler/tenpin/internal/common/clock"
	"github.com/KirkDiggler/tenpin/internal/common/uuid"
	"github.com/KirkDiggler/tenpin/internal/models"
	matchRepo "github.com/KirkDiggler/tenpin/internal/repositories/match"
	"github.com/KirkDiggler/tenpin/internal/rotator"
	"github.com/KirkDiggler/tenpin/internal/scoring"
	"github.com/charmbracelet/log"
)

// lane holds the live scoresheet for one match.
// Every read and write of the rotator happens under mu.
type lane struct {
	mu      sync.Mutex
	rotator *rotator.Rotator
	ended   bool
}

// service implements the Service interface
type service struct {
	pinCount      int
	numFrames     int
	maxPlayers    int
	matchRepo     matchRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *log.Logger

	mu    sync.RWMutex
	lanes map[string]*lane
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MatchRepo == nil {
		return nil, ErrNilMatchRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		pinCount:      cfg.PinCount,
		numFrames:     cfg.NumFrames,
		maxPlayers:    cfg.MaxPlayers,
		matchRepo:     cfg.MatchRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
		lanes:         make(map[string]*lane),
	}

	// Set default values if not provided
	if s.pinCount <= 0 {
		s.pinCount = scoring.DefaultPinCount
	}
	if s.numFrames <= 0 {
		s.numFrames = scoring.DefaultNumFrames
	}
	if s.maxPlayers <= 0 {
		s.maxPlayers = DefaultMaxPlayers
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	return s, nil
}

// CreateMatch sets up a new match with a fresh scoresheet for each player
func (s *service) CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.PlayerNames) == 0 {
		return nil, ErrNoPlayers
	}

	if len(input.PlayerNames) > s.maxPlayers {
		return nil, ErrTooManyPlayers
	}

	pinCount := s.pinCount
	if input.PinCount > 0 {
		pinCount = input.PinCount
	}

	numFrames := s.numFrames
	if input.NumFrames > 0 {
		numFrames = input.NumFrames
	}

	rot, err := rotator.New(&rotator.Config{
		NumPlayers: len(input.PlayerNames),
		PinCount:   pinCount,
		NumFrames:  numFrames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rotator: %w", err)
	}

	players := make([]*models.Player, 0, len(input.PlayerNames))
	for i, name := range input.PlayerNames {
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players = append(players, &models.Player{
			Number: i + 1,
			Name:   name,
		})
	}

	now := s.clock.Now()
	match := &models.Match{
		ID:        s.uuidGenerator.NewUUID(),
		Status:    models.MatchStatusWaiting,
		Players:   players,
		PinCount:  pinCount,
		NumFrames: numFrames,
		Rolls:     []*models.Roll{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
		Match: match,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save match: %w", err)
	}

	s.mu.Lock()
	s.lanes[match.ID] = &lane{rotator: rot}
	s.mu.Unlock()

	s.logger.Info("Created match",
		"matchID", match.ID,
		"players", len(players),
		"pins", pinCount,
		"frames", numFrames)

	return &CreateMatchOutput{
		Match: match,
	}, nil
}

// PostScore records a ball for the player whose turn it is
func (s *service) PostScore(ctx context.Context, input *PostScoreInput) (*PostScoreOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *PostScoreOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		match, err := s.getMatch(ctx, input.MatchID)
		if err != nil {
			return err
		}

		if match.Status == models.MatchStatusCompleted {
			return ErrMatchCompleted
		}

		rot := l.rotator
		bowler := rot.GetCurrentPlayer()

		if err := rot.PostScore(input.Pins); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRoll, err)
		}

		// Queries for the bowler cannot fail; their number came from the rotator
		frameNumber, _ := rot.GetCurrentFrame(bowler)
		score, _ := rot.GetCurrentScore(bowler)
		gameOver, _ := rot.IsGameOver(bowler)
		state, _ := rot.GetGameState(bowler)
		matchOver := rot.IsMatchOver()

		now := s.clock.Now()
		match.Rolls = append(match.Rolls, &models.Roll{
			PlayerNumber: bowler,
			Frame:        frameNumber,
			Pins:         input.Pins,
			Timestamp:    now,
		})
		match.Status = models.MatchStatusActive
		match.UpdatedAt = now
		if matchOver {
			match.Status = models.MatchStatusCompleted
			match.CompletedAt = &now
		}

		err = s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{
			Match: match,
		})
		if err != nil {
			return fmt.Errorf("failed to save match: %w", err)
		}

		s.logger.Debug("Posted score",
			"matchID", match.ID,
			"player", bowler,
			"frame", frameNumber,
			"pins", input.Pins,
			"score", score)

		if gameOver {
			s.logger.Info("Player finished",
				"matchID", match.ID,
				"player", match.Players[bowler-1].Name,
				"score", score)
		}

		if matchOver {
			s.logger.Info("Match completed", "matchID", match.ID)
		}

		output = &PostScoreOutput{
			Player:       match.Players[bowler-1],
			FrameNumber:  frameNumber,
			Frame:        lastFrame(state),
			Score:        score,
			StrikeStreak: strikeStreak(state),
			GameOver:     gameOver,
			MatchOver:    matchOver,
			NextPlayer:   match.Players[rot.GetCurrentPlayer()-1],
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetMatch returns the match record
func (s *service) GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	match, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	return &GetMatchOutput{
		Match: match,
	}, nil
}

// ListMatches returns the matches being tracked
func (s *service) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.matchRepo.ListMatches(ctx, &matchRepo.ListMatchesInput{
		Status: input.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return &ListMatchesOutput{
		Matches: output.Matches,
	}, nil
}

// GetScores returns the current standings for a match
func (s *service) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *GetScoresOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		match, err := s.getMatch(ctx, input.MatchID)
		if err != nil {
			return err
		}

		output = &GetScoresOutput{
			Scores:        l.rotator.GetCurrentScores(),
			Leaderboard:   buildLeaderboard(match, l.rotator),
			CurrentPlayer: match.Players[l.rotator.GetCurrentPlayer()-1],
			Status:        match.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetFrame returns one frame for one player
func (s *service) GetFrame(ctx context.Context, input *GetFrameInput) (*GetFrameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *GetFrameOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		output = &GetFrameOutput{
			Frame: l.rotator.GetFrame(input.Frame, input.Player),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetFrames returns one frame for every player
func (s *service) GetFrames(ctx context.Context, input *GetFramesInput) (*GetFramesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *GetFramesOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		output = &GetFramesOutput{
			Frames: l.rotator.GetFrames(input.Frame),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetGameState returns every frame a player has bowled
func (s *service) GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *GetGameStateOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		frames, err := l.rotator.GetGameState(input.Player)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
		}

		output = &GetGameStateOutput{
			Frames: frames,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// GetGameStates returns every frame for every player
func (s *service) GetGameStates(ctx context.Context, input *GetGameStatesInput) (*GetGameStatesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *GetGameStatesOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		output = &GetGameStatesOutput{
			States: l.rotator.GetGameStates(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// IsGameOver reports whether a player has finished
func (s *service) IsGameOver(ctx context.Context, input *IsGameOverInput) (*IsGameOverOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *IsGameOverOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		over, err := l.rotator.IsGameOver(input.Player)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
		}

		output = &IsGameOverOutput{
			GameOver: over,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// EndMatch stops tracking a match and returns its final standings
func (s *service) EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var output *EndMatchOutput
	err := s.withLane(input.MatchID, func(l *lane) error {
		match, err := s.getMatch(ctx, input.MatchID)
		if err != nil {
			return err
		}

		err = s.matchRepo.DeleteMatch(ctx, &matchRepo.DeleteMatchInput{
			MatchID: input.MatchID,
		})
		if err != nil && !errors.Is(err, matchRepo.ErrMatchNotFound) {
			return fmt.Errorf("failed to delete match: %w", err)
		}

		l.ended = true
		s.mu.Lock()
		delete(s.lanes, input.MatchID)
		s.mu.Unlock()

		s.logger.Info("Ended match",
			"matchID", match.ID,
			"completed", match.Status == models.MatchStatusCompleted)

		output = &EndMatchOutput{
			Leaderboard: buildLeaderboard(match, l.rotator),
			Completed:   match.Status == models.MatchStatusCompleted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// withLane runs fn while holding the match's lock
func (s *service) withLane(matchID string, fn func(l *lane) error) error {
	s.mu.RLock()
	l, ok := s.lanes[matchID]
	s.mu.RUnlock()
	if !ok {
		return ErrMatchNotFound
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// The match may have ended while we waited for the lock
	if l.ended {
		return ErrMatchNotFound
	}

	return fn(l)
}

func (s *service) getMatch(ctx context.Context, matchID string) (*models.Match, error) {
	if matchID == "" {
		return nil, ErrMatchNotFound
	}

	match, err := s.matchRepo.GetMatch(ctx, &matchRepo.GetMatchInput{
		MatchID: matchID,
	})
	if err != nil {
		if errors.Is(err, matchRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// buildLeaderboard ranks players by score, keeping turn order between ties
func buildLeaderboard(match *models.Match, rot *rotator.Rotator) *models.Leaderboard {
	scores := rot.GetCurrentScores()
	standings := make([]*models.Standing, 0, len(match.Players))
	for i, player := range match.Players {
		frame, _ := rot.GetCurrentFrame(player.Number)
		over, _ := rot.IsGameOver(player.Number)
		standings = append(standings, &models.Standing{
			Player:   player,
			Score:    scores[i],
			Frame:    frame,
			GameOver: over,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return &models.Leaderboard{
		MatchID:   match.ID,
		Standings: standings,
	}
}

// lastFrame is the frame the latest ball went into, bonus frames included
func lastFrame(frames []*models.Frame) *models.Frame {
	if len(frames) == 0 {
		return nil
	}
	return frames[len(frames)-1]
}

// strikeStreak counts the strikes at the end of a player's frames
func strikeStreak(frames []*models.Frame) int {
	streak := 0
	for i := len(frames) - 1; i >= 0 && frames[i].IsStrike; i-- {
		streak++
	}
	return streak
}
