package match

import (
	"github.com/KirkDiggler/tenpin/internal/common/clock"
	"github.com/KirkDiggler/tenpin/internal/common/uuid"
	"github.com/KirkDiggler/tenpin/internal/models"
	matchRepo "github.com/KirkDiggler/tenpin/internal/repositories/match"
	"github.com/charmbracelet/log"
)

// DefaultMaxPlayers is the player limit when none is configured
const DefaultMaxPlayers = 8

// Config holds configuration for the match service
type Config struct {
	// Number of pins per frame for matches that don't set one
	PinCount int

	// Number of frames per game for matches that don't set one
	NumFrames int

	// Maximum number of players per match
	MaxPlayers int

	// Repository dependencies
	MatchRepo matchRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; nothing is logged without one
	Logger *log.Logger
}

// CreateMatchInput contains parameters for creating a new match
type CreateMatchInput struct {
	// PlayerNames lists the bowlers in turn order
	PlayerNames []string

	// PinCount overrides the configured pins per frame when positive
	PinCount int

	// NumFrames overrides the configured frames per game when positive
	NumFrames int
}

// CreateMatchOutput contains the result of creating a new match
type CreateMatchOutput struct {
	Match *models.Match
}

// PostScoreInput contains parameters for posting a ball
type PostScoreInput struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// Pins is the number of pins knocked down
	Pins int
}

// PostScoreOutput contains the result of posting a ball
type PostScoreOutput struct {
	// Who bowled
	Player *models.Player

	// FrameNumber is the frame the ball counted toward
	FrameNumber int

	// Frame is the frame the ball went into, which is a bonus frame for tenth-frame fill balls
	Frame *models.Frame

	// Score is the bowler's running total through their current frame
	Score int

	// StrikeStreak counts consecutive strikes ending with this ball, zero if it was not a strike
	StrikeStreak int

	// GameOver indicates the bowler just finished their game
	GameOver bool

	// MatchOver indicates every player has finished
	MatchOver bool

	// NextPlayer is whose turn it is now
	NextPlayer *models.Player
}

// GetMatchInput contains parameters for retrieving a match
type GetMatchInput struct {
	MatchID string
}

// GetMatchOutput contains the match record
type GetMatchOutput struct {
	Match *models.Match
}

// ListMatchesInput contains parameters for listing matches
type ListMatchesInput struct {
	// Status filters the matches returned; empty returns all of them
	Status models.MatchStatus
}

// ListMatchesOutput contains the matches found
type ListMatchesOutput struct {
	Matches []*models.Match
}

// GetScoresInput contains parameters for retrieving standings
type GetScoresInput struct {
	MatchID string
}

// GetScoresOutput contains the current standings
type GetScoresOutput struct {
	// Scores are each player's running totals in player order
	Scores []int

	// Leaderboard orders the players by score
	Leaderboard *models.Leaderboard

	// CurrentPlayer is whose turn it is
	CurrentPlayer *models.Player

	// Status is the state of the match
	Status models.MatchStatus
}

// GetFrameInput contains parameters for retrieving a frame
type GetFrameInput struct {
	MatchID string

	// Player is one-indexed
	Player int

	// Frame is one-indexed
	Frame int
}

// GetFrameOutput contains the frame, which is nil when the player or frame is out of range
type GetFrameOutput struct {
	Frame *models.Frame
}

// GetFramesInput contains parameters for retrieving a frame for every player
type GetFramesInput struct {
	MatchID string

	// Frame is one-indexed
	Frame int
}

// GetFramesOutput contains one frame per player, nil where it hasn't been bowled
type GetFramesOutput struct {
	Frames []*models.Frame
}

// GetGameStateInput contains parameters for retrieving a player's frames
type GetGameStateInput struct {
	MatchID string

	// Player is one-indexed
	Player int
}

// GetGameStateOutput contains a copy of a player's frames, bonus frames included
type GetGameStateOutput struct {
	Frames []*models.Frame
}

// GetGameStatesInput contains parameters for retrieving every player's frames
type GetGameStatesInput struct {
	MatchID string
}

// GetGameStatesOutput contains a copy of every player's frames in player order
type GetGameStatesOutput struct {
	States [][]*models.Frame
}

// IsGameOverInput contains parameters for checking a player's game
type IsGameOverInput struct {
	MatchID string

	// Player is one-indexed
	Player int
}

// IsGameOverOutput reports whether the player has finished
type IsGameOverOutput struct {
	GameOver bool
}

// EndMatchInput contains parameters for ending a match
type EndMatchInput struct {
	MatchID string
}

// EndMatchOutput contains the final standings of an ended match
type EndMatchOutput struct {
	Leaderboard *models.Leaderboard

	// Completed indicates every player finished before the match ended
	Completed bool
}
