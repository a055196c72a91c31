package match

import "context"

// Service defines the interface for match operations
type Service interface {
	// CreateMatch sets up a new match with a fresh scoresheet for each player
	CreateMatch(ctx context.Context, input *CreateMatchInput) (*CreateMatchOutput, error)

	// PostScore records a ball for the player whose turn it is
	PostScore(ctx context.Context, input *PostScoreInput) (*PostScoreOutput, error)

	// GetMatch returns the match record
	GetMatch(ctx context.Context, input *GetMatchInput) (*GetMatchOutput, error)

	// ListMatches returns the matches being tracked
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)

	// GetScores returns the current standings for a match
	GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error)

	// GetFrame returns one frame for one player
	GetFrame(ctx context.Context, input *GetFrameInput) (*GetFrameOutput, error)

	// GetFrames returns one frame for every player
	GetFrames(ctx context.Context, input *GetFramesInput) (*GetFramesOutput, error)

	// GetGameState returns every frame a player has bowled
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)

	// GetGameStates returns every frame for every player
	GetGameStates(ctx context.Context, input *GetGameStatesInput) (*GetGameStatesOutput, error)

	// IsGameOver reports whether a player has finished
	IsGameOver(ctx context.Context, input *IsGameOverInput) (*IsGameOverOutput, error)

	// EndMatch stops tracking a match and returns its final standings
	EndMatch(ctx context.Context, input *EndMatchInput) (*EndMatchOutput, error)
}
