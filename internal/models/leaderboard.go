package models

// Standing represents a player's position in a match
type Standing struct {
	// Player is the bowler
	Player *Player

	// Score is the running total through the player's current frame
	Score int

	// Frame is the player's current frame number
	Frame int

	// GameOver indicates the player has bowled their last ball
	GameOver bool
}

// Leaderboard represents the current standings in a match
type Leaderboard struct {
	// MatchID is the unique identifier for the match
	MatchID string

	// Standings are ordered by score, highest first
	Standings []*Standing
}
