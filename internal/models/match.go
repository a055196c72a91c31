package models

import (
	"time"
)

// MatchStatus represents the current state of a match
type MatchStatus string

const (
	// MatchStatusWaiting indicates no ball has been bowled yet
	MatchStatusWaiting MatchStatus = "waiting"

	// MatchStatusActive indicates the match is in progress
	MatchStatusActive MatchStatus = "active"

	// MatchStatusCompleted indicates every player has finished their game
	MatchStatusCompleted MatchStatus = "completed"
)

// Match represents a bowling match between one or more players
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// Status is the current state of the match
	Status MatchStatus

	// Players are the bowlers in turn order
	Players []*Player

	// PinCount is the number of pins set up in each frame
	PinCount int

	// NumFrames is the number of frames in each player's game
	NumFrames int

	// Rolls is the history of every ball posted, in roll order
	Rolls []*Roll

	// CreatedAt is when the match was created
	CreatedAt time.Time

	// UpdatedAt is when the match was last updated
	UpdatedAt time.Time

	// CompletedAt is when the last player finished
	CompletedAt *time.Time
}
