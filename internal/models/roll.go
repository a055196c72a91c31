package models

import (
	"time"
)

// Roll represents a single ball bowled in a match
type Roll struct {
	// PlayerNumber is the one-indexed player who bowled
	PlayerNumber int

	// Frame is the one-indexed frame the ball counted toward
	Frame int

	// Pins is the number of pins knocked down
	Pins int

	// Timestamp is when the ball was posted
	Timestamp time.Time
}
