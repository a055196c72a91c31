package rotator

import "github.com/KirkDiggler/tenpin/internal/scoring"

// DefaultNumPlayers is the number of players in a match when none is configured
const DefaultNumPlayers = 2

// Config holds configuration for a match rotator
type Config struct {
	// NumPlayers is the number of players taking turns
	NumPlayers int

	// PinCount is the number of pins set up in each frame
	PinCount int

	// NumFrames is the number of frames in each player's game
	NumFrames int
}

// DefaultConfig returns a two-player, ten-pin, ten-frame configuration
func DefaultConfig() *Config {
	return &Config{
		NumPlayers: DefaultNumPlayers,
		PinCount:   scoring.DefaultPinCount,
		NumFrames:  scoring.DefaultNumFrames,
	}
}
