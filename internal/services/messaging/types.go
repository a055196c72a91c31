package messaging

import (
	"github.com/KirkDiggler/tenpin/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// RollKind classifies a single ball
type RollKind string

const (
	RollKindStrike  RollKind = "strike"
	RollKindDouble  RollKind = "double"
	RollKindTurkey  RollKind = "turkey"
	RollKindBagger  RollKind = "bagger"
	RollKindSpare   RollKind = "spare"
	RollKindGutter  RollKind = "gutter"
	RollKindOpen    RollKind = "open"
	RollKindCount   RollKind = "count"
	RollKindUnknown RollKind = "unknown"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeOutOfRange     = "out_of_range"
	ErrorTypeFrameOverflow  = "frame_overflow"
	ErrorTypeMatchCompleted = "match_completed"
	ErrorTypeMatchNotFound  = "match_not_found"
)

// Config contains configuration for the messaging service
type Config struct {
	// Seed makes message selection repeatable when non-zero
	Seed int64
}

// GetRollMessageInput contains parameters for getting a roll callout
type GetRollMessageInput struct {
	// PlayerName is the name of the bowler
	PlayerName string

	// Frame is the frame the ball went into, after the ball
	Frame *models.Frame

	// Pins is the number of pins the ball knocked down
	Pins int

	// PinCount is the number of pins per frame
	PinCount int

	// StrikeStreak counts consecutive strikes ending with this ball
	StrikeStreak int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRollMessageOutput contains the roll callout
type GetRollMessageOutput struct {
	Kind    RollKind
	Title   string
	Message string
	Tone    MessageTone
}

// GetFinalMessageInput contains parameters for announcing a match result
type GetFinalMessageInput struct {
	// Leaderboard holds the final standings, best first
	Leaderboard *models.Leaderboard

	// PinCount and NumFrames set the perfect score
	PinCount  int
	NumFrames int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetFinalMessageOutput contains the match announcement
type GetFinalMessageOutput struct {
	Title   string
	Message string

	// Winners lists every player tied for the top score
	Winners []*models.Player
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
