package match

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMatchNotFound    MatchError = "match not found"
	ErrMatchCompleted   MatchError = "match is already completed"
	ErrNoPlayers        MatchError = "match needs at least one player"
	ErrTooManyPlayers   MatchError = "match is at maximum capacity"
	ErrInvalidRoll      MatchError = "invalid roll"
	ErrInvalidPlayer    MatchError = "invalid player"
	ErrNilInput         MatchError = "input cannot be nil"
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilMatchRepo     MatchError = "match repository cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
)
