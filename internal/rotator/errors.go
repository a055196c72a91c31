package rotator

// RotatorError is a custom error type for player rotation errors
type RotatorError string

// Error implements the error interface
func (e RotatorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPlayerIndex RotatorError = "player number is out of range"
	ErrNilConfig          RotatorError = "config cannot be nil"
	ErrInvalidPlayerCount RotatorError = "player count must be positive"
)
