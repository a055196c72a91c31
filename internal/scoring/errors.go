package scoring

// ScoringError is a custom error type for frame ledger errors
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrOutOfRangeScore ScoringError = "score is outside the range of pins"
	ErrFrameOverflow   ScoringError = "frame total exceeds the pin count"
	ErrNilConfig       ScoringError = "config cannot be nil"
	ErrInvalidConfig   ScoringError = "invalid ledger config"
)
