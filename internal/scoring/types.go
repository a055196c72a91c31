package scoring

const (
	// DefaultPinCount is the number of pins set up in a standard frame
	DefaultPinCount = 10

	// DefaultNumFrames is the number of frames in a standard game
	DefaultNumFrames = 10

	// bonusFrames is the number of extra frames that may hold tenth-frame bonus balls
	bonusFrames = 2

	// lookBack is how many frames, ending at the current one, can change score after a ball
	lookBack = 3
)

// LedgerConfig holds configuration for a single player's ledger
type LedgerConfig struct {
	// PinCount is the number of pins set up in each frame
	PinCount int

	// NumFrames is the number of frames in the game
	NumFrames int
}

// DefaultLedgerConfig returns the configuration for a standard ten-pin game
func DefaultLedgerConfig() *LedgerConfig {
	return &LedgerConfig{
		PinCount:  DefaultPinCount,
		NumFrames: DefaultNumFrames,
	}
}
