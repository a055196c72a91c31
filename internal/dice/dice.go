package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/tenpin/internal/dice Roller

// Roller rolls a die with the given number of sides
type Roller interface {
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality
type RandomRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Bowl returns how many of the standing pins a ball knocks down, from none to all of them
func Bowl(roller Roller, standing int) int {
	if standing <= 0 {
		return 0
	}
	return roller.Roll(standing+1) - 1
}
