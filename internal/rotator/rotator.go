// Package rotator takes turns between players, each scored by their own ledger.
package rotator

import (
	"fmt"

	"github.com/KirkDiggler/tenpin/internal/models"
	"github.com/KirkDiggler/tenpin/internal/scoring"
)

// Rotator owns one ledger per player and tracks whose turn it is.
// Player and frame numbers are one-indexed. A Rotator is not safe for concurrent use.
type Rotator struct {
	pinCount  int
	numFrames int
	ledgers   []*scoring.Ledger
	current   int
}

// New creates a rotator with a fresh ledger for every player
func New(cfg *Config) (*Rotator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.NumPlayers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, cfg.NumPlayers)
	}

	ledgers := make([]*scoring.Ledger, 0, cfg.NumPlayers)
	for i := 0; i < cfg.NumPlayers; i++ {
		ledger, err := scoring.NewLedger(&scoring.LedgerConfig{
			PinCount:  cfg.PinCount,
			NumFrames: cfg.NumFrames,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ledger for player %d: %w", i+1, err)
		}
		ledgers = append(ledgers, ledger)
	}

	return &Rotator{
		pinCount:  cfg.PinCount,
		numFrames: cfg.NumFrames,
		ledgers:   ledgers,
	}, nil
}

// NumPlayers returns the number of players in the match
func (r *Rotator) NumPlayers() int {
	return len(r.ledgers)
}

// PinCount returns the number of pins set up in each frame
func (r *Rotator) PinCount() int {
	return r.pinCount
}

// NumFrames returns the number of frames in each player's game
func (r *Rotator) NumFrames() int {
	return r.numFrames
}

// PostScore records a ball for the current player and passes the turn once their frame is done.
//
// A player keeps the turn while they owe bonus balls for their last frame.
func (r *Rotator) PostScore(score int) error {
	if score < 0 || score > r.pinCount {
		return fmt.Errorf("%w: %d is not between 0 and %d", scoring.ErrOutOfRangeScore, score, r.pinCount)
	}

	if r.IsMatchOver() {
		return nil
	}

	ledger := r.ledgers[r.current]
	if err := ledger.PostScore(score); err != nil {
		return err
	}

	if ledger.IsCurrentFrameComplete() && !ledger.AwaitingBonusBalls() {
		r.advance()
	}

	return nil
}

// advance passes the turn to the next player, wrapping after the last
func (r *Rotator) advance() {
	r.current = (r.current + 1) % len(r.ledgers)
}

// GetCurrentPlayer returns the one-indexed player whose turn it is
func (r *Rotator) GetCurrentPlayer() int {
	return r.current + 1
}

// GetCurrentFrame returns the player's current frame number
func (r *Rotator) GetCurrentFrame(player int) (int, error) {
	ledger, err := r.ledger(player)
	if err != nil {
		return 0, err
	}
	return ledger.CurrentFrame(), nil
}

// GetCurrentScore returns the running total through the player's current frame
func (r *Rotator) GetCurrentScore(player int) (int, error) {
	ledger, err := r.ledger(player)
	if err != nil {
		return 0, err
	}
	return ledger.CurrentScore(), nil
}

// GetCurrentScores returns every player's current score in player order
func (r *Rotator) GetCurrentScores() []int {
	scores := make([]int, 0, len(r.ledgers))
	for _, ledger := range r.ledgers {
		scores = append(scores, ledger.CurrentScore())
	}
	return scores
}

// GetFrame returns a copy of frame i for the player, or nil for an unknown player or frame
func (r *Rotator) GetFrame(i, player int) *models.Frame {
	ledger, err := r.ledger(player)
	if err != nil {
		return nil
	}
	return ledger.GetFrame(i)
}

// GetFrames returns frame i for every player in player order
func (r *Rotator) GetFrames(i int) []*models.Frame {
	frames := make([]*models.Frame, 0, len(r.ledgers))
	for _, ledger := range r.ledgers {
		frames = append(frames, ledger.GetFrame(i))
	}
	return frames
}

// GetGameState returns a copy of every frame the player has bowled
func (r *Rotator) GetGameState(player int) ([]*models.Frame, error) {
	ledger, err := r.ledger(player)
	if err != nil {
		return nil, err
	}
	return ledger.GetState(), nil
}

// GetGameStates returns every player's game state in player order
func (r *Rotator) GetGameStates() [][]*models.Frame {
	states := make([][]*models.Frame, 0, len(r.ledgers))
	for _, ledger := range r.ledgers {
		states = append(states, ledger.GetState())
	}
	return states
}

// IsGameOver reports whether the player has bowled their last ball
func (r *Rotator) IsGameOver(player int) (bool, error) {
	ledger, err := r.ledger(player)
	if err != nil {
		return false, err
	}
	return ledger.IsGameOver(), nil
}

// IsMatchOver reports whether every player has finished
func (r *Rotator) IsMatchOver() bool {
	for _, ledger := range r.ledgers {
		if !ledger.IsGameOver() {
			return false
		}
	}
	return true
}

func (r *Rotator) ledger(player int) (*scoring.Ledger, error) {
	if player < 1 || player > len(r.ledgers) {
		return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidPlayerIndex, player, len(r.ledgers))
	}
	return r.ledgers[player-1], nil
}
