// Package scoring keeps a single player's frames and computes their scores.
package scoring

import (
	"fmt"

	"github.com/KirkDiggler/tenpin/internal/models"
)

// Ledger tracks one player's frames through a game.
//
// Frames are held in roll order. The frame after frames[i] is frames[i+1], which
// is all the look-ahead bonus scoring needs. Up to two frames past NumFrames hold
// tenth-frame bonus balls; they never receive a frame score of their own.
type Ledger struct {
	pinCount  int
	numFrames int
	frames    []*models.Frame
}

// NewLedger creates an empty ledger
func NewLedger(cfg *LedgerConfig) (*Ledger, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PinCount < 1 {
		return nil, fmt.Errorf("%w: pin count must be positive, got %d", ErrInvalidConfig, cfg.PinCount)
	}

	if cfg.NumFrames < 1 {
		return nil, fmt.Errorf("%w: frame count must be positive, got %d", ErrInvalidConfig, cfg.NumFrames)
	}

	return &Ledger{
		pinCount:  cfg.PinCount,
		numFrames: cfg.NumFrames,
		frames:    make([]*models.Frame, 0, cfg.NumFrames+bonusFrames),
	}, nil
}

// PinCount returns the number of pins set up in each frame
func (l *Ledger) PinCount() int {
	return l.pinCount
}

// NumFrames returns the number of frames in the game
func (l *Ledger) NumFrames() int {
	return l.numFrames
}

// CurrentFrame returns the number of frames bowled so far, never more than NumFrames.
// Zero means the game has not started.
func (l *Ledger) CurrentFrame() int {
	return min(len(l.frames), l.numFrames)
}

// CurrentScore returns the running total through the current frame
func (l *Ledger) CurrentScore() int {
	current := l.CurrentFrame()
	if current == 0 {
		return 0
	}
	return models.IntValue(l.frames[current-1].RunningTotal)
}

// PostScore records a ball and updates every score it affects.
// Posting to a finished game does nothing.
func (l *Ledger) PostScore(score int) error {
	if score < 0 || score > l.pinCount {
		return fmt.Errorf("%w: %d is not between 0 and %d", ErrOutOfRangeScore, score, l.pinCount)
	}

	if l.IsGameOver() {
		return nil
	}

	if err := l.addBall(score); err != nil {
		return err
	}

	l.resolveFrameScores()
	l.updateRunningTotals()

	return nil
}

// addBall completes the open frame or starts a new one
func (l *Ledger) addBall(score int) error {
	if n := len(l.frames); n > 0 {
		last := l.frames[n-1]
		if !last.IsComplete() {
			first := models.IntValue(last.Ball1)
			if first+score > l.pinCount {
				return fmt.Errorf("%w: %d after %d leaves only %d pins standing",
					ErrFrameOverflow, score, first, l.pinCount-first)
			}

			last.Ball2 = models.Int(score)
			last.IsSpare = first+score == l.pinCount
			return nil
		}
	}

	l.frames = append(l.frames, &models.Frame{
		Ball1:    models.Int(score),
		IsStrike: score == l.pinCount,
	})

	return nil
}

// resolveFrameScores scores the current frame and the two before it
func (l *Ledger) resolveFrameScores() {
	current := l.CurrentFrame()
	for i := max(0, current-lookBack); i < current; i++ {
		l.resolveFrameScore(i)
	}
}

// resolveFrameScore sets frames[i].FrameScore once enough balls have been bowled.
// A resolved score is never recomputed.
func (l *Ledger) resolveFrameScore(i int) {
	frame := l.frames[i]
	if frame.FrameScore != nil || !frame.IsComplete() {
		return
	}

	next := l.frameAt(i + 1)
	var score int

	switch {
	case frame.IsStrike:
		if !next.IsComplete() {
			return
		}

		if next.IsStrike {
			after := l.frameAt(i + 2)
			if after == nil || after.Ball1 == nil {
				return
			}
			score = l.pinCount + l.pinCount + *after.Ball1
		} else {
			score = l.pinCount + next.Pins()
		}

	case frame.IsSpare:
		if next == nil || next.Ball1 == nil {
			return
		}
		score = l.pinCount + *next.Ball1

	default:
		score = frame.Pins()
	}

	frame.FrameScore = models.Int(score)
}

// updateRunningTotals recomputes every running total from the first frame
func (l *Ledger) updateRunningTotals() {
	total := 0
	for _, frame := range l.frames {
		total += models.IntValue(frame.FrameScore)
		frame.RunningTotal = models.Int(total)
	}
}

func (l *Ledger) frameAt(i int) *models.Frame {
	if i < 0 || i >= len(l.frames) {
		return nil
	}
	return l.frames[i]
}

// IsGameOver reports whether the player has bowled their last ball
func (l *Ledger) IsGameOver() bool {
	n := len(l.frames)
	if n < l.numFrames {
		return false
	}

	last := l.frames[n-1]

	switch n {
	case l.numFrames:
		// A strike or spare in the last frame earns bonus balls
		return last.IsOpen()

	case l.numFrames + 1:
		prev := l.frames[n-2]
		switch {
		case prev.IsSpare:
			return last.Ball1 != nil
		case prev.IsStrike:
			// A strike on the first bonus ball is followed by one more
			return last.IsComplete() && !last.IsStrike
		}
		return true

	default:
		prev := l.frames[n-2]
		return !(prev.IsStrike && last.Ball1 == nil)
	}
}

// AwaitingBonusBalls reports whether the last frame is bowled but its bonus balls are not
func (l *Ledger) AwaitingBonusBalls() bool {
	if len(l.frames) < l.numFrames {
		return false
	}
	return l.frames[l.numFrames-1].IsComplete() && !l.IsGameOver()
}

// IsCurrentFrameComplete reports whether the current frame has no balls left to bowl.
// Before the first ball there is no current frame, which counts as complete.
func (l *Ledger) IsCurrentFrameComplete() bool {
	current := l.CurrentFrame()
	if current == 0 {
		return true
	}
	return l.frames[current-1].IsComplete()
}

// GetFrame returns a copy of the one-indexed frame i, or nil when i has not been bowled
func (l *Ledger) GetFrame(i int) *models.Frame {
	if i <= 0 || i > l.CurrentFrame() {
		return nil
	}
	return l.frames[i-1].Clone()
}

// GetState returns a copy of every frame, bonus frames included
func (l *Ledger) GetState() []*models.Frame {
	state := make([]*models.Frame, 0, len(l.frames))
	for _, frame := range l.frames {
		state = append(state, frame.Clone())
	}
	return state
}
