package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/tenpin/internal/models"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetRollMessage returns a callout for the ball just bowled
func (s *service) GetRollMessage(ctx context.Context, input *GetRollMessageInput) (*GetRollMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	name := input.PlayerName
	kind := classifyRoll(input)

	var title string
	var messages []string

	switch kind {
	case RollKindStrike:
		title = "STRIKE!"
		messages = []string{
			fmt.Sprintf("%s sends them all flying!", name),
			fmt.Sprintf("Pocket hit. %s clears the deck.", name),
			fmt.Sprintf("Nothing left standing for %s.", name),
			fmt.Sprintf("%s makes it look easy.", name),
		}
	case RollKindDouble:
		title = "DOUBLE!"
		messages = []string{
			fmt.Sprintf("Two in a row for %s!", name),
			fmt.Sprintf("%s is heating up. That's a double.", name),
			fmt.Sprintf("Back-to-back strikes from %s!", name),
		}
	case RollKindTurkey:
		title = "TURKEY!"
		messages = []string{
			fmt.Sprintf("Gobble gobble! Three straight for %s.", name),
			fmt.Sprintf("%s bags a turkey!", name),
			fmt.Sprintf("Three in a row. Somebody stop %s.", name),
		}
	case RollKindBagger:
		title = fmt.Sprintf("%d-BAGGER!", input.StrikeStreak)
		messages = []string{
			fmt.Sprintf("%s has %d strikes in a row!", name, input.StrikeStreak),
			fmt.Sprintf("%d straight. %s can't miss.", input.StrikeStreak, name),
			fmt.Sprintf("The pins are begging %s for mercy.", name),
		}
	case RollKindSpare:
		title = "Spare"
		messages = []string{
			fmt.Sprintf("%s picks up the spare.", name),
			fmt.Sprintf("Clean conversion by %s.", name),
			fmt.Sprintf("%s mops up the leftovers.", name),
		}
	case RollKindGutter:
		title = "Gutter ball"
		if tone == ToneEncouraging {
			messages = []string{
				fmt.Sprintf("Shake it off, %s. Next ball's yours.", name),
				fmt.Sprintf("Happens to everyone, %s.", name),
			}
		} else {
			messages = []string{
				fmt.Sprintf("%s finds the gutter.", name),
				fmt.Sprintf("The pins didn't even notice %s's ball.", name),
				fmt.Sprintf("Were you aiming for the next lane, %s?", name),
			}
		}
	case RollKindOpen:
		title = "Open frame"
		messages = []string{
			fmt.Sprintf("%s leaves %d standing.", name, pinsLeft(input)),
			fmt.Sprintf("Not quite, %s. %d pins survive.", name, pinsLeft(input)),
			fmt.Sprintf("%s takes the count and moves on.", name),
		}
	case RollKindCount:
		title = fmt.Sprintf("%d", input.Pins)
		messages = []string{
			fmt.Sprintf("%s knocks down %d.", name, input.Pins),
			fmt.Sprintf("%d for %s. %d left to clean up.", input.Pins, name, pinsLeft(input)),
		}
	default:
		title = fmt.Sprintf("%d", input.Pins)
		messages = []string{
			fmt.Sprintf("%s bowls a %d.", name, input.Pins),
		}
	}

	return &GetRollMessageOutput{
		Kind:    kind,
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetFinalMessage returns a message announcing the result of a match
func (s *service) GetFinalMessage(ctx context.Context, input *GetFinalMessageInput) (*GetFinalMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Leaderboard == nil || len(input.Leaderboard.Standings) == 0 {
		return nil, errors.New("leaderboard cannot be empty")
	}

	standings := input.Leaderboard.Standings
	top := standings[0].Score

	var winners []*models.Player
	for _, standing := range standings {
		if standing.Score == top {
			winners = append(winners, standing.Player)
		}
	}

	perfect := input.PinCount * 3 * input.NumFrames
	if perfect > 0 && top == perfect {
		return &GetFinalMessageOutput{
			Title:   "PERFECT GAME!",
			Message: fmt.Sprintf("%s rolls a perfect %d!", joinNames(winners), top),
			Winners: winners,
		}, nil
	}

	var title string
	var messages []string

	switch {
	case len(standings) == 1:
		title = "Game Over"
		messages = []string{
			fmt.Sprintf("%s finishes with %d.", winners[0].Name, top),
			fmt.Sprintf("That's a wrap. %s posts a %d.", winners[0].Name, top),
		}
	case len(winners) > 1:
		title = "It's a Tie!"
		messages = []string{
			fmt.Sprintf("%s tie at %d.", joinNames(winners), top),
			fmt.Sprintf("Dead heat! %s all finish on %d.", joinNames(winners), top),
		}
	default:
		margin := top - standings[1].Score
		title = "Match Complete"
		messages = []string{
			fmt.Sprintf("%s wins with %d, by %d pins.", winners[0].Name, top, margin),
			fmt.Sprintf("%s takes it with a %d.", winners[0].Name, top),
		}
		if input.PreferredTone == ToneFunny && top < 100 {
			messages = []string{
				fmt.Sprintf("%s wins with %d. Nobody tell the league.", winners[0].Name, top),
			}
		}
	}

	return &GetFinalMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Winners: winners,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	// Select messages based on error type
	switch input.ErrorType {
	case ErrorTypeOutOfRange:
		messages = []string{
			"That's more pins than the rack holds.",
			"Nice try. Count the pins again.",
			"The scoresheet doesn't go that high.",
		}
	case ErrorTypeFrameOverflow:
		messages = []string{
			"There aren't that many pins left standing.",
			"You can't knock down pins that are already down.",
			"Both balls together can't beat a full rack.",
		}
	case ErrorTypeMatchCompleted:
		messages = []string{
			"This match is over. Start a new one.",
			"The lane is closed. Check the final scores.",
		}
	case ErrorTypeMatchNotFound:
		messages = []string{
			"No match on that lane.",
			"Can't find that match. Did it already end?",
		}
	default:
		messages = []string{
			"Something went wrong! Try again.",
			"The pinsetter jammed. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// classifyRoll works out what the latest ball did from the frame it went into
func classifyRoll(input *GetRollMessageInput) RollKind {
	frame := input.Frame
	if frame == nil || frame.Ball1 == nil {
		return RollKindUnknown
	}

	if frame.Ball2 == nil {
		switch {
		case frame.IsStrike:
			return strikeKind(input.StrikeStreak)
		case input.Pins == 0:
			return RollKindGutter
		default:
			return RollKindCount
		}
	}

	switch {
	case frame.IsSpare:
		return RollKindSpare
	case input.Pins == 0:
		return RollKindGutter
	default:
		return RollKindOpen
	}
}

func strikeKind(streak int) RollKind {
	switch {
	case streak >= 4:
		return RollKindBagger
	case streak == 3:
		return RollKindTurkey
	case streak == 2:
		return RollKindDouble
	default:
		return RollKindStrike
	}
}

func pinsLeft(input *GetRollMessageInput) int {
	left := input.PinCount - input.Frame.Pins()
	if left < 0 {
		return 0
	}
	return left
}

func joinNames(players []*models.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}

	if len(names) <= 2 {
		return strings.Join(names, " and ")
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
