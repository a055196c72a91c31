package match

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/tenpin/internal/models"
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// memoryRepository implements the Repository interface in process memory.
// Matches are copied on the way in and out so callers never share state with the store.
type memoryRepository struct {
	mu      sync.RWMutex
	matches map[string]*models.Match
}

// NewMemory creates a new in-memory match repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		matches: make(map[string]*models.Match),
	}
}

// SaveMatch stores a copy of the match
func (r *memoryRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[input.Match.ID] = cloneMatch(input.Match)
	return nil
}

// GetMatch retrieves a copy of a match by ID
func (r *memoryRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	match, ok := r.matches[input.MatchID]
	if !ok {
		return nil, ErrMatchNotFound
	}

	return cloneMatch(match), nil
}

// DeleteMatch removes a match
func (r *memoryRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.matches[input.MatchID]; !ok {
		return ErrMatchNotFound
	}

	delete(r.matches, input.MatchID)
	return nil
}

// ListMatches retrieves matches ordered by creation time, oldest first
func (r *memoryRepository) ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*models.Match, 0, len(r.matches))
	for _, match := range r.matches {
		if input.Status != "" && match.Status != input.Status {
			continue
		}
		matches = append(matches, cloneMatch(match))
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID < matches[j].ID
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	return &ListMatchesOutput{
		Matches: matches,
	}, nil
}

func cloneMatch(match *models.Match) *models.Match {
	clone := *match

	if match.Players != nil {
		clone.Players = make([]*models.Player, 0, len(match.Players))
		for _, player := range match.Players {
			p := *player
			clone.Players = append(clone.Players, &p)
		}
	}

	if match.Rolls != nil {
		clone.Rolls = make([]*models.Roll, 0, len(match.Rolls))
		for _, roll := range match.Rolls {
			r := *roll
			clone.Rolls = append(clone.Rolls, &r)
		}
	}

	if match.CompletedAt != nil {
		completedAt := *match.CompletedAt
		clone.CompletedAt = &completedAt
	}

	return &clone
}
