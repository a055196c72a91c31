package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/tenpin/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/tenpin/internal/models"
)

// Repository defines the interface for match storage
type Repository interface {
	// SaveMatch stores a match, replacing any match with the same ID
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error

	// ListMatches retrieves matches, optionally filtered by status
	ListMatches(ctx context.Context, input *ListMatchesInput) (*ListMatchesOutput, error)
}
