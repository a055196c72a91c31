package match

import "github.com/KirkDiggler/tenpin/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type DeleteMatchInput struct {
	MatchID string
}

// ListMatchesInput filters the matches returned; an empty Status returns all of them
type ListMatchesInput struct {
	Status models.MatchStatus
}

type ListMatchesOutput struct {
	Matches []*models.Match
}
