package match

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/tenpin/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) newMatch(id string, status models.MatchStatus, createdAt time.Time) *models.Match {
	return &models.Match{
		ID:     id,
		Status: status,
		Players: []*models.Player{
			{Number: 1, Name: "Dude"},
			{Number: 2, Name: "Walter"},
		},
		PinCount:  10,
		NumFrames: 10,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *MemoryRepositoryTestSuite) TestSaveAndGetMatch() {
	match := s.newMatch("test-match-id", models.MatchStatusActive, s.testNow)
	match.Rolls = []*models.Roll{
		{PlayerNumber: 1, Frame: 1, Pins: 10, Timestamp: s.testNow},
	}

	err := s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: match})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal(match, retrieved)
	s.Equal("Walter", retrieved.Players[1].Name)
	s.Len(retrieved.Rolls, 1)
	s.Equal(10, retrieved.Rolls[0].Pins)
}

func (s *MemoryRepositoryTestSuite) TestSaveMatch_StoresCopy() {
	match := s.newMatch("test-match-id", models.MatchStatusWaiting, s.testNow)
	s.Require().NoError(s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: match}))

	match.Status = models.MatchStatusCompleted
	match.Players[0].Name = "Donny"

	retrieved, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusWaiting, retrieved.Status)
	s.Equal("Dude", retrieved.Players[0].Name)

	retrieved.Players[1].Name = "Jesus"
	again, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)
	s.Equal("Walter", again.Players[1].Name)
}

func (s *MemoryRepositoryTestSuite) TestSaveMatch_InvalidInput() {
	s.Error(s.repo.SaveMatch(s.ctx, nil))
	s.Error(s.repo.SaveMatch(s.ctx, &SaveMatchInput{}))
	s.Error(s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: &models.Match{}}))
}

func (s *MemoryRepositoryTestSuite) TestGetMatch_NotFound() {
	_, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.repo.GetMatch(s.ctx, &GetMatchInput{})
	s.Error(err)
}

func (s *MemoryRepositoryTestSuite) TestDeleteMatch() {
	match := s.newMatch("test-match-id", models.MatchStatusActive, s.testNow)
	s.Require().NoError(s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: match}))

	err := s.repo.DeleteMatch(s.ctx, &DeleteMatchInput{MatchID: "test-match-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)

	err = s.repo.DeleteMatch(s.ctx, &DeleteMatchInput{MatchID: "test-match-id"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MemoryRepositoryTestSuite) TestListMatches() {
	matches := []*models.Match{
		s.newMatch("match-c", models.MatchStatusCompleted, s.testNow.Add(2*time.Minute)),
		s.newMatch("match-a", models.MatchStatusActive, s.testNow),
		s.newMatch("match-b", models.MatchStatusActive, s.testNow.Add(time.Minute)),
	}
	for _, match := range matches {
		s.Require().NoError(s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: match}))
	}

	output, err := s.repo.ListMatches(s.ctx, &ListMatchesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 3)
	s.Equal("match-a", output.Matches[0].ID)
	s.Equal("match-b", output.Matches[1].ID)
	s.Equal("match-c", output.Matches[2].ID)

	output, err = s.repo.ListMatches(s.ctx, &ListMatchesInput{Status: models.MatchStatusActive})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 2)
	s.Equal("match-a", output.Matches[0].ID)
	s.Equal("match-b", output.Matches[1].ID)

	output, err = s.repo.ListMatches(s.ctx, &ListMatchesInput{Status: models.MatchStatusWaiting})
	s.Require().NoError(err)
	s.Empty(output.Matches)
}
