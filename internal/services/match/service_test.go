package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/tenpin/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/tenpin/internal/common/uuid/mocks"
	"github.com/KirkDiggler/tenpin/internal/models"
	matchRepo "github.com/KirkDiggler/tenpin/internal/repositories/match"
	matchMocks "github.com/KirkDiggler/tenpin/internal/repositories/match/mocks"
	"github.com/KirkDiggler/tenpin/internal/rotator"
	"github.com/KirkDiggler/tenpin/internal/scoring"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockClock     *mocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	mockMatchRepo *matchMocks.MockRepository
	matchRepo     matchRepo.Repository
	matchService  Service
	ctx           context.Context

	// Test data
	testTime    time.Time
	testMatchID string
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.matchRepo = matchRepo.NewMemory()
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testMatchID = "test-match-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	var err error
	s.matchService, err = New(&Config{
		MatchRepo:     s.matchRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}

// createMatch starts a match with the test ID for the named players
func (s *MatchServiceTestSuite) createMatch(names ...string) *models.Match {
	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)

	output, err := s.matchService.CreateMatch(s.ctx, &CreateMatchInput{
		PlayerNames: names,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output)

	return output.Match
}

// postAll bowls each ball in turn and returns the last result
func (s *MatchServiceTestSuite) postAll(pins ...int) *PostScoreOutput {
	var output *PostScoreOutput
	for _, p := range pins {
		var err error
		output, err = s.matchService.PostScore(s.ctx, &PostScoreInput{
			MatchID: s.testMatchID,
			Pins:    p,
		})
		s.Require().NoError(err)
	}
	return output
}

func (s *MatchServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilMatchRepo)

	_, err = New(&Config{MatchRepo: s.matchRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{MatchRepo: s.matchRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *MatchServiceTestSuite) TestCreateMatch() {
	match := s.createMatch("Dude", "", "Walter")

	s.Equal(s.testMatchID, match.ID)
	s.Equal(models.MatchStatusWaiting, match.Status)
	s.Equal(10, match.PinCount)
	s.Equal(10, match.NumFrames)
	s.Equal(s.testTime, match.CreatedAt)
	s.Nil(match.CompletedAt)
	s.Empty(match.Rolls)

	s.Require().Len(match.Players, 3)
	s.Equal(&models.Player{Number: 1, Name: "Dude"}, match.Players[0])
	s.Equal(&models.Player{Number: 2, Name: "Player 2"}, match.Players[1])
	s.Equal(&models.Player{Number: 3, Name: "Walter"}, match.Players[2])

	stored, err := s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(match, stored.Match)
}

func (s *MatchServiceTestSuite) TestCreateMatch_Overrides() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)

	output, err := s.matchService.CreateMatch(s.ctx, &CreateMatchInput{
		PlayerNames: []string{"Dude"},
		PinCount:    5,
		NumFrames:   3,
	})
	s.Require().NoError(err)
	s.Equal(5, output.Match.PinCount)
	s.Equal(3, output.Match.NumFrames)

	_, err = s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 6})
	s.ErrorIs(err, scoring.ErrOutOfRangeScore)
}

func (s *MatchServiceTestSuite) TestCreateMatch_InvalidInput() {
	_, err := s.matchService.CreateMatch(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.matchService.CreateMatch(s.ctx, &CreateMatchInput{})
	s.ErrorIs(err, ErrNoPlayers)

	names := make([]string, DefaultMaxPlayers+1)
	_, err = s.matchService.CreateMatch(s.ctx, &CreateMatchInput{PlayerNames: names})
	s.ErrorIs(err, ErrTooManyPlayers)
}

func (s *MatchServiceTestSuite) TestCreateMatch_SaveError() {
	svc, err := New(&Config{
		MatchRepo:     s.mockMatchRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)
	s.mockMatchRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		Return(errors.New("lane jammed"))

	_, err = svc.CreateMatch(s.ctx, &CreateMatchInput{PlayerNames: []string{"Dude"}})
	s.Error(err)
	s.Contains(err.Error(), "lane jammed")

	// A match that failed to save is not tracked
	_, err = svc.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 3})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestPostScore_Rotation() {
	s.createMatch("Dude", "Walter")

	output := s.postAll(3)
	s.Equal(1, output.Player.Number)
	s.Equal(1, output.FrameNumber)
	s.Equal(1, output.NextPlayer.Number)
	s.Nil(output.Frame.FrameScore)

	output = s.postAll(4)
	s.Equal(1, output.Player.Number)
	s.Equal(7, output.Score)
	s.Equal(7, *output.Frame.FrameScore)
	s.Equal("Walter", output.NextPlayer.Name)
	s.False(output.GameOver)
	s.False(output.MatchOver)

	output = s.postAll(10)
	s.Equal(2, output.Player.Number)
	s.True(output.Frame.IsStrike)
	s.Equal(1, output.StrikeStreak)
	s.Equal(1, output.NextPlayer.Number)

	match, err := s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusActive, match.Match.Status)
	s.Require().Len(match.Match.Rolls, 3)
	s.Equal(&models.Roll{PlayerNumber: 2, Frame: 1, Pins: 10, Timestamp: s.testTime}, match.Match.Rolls[2])
}

func (s *MatchServiceTestSuite) TestPostScore_StrikeStreak() {
	s.createMatch("Dude")

	s.Equal(1, s.postAll(10).StrikeStreak)
	s.Equal(2, s.postAll(10).StrikeStreak)
	s.Equal(3, s.postAll(10).StrikeStreak)
	s.Equal(0, s.postAll(4).StrikeStreak)
}

func (s *MatchServiceTestSuite) TestPostScore_InvalidRoll() {
	s.createMatch("Dude", "Walter")

	_, err := s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 11})
	s.ErrorIs(err, ErrInvalidRoll)
	s.ErrorIs(err, scoring.ErrOutOfRangeScore)

	s.postAll(7)
	_, err = s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 5})
	s.ErrorIs(err, ErrInvalidRoll)
	s.ErrorIs(err, scoring.ErrFrameOverflow)

	// Rejected balls are not recorded and the turn is kept
	output := s.postAll(2)
	s.Equal(1, output.Player.Number)
	s.Equal(9, output.Score)

	match, err := s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Len(match.Match.Rolls, 2)
}

func (s *MatchServiceTestSuite) TestPostScore_MatchNotFound() {
	_, err := s.matchService.PostScore(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: "missing", Pins: 3})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestPostScore_MatchCompleted() {
	s.createMatch("Dude")

	for i := 0; i < 19; i++ {
		output := s.postAll(0)
		s.False(output.MatchOver)
	}

	output := s.postAll(0)
	s.True(output.GameOver)
	s.True(output.MatchOver)
	s.Equal(10, output.FrameNumber)

	match, err := s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusCompleted, match.Match.Status)
	s.Require().NotNil(match.Match.CompletedAt)
	s.Equal(s.testTime, *match.Match.CompletedAt)

	_, err = s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 3})
	s.ErrorIs(err, ErrMatchCompleted)
}

func (s *MatchServiceTestSuite) TestPostScore_RepositoryError() {
	svc, err := New(&Config{
		MatchRepo:     s.mockMatchRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.mockUUID.EXPECT().NewUUID().Return(s.testMatchID)
	s.mockMatchRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).Return(nil)

	_, err = svc.CreateMatch(s.ctx, &CreateMatchInput{PlayerNames: []string{"Dude"}})
	s.Require().NoError(err)

	s.mockMatchRepo.EXPECT().
		GetMatch(s.ctx, &matchRepo.GetMatchInput{MatchID: s.testMatchID}).
		Return(nil, matchRepo.ErrMatchNotFound)

	_, err = svc.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 3})
	s.ErrorIs(err, ErrMatchNotFound)

	s.mockMatchRepo.EXPECT().
		GetMatch(s.ctx, &matchRepo.GetMatchInput{MatchID: s.testMatchID}).
		Return(nil, errors.New("connection reset"))

	_, err = svc.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 3})
	s.Error(err)
	s.NotErrorIs(err, ErrMatchNotFound)
	s.Contains(err.Error(), "connection reset")
}

func (s *MatchServiceTestSuite) TestGetScores() {
	s.createMatch("Dude", "Walter", "Donny")

	s.postAll(3, 4) // Dude
	s.postAll(10)   // Walter
	s.postAll(9, 0) // Donny

	output, err := s.matchService.GetScores(s.ctx, &GetScoresInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.Equal([]int{7, 0, 9}, output.Scores)
	s.Equal(1, output.CurrentPlayer.Number)
	s.Equal(models.MatchStatusActive, output.Status)

	standings := output.Leaderboard.Standings
	s.Require().Len(standings, 3)
	s.Equal("Donny", standings[0].Player.Name)
	s.Equal(9, standings[0].Score)
	s.Equal("Dude", standings[1].Player.Name)
	s.Equal("Walter", standings[2].Player.Name)
	s.Equal(1, standings[2].Frame)
	s.False(standings[2].GameOver)
}

func (s *MatchServiceTestSuite) TestGetScores_TiesKeepTurnOrder() {
	s.createMatch("Dude", "Walter")

	output, err := s.matchService.GetScores(s.ctx, &GetScoresInput{MatchID: s.testMatchID})
	s.Require().NoError(err)

	s.Equal(models.MatchStatusWaiting, output.Status)
	s.Equal("Dude", output.Leaderboard.Standings[0].Player.Name)
	s.Equal("Walter", output.Leaderboard.Standings[1].Player.Name)
}

func (s *MatchServiceTestSuite) TestFrameQueries() {
	s.createMatch("Dude", "Walter")

	s.postAll(5, 5) // Dude
	s.postAll(2, 3) // Walter
	s.postAll(4)    // Dude

	frame, err := s.matchService.GetFrame(s.ctx, &GetFrameInput{MatchID: s.testMatchID, Player: 1, Frame: 1})
	s.Require().NoError(err)
	s.Require().NotNil(frame.Frame)
	s.True(frame.Frame.IsSpare)
	s.Equal(14, *frame.Frame.FrameScore)

	frame, err = s.matchService.GetFrame(s.ctx, &GetFrameInput{MatchID: s.testMatchID, Player: 3, Frame: 1})
	s.Require().NoError(err)
	s.Nil(frame.Frame)

	frames, err := s.matchService.GetFrames(s.ctx, &GetFramesInput{MatchID: s.testMatchID, Frame: 2})
	s.Require().NoError(err)
	s.Require().Len(frames.Frames, 2)
	s.Equal(4, *frames.Frames[0].Ball1)
	s.Nil(frames.Frames[1])

	state, err := s.matchService.GetGameState(s.ctx, &GetGameStateInput{MatchID: s.testMatchID, Player: 2})
	s.Require().NoError(err)
	s.Require().Len(state.Frames, 1)
	s.Equal(5, *state.Frames[0].RunningTotal)

	states, err := s.matchService.GetGameStates(s.ctx, &GetGameStatesInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.Require().Len(states.States, 2)
	s.Len(states.States[0], 2)
	s.Equal(state.Frames, states.States[1])

	over, err := s.matchService.IsGameOver(s.ctx, &IsGameOverInput{MatchID: s.testMatchID, Player: 1})
	s.Require().NoError(err)
	s.False(over.GameOver)
}

func (s *MatchServiceTestSuite) TestPlayerQueries_InvalidPlayer() {
	s.createMatch("Dude", "Walter")

	_, err := s.matchService.GetGameState(s.ctx, &GetGameStateInput{MatchID: s.testMatchID, Player: 3})
	s.ErrorIs(err, ErrInvalidPlayer)
	s.ErrorIs(err, rotator.ErrInvalidPlayerIndex)

	_, err = s.matchService.IsGameOver(s.ctx, &IsGameOverInput{MatchID: s.testMatchID, Player: 0})
	s.ErrorIs(err, ErrInvalidPlayer)
	s.ErrorIs(err, rotator.ErrInvalidPlayerIndex)
}

func (s *MatchServiceTestSuite) TestQueries_MatchNotFound() {
	_, err := s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.GetScores(s.ctx, &GetScoresInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.GetFrame(s.ctx, &GetFrameInput{MatchID: "missing", Player: 1, Frame: 1})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.GetFrames(s.ctx, &GetFramesInput{MatchID: "missing", Frame: 1})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.GetGameStates(s.ctx, &GetGameStatesInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.EndMatch(s.ctx, &EndMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestListMatches() {
	s.createMatch("Dude")

	s.testMatchID = "second-match-id"
	s.createMatch("Walter")
	s.postAll(3)

	output, err := s.matchService.ListMatches(s.ctx, &ListMatchesInput{})
	s.Require().NoError(err)
	s.Len(output.Matches, 2)

	output, err = s.matchService.ListMatches(s.ctx, &ListMatchesInput{Status: models.MatchStatusActive})
	s.Require().NoError(err)
	s.Require().Len(output.Matches, 1)
	s.Equal("second-match-id", output.Matches[0].ID)
}

func (s *MatchServiceTestSuite) TestEndMatch() {
	s.createMatch("Dude", "Walter")

	s.postAll(3, 4) // Dude
	s.postAll(8, 1) // Walter

	output, err := s.matchService.EndMatch(s.ctx, &EndMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.False(output.Completed)
	s.Equal(s.testMatchID, output.Leaderboard.MatchID)
	s.Require().Len(output.Leaderboard.Standings, 2)
	s.Equal("Walter", output.Leaderboard.Standings[0].Player.Name)
	s.Equal(9, output.Leaderboard.Standings[0].Score)

	_, err = s.matchService.GetMatch(s.ctx, &GetMatchInput{MatchID: s.testMatchID})
	s.ErrorIs(err, ErrMatchNotFound)

	_, err = s.matchService.PostScore(s.ctx, &PostScoreInput{MatchID: s.testMatchID, Pins: 3})
	s.ErrorIs(err, ErrMatchNotFound)
}

func (s *MatchServiceTestSuite) TestEndMatch_Completed() {
	s.createMatch("Dude")

	for i := 0; i < 12; i++ {
		s.postAll(10)
	}

	output, err := s.matchService.EndMatch(s.ctx, &EndMatchInput{MatchID: s.testMatchID})
	s.Require().NoError(err)
	s.True(output.Completed)
	s.Equal(300, output.Leaderboard.Standings[0].Score)
	s.True(output.Leaderboard.Standings[0].GameOver)
}
