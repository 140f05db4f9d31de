package service_test

import (
	"context"
	"testing"

	"depth-chart-backend/internal/database/models"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/mocks"
	"depth-chart-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTx          *mocks.MockTxManager
	mockCharts      *mocks.MockDepthChartRepositoryInterface
	mockPositions   *mocks.MockPositionRepositoryInterface
	mockAssignments *mocks.MockAssignmentRepositoryInterface
	mockPlayers     *mocks.MockPlayerRepositoryInterface
	mockEvents      *mocks.MockEventRepositoryInterface
	ctx             context.Context
}

// SetupTest sets up the test suite
func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTx = mocks.NewMockTxManager(suite.ctrl)
	suite.mockCharts = mocks.NewMockDepthChartRepositoryInterface(suite.ctrl)
	suite.mockPositions = mocks.NewMockPositionRepositoryInterface(suite.ctrl)
	suite.mockAssignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockPlayers = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()

	suite.mockTx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

// TearDownTest cleans up after each test
func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) newService(opts ...service.AssignmentServiceOption) *service.AssignmentService {
	return service.NewAssignmentService(
		suite.mockTx,
		suite.mockCharts,
		suite.mockPositions,
		suite.mockAssignments,
		suite.mockPlayers,
		suite.mockEvents,
		service.NewValidator(),
		opts...,
	)
}

func rosterPlayer(id, teamID uint, first, position string) *models.Player {
	p := &models.Player{TeamID: teamID, FirstName: first, LastName: "Player", Position: position, Status: models.PlayerStatusActive}
	p.ID = id
	return p
}

// TestAssignSuccess tests a new assignment is created with the player projection
func (suite *AssignmentServiceTestSuite) TestAssignSuccess() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 3, "SS", 6), nil)
	suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(rosterPlayer(20, 5, "Derek", "SS"), nil)
	suite.mockAssignments.EXPECT().ExistsActive(gomock.Any(), uint(3), uint(7), uint(20)).Return(false, nil)
	suite.mockAssignments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.Assignment) error {
			suite.Equal(uint(3), a.DepthChartID)
			suite.Equal(2, a.DepthOrder)
			suite.Equal(uint(9), a.AssignedBy)
			a.ID = 100
			return nil
		})
	suite.mockEvents.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.DepthChartEvent) error {
			suite.Equal(models.EventPlayerAssigned, event.Action)
			return nil
		})

	resp, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 2})

	suite.Require().NoError(err)
	suite.Equal(uint(100), resp.ID)
	suite.Require().NotNil(resp.Player)
	suite.Equal("Derek", resp.Player.FirstName)
}

// TestAssignDuplicateIsConflict tests a second assignment of the same triple
func (suite *AssignmentServiceTestSuite) TestAssignDuplicateIsConflict() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 3, "SS", 6), nil)
	suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(rosterPlayer(20, 5, "Derek", "SS"), nil)
	suite.mockAssignments.EXPECT().ExistsActive(gomock.Any(), uint(3), uint(7), uint(20)).Return(true, nil)

	_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 1})

	suite.ErrorIs(err, apperrors.ErrPlayerAlreadyAssigned)
	suite.Equal("Player is already assigned to this position", err.Error())
}

// TestAssignUniqueIndexRaceIsConflict tests a unique violation on insert becomes a conflict
func (suite *AssignmentServiceTestSuite) TestAssignUniqueIndexRaceIsConflict() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 3, "SS", 6), nil)
	suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(rosterPlayer(20, 5, "Derek", "SS"), nil)
	suite.mockAssignments.EXPECT().ExistsActive(gomock.Any(), uint(3), uint(7), uint(20)).Return(false, nil)
	suite.mockAssignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 1})

	suite.ErrorIs(err, apperrors.ErrPlayerAlreadyAssigned)
}

// TestAssignPlayerFromOtherTeam tests that other teams' players are not found
func (suite *AssignmentServiceTestSuite) TestAssignPlayerFromOtherTeam() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 3, "SS", 6), nil)
	suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 1})

	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
	suite.Equal("Player not found", err.Error())
}

// TestAssignPositionNotFound tests a position outside the team
func (suite *AssignmentServiceTestSuite) TestAssignPositionNotFound() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 1})

	suite.ErrorIs(err, apperrors.ErrPositionNotFound)
}

// TestAssignValidation tests required fields
func (suite *AssignmentServiceTestSuite) TestAssignValidation() {
	_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20})

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Equal("depth_order", validationErr.Details()[0].Field)
}

// TestAssignCapacity tests that max_players is only enforced when enabled
func (suite *AssignmentServiceTestSuite) TestAssignCapacity() {
	full := position(7, 3, "P", 1)
	full.MaxPlayers = intPtr(2)

	suite.Run("enforced", func() {
		suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(full, nil)
		suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(rosterPlayer(20, 5, "Ace", "P"), nil)
		suite.mockAssignments.EXPECT().ExistsActive(gomock.Any(), uint(3), uint(7), uint(20)).Return(false, nil)
		suite.mockAssignments.EXPECT().CountActiveByPosition(gomock.Any(), uint(7)).Return(int64(2), nil)

		_, err := suite.newService(service.WithCapacityEnforcement(true)).
			Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 3})

		suite.ErrorIs(err, apperrors.ErrPositionAtCapacity)
	})

	suite.Run("advisory", func() {
		suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(full, nil)
		suite.mockPlayers.EXPECT().GetByIDForTeam(gomock.Any(), uint(20), uint(5)).Return(rosterPlayer(20, 5, "Ace", "P"), nil)
		suite.mockAssignments.EXPECT().ExistsActive(gomock.Any(), uint(3), uint(7), uint(20)).Return(false, nil)
		suite.mockAssignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		suite.mockEvents.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, err := suite.newService().Assign(suite.ctx, 7, 5, 9, &service.AssignPlayerRequest{PlayerID: 20, DepthOrder: 3})

		suite.NoError(err)
	})
}

// TestUpdateAssignment tests changing the depth order
func (suite *AssignmentServiceTestSuite) TestUpdateAssignment() {
	current := &models.Assignment{DepthChartID: 3, PositionID: 7, PlayerID: 20, DepthOrder: 2}
	current.ID = 100
	reloaded := *current
	reloaded.DepthOrder = 1

	suite.mockAssignments.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(100), uint(5)).Return(current, nil)
	suite.mockAssignments.EXPECT().Update(gomock.Any(), uint(100), map[string]interface{}{"depth_order": 1}).Return(nil)
	suite.mockEvents.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.DepthChartEvent) error {
			suite.Equal(models.EventAssignmentUpdated, event.Action)
			return nil
		})
	suite.mockAssignments.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(100), uint(5)).Return(&reloaded, nil)

	resp, err := suite.newService().UpdateAssignment(suite.ctx, 100, 5, 9, &service.UpdateAssignmentRequest{DepthOrder: intPtr(1)})

	suite.Require().NoError(err)
	suite.Equal(1, resp.DepthOrder)
}

// TestUnassign tests removal and the not-found path
func (suite *AssignmentServiceTestSuite) TestUnassign() {
	assignment := &models.Assignment{DepthChartID: 3, PositionID: 7, PlayerID: 20}
	assignment.ID = 100

	suite.Run("success", func() {
		suite.mockAssignments.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(100), uint(5)).Return(assignment, nil)
		suite.mockAssignments.EXPECT().SoftDelete(gomock.Any(), uint(100)).Return(nil)
		suite.mockEvents.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		suite.NoError(suite.newService().Unassign(suite.ctx, 100, 5, 9))
	})

	suite.Run("not found", func() {
		suite.mockAssignments.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(100), uint(5)).Return(nil, gorm.ErrRecordNotFound)

		suite.ErrorIs(suite.newService().Unassign(suite.ctx, 100, 5, 9), apperrors.ErrAssignmentNotFound)
	})
}

// TestAvailablePlayersExcludesAssigned tests the exclusion set is passed to the roster query
func (suite *AssignmentServiceTestSuite) TestAvailablePlayersExcludesAssigned() {
	suite.mockCharts.EXPECT().GetActiveByID(gomock.Any(), uint(3), uint(5)).Return(activeChart(3, 5, "c", 1, false), nil)
	suite.mockAssignments.EXPECT().ListAssignedPlayerIDs(gomock.Any(), uint(3)).Return([]uint{20, 21}, nil)
	suite.mockPlayers.EXPECT().ListAvailable(gomock.Any(), uint(5), []uint{20, 21}).Return([]models.Player{
		*rosterPlayer(22, 5, "Abe", "C"),
	}, nil)

	players, err := suite.newService().AvailablePlayers(suite.ctx, 3, 5)

	suite.Require().NoError(err)
	suite.Require().Len(players, 1)
	suite.Equal(uint(22), players[0].ID)
}

// TestAvailablePlayersChartNotFound tests a deleted chart
func (suite *AssignmentServiceTestSuite) TestAvailablePlayersChartNotFound() {
	suite.mockCharts.EXPECT().GetActiveByID(gomock.Any(), uint(3), uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.newService().AvailablePlayers(suite.ctx, 3, 5)

	suite.ErrorIs(err, apperrors.ErrDepthChartNotFound)
}

// TestRecommendedPlayers tests ranking against the position code
func (suite *AssignmentServiceTestSuite) TestRecommendedPlayers() {
	p1 := rosterPlayer(1, 5, "P1", "P")
	p1.Stats.ERA = floatPtr(2.8)
	p2 := rosterPlayer(2, 5, "P2", "C")
	p2.MedicalConditions = "Elbow soreness"
	p3 := rosterPlayer(3, 5, "P3", "SP")
	p3.Stats.ERA = floatPtr(3.5)

	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 3, "P", 1), nil)
	suite.mockCharts.EXPECT().GetActiveByID(gomock.Any(), uint(3), uint(5)).Return(activeChart(3, 5, "c", 1, false), nil)
	suite.mockAssignments.EXPECT().ListAssignedPlayerIDs(gomock.Any(), uint(3)).Return(nil, nil)
	suite.mockPlayers.EXPECT().ListAvailable(gomock.Any(), uint(5), gomock.Nil()).Return([]models.Player{*p1, *p2, *p3}, nil)

	ranked, err := suite.newService().RecommendedPlayers(suite.ctx, 3, 7, 5)

	suite.Require().NoError(err)
	suite.Require().Len(ranked, 3)
	suite.Equal([]uint{1, 3, 2}, []uint{ranked[0].Player.ID, ranked[1].Player.ID, ranked[2].Player.ID})
	suite.Equal([]int{170, 130, -10}, []int{ranked[0].Score, ranked[1].Score, ranked[2].Score})
	suite.True(ranked[2].Player.HasMedicalIssues)
}

// TestRecommendedPlayersPositionOnOtherChart tests a position that does not belong to the chart
func (suite *AssignmentServiceTestSuite) TestRecommendedPlayersPositionOnOtherChart() {
	suite.mockPositions.EXPECT().GetActiveByIDForTeam(gomock.Any(), uint(7), uint(5)).Return(position(7, 4, "P", 1), nil)

	_, err := suite.newService().RecommendedPlayers(suite.ctx, 3, 7, 5)

	suite.ErrorIs(err, apperrors.ErrPositionNotFound)
}

func floatPtr(f float64) *float64 { return &f }

// TestAssignmentServiceTestSuite runs the test suite
func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
