package handlers_test

import (
	"net/http"
	"testing"

	"depth-chart-backend/internal/api/handlers"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/mocks"
	"depth-chart-backend/internal/service"
	"depth-chart-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentServiceInterface
	handler     *handlers.AssignmentHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssignmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAssignmentHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.AuthenticateAs(coach)

	charts := suite.httpSuite.Router.Group("/api/v1/depth-charts")
	{
		charts.POST("/positions/:positionId/players", suite.handler.AssignPlayer)
		charts.PUT("/players/:assignmentId", suite.handler.UpdateAssignment)
		charts.DELETE("/players/:assignmentId", suite.handler.UnassignPlayer)
		charts.GET("/:id/available-players", suite.handler.GetAvailablePlayers)
		charts.GET("/:id/recommended-players/:positionId", suite.handler.GetRecommendedPlayers)
	}
}

// TearDownTest cleans up after each test
func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestAssignPlayer tests the AssignPlayer handler
func (suite *AssignmentHandlerTestSuite) TestAssignPlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), uint(9), coach.TeamID, coach.UserID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _, _, _ uint, req *service.AssignPlayerRequest) (*service.AssignmentResponse, error) {
				assert.Equal(t, uint(21), req.PlayerID)
				assert.Equal(t, 1, req.DepthOrder)
				return &service.AssignmentResponse{
					ID: 40, PositionID: 9, PlayerID: 21, DepthOrder: 1, AssignedBy: coach.UserID,
					Player: &service.PlayerSummary{ID: 21, FirstName: "Ozzie", LastName: "Smith"},
				}, nil
			}).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/depth-charts/positions/9/players",
			map[string]interface{}{"player_id": 21, "depth_order": 1})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.AssignmentResponse
		testutils.ParseDataResponse(t, recorder, &response)
		assert.Equal(t, uint(40), response.ID)
		require.NotNil(t, response.Player)
		assert.Equal(t, "Ozzie", response.Player.FirstName)
	})

	suite.T().Run("Already assigned", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), uint(9), coach.TeamID, coach.UserID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerAlreadyAssigned).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/depth-charts/positions/9/players",
			map[string]interface{}{"player_id": 21, "depth_order": 2})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "already assigned")
	})

	suite.T().Run("Player from another team", func(t *testing.T) {
		suite.mockService.EXPECT().
			Assign(gomock.Any(), uint(9), coach.TeamID, coach.UserID, gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/depth-charts/positions/9/players",
			map[string]interface{}{"player_id": 500, "depth_order": 1})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Player not found")
	})

	suite.T().Run("Wrong body type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/depth-charts/positions/9/players",
			map[string]interface{}{"player_id": "twenty-one", "depth_order": 1})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid request body")
	})
}

// TestUpdateAssignment tests the UpdateAssignment handler
func (suite *AssignmentHandlerTestSuite) TestUpdateAssignment() {
	suite.mockService.EXPECT().
		UpdateAssignment(gomock.Any(), uint(40), coach.TeamID, coach.UserID, gomock.Any()).
		Return(&service.AssignmentResponse{ID: 40, DepthOrder: 3}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/depth-charts/players/40", map[string]interface{}{"depth_order": 3})

	suite.Equal(http.StatusOK, recorder.Code)
	var response service.AssignmentResponse
	testutils.ParseDataResponse(suite.T(), recorder, &response)
	suite.Equal(3, response.DepthOrder)
}

// TestUnassignPlayer tests the UnassignPlayer handler
func (suite *AssignmentHandlerTestSuite) TestUnassignPlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().Unassign(gomock.Any(), uint(40), coach.TeamID, coach.UserID).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/depth-charts/players/40", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "removed from position")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().Unassign(gomock.Any(), uint(41), coach.TeamID, coach.UserID).Return(apperrors.ErrAssignmentNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/depth-charts/players/41", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Assignment not found")
	})
}

// TestGetAvailablePlayers tests the GetAvailablePlayers handler
func (suite *AssignmentHandlerTestSuite) TestGetAvailablePlayers() {
	players := []service.PlayerResponse{
		{ID: 1, FirstName: "Abe", LastName: "Bench", Position: "C"},
		{ID: 2, FirstName: "Ben", LastName: "Zobrist", Position: "UTIL", HasMedicalIssues: true},
	}
	suite.mockService.EXPECT().AvailablePlayers(gomock.Any(), uint(4), coach.TeamID).Return(players, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/depth-charts/4/available-players", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	var response []service.PlayerResponse
	testutils.ParseDataResponse(suite.T(), recorder, &response)
	suite.Require().Len(response, 2)
	suite.True(response[1].HasMedicalIssues)
}

// TestGetRecommendedPlayers tests the GetRecommendedPlayers handler
func (suite *AssignmentHandlerTestSuite) TestGetRecommendedPlayers() {
	suite.T().Run("Success", func(t *testing.T) {
		ranked := []service.RecommendationResponse{
			{Player: service.PlayerResponse{ID: 1, FirstName: "P1"}, Score: 170, Reasons: []string{"Exact position match", "Excellent ERA: 2.80", "No medical issues"}},
			{Player: service.PlayerResponse{ID: 3, FirstName: "P3"}, Score: 130, Reasons: []string{"Position group match", "Good ERA: 3.50", "No medical issues"}},
		}
		suite.mockService.EXPECT().RecommendedPlayers(gomock.Any(), uint(4), uint(9), coach.TeamID).Return(ranked, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/depth-charts/4/recommended-players/9", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response []service.RecommendationResponse
		testutils.ParseDataResponse(t, recorder, &response)
		require.Len(t, response, 2)
		assert.Equal(t, 170, response[0].Score)
		assert.Equal(t, "Excellent ERA: 2.80", response[0].Reasons[1])
	})

	suite.T().Run("Position not on chart", func(t *testing.T) {
		suite.mockService.EXPECT().RecommendedPlayers(gomock.Any(), uint(4), uint(77), coach.TeamID).Return(nil, apperrors.ErrPositionNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/depth-charts/4/recommended-players/77", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Position not found")
	})

	suite.T().Run("Invalid position id", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/depth-charts/4/recommended-players/-2", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid positionId")
	})
}

// TestAssignmentHandlerTestSuite runs the test suite
func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
