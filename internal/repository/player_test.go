//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	teams         *TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	team          *models.Team
}

func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.teams = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.team = suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(suite.ctx, suite.team))
}

func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlayerRepositoryTestSuite) createPlayer(firstName string, status models.PlayerStatus) *models.Player {
	player := suite.factories.Player.WithName(suite.team.ID, firstName, "Test", "CF")
	player.Status = status
	suite.Require().NoError(suite.repo.Create(suite.ctx, player))
	return player
}

// TestCreateStoresStats tests that embedded stats round-trip through the players table
func (suite *PlayerRepositoryTestSuite) TestCreateStoresStats() {
	player := suite.factories.Player.Pitcher(suite.team.ID, "Casey", "P", 3.1)
	suite.Require().NoError(suite.repo.Create(suite.ctx, player))

	found, err := suite.repo.GetByIDForTeam(suite.ctx, player.ID, suite.team.ID)

	suite.NoError(err)
	suite.Require().NotNil(found.Stats.ERA)
	suite.InDelta(3.1, *found.Stats.ERA, 0.0001)
	suite.Nil(found.Stats.BattingAverage)
}

// TestGetByIDForTeamRejectsOtherTeam tests that players are scoped to their team
func (suite *PlayerRepositoryTestSuite) TestGetByIDForTeamRejectsOtherTeam() {
	player := suite.createPlayer("Avery", models.PlayerStatusActive)

	other := suite.factories.Team.Create()
	suite.Require().NoError(suite.teams.Create(suite.ctx, other))

	_, err := suite.repo.GetByIDForTeam(suite.ctx, player.ID, other.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListAvailable tests status filtering, exclusion and ordering
func (suite *PlayerRepositoryTestSuite) TestListAvailable() {
	zed := suite.createPlayer("Zed", models.PlayerStatusActive)
	amy := suite.createPlayer("Amy", models.PlayerStatusActive)
	mia := suite.createPlayer("Mia", models.PlayerStatusActive)
	suite.createPlayer("Ian", models.PlayerStatusInjured)
	suite.createPlayer("Gus", models.PlayerStatusGraduated)

	players, err := suite.repo.ListAvailable(suite.ctx, suite.team.ID, nil)
	suite.NoError(err)
	suite.Require().Len(players, 3)
	suite.Equal([]uint{amy.ID, mia.ID, zed.ID}, []uint{players[0].ID, players[1].ID, players[2].ID})

	players, err = suite.repo.ListAvailable(suite.ctx, suite.team.ID, []uint{mia.ID})
	suite.NoError(err)
	suite.Require().Len(players, 2)
	suite.Equal(amy.ID, players[0].ID)
	suite.Equal(zed.ID, players[1].ID)
}

// TestUpdate tests saving changed player fields
func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.createPlayer("Rory", models.PlayerStatusActive)
	player.Status = models.PlayerStatusInjured
	player.MedicalConditions = "Sprained ankle"

	suite.Require().NoError(suite.repo.Update(suite.ctx, player))

	found, err := suite.repo.GetByName(suite.ctx, suite.team.ID, "Rory", "Test")
	suite.NoError(err)
	suite.Equal(models.PlayerStatusInjured, found.Status)
	suite.True(found.HasMedicalIssues())
}

func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
