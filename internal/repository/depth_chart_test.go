//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DepthChartRepositoryTestSuite tests the DepthChartRepository against Postgres
type DepthChartRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DepthChartRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	fx            chartFixture
}

func (suite *DepthChartRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewDepthChartRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

func (suite *DepthChartRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *DepthChartRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.fx = seedChart(suite.ctx, suite.T(), suite.baseTestSuite.DB, suite.factories)
}

func (suite *DepthChartRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestSecondDefaultRejectedByIndex tests the partial unique index on the team default
func (suite *DepthChartRepositoryTestSuite) TestSecondDefaultRejectedByIndex() {
	first := suite.factories.DepthChart.Default(suite.fx.team.ID, "Varsity")
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))

	second := suite.factories.DepthChart.Default(suite.fx.team.ID, "Junior Varsity")
	err := suite.repo.Create(suite.ctx, second)

	suite.True(errors.Is(err, gorm.ErrDuplicatedKey), "expected duplicated key, got %v", err)
}

// TestDeletedDefaultDoesNotBlockNewDefault tests that the default index ignores deleted charts
func (suite *DepthChartRepositoryTestSuite) TestDeletedDefaultDoesNotBlockNewDefault() {
	first := suite.factories.DepthChart.Default(suite.fx.team.ID, "Varsity")
	suite.Require().NoError(suite.repo.Create(suite.ctx, first))
	suite.Require().NoError(suite.repo.SoftDelete(suite.ctx, first.ID, suite.fx.team.ID))

	second := suite.factories.DepthChart.Default(suite.fx.team.ID, "Varsity II")
	suite.NoError(suite.repo.Create(suite.ctx, second))
}

// TestClearDefaults tests unsetting the default flag except on one chart
func (suite *DepthChartRepositoryTestSuite) TestClearDefaults() {
	def := suite.factories.DepthChart.Default(suite.fx.team.ID, "Varsity")
	suite.Require().NoError(suite.repo.Create(suite.ctx, def))

	suite.Require().NoError(suite.repo.ClearDefaults(suite.ctx, suite.fx.team.ID, suite.fx.chart.ID))

	found, err := suite.repo.GetActiveByID(suite.ctx, def.ID, suite.fx.team.ID)
	suite.NoError(err)
	suite.False(found.IsDefault)
}

// TestApplyUpdateBumpsVersion tests that each update increments the version by one
func (suite *DepthChartRepositoryTestSuite) TestApplyUpdateBumpsVersion() {
	id, team := suite.fx.chart.ID, suite.fx.team.ID

	suite.Require().NoError(suite.repo.ApplyUpdate(suite.ctx, id, team, map[string]interface{}{"name": "Renamed"}))
	suite.Require().NoError(suite.repo.ApplyUpdate(suite.ctx, id, team, map[string]interface{}{}))

	found, err := suite.repo.GetActiveByID(suite.ctx, id, team)
	suite.NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal(3, found.Version)
}

// TestApplyUpdateWrongTeam tests that updates are scoped to the owning team
func (suite *DepthChartRepositoryTestSuite) TestApplyUpdateWrongTeam() {
	err := suite.repo.ApplyUpdate(suite.ctx, suite.fx.chart.ID, suite.fx.team.ID+100, map[string]interface{}{"name": "X"})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSoftDelete tests that deleted charts disappear from active reads but stay readable for history
func (suite *DepthChartRepositoryTestSuite) TestSoftDelete() {
	id, team := suite.fx.chart.ID, suite.fx.team.ID
	suite.Require().NoError(suite.repo.SoftDelete(suite.ctx, id, team))

	_, err := suite.repo.GetActiveByID(suite.ctx, id, team)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	charts, err := suite.repo.ListActiveByTeam(suite.ctx, team)
	suite.NoError(err)
	suite.Empty(charts)

	found, err := suite.repo.GetAnyStateByID(suite.ctx, id, team)
	suite.NoError(err)
	suite.Equal(models.StateDeleted, found.State)

	suite.ErrorIs(suite.repo.SoftDelete(suite.ctx, id, team), gorm.ErrRecordNotFound)
}

// TestListActiveByTeamOrdersDefaultFirst tests list ordering
func (suite *DepthChartRepositoryTestSuite) TestListActiveByTeamOrdersDefaultFirst() {
	def := suite.factories.DepthChart.Default(suite.fx.team.ID, "Zulu")
	suite.Require().NoError(suite.repo.Create(suite.ctx, def))
	alpha := suite.factories.DepthChart.Create(suite.fx.team.ID)
	alpha.Name = "Alpha"
	suite.Require().NoError(suite.repo.Create(suite.ctx, alpha))

	charts, err := suite.repo.ListActiveByTeam(suite.ctx, suite.fx.team.ID)

	suite.NoError(err)
	suite.Require().Len(charts, 3)
	suite.Equal(def.ID, charts[0].ID)
	suite.Equal(alpha.ID, charts[1].ID)
	suite.Equal(suite.fx.chart.ID, charts[2].ID)
}

// TestRosterAndCounts tests roster preloading and the content counts
func (suite *DepthChartRepositoryTestSuite) TestRosterAndCounts() {
	db := suite.baseTestSuite.DB
	positions := NewPositionRepository(db)
	assignments := NewAssignmentRepository(db)

	removed := suite.factories.Position.Create(suite.fx.chart.ID, "C", 2)
	suite.Require().NoError(positions.Create(suite.ctx, removed))

	live := suite.factories.Assignment.Create(suite.fx.chart.ID, suite.fx.position.ID, suite.fx.player.ID, 1)
	suite.Require().NoError(assignments.Create(suite.ctx, live))
	orphan := suite.factories.Assignment.Create(suite.fx.chart.ID, removed.ID, suite.fx.player.ID, 1)
	suite.Require().NoError(assignments.Create(suite.ctx, orphan))
	suite.Require().NoError(positions.SoftDelete(suite.ctx, removed.ID))

	chart, err := suite.repo.GetActiveWithRoster(suite.ctx, suite.fx.chart.ID, suite.fx.team.ID)
	suite.NoError(err)
	suite.Require().Len(chart.Positions, 1)
	suite.Require().Len(chart.Positions[0].Assignments, 1)
	suite.Require().NotNil(chart.Positions[0].Assignments[0].Player)
	suite.Equal(suite.fx.player.ID, chart.Positions[0].Assignments[0].Player.ID)

	counts, err := suite.repo.CountContents(suite.ctx, []uint{suite.fx.chart.ID})
	suite.NoError(err)
	suite.Equal(ChartCounts{Positions: 1, Assignments: 1}, counts[suite.fx.chart.ID])

	empty, err := suite.repo.CountContents(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

func TestDepthChartRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DepthChartRepositoryTestSuite))
}
