//go:build integration
// +build integration

package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// chartFixture is a team with one player, one chart and one position on it
type chartFixture struct {
	team     *models.Team
	player   *models.Player
	chart    *models.DepthChart
	position *models.Position
}

func seedChart(ctx context.Context, t require.TestingT, db *gorm.DB, f *testutils.FactorySet) chartFixture {
	team := f.Team.Create()
	require.NoError(t, NewTeamRepository(db).Create(ctx, team))

	player := f.Player.Create(team.ID)
	require.NoError(t, NewPlayerRepository(db).Create(ctx, player))

	chart := f.DepthChart.Create(team.ID)
	require.NoError(t, NewDepthChartRepository(db).Create(ctx, chart))

	position := f.Position.Create(chart.ID, "SS", 6)
	require.NoError(t, NewPositionRepository(db).Create(ctx, position))

	return chartFixture{team: team, player: player, chart: chart, position: position}
}
