package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
)

// ChartCounts holds the number of active positions and assignments on a chart
type ChartCounts struct {
	Positions   int64
	Assignments int64
}

// DepthChartRepository handles database operations for depth charts
type DepthChartRepository struct {
	db *gorm.DB
}

// NewDepthChartRepository creates a new depth chart repository
func NewDepthChartRepository(db *gorm.DB) *DepthChartRepository {
	return &DepthChartRepository{db: db}
}

// Create creates a new depth chart
func (r *DepthChartRepository) Create(ctx context.Context, chart *models.DepthChart) error {
	return translate(conn(ctx, r.db).Omit("Positions").Create(chart).Error)
}

// GetActiveByID retrieves an active chart owned by the team
func (r *DepthChartRepository) GetActiveByID(ctx context.Context, id, teamID uint) (*models.DepthChart, error) {
	var chart models.DepthChart
	err := conn(ctx, r.db).
		Scopes(activeIn(chartsTable)).
		First(&chart, "depth_charts.id = ? AND depth_charts.team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetAnyStateByID retrieves a chart owned by the team whether or not it has been deleted.
// Only history lookups use it.
func (r *DepthChartRepository) GetAnyStateByID(ctx context.Context, id, teamID uint) (*models.DepthChart, error) {
	var chart models.DepthChart
	err := conn(ctx, r.db).First(&chart, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// GetActiveWithRoster retrieves an active chart with its active positions and their active assignments
func (r *DepthChartRepository) GetActiveWithRoster(ctx context.Context, id, teamID uint) (*models.DepthChart, error) {
	var chart models.DepthChart
	err := conn(ctx, r.db).
		Scopes(activeIn(chartsTable)).
		Preload("Positions", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(activeIn(positionsTable)).Order("sort_order ASC, id ASC")
		}).
		Preload("Positions.Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(activeIn(assignmentsTable)).Order("depth_order ASC, id ASC")
		}).
		Preload("Positions.Assignments.Player").
		First(&chart, "depth_charts.id = ? AND depth_charts.team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// ListActiveByTeam retrieves the team's active charts, default first then by name
func (r *DepthChartRepository) ListActiveByTeam(ctx context.Context, teamID uint) ([]models.DepthChart, error) {
	var charts []models.DepthChart
	err := conn(ctx, r.db).
		Scopes(activeIn(chartsTable)).
		Where("team_id = ?", teamID).
		Order("is_default DESC, name ASC, id ASC").
		Find(&charts).Error
	return charts, err
}

// CountContents returns active position and assignment counts keyed by chart ID
func (r *DepthChartRepository) CountContents(ctx context.Context, chartIDs []uint) (map[uint]ChartCounts, error) {
	counts := make(map[uint]ChartCounts, len(chartIDs))
	if len(chartIDs) == 0 {
		return counts, nil
	}

	type row struct {
		DepthChartID uint
		Total        int64
	}

	var positionRows []row
	err := conn(ctx, r.db).
		Model(&models.Position{}).
		Select("depth_chart_id, COUNT(*) AS total").
		Scopes(activeIn(positionsTable)).
		Where("depth_chart_id IN ?", chartIDs).
		Group("depth_chart_id").
		Scan(&positionRows).Error
	if err != nil {
		return nil, err
	}

	// Assignments under a deleted position are not listed, so they are not counted either
	var assignmentRows []row
	err = conn(ctx, r.db).
		Model(&models.Assignment{}).
		Select("depth_chart_players.depth_chart_id, COUNT(*) AS total").
		Joins("JOIN depth_chart_positions ON depth_chart_positions.id = depth_chart_players.position_id").
		Scopes(activeIn(assignmentsTable), activeIn(positionsTable)).
		Where("depth_chart_players.depth_chart_id IN ?", chartIDs).
		Group("depth_chart_players.depth_chart_id").
		Scan(&assignmentRows).Error
	if err != nil {
		return nil, err
	}

	for _, pr := range positionRows {
		c := counts[pr.DepthChartID]
		c.Positions = pr.Total
		counts[pr.DepthChartID] = c
	}
	for _, ar := range assignmentRows {
		c := counts[ar.DepthChartID]
		c.Assignments = ar.Total
		counts[ar.DepthChartID] = c
	}
	return counts, nil
}

// ClearDefaults unsets is_default on every active chart of the team except exceptID.
// Pass exceptID 0 to clear them all.
func (r *DepthChartRepository) ClearDefaults(ctx context.Context, teamID, exceptID uint) error {
	return conn(ctx, r.db).
		Model(&models.DepthChart{}).
		Scopes(activeIn(chartsTable)).
		Where("team_id = ? AND is_default = ? AND id <> ?", teamID, true, exceptID).
		Update("is_default", false).Error
}

// ApplyUpdate writes updates to an active chart and bumps its version in the same statement.
// Returns gorm.ErrRecordNotFound when no active chart matched.
func (r *DepthChartRepository) ApplyUpdate(ctx context.Context, id, teamID uint, updates map[string]interface{}) error {
	values := make(map[string]interface{}, len(updates)+1)
	for k, v := range updates {
		values[k] = v
	}
	values["version"] = gorm.Expr("version + 1")

	result := conn(ctx, r.db).
		Model(&models.DepthChart{}).
		Scopes(activeIn(chartsTable)).
		Where("id = ? AND team_id = ?", id, teamID).
		Updates(values)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks an active chart deleted and drops its default flag.
// Returns gorm.ErrRecordNotFound when no active chart matched.
func (r *DepthChartRepository) SoftDelete(ctx context.Context, id, teamID uint) error {
	result := conn(ctx, r.db).
		Model(&models.DepthChart{}).
		Scopes(activeIn(chartsTable)).
		Where("id = ? AND team_id = ?", id, teamID).
		Updates(map[string]interface{}{
			"state":      models.StateDeleted,
			"is_default": false,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
