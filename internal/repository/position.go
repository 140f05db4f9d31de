package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
)

// PositionRepository handles database operations for chart positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(ctx context.Context, position *models.Position) error {
	return conn(ctx, r.db).Omit("Assignments").Create(position).Error
}

// CreateBatch creates multiple positions in a single insert
func (r *PositionRepository) CreateBatch(ctx context.Context, positions []models.Position) error {
	if len(positions) == 0 {
		return nil
	}
	return conn(ctx, r.db).Omit("Assignments").Create(&positions).Error
}

// GetActiveByIDForTeam retrieves an active position whose active chart belongs to the team
func (r *PositionRepository) GetActiveByIDForTeam(ctx context.Context, id, teamID uint) (*models.Position, error) {
	var position models.Position
	err := conn(ctx, r.db).
		Joins("JOIN depth_charts ON depth_charts.id = depth_chart_positions.depth_chart_id").
		Scopes(activeIn(positionsTable), activeIn(chartsTable)).
		Where("depth_chart_positions.id = ? AND depth_charts.team_id = ?", id, teamID).
		First(&position).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// ListActiveByChart retrieves a chart's active positions by sort order
func (r *PositionRepository) ListActiveByChart(ctx context.Context, chartID uint) ([]models.Position, error) {
	var positions []models.Position
	err := conn(ctx, r.db).
		Scopes(activeIn(positionsTable)).
		Where("depth_chart_id = ?", chartID).
		Order("sort_order ASC, id ASC").
		Find(&positions).Error
	return positions, err
}

// Update applies field updates to an active position
func (r *PositionRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := conn(ctx, r.db).
		Model(&models.Position{}).
		Scopes(activeIn(positionsTable)).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete marks an active position deleted. Its assignments are left untouched.
func (r *PositionRepository) SoftDelete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).
		Model(&models.Position{}).
		Scopes(activeIn(positionsTable)).
		Where("id = ?", id).
		Update("state", models.StateDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
