package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for player assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return translate(conn(ctx, r.db).Omit("Player").Create(assignment).Error)
}

// GetActiveByIDForTeam retrieves an active assignment whose chart is active and owned by the team.
// The position may already be deleted so orphaned assignments can still be managed.
func (r *AssignmentRepository) GetActiveByIDForTeam(ctx context.Context, id, teamID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := conn(ctx, r.db).
		Joins("JOIN depth_chart_positions ON depth_chart_positions.id = depth_chart_players.position_id").
		Joins("JOIN depth_charts ON depth_charts.id = depth_chart_positions.depth_chart_id").
		Scopes(activeIn(assignmentsTable), activeIn(chartsTable)).
		Where("depth_chart_players.id = ? AND depth_charts.team_id = ?", id, teamID).
		Preload("Player").
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ExistsActive reports whether the player already holds an active assignment at the position on the chart
func (r *AssignmentRepository) ExistsActive(ctx context.Context, chartID, positionID, playerID uint) (bool, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&models.Assignment{}).
		Scopes(activeIn(assignmentsTable)).
		Where("depth_chart_id = ? AND position_id = ? AND player_id = ?", chartID, positionID, playerID).
		Count(&count).Error
	return count > 0, err
}

// CountActiveByPosition counts active assignments at a position
func (r *AssignmentRepository) CountActiveByPosition(ctx context.Context, positionID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&models.Assignment{}).
		Scopes(activeIn(assignmentsTable)).
		Where("position_id = ?", positionID).
		Count(&count).Error
	return count, err
}

// ListAssignedPlayerIDs returns the distinct players holding any active assignment on the chart
func (r *AssignmentRepository) ListAssignedPlayerIDs(ctx context.Context, chartID uint) ([]uint, error) {
	var ids []uint
	err := conn(ctx, r.db).
		Model(&models.Assignment{}).
		Scopes(activeIn(assignmentsTable)).
		Where("depth_chart_id = ?", chartID).
		Distinct().
		Pluck("player_id", &ids).Error
	return ids, err
}

// Update applies field updates to an active assignment
func (r *AssignmentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := conn(ctx, r.db).
		Model(&models.Assignment{}).
		Scopes(activeIn(assignmentsTable)).
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

// SoftDelete marks an active assignment deleted
func (r *AssignmentRepository) SoftDelete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).
		Model(&models.Assignment{}).
		Scopes(activeIn(assignmentsTable)).
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
