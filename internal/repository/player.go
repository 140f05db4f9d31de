package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return conn(ctx, r.db).Create(player).Error
}

// GetByIDForTeam retrieves a player by ID only if it belongs to the team
func (r *PlayerRepository) GetByIDForTeam(ctx context.Context, id, teamID uint) (*models.Player, error) {
	var player models.Player
	err := conn(ctx, r.db).First(&player, "id = ? AND team_id = ?", id, teamID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByName retrieves a team's player by first and last name
func (r *PlayerRepository) GetByName(ctx context.Context, teamID uint, firstName, lastName string) (*models.Player, error) {
	var player models.Player
	err := conn(ctx, r.db).
		First(&player, "team_id = ? AND first_name = ? AND last_name = ?", teamID, firstName, lastName).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListAvailable returns the team's active-status players that are not in excludedIDs,
// ordered by first name then last name
func (r *PlayerRepository) ListAvailable(ctx context.Context, teamID uint, excludedIDs []uint) ([]models.Player, error) {
	var players []models.Player
	query := conn(ctx, r.db).
		Where("team_id = ? AND status = ?", teamID, models.PlayerStatusActive)
	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}
	err := query.Order("first_name ASC, last_name ASC, id ASC").Find(&players).Error
	return players, err
}

// Update updates a player
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	return conn(ctx, r.db).Save(player).Error
}
