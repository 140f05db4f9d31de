package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManager defines the interface for running work inside one store transaction
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uint) (*models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(ctx context.Context, player *models.Player) error
	GetByIDForTeam(ctx context.Context, id, teamID uint) (*models.Player, error)
	GetByName(ctx context.Context, teamID uint, firstName, lastName string) (*models.Player, error)
	ListAvailable(ctx context.Context, teamID uint, excludedIDs []uint) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
}

// DepthChartRepositoryInterface defines the interface for depth chart repository operations
type DepthChartRepositoryInterface interface {
	Create(ctx context.Context, chart *models.DepthChart) error
	GetActiveByID(ctx context.Context, id, teamID uint) (*models.DepthChart, error)
	GetAnyStateByID(ctx context.Context, id, teamID uint) (*models.DepthChart, error)
	GetActiveWithRoster(ctx context.Context, id, teamID uint) (*models.DepthChart, error)
	ListActiveByTeam(ctx context.Context, teamID uint) ([]models.DepthChart, error)
	CountContents(ctx context.Context, chartIDs []uint) (map[uint]ChartCounts, error)
	ClearDefaults(ctx context.Context, teamID, exceptID uint) error
	ApplyUpdate(ctx context.Context, id, teamID uint, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, id, teamID uint) error
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(ctx context.Context, position *models.Position) error
	CreateBatch(ctx context.Context, positions []models.Position) error
	GetActiveByIDForTeam(ctx context.Context, id, teamID uint) (*models.Position, error)
	ListActiveByChart(ctx context.Context, chartID uint) ([]models.Position, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetActiveByIDForTeam(ctx context.Context, id, teamID uint) (*models.Assignment, error)
	ExistsActive(ctx context.Context, chartID, positionID, playerID uint) (bool, error)
	CountActiveByPosition(ctx context.Context, positionID uint) (int64, error)
	ListAssignedPlayerIDs(ctx context.Context, chartID uint) ([]uint, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint) error
}

// EventRepositoryInterface defines the interface for chart history operations
type EventRepositoryInterface interface {
	Append(ctx context.Context, event *models.DepthChartEvent) error
	ListByChart(ctx context.Context, chartID uint) ([]models.DepthChartEvent, error)
}
