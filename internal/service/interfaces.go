package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DepthChartServiceInterface defines the interface for chart lifecycle operations
type DepthChartServiceInterface interface {
	List(ctx context.Context, teamID uint) ([]DepthChartSummary, error)
	Get(ctx context.Context, id, teamID uint) (*DepthChartDetail, error)
	Create(ctx context.Context, teamID, actorID uint, req *CreateDepthChartRequest) (*DepthChartDetail, error)
	Update(ctx context.Context, id, teamID, actorID uint, req *UpdateDepthChartRequest) (*DepthChartResponse, error)
	Delete(ctx context.Context, id, teamID, actorID uint) error
	Duplicate(ctx context.Context, id, teamID, actorID uint) (*DuplicateResponse, error)
	History(ctx context.Context, id, teamID uint) ([]HistoryEntry, error)
}

// PositionServiceInterface defines the interface for position management
type PositionServiceInterface interface {
	Add(ctx context.Context, chartID, teamID, actorID uint, req *CreatePositionRequest) (*PositionResponse, error)
	Update(ctx context.Context, positionID, teamID, actorID uint, req *UpdatePositionRequest) (*PositionResponse, error)
	Delete(ctx context.Context, positionID, teamID, actorID uint) error
}

// AssignmentServiceInterface defines the interface for player assignment operations
type AssignmentServiceInterface interface {
	Assign(ctx context.Context, positionID, teamID, actorID uint, req *AssignPlayerRequest) (*AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, assignmentID, teamID, actorID uint, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	Unassign(ctx context.Context, assignmentID, teamID, actorID uint) error
	AvailablePlayers(ctx context.Context, chartID, teamID uint) ([]PlayerResponse, error)
	RecommendedPlayers(ctx context.Context, chartID, positionID, teamID uint) ([]RecommendationResponse, error)
}
