package service

import (
	"context"
	"errors"
	"fmt"

	"depth-chart-backend/internal/database/models"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/recommend"
	"depth-chart-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AssignmentService manages player assignments and candidate lists
type AssignmentService struct {
	tx              repository.TxManager
	charts          repository.DepthChartRepositoryInterface
	positions       repository.PositionRepositoryInterface
	assignments     repository.AssignmentRepositoryInterface
	players         repository.PlayerRepositoryInterface
	history         historyRecorder
	scorer          *recommend.Scorer
	validator       *validator.Validate
	enforceCapacity bool
}

// AssignmentServiceOption configures an AssignmentService
type AssignmentServiceOption func(*AssignmentService)

// WithCapacityEnforcement rejects assignments to positions that already hold max_players players
func WithCapacityEnforcement(enabled bool) AssignmentServiceOption {
	return func(s *AssignmentService) {
		s.enforceCapacity = enabled
	}
}

// WithScorer replaces the default recommendation scorer
func WithScorer(scorer *recommend.Scorer) AssignmentServiceOption {
	return func(s *AssignmentService) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	tx repository.TxManager,
	charts repository.DepthChartRepositoryInterface,
	positions repository.PositionRepositoryInterface,
	assignments repository.AssignmentRepositoryInterface,
	players repository.PlayerRepositoryInterface,
	events repository.EventRepositoryInterface,
	validator *validator.Validate,
	opts ...AssignmentServiceOption,
) *AssignmentService {
	s := &AssignmentService{
		tx:          tx,
		charts:      charts,
		positions:   positions,
		assignments: assignments,
		players:     players,
		history:     historyRecorder{events: events},
		scorer:      recommend.NewScorer(),
		validator:   validator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AssignPlayerRequest represents the request to assign a player to a position
type AssignPlayerRequest struct {
	PlayerID   uint   `json:"player_id" validate:"required,min=1"`
	DepthOrder int    `json:"depth_order" validate:"required,min=1"`
	Notes      string `json:"notes,omitempty" validate:"max=500"`
}

// UpdateAssignmentRequest represents a change of rank or notes for an assignment
type UpdateAssignmentRequest struct {
	DepthOrder *int    `json:"depth_order,omitempty" validate:"omitempty,min=1"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// Assign adds a player to a position. A player may hold several positions on the same chart
// but only one active assignment per position.
func (s *AssignmentService) Assign(ctx context.Context, positionID, teamID, actorID uint, req *AssignPlayerRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var assignment models.Assignment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		position, err := s.positions.GetActiveByIDForTeam(ctx, positionID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrPositionNotFound, "get position")
		}

		player, err := s.players.GetByIDForTeam(ctx, req.PlayerID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrPlayerNotFound, "get player")
		}

		exists, err := s.assignments.ExistsActive(ctx, position.DepthChartID, position.ID, player.ID)
		if err != nil {
			return fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if exists {
			return apperrors.ErrPlayerAlreadyAssigned
		}

		if s.enforceCapacity && position.MaxPlayers != nil {
			count, err := s.assignments.CountActiveByPosition(ctx, position.ID)
			if err != nil {
				return fmt.Errorf("failed to count assignments: %w", err)
			}
			if count >= int64(*position.MaxPlayers) {
				return apperrors.ErrPositionAtCapacity
			}
		}

		assignment = models.Assignment{
			DepthChartID: position.DepthChartID,
			PositionID:   position.ID,
			PlayerID:     player.ID,
			DepthOrder:   req.DepthOrder,
			Notes:        req.Notes,
			AssignedBy:   actorID,
		}
		if err := s.assignments.Create(ctx, &assignment); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrPlayerAlreadyAssigned
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		assignment.Player = player

		return s.history.record(ctx, position.DepthChartID, teamID, actorID, models.EventPlayerAssigned,
			fmt.Sprintf("Assigned %s %s to %s at depth %d", player.FirstName, player.LastName, position.PositionCode, req.DepthOrder),
			map[string]interface{}{"assignment_id": assignment.ID, "position_id": position.ID, "player_id": player.ID, "depth_order": req.DepthOrder})
	})
	if err != nil {
		return nil, err
	}

	resp := toAssignmentResponse(&assignment)
	return &resp, nil
}

// UpdateAssignment changes the depth order or notes of an assignment
func (s *AssignmentService) UpdateAssignment(ctx context.Context, assignmentID, teamID, actorID uint, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var updated *models.Assignment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.assignments.GetActiveByIDForTeam(ctx, assignmentID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrAssignmentNotFound, "get assignment")
		}

		updates := map[string]interface{}{}
		changes := map[string]fieldChange{}
		if req.DepthOrder != nil {
			updates["depth_order"] = *req.DepthOrder
			diff(changes, "depth_order", current.DepthOrder, *req.DepthOrder)
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
			diff(changes, "notes", current.Notes, *req.Notes)
		}

		if len(updates) > 0 {
			if err := s.assignments.Update(ctx, current.ID, updates); err != nil {
				return storeError(err, apperrors.ErrAssignmentNotFound, "update assignment")
			}
			if err := s.history.record(ctx, current.DepthChartID, teamID, actorID, models.EventAssignmentUpdated,
				fmt.Sprintf("Updated assignment %d", current.ID),
				map[string]interface{}{"assignment_id": current.ID, "fields": changes}); err != nil {
				return err
			}
		}

		updated, err = s.assignments.GetActiveByIDForTeam(ctx, assignmentID, teamID)
		if err != nil {
			return fmt.Errorf("failed to reload assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toAssignmentResponse(updated)
	return &resp, nil
}

// Unassign soft-deletes an assignment on one of the team's active charts
func (s *AssignmentService) Unassign(ctx context.Context, assignmentID, teamID, actorID uint) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		assignment, err := s.assignments.GetActiveByIDForTeam(ctx, assignmentID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrAssignmentNotFound, "get assignment")
		}
		if err := s.assignments.SoftDelete(ctx, assignment.ID); err != nil {
			return storeError(err, apperrors.ErrAssignmentNotFound, "delete assignment")
		}
		return s.history.record(ctx, assignment.DepthChartID, teamID, actorID, models.EventPlayerUnassigned,
			fmt.Sprintf("Removed player %d from position %d", assignment.PlayerID, assignment.PositionID),
			map[string]interface{}{"assignment_id": assignment.ID, "position_id": assignment.PositionID, "player_id": assignment.PlayerID})
	})
}

// AvailablePlayers lists the team's active players not assigned anywhere on the chart
func (s *AssignmentService) AvailablePlayers(ctx context.Context, chartID, teamID uint) ([]PlayerResponse, error) {
	players, err := s.availablePlayers(ctx, chartID, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]PlayerResponse, 0, len(players))
	for i := range players {
		resp = append(resp, toPlayerResponse(&players[i]))
	}
	return resp, nil
}

// RecommendedPlayers ranks the chart's available players for one of its positions
func (s *AssignmentService) RecommendedPlayers(ctx context.Context, chartID, positionID, teamID uint) ([]RecommendationResponse, error) {
	position, err := s.positions.GetActiveByIDForTeam(ctx, positionID, teamID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrPositionNotFound, "get position")
	}
	if position.DepthChartID != chartID {
		return nil, apperrors.ErrPositionNotFound
	}

	candidates, err := s.availablePlayers(ctx, chartID, teamID)
	if err != nil {
		return nil, err
	}

	ranked := s.scorer.Recommend(candidates, position.PositionCode)
	resp := make([]RecommendationResponse, 0, len(ranked))
	for _, r := range ranked {
		resp = append(resp, toRecommendationResponse(r))
	}
	return resp, nil
}

func (s *AssignmentService) availablePlayers(ctx context.Context, chartID, teamID uint) ([]models.Player, error) {
	chart, err := s.charts.GetActiveByID(ctx, chartID, teamID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
	}

	assigned, err := s.assignments.ListAssignedPlayerIDs(ctx, chart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned players: %w", err)
	}

	players, err := s.players.ListAvailable(ctx, teamID, assigned)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	return players, nil
}
