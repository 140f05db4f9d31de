package service

import (
	"context"
	"fmt"
	"strings"

	"depth-chart-backend/internal/database/models"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PositionService manages the positions of a depth chart
type PositionService struct {
	tx        repository.TxManager
	charts    repository.DepthChartRepositoryInterface
	positions repository.PositionRepositoryInterface
	history   historyRecorder
	validator *validator.Validate
}

// NewPositionService creates a new position service
func NewPositionService(
	tx repository.TxManager,
	charts repository.DepthChartRepositoryInterface,
	positions repository.PositionRepositoryInterface,
	events repository.EventRepositoryInterface,
	validator *validator.Validate,
) *PositionService {
	return &PositionService{
		tx:        tx,
		charts:    charts,
		positions: positions,
		history:   historyRecorder{events: events},
		validator: validator,
	}
}

// CreatePositionRequest represents the request to add a position to a chart
type CreatePositionRequest struct {
	PositionCode string `json:"position_code" validate:"required,min=1,max=10"`
	PositionName string `json:"position_name" validate:"required,min=1,max=50"`
	Color        string `json:"color,omitempty" validate:"omitempty,len=7,hexcolor"`
	Icon         string `json:"icon,omitempty" validate:"max=50"`
	SortOrder    *int   `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
	MaxPlayers   *int   `json:"max_players,omitempty" validate:"omitempty,min=1"`
	Description  string `json:"description,omitempty" validate:"max=500"`
}

// UpdatePositionRequest represents a partial update of a position
type UpdatePositionRequest struct {
	PositionCode *string `json:"position_code,omitempty" validate:"omitempty,min=1,max=10"`
	PositionName *string `json:"position_name,omitempty" validate:"omitempty,min=1,max=50"`
	Color        *string `json:"color,omitempty" validate:"omitempty,len=7,hexcolor"`
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	SortOrder    *int    `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
	MaxPlayers   *int    `json:"max_players,omitempty" validate:"omitempty,min=1"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// Add creates a position on an active chart of the team.
// Without an explicit sort order the position goes after the existing ones.
func (s *PositionService) Add(ctx context.Context, chartID, teamID, actorID uint, req *CreatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if _, err := normalizeCode("position_code", req.PositionCode); err != nil {
		return nil, err
	}

	var position models.Position
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		chart, err := s.charts.GetActiveByID(ctx, chartID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
		}

		sortOrder := 0
		if req.SortOrder != nil {
			sortOrder = *req.SortOrder
		} else {
			existing, err := s.positions.ListActiveByChart(ctx, chart.ID)
			if err != nil {
				return fmt.Errorf("failed to list positions: %w", err)
			}
			for _, p := range existing {
				if p.SortOrder >= sortOrder {
					sortOrder = p.SortOrder + 1
				}
			}
		}

		position = newPosition(chart.ID, req, sortOrder)
		if err := s.positions.Create(ctx, &position); err != nil {
			return fmt.Errorf("failed to create position: %w", err)
		}

		return s.history.record(ctx, chart.ID, teamID, actorID, models.EventPositionAdded,
			fmt.Sprintf("Added position %s", position.PositionCode),
			map[string]interface{}{"position_id": position.ID, "position_code": position.PositionCode})
	})
	if err != nil {
		return nil, err
	}

	resp := toPositionResponse(&position)
	return &resp, nil
}

// Update applies a partial update to a position of one of the team's active charts
func (s *PositionService) Update(ctx context.Context, positionID, teamID, actorID uint, req *UpdatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	var code string
	if req.PositionCode != nil {
		normalized, err := normalizeCode("position_code", *req.PositionCode)
		if err != nil {
			return nil, err
		}
		code = normalized
	}

	var updated *models.Position
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.positions.GetActiveByIDForTeam(ctx, positionID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrPositionNotFound, "get position")
		}

		updates := map[string]interface{}{}
		changes := map[string]fieldChange{}
		if req.PositionCode != nil {
			updates["position_code"] = code
			diff(changes, "position_code", current.PositionCode, code)
		}
		if req.PositionName != nil {
			updates["position_name"] = *req.PositionName
			diff(changes, "position_name", current.PositionName, *req.PositionName)
		}
		if req.Color != nil {
			updates["color"] = *req.Color
			diff(changes, "color", current.Color, *req.Color)
		}
		if req.Icon != nil {
			updates["icon"] = *req.Icon
			diff(changes, "icon", current.Icon, *req.Icon)
		}
		if req.SortOrder != nil {
			updates["sort_order"] = *req.SortOrder
			diff(changes, "sort_order", current.SortOrder, *req.SortOrder)
		}
		if req.MaxPlayers != nil {
			updates["max_players"] = *req.MaxPlayers
			diff(changes, "max_players", current.MaxPlayers, req.MaxPlayers)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
			diff(changes, "description", current.Description, *req.Description)
		}

		if len(updates) > 0 {
			if err := s.positions.Update(ctx, current.ID, updates); err != nil {
				return storeError(err, apperrors.ErrPositionNotFound, "update position")
			}
			if err := s.history.record(ctx, current.DepthChartID, teamID, actorID, models.EventPositionUpdated,
				fmt.Sprintf("Updated position %s", current.PositionCode),
				map[string]interface{}{"position_id": current.ID, "fields": changes}); err != nil {
				return err
			}
		}

		updated, err = s.positions.GetActiveByIDForTeam(ctx, positionID, teamID)
		if err != nil {
			return fmt.Errorf("failed to reload position: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toPositionResponse(updated)
	return &resp, nil
}

// Delete soft-deletes a position. Its assignments stay active.
func (s *PositionService) Delete(ctx context.Context, positionID, teamID, actorID uint) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		position, err := s.positions.GetActiveByIDForTeam(ctx, positionID, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrPositionNotFound, "get position")
		}
		if err := s.positions.SoftDelete(ctx, position.ID); err != nil {
			return storeError(err, apperrors.ErrPositionNotFound, "delete position")
		}
		return s.history.record(ctx, position.DepthChartID, teamID, actorID, models.EventPositionRemoved,
			fmt.Sprintf("Removed position %s", position.PositionCode),
			map[string]interface{}{"position_id": position.ID, "position_code": position.PositionCode})
	})
}

// normalizeCode trims and upper-cases a position code. A code that is blank once trimmed is rejected.
func normalizeCode(field, code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", apperrors.NewValidationError(field, "must not be blank")
	}
	return normalized, nil
}

func newPosition(chartID uint, req *CreatePositionRequest, sortOrder int) models.Position {
	return models.Position{
		DepthChartID: chartID,
		PositionCode: strings.ToUpper(strings.TrimSpace(req.PositionCode)),
		PositionName: req.PositionName,
		Color:        req.Color,
		Icon:         req.Icon,
		SortOrder:    sortOrder,
		MaxPlayers:   req.MaxPlayers,
		Description:  req.Description,
	}
}
