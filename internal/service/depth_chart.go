package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"depth-chart-backend/internal/database/models"
	apperrors "depth-chart-backend/internal/errors"
	"depth-chart-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	maxChartNameLength = 100
	copySuffix         = " (Copy)"
)

// DepthChartService handles the lifecycle of depth charts
type DepthChartService struct {
	tx        repository.TxManager
	charts    repository.DepthChartRepositoryInterface
	positions repository.PositionRepositoryInterface
	events    repository.EventRepositoryInterface
	history   historyRecorder
	validator *validator.Validate
}

// NewDepthChartService creates a new depth chart service
func NewDepthChartService(
	tx repository.TxManager,
	charts repository.DepthChartRepositoryInterface,
	positions repository.PositionRepositoryInterface,
	events repository.EventRepositoryInterface,
	validator *validator.Validate,
) *DepthChartService {
	return &DepthChartService{
		tx:        tx,
		charts:    charts,
		positions: positions,
		events:    events,
		history:   historyRecorder{events: events},
		validator: validator,
	}
}

// CreateDepthChartRequest represents the request to create a depth chart
type CreateDepthChartRequest struct {
	Name          string                  `json:"name" validate:"required,min=1,max=100"`
	Description   string                  `json:"description,omitempty" validate:"max=1000"`
	IsDefault     bool                    `json:"is_default,omitempty"`
	EffectiveDate *string                 `json:"effective_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         string                  `json:"notes,omitempty" validate:"max=1000"`
	Positions     []CreatePositionRequest `json:"positions,omitempty" validate:"omitempty,dive"`
}

// UpdateDepthChartRequest represents a partial update of a depth chart
type UpdateDepthChartRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	IsDefault     *bool   `json:"is_default,omitempty"`
	EffectiveDate *string `json:"effective_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// List returns the team's active charts with their roster counts
func (s *DepthChartService) List(ctx context.Context, teamID uint) ([]DepthChartSummary, error) {
	charts, err := s.charts.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list depth charts: %w", err)
	}

	ids := make([]uint, 0, len(charts))
	for _, chart := range charts {
		ids = append(ids, chart.ID)
	}
	counts, err := s.charts.CountContents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count depth chart contents: %w", err)
	}

	summaries := make([]DepthChartSummary, 0, len(charts))
	for i := range charts {
		c := counts[charts[i].ID]
		summaries = append(summaries, DepthChartSummary{
			DepthChartResponse: toChartResponse(&charts[i]),
			PositionCount:      c.Positions,
			AssignmentCount:    c.Assignments,
		})
	}
	return summaries, nil
}

// Get returns an active chart with its positions and assigned players
func (s *DepthChartService) Get(ctx context.Context, id, teamID uint) (*DepthChartDetail, error) {
	chart, err := s.charts.GetActiveWithRoster(ctx, id, teamID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
	}
	return toChartDetail(chart), nil
}

// Create creates a chart with either the supplied positions or the standard baseball set.
// Clearing the previous default and inserting the chart happen in one transaction.
func (s *DepthChartService) Create(ctx context.Context, teamID, actorID uint, req *CreateDepthChartRequest) (*DepthChartDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "is required")
	}
	for i := range req.Positions {
		if _, err := normalizeCode(fmt.Sprintf("positions[%d].position_code", i), req.Positions[i].PositionCode); err != nil {
			return nil, err
		}
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	chart := &models.DepthChart{
		TeamID:        teamID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		IsDefault:     req.IsDefault,
		Version:       1,
		EffectiveDate: effectiveDate,
		Notes:         req.Notes,
		CreatedBy:     actorID,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if chart.IsDefault {
			if err := s.charts.ClearDefaults(ctx, teamID, 0); err != nil {
				return fmt.Errorf("failed to clear default depth charts: %w", err)
			}
		}
		if err := s.charts.Create(ctx, chart); err != nil {
			return defaultConflict(err, "create depth chart")
		}

		chart.Positions = buildPositions(chart.ID, req.Positions)
		if err := s.positions.CreateBatch(ctx, chart.Positions); err != nil {
			return fmt.Errorf("failed to create positions: %w", err)
		}

		return s.history.record(ctx, chart.ID, teamID, actorID, models.EventChartCreated,
			fmt.Sprintf("Created depth chart %q with %d positions", chart.Name, len(chart.Positions)), nil)
	})
	if err != nil {
		return nil, err
	}

	return toChartDetail(chart), nil
}

// Update applies a partial update to an active chart and increments its version,
// even when no field value actually changes.
func (s *DepthChartService) Update(ctx context.Context, id, teamID, actorID uint, req *UpdateDepthChartRequest) (*DepthChartResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be blank")
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	var updated *models.DepthChart
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.charts.GetActiveByID(ctx, id, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
		}

		updates := map[string]interface{}{}
		changes := map[string]fieldChange{}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			updates["name"] = name
			diff(changes, "name", current.Name, name)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
			diff(changes, "description", current.Description, *req.Description)
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
			diff(changes, "notes", current.Notes, *req.Notes)
		}
		if effectiveDate != nil {
			updates["effective_date"] = effectiveDate
			diff(changes, "effective_date", formatDate(current.EffectiveDate), formatDate(effectiveDate))
		} else if req.EffectiveDate != nil {
			// An explicit empty string clears the date
			updates["effective_date"] = nil
			diff(changes, "effective_date", formatDate(current.EffectiveDate), formatDate(nil))
		}
		if req.IsDefault != nil {
			if *req.IsDefault && !current.IsDefault {
				if err := s.charts.ClearDefaults(ctx, teamID, id); err != nil {
					return fmt.Errorf("failed to clear default depth charts: %w", err)
				}
			}
			updates["is_default"] = *req.IsDefault
			diff(changes, "is_default", current.IsDefault, *req.IsDefault)
		}
		diff(changes, "version", current.Version, current.Version+1)

		if err := s.charts.ApplyUpdate(ctx, id, teamID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDepthChartNotFound
			}
			return defaultConflict(err, "update depth chart")
		}

		if err := s.history.record(ctx, id, teamID, actorID, models.EventChartUpdated,
			fmt.Sprintf("Updated depth chart to version %d", current.Version+1), changes); err != nil {
			return err
		}

		updated, err = s.charts.GetActiveByID(ctx, id, teamID)
		if err != nil {
			return fmt.Errorf("failed to reload depth chart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toChartResponse(updated)
	return &resp, nil
}

// Delete soft-deletes an active chart. Deleting it again reports not found.
func (s *DepthChartService) Delete(ctx context.Context, id, teamID, actorID uint) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.charts.SoftDelete(ctx, id, teamID); err != nil {
			return storeError(err, apperrors.ErrDepthChartNotFound, "delete depth chart")
		}
		return s.history.record(ctx, id, teamID, actorID, models.EventChartDeleted, "Deleted depth chart", nil)
	})
}

// Duplicate copies an active chart and its active positions into a new non-default chart.
// Assignments are not copied.
func (s *DepthChartService) Duplicate(ctx context.Context, id, teamID, actorID uint) (*DuplicateResponse, error) {
	var copyID uint
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		source, err := s.charts.GetActiveByID(ctx, id, teamID)
		if err != nil {
			return storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
		}
		sourcePositions, err := s.positions.ListActiveByChart(ctx, source.ID)
		if err != nil {
			return fmt.Errorf("failed to list positions: %w", err)
		}

		duplicate := &models.DepthChart{
			TeamID:      teamID,
			Name:        copyName(source.Name),
			Description: source.Description,
			IsDefault:   false,
			Version:     1,
			Notes:       source.Notes,
			CreatedBy:   actorID,
		}
		if err := s.charts.Create(ctx, duplicate); err != nil {
			return fmt.Errorf("failed to create depth chart copy: %w", err)
		}

		copies := make([]models.Position, 0, len(sourcePositions))
		for _, p := range sourcePositions {
			copies = append(copies, models.Position{
				DepthChartID: duplicate.ID,
				PositionCode: p.PositionCode,
				PositionName: p.PositionName,
				Color:        p.Color,
				Icon:         p.Icon,
				SortOrder:    p.SortOrder,
				MaxPlayers:   p.MaxPlayers,
				Description:  p.Description,
			})
		}
		if err := s.positions.CreateBatch(ctx, copies); err != nil {
			return fmt.Errorf("failed to copy positions: %w", err)
		}

		copyID = duplicate.ID
		return s.history.record(ctx, duplicate.ID, teamID, actorID, models.EventChartDuplicated,
			fmt.Sprintf("Duplicated from depth chart %q", source.Name),
			map[string]uint{"source_id": source.ID})
	})
	if err != nil {
		return nil, err
	}
	return &DuplicateResponse{ID: copyID}, nil
}

// History returns a chart's change events oldest first. Deleted charts keep their history.
func (s *DepthChartService) History(ctx context.Context, id, teamID uint) ([]HistoryEntry, error) {
	chart, err := s.charts.GetAnyStateByID(ctx, id, teamID)
	if err != nil {
		return nil, storeError(err, apperrors.ErrDepthChartNotFound, "get depth chart")
	}

	events, err := s.events.ListByChart(ctx, chart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list depth chart history: %w", err)
	}

	if len(events) == 0 {
		return []HistoryEntry{{
			Action:    string(models.EventChartCreated),
			Summary:   "Created",
			ActorID:   chart.CreatedBy,
			CreatedAt: chart.CreatedAt.Format(time.RFC3339),
		}}, nil
	}

	entries := make([]HistoryEntry, 0, len(events))
	for i := range events {
		entries = append(entries, toHistoryEntry(&events[i]))
	}
	return entries, nil
}

// buildPositions returns the requested positions, or the standard set when none were requested
func buildPositions(chartID uint, requested []CreatePositionRequest) []models.Position {
	if len(requested) == 0 {
		positions := make([]models.Position, 0, len(models.StandardPositions))
		for i, sp := range models.StandardPositions {
			positions = append(positions, models.Position{
				DepthChartID: chartID,
				PositionCode: sp.Code,
				PositionName: sp.Name,
				Color:        sp.Color,
				Icon:         sp.Icon,
				SortOrder:    i + 1,
			})
		}
		return positions
	}

	positions := make([]models.Position, 0, len(requested))
	for i := range requested {
		sortOrder := i + 1
		if requested[i].SortOrder != nil {
			sortOrder = *requested[i].SortOrder
		}
		positions = append(positions, newPosition(chartID, &requested[i], sortOrder))
	}
	return positions
}

func copyName(name string) string {
	return truncate(name, maxChartNameLength-len([]rune(copySuffix))) + copySuffix
}

func parseDate(value *string) (*datatypes.Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil, apperrors.NewValidationError("effective_date", "must be a date in YYYY-MM-DD format")
	}
	d := datatypes.Date(t)
	return &d, nil
}

// defaultConflict reports a lost race on the one-default-per-team index as a conflict
func defaultConflict(err error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDefaultChartConflict
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// diff records field in changes when its value differs
func diff(changes map[string]fieldChange, field string, before, after interface{}) {
	if reflect.DeepEqual(before, after) {
		return
	}
	changes[field] = fieldChange{Old: before, New: after}
}
