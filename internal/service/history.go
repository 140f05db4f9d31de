package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// fieldChange is the old and new value of one changed field
type fieldChange struct {
	Old interface{} `json:"old"`
	New interface{} `json:"new"`
}

// historyRecorder appends chart events using the transaction carried by ctx
type historyRecorder struct {
	events repository.EventRepositoryInterface
}

func (h historyRecorder) record(ctx context.Context, chartID, teamID, actorID uint, action models.EventAction, summary string, changes interface{}) error {
	event := &models.DepthChartEvent{
		DepthChartID: chartID,
		TeamID:       teamID,
		Action:       action,
		ActorID:      actorID,
		Summary:      truncate(summary, 255),
	}
	if changes != nil {
		raw, err := json.Marshal(changes)
		if err != nil {
			return fmt.Errorf("failed to encode %s changes: %w", action, err)
		}
		event.Changes = datatypes.JSON(raw)
	}
	if err := h.events.Append(ctx, event); err != nil {
		return fmt.Errorf("failed to record %s event: %w", action, err)
	}
	return nil
}

// storeError maps a missing row to notFound and wraps anything else
func storeError(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// truncate shortens s to at most max runes
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
