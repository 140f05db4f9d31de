package repository

import (
	"context"

	"depth-chart-backend/internal/database/models"

	"gorm.io/gorm"
)

// EventRepository stores the append-only change history of depth charts
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append records a new history event
func (r *EventRepository) Append(ctx context.Context, event *models.DepthChartEvent) error {
	return conn(ctx, r.db).Create(event).Error
}

// ListByChart returns a chart's events oldest first
func (r *EventRepository) ListByChart(ctx context.Context, chartID uint) ([]models.DepthChartEvent, error) {
	var events []models.DepthChartEvent
	err := conn(ctx, r.db).
		Where("depth_chart_id = ?", chartID).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	return events, err
}
