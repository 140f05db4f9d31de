package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventAction names a change recorded in a chart's history
type EventAction string

const (
	EventChartCreated      EventAction = "created"
	EventChartUpdated      EventAction = "updated"
	EventChartDeleted      EventAction = "deleted"
	EventChartDuplicated   EventAction = "duplicated"
	EventPositionAdded     EventAction = "position_added"
	EventPositionUpdated   EventAction = "position_updated"
	EventPositionRemoved   EventAction = "position_removed"
	EventPlayerAssigned    EventAction = "player_assigned"
	EventAssignmentUpdated EventAction = "assignment_updated"
	EventPlayerUnassigned  EventAction = "player_unassigned"
)

// DepthChartEvent is an append-only history entry for a depth chart
type DepthChartEvent struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	DepthChartID uint           `json:"depth_chart_id" gorm:"not null;index"`
	TeamID       uint           `json:"team_id" gorm:"not null;index"`
	Action       EventAction    `json:"action" gorm:"size:32;not null"`
	ActorID      uint           `json:"actor_id"`
	Summary      string         `json:"summary" gorm:"size:255"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// TableName returns the table name for DepthChartEvent
func (DepthChartEvent) TableName() string {
	return "depth_chart_events"
}
