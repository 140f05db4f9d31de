package models

import (
	"gorm.io/datatypes"
)

// DepthChart represents a named, versioned roster of positions for a team
type DepthChart struct {
	BaseModel
	Lifecycle
	TeamID        uint            `json:"team_id" gorm:"not null;index"`
	Name          string          `json:"name" gorm:"size:100;not null"`
	Description   string          `json:"description" gorm:"size:1000"`
	IsDefault     bool            `json:"is_default" gorm:"not null;default:false"`
	Version       int             `json:"version" gorm:"not null;default:1"`
	EffectiveDate *datatypes.Date `json:"effective_date,omitempty"`
	Notes         string          `json:"notes" gorm:"size:1000"`
	CreatedBy     uint            `json:"created_by"`

	// Relationships
	Positions []Position `json:"positions,omitempty" gorm:"foreignKey:DepthChartID"`
}

// TableName returns the table name for DepthChart
func (DepthChart) TableName() string {
	return "depth_charts"
}
