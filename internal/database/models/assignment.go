package models

// Assignment binds one player to one position of a chart at a given depth order
type Assignment struct {
	BaseModel
	Lifecycle
	DepthChartID uint   `json:"depth_chart_id" gorm:"not null;index"`
	PositionID   uint   `json:"position_id" gorm:"not null;index"`
	PlayerID     uint   `json:"player_id" gorm:"not null;index"`
	DepthOrder   int    `json:"depth_order" gorm:"not null;default:1"`
	Notes        string `json:"notes" gorm:"size:500"`
	AssignedBy   uint   `json:"assigned_by"`

	// Relationships
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "depth_chart_players"
}
