package models

// Team is the tenant that owns players and depth charts
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex"`

	// Relationships
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
