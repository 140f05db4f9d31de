package models

// Position is a labeled slot within a depth chart that holds ranked assignments
type Position struct {
	BaseModel
	Lifecycle
	DepthChartID uint   `json:"depth_chart_id" gorm:"not null;index"`
	PositionCode string `json:"position_code" gorm:"size:10;not null"`
	PositionName string `json:"position_name" gorm:"size:50;not null"`
	Color        string `json:"color" gorm:"size:7"`
	Icon         string `json:"icon" gorm:"size:50"`
	SortOrder    int    `json:"sort_order" gorm:"not null;default:0"`
	MaxPlayers   *int   `json:"max_players,omitempty"`
	Description  string `json:"description" gorm:"size:500"`

	// Relationships
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "depth_chart_positions"
}

// StandardPosition describes one of the positions seeded into a new chart
type StandardPosition struct {
	Code  string
	Name  string
	Color string
	Icon  string
}

// StandardPositions are the ten baseball positions seeded when a chart is created without a custom list
var StandardPositions = []StandardPosition{
	{Code: "P", Name: "Pitcher", Color: "#E53935", Icon: "pitcher"},
	{Code: "C", Name: "Catcher", Color: "#8E24AA", Icon: "catcher"},
	{Code: "1B", Name: "First Base", Color: "#1E88E5", Icon: "first-base"},
	{Code: "2B", Name: "Second Base", Color: "#00897B", Icon: "second-base"},
	{Code: "3B", Name: "Third Base", Color: "#43A047", Icon: "third-base"},
	{Code: "SS", Name: "Shortstop", Color: "#FDD835", Icon: "shortstop"},
	{Code: "LF", Name: "Left Field", Color: "#FB8C00", Icon: "left-field"},
	{Code: "CF", Name: "Center Field", Color: "#6D4C41", Icon: "center-field"},
	{Code: "RF", Name: "Right Field", Color: "#546E7A", Icon: "right-field"},
	{Code: "DH", Name: "Designated Hitter", Color: "#3949AB", Icon: "designated-hitter"},
}
