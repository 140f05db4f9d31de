package models

import "strings"

// PlayerStatus defines roster status values for a player
type PlayerStatus string

const (
	PlayerStatusActive    PlayerStatus = "active"
	PlayerStatusInactive  PlayerStatus = "inactive"
	PlayerStatusInjured   PlayerStatus = "injured"
	PlayerStatusGraduated PlayerStatus = "graduated"
)

// IsValid checks if the PlayerStatus is valid
func (s PlayerStatus) IsValid() bool {
	switch s {
	case PlayerStatusActive, PlayerStatusInactive, PlayerStatusInjured, PlayerStatusGraduated:
		return true
	}
	return false
}

// PlayerStats holds the season statistics used for recommendations.
// ERA and batting average are nil when the player has no recorded innings / at-bats.
type PlayerStats struct {
	ERA            *float64 `json:"era,omitempty"`
	Strikeouts     int      `json:"strikeouts"`
	Wins           int      `json:"wins"`
	Losses         int      `json:"losses"`
	BattingAverage *float64 `json:"batting_average,omitempty"`
	HomeRuns       int      `json:"home_runs"`
	RBI            int      `json:"rbi" gorm:"column:rbi"`
	StolenBases    int      `json:"stolen_bases"`
}

// Player is a roster member of a team
type Player struct {
	BaseModel
	TeamID            uint         `json:"team_id" gorm:"not null;index"`
	FirstName         string       `json:"first_name" gorm:"size:50;not null"`
	LastName          string       `json:"last_name" gorm:"size:50;not null"`
	Position          string       `json:"position" gorm:"size:10"`
	JerseyNumber      *int         `json:"jersey_number,omitempty"`
	Status            PlayerStatus `json:"status" gorm:"size:20;not null;default:active;index"`
	GraduationYear    *int         `json:"graduation_year,omitempty"`
	MedicalConditions string       `json:"medical_conditions" gorm:"size:1000"`
	Stats             PlayerStats  `json:"stats" gorm:"embedded"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// HasMedicalIssues reports whether any medical condition is flagged for the player
func (p Player) HasMedicalIssues() bool {
	return strings.TrimSpace(p.MedicalConditions) != ""
}
