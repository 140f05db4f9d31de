package service

import (
	"encoding/json"
	"time"

	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/recommend"

	"gorm.io/datatypes"
)

// DepthChartResponse represents a depth chart without its roster
type DepthChartResponse struct {
	ID            uint    `json:"id"`
	TeamID        uint    `json:"team_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	IsDefault     bool    `json:"is_default"`
	Version       int     `json:"version"`
	EffectiveDate *string `json:"effective_date"`
	Notes         string  `json:"notes"`
	CreatedBy     uint    `json:"created_by"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// DepthChartSummary is a list entry with roster counts
type DepthChartSummary struct {
	DepthChartResponse
	PositionCount   int64 `json:"position_count"`
	AssignmentCount int64 `json:"assignment_count"`
}

// DepthChartDetail is a chart with its positions and their ranked players
type DepthChartDetail struct {
	DepthChartResponse
	Positions []PositionDetail `json:"positions"`
}

// PositionResponse represents a chart position
type PositionResponse struct {
	ID           uint   `json:"id"`
	DepthChartID uint   `json:"depth_chart_id"`
	PositionCode string `json:"position_code"`
	PositionName string `json:"position_name"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	SortOrder    int    `json:"sort_order"`
	MaxPlayers   *int   `json:"max_players"`
	Description  string `json:"description"`
}

// PositionDetail is a position with its active assignments in depth order
type PositionDetail struct {
	PositionResponse
	Players []AssignmentResponse `json:"players"`
}

// PlayerSummary is the minimal player projection attached to assignments
type PlayerSummary struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	JerseyNumber *int   `json:"jersey_number"`
}

// AssignmentResponse represents a player assigned to a position
type AssignmentResponse struct {
	ID           uint           `json:"id"`
	DepthChartID uint           `json:"depth_chart_id"`
	PositionID   uint           `json:"position_id"`
	PlayerID     uint           `json:"player_id"`
	DepthOrder   int            `json:"depth_order"`
	Notes        string         `json:"notes"`
	AssignedBy   uint           `json:"assigned_by"`
	CreatedAt    string         `json:"created_at"`
	Player       *PlayerSummary `json:"player,omitempty"`
}

// PlayerResponse represents a roster player offered for assignment
type PlayerResponse struct {
	ID               uint                `json:"id"`
	FirstName        string              `json:"first_name"`
	LastName         string              `json:"last_name"`
	Position         string              `json:"position"`
	JerseyNumber     *int                `json:"jersey_number"`
	Status           models.PlayerStatus `json:"status"`
	GraduationYear   *int                `json:"graduation_year"`
	HasMedicalIssues bool                `json:"has_medical_issues"`
	Stats            models.PlayerStats  `json:"stats"`
}

// RecommendationResponse is a ranked candidate for a position
type RecommendationResponse struct {
	Player  PlayerResponse `json:"player"`
	Score   int            `json:"score"`
	Reasons []string       `json:"reasons"`
}

// DuplicateResponse carries the ID of a newly duplicated chart
type DuplicateResponse struct {
	ID uint `json:"id"`
}

// HistoryEntry is one change in a chart's history
type HistoryEntry struct {
	ID        uint            `json:"id"`
	Action    string          `json:"action"`
	Summary   string          `json:"summary"`
	ActorID   uint            `json:"actor_id"`
	Changes   json.RawMessage `json:"changes,omitempty" swaggertype:"object"`
	CreatedAt string          `json:"created_at"`
}

func toChartResponse(chart *models.DepthChart) DepthChartResponse {
	return DepthChartResponse{
		ID:            chart.ID,
		TeamID:        chart.TeamID,
		Name:          chart.Name,
		Description:   chart.Description,
		IsDefault:     chart.IsDefault,
		Version:       chart.Version,
		EffectiveDate: formatDate(chart.EffectiveDate),
		Notes:         chart.Notes,
		CreatedBy:     chart.CreatedBy,
		CreatedAt:     chart.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     chart.UpdatedAt.Format(time.RFC3339),
	}
}

func toChartDetail(chart *models.DepthChart) *DepthChartDetail {
	detail := &DepthChartDetail{
		DepthChartResponse: toChartResponse(chart),
		Positions:          make([]PositionDetail, 0, len(chart.Positions)),
	}
	for i := range chart.Positions {
		position := &chart.Positions[i]
		players := make([]AssignmentResponse, 0, len(position.Assignments))
		for j := range position.Assignments {
			players = append(players, toAssignmentResponse(&position.Assignments[j]))
		}
		detail.Positions = append(detail.Positions, PositionDetail{
			PositionResponse: toPositionResponse(position),
			Players:          players,
		})
	}
	return detail
}

func toPositionResponse(position *models.Position) PositionResponse {
	return PositionResponse{
		ID:           position.ID,
		DepthChartID: position.DepthChartID,
		PositionCode: position.PositionCode,
		PositionName: position.PositionName,
		Color:        position.Color,
		Icon:         position.Icon,
		SortOrder:    position.SortOrder,
		MaxPlayers:   position.MaxPlayers,
		Description:  position.Description,
	}
}

func toAssignmentResponse(assignment *models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:           assignment.ID,
		DepthChartID: assignment.DepthChartID,
		PositionID:   assignment.PositionID,
		PlayerID:     assignment.PlayerID,
		DepthOrder:   assignment.DepthOrder,
		Notes:        assignment.Notes,
		AssignedBy:   assignment.AssignedBy,
		CreatedAt:    assignment.CreatedAt.Format(time.RFC3339),
	}
	if assignment.Player != nil {
		resp.Player = &PlayerSummary{
			ID:           assignment.Player.ID,
			FirstName:    assignment.Player.FirstName,
			LastName:     assignment.Player.LastName,
			Position:     assignment.Player.Position,
			JerseyNumber: assignment.Player.JerseyNumber,
		}
	}
	return resp
}

func toPlayerResponse(player *models.Player) PlayerResponse {
	return PlayerResponse{
		ID:               player.ID,
		FirstName:        player.FirstName,
		LastName:         player.LastName,
		Position:         player.Position,
		JerseyNumber:     player.JerseyNumber,
		Status:           player.Status,
		GraduationYear:   player.GraduationYear,
		HasMedicalIssues: player.HasMedicalIssues(),
		Stats:            player.Stats,
	}
}

func toRecommendationResponse(r recommend.Ranked) RecommendationResponse {
	return RecommendationResponse{
		Player:  toPlayerResponse(&r.Player),
		Score:   r.Score,
		Reasons: r.Reasons,
	}
}

func toHistoryEntry(event *models.DepthChartEvent) HistoryEntry {
	entry := HistoryEntry{
		ID:        event.ID,
		Action:    string(event.Action),
		Summary:   event.Summary,
		ActorID:   event.ActorID,
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
	}
	if len(event.Changes) > 0 {
		entry.Changes = json.RawMessage(event.Changes)
	}
	return entry
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(time.DateOnly)
	return &s
}
