package testutils

import (
	"fmt"

	"depth-chart-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name: "Test Team " + uuid.NewString()[:8],
	}
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates an active, healthy test Player for the team
func (f *PlayerFactory) Create(teamID uint) *models.Player {
	jersey := 7
	return &models.Player{
		TeamID:       teamID,
		FirstName:    "John",
		LastName:     "Doe",
		Position:     "SS",
		JerseyNumber: &jersey,
		Status:       models.PlayerStatusActive,
	}
}

// WithName creates a test Player with the given name and position
func (f *PlayerFactory) WithName(teamID uint, firstName, lastName, position string) *models.Player {
	player := f.Create(teamID)
	player.FirstName = firstName
	player.LastName = lastName
	player.Position = position
	return player
}

// Pitcher creates a test pitcher with the given ERA
func (f *PlayerFactory) Pitcher(teamID uint, firstName, position string, era float64) *models.Player {
	player := f.WithName(teamID, firstName, "Arm", position)
	player.Stats.ERA = &era
	return player
}

// DepthChartFactory provides methods to create test DepthChart data
type DepthChartFactory struct{}

// NewDepthChartFactory creates a new DepthChartFactory
func NewDepthChartFactory() *DepthChartFactory {
	return &DepthChartFactory{}
}

// Create creates an active, non-default test chart for the team
func (f *DepthChartFactory) Create(teamID uint) *models.DepthChart {
	return &models.DepthChart{
		Lifecycle:   models.Lifecycle{State: models.StateActive},
		TeamID:      teamID,
		Name:        "Spring Lineup",
		Description: "A test depth chart",
		Version:     1,
		CreatedBy:   1,
	}
}

// Default creates an active default test chart for the team
func (f *DepthChartFactory) Default(teamID uint, name string) *models.DepthChart {
	chart := f.Create(teamID)
	chart.Name = name
	chart.IsDefault = true
	return chart
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates an active test position on the chart
func (f *PositionFactory) Create(chartID uint, code string, sortOrder int) *models.Position {
	return &models.Position{
		Lifecycle:    models.Lifecycle{State: models.StateActive},
		DepthChartID: chartID,
		PositionCode: code,
		PositionName: fmt.Sprintf("Position %s", code),
		Color:        "#1E88E5",
		SortOrder:    sortOrder,
	}
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an active test assignment
func (f *AssignmentFactory) Create(chartID, positionID, playerID uint, depthOrder int) *models.Assignment {
	return &models.Assignment{
		Lifecycle:    models.Lifecycle{State: models.StateActive},
		DepthChartID: chartID,
		PositionID:   positionID,
		PlayerID:     playerID,
		DepthOrder:   depthOrder,
		AssignedBy:   1,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team       *TeamFactory
	Player     *PlayerFactory
	DepthChart *DepthChartFactory
	Position   *PositionFactory
	Assignment *AssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:       NewTeamFactory(),
		Player:     NewPlayerFactory(),
		DepthChart: NewDepthChartFactory(),
		Position:   NewPositionFactory(),
		Assignment: NewAssignmentFactory(),
	}
}
