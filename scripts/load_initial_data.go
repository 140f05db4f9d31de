package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"depth-chart-backend/internal/auth"
	"depth-chart-backend/internal/config"
	"depth-chart-backend/internal/database"
	"depth-chart-backend/internal/database/models"
	"depth-chart-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML files
type CoachData struct {
	UserID   uint   `yaml:"user_id"`
	Username string `yaml:"username"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	Name  string    `yaml:"name"`
	Coach CoachData `yaml:"coach"`
}

type StatsData struct {
	ERA            *float64 `yaml:"era,omitempty"`
	Strikeouts     int      `yaml:"strikeouts"`
	Wins           int      `yaml:"wins"`
	Losses         int      `yaml:"losses"`
	BattingAverage *float64 `yaml:"batting_average,omitempty"`
	HomeRuns       int      `yaml:"home_runs"`
	RBI            int      `yaml:"rbi"`
	StolenBases    int      `yaml:"stolen_bases"`
}

type PlayerData struct {
	TeamName          string    `yaml:"team_name"`
	FirstName         string    `yaml:"first_name"`
	LastName          string    `yaml:"last_name"`
	Position          string    `yaml:"position"`
	JerseyNumber      *int      `yaml:"jersey_number,omitempty"`
	Status            string    `yaml:"status,omitempty"`
	GraduationYear    *int      `yaml:"graduation_year,omitempty"`
	MedicalConditions string    `yaml:"medical_conditions,omitempty"`
	Stats             StatsData `yaml:"stats"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	teams, err := loadDataFromYAMLFiles(context.Background(), db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := printDevTokens(cfg, teams); err != nil {
		log.Fatalf("Failed to issue development tokens: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// seededTeam pairs a stored team with the coach a token is printed for
type seededTeam struct {
	team  *models.Team
	coach CoachData
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) ([]seededTeam, error) {
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	var playersFile PlayersFile
	if err := readYAML(filepath.Join(dataDir, "players.yaml"), &playersFile); err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	teamRepo := repository.NewTeamRepository(db)
	playerRepo := repository.NewPlayerRepository(db)

	teamMap := make(map[string]*models.Team)
	seeded := make([]seededTeam, 0, len(teamsFile.Teams))
	teamsCreated := 0
	for _, teamData := range teamsFile.Teams {
		team, created, err := upsertTeam(ctx, teamRepo, teamData)
		if err != nil {
			return nil, err
		}
		if created {
			teamsCreated++
		}
		teamMap[team.Name] = team
		seeded = append(seeded, seededTeam{team: team, coach: teamData.Coach})
	}
	log.Printf("Teams: %d created, %d existing", teamsCreated, len(teamsFile.Teams)-teamsCreated)

	playersCreated, playersUpdated := 0, 0
	for _, playerData := range playersFile.Players {
		team := teamMap[playerData.TeamName]
		if team == nil {
			return nil, fmt.Errorf("team %s not found for player %s %s", playerData.TeamName, playerData.FirstName, playerData.LastName)
		}
		created, err := upsertPlayer(ctx, playerRepo, team.ID, playerData)
		if err != nil {
			return nil, err
		}
		if created {
			playersCreated++
		} else {
			playersUpdated++
		}
	}
	log.Printf("Players: %d created, %d updated", playersCreated, playersUpdated)

	return seeded, nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertTeam(ctx context.Context, repo *repository.TeamRepository, teamData TeamData) (*models.Team, bool, error) {
	team, err := repo.GetByName(ctx, teamData.Name)
	if err == nil {
		return team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = &models.Team{Name: teamData.Name}
	if err := repo.Create(ctx, team); err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return team, true, nil
}

// upsertPlayer creates the player or refreshes the stored roster fields and stats
func upsertPlayer(ctx context.Context, repo *repository.PlayerRepository, teamID uint, playerData PlayerData) (bool, error) {
	status := models.PlayerStatusActive
	if playerData.Status != "" {
		status = models.PlayerStatus(playerData.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("invalid status %q for player %s %s", playerData.Status, playerData.FirstName, playerData.LastName)
		}
	}

	player, err := repo.GetByName(ctx, teamID, playerData.FirstName, playerData.LastName)
	created := false
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		player = &models.Player{TeamID: teamID, FirstName: playerData.FirstName, LastName: playerData.LastName}
		created = true
	case err != nil:
		return false, fmt.Errorf("failed to query player: %w", err)
	}

	player.Position = playerData.Position
	player.JerseyNumber = playerData.JerseyNumber
	player.Status = status
	player.GraduationYear = playerData.GraduationYear
	player.MedicalConditions = playerData.MedicalConditions
	player.Stats = models.PlayerStats{
		ERA:            playerData.Stats.ERA,
		Strikeouts:     playerData.Stats.Strikeouts,
		Wins:           playerData.Stats.Wins,
		Losses:         playerData.Stats.Losses,
		BattingAverage: playerData.Stats.BattingAverage,
		HomeRuns:       playerData.Stats.HomeRuns,
		RBI:            playerData.Stats.RBI,
		StolenBases:    playerData.Stats.StolenBases,
	}

	if created {
		if err := repo.Create(ctx, player); err != nil {
			return false, fmt.Errorf("failed to create player: %w", err)
		}
		return true, nil
	}
	if err := repo.Update(ctx, player); err != nil {
		return false, fmt.Errorf("failed to update player: %w", err)
	}
	return false, nil
}

// printDevTokens prints a bearer token per seeded coach for local API calls
func printDevTokens(cfg *config.Config, teams []seededTeam) error {
	if cfg.Environment == "production" {
		return nil
	}

	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath, cfg.JWTSecret)
	if err != nil {
		return err
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return err
	}

	for _, seeded := range teams {
		if seeded.coach.Username == "" {
			continue
		}
		token, err := authService.GenerateJWT(auth.Caller{
			UserID:   seeded.coach.UserID,
			TeamID:   seeded.team.ID,
			Username: seeded.coach.Username,
			Role:     seeded.coach.Role,
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s, %s):\n  Bearer %s\n", seeded.team.Name, seeded.coach.Username, seeded.coach.Role, token)
	}
	return nil
}
