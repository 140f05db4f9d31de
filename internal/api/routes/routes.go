package routes

import (
	"fmt"

	"depth-chart-backend/internal/api/handlers"
	"depth-chart-backend/internal/api/middleware"
	"depth-chart-backend/internal/auth"
	"depth-chart-backend/internal/config"
	"depth-chart-backend/internal/recommend"
	"depth-chart-backend/internal/repository"
	"depth-chart-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Initialize repositories
	tx := repository.NewTxManager(db)
	chartRepo := repository.NewDepthChartRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	chartService := service.NewDepthChartService(tx, chartRepo, positionRepo, eventRepo, validator)
	positionService := service.NewPositionService(tx, chartRepo, positionRepo, eventRepo, validator)
	assignmentService := service.NewAssignmentService(tx, chartRepo, positionRepo, assignmentRepo, playerRepo, eventRepo, validator,
		service.WithCapacityEnforcement(cfg.EnforcePositionCapacity),
		service.WithScorer(recommend.NewScorer(recommend.WithLimit(cfg.RecommendationLimit))),
	)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig(cfg.AuthConfigPath, cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)
	authz := auth.NewRoleAuthorizer(authConfig.Roles)
	can := func(capability auth.Capability) gin.HandlerFunc {
		return auth.RequireCapability(authz, capability)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	chartHandler := handlers.NewDepthChartHandler(chartService)
	positionHandler := handlers.NewPositionHandler(positionService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	charts := v1.Group("/depth-charts")
	{
		charts.GET("", can(auth.CapViewChart), chartHandler.ListDepthCharts)
		charts.POST("", can(auth.CapCreateChart), chartHandler.CreateDepthChart)
		charts.GET("/byId/:id", can(auth.CapViewChart), chartHandler.GetDepthChart)
		charts.PUT("/byId/:id", can(auth.CapEditChart), chartHandler.UpdateDepthChart)
		charts.DELETE("/byId/:id", can(auth.CapDeleteChart), chartHandler.DeleteDepthChart)
		charts.POST("/:id/duplicate", can(auth.CapCreateChart), chartHandler.DuplicateDepthChart)
		charts.GET("/:id/history", can(auth.CapViewChart), chartHandler.GetHistory)

		charts.POST("/:id/positions", can(auth.CapManagePositions), positionHandler.AddPosition)
		charts.PUT("/positions/:positionId", can(auth.CapManagePositions), positionHandler.UpdatePosition)
		charts.DELETE("/positions/:positionId", can(auth.CapManagePositions), positionHandler.DeletePosition)

		charts.POST("/positions/:positionId/players", can(auth.CapAssignPlayers), assignmentHandler.AssignPlayer)
		charts.PUT("/players/:assignmentId", can(auth.CapAssignPlayers), assignmentHandler.UpdateAssignment)
		charts.DELETE("/players/:assignmentId", can(auth.CapUnassignPlayers), assignmentHandler.UnassignPlayer)
		charts.GET("/:id/available-players", can(auth.CapAssignPlayers), assignmentHandler.GetAvailablePlayers)
		charts.GET("/:id/recommended-players/:positionId", can(auth.CapAssignPlayers), assignmentHandler.GetRecommendedPlayers)
	}

	return router, nil
}
