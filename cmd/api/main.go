package main

import (
	"fmt"
	"net/http"
	"os"

	"wealthdesk/internal/config"
	"wealthdesk/internal/database"
	"wealthdesk/internal/handlers"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
	"wealthdesk/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "wealthdesk/internal/docs" // Import swagger docs
)

// @title           Wealthdesk API
// @version         1.0
// @description     Wealthdesk is a financial-planning back office where advisors manage clients, their portfolios, goals, insurance, retirement plans, and growth simulations.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)
	walletService := services.NewWalletService(db)
	idealWalletService := services.NewIdealWalletService(db)
	goalService := services.NewGoalService(db)
	insuranceService := services.NewInsuranceService(db)
	retirementService := services.NewRetirementService(db)
	netWorthService := services.NewNetWorthService(db)
	simulationService := services.NewSimulationService(db)
	eventService := services.NewEventService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	walletHandler := handlers.NewWalletHandler(walletService)
	idealWalletHandler := handlers.NewIdealWalletHandler(idealWalletService)
	goalHandler := handlers.NewGoalHandler(goalService)
	insuranceHandler := handlers.NewInsuranceHandler(insuranceService)
	retirementHandler := handlers.NewRetirementHandler(retirementService)
	netWorthHandler := handlers.NewNetWorthHandler(netWorthService)
	simulationHandler := handlers.NewSimulationHandler(simulationService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Role policies. Writes are advisor-only; reads allow viewers too.
	advisor := middleware.AuthMiddleware(string(models.RoleAdvisor))
	anyRole := middleware.AuthMiddleware(string(models.RoleAdvisor), string(models.RoleViewer))

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	// Authenticated profile
	v1.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

	// User management (advisor only)
	users := v1.Group("/users")
	users.POST("", advisor, userHandler.CreateUser)
	users.GET("", advisor, userHandler.GetUsers)
	users.GET("/:id", advisor, userHandler.GetUser)
	users.PUT("/:id", advisor, userHandler.UpdateUser)
	users.DELETE("/:id", advisor, userHandler.DeleteUser)

	// Client routes
	clients := v1.Group("/clients")
	clients.POST("", advisor, clientHandler.CreateClient)
	clients.GET("", anyRole, clientHandler.GetClients)
	clients.GET("/planning-distribution", advisor, clientHandler.GetPlanningDistribution)
	clients.GET("/planning-summary", advisor, clientHandler.GetPlanningSummary)
	clients.GET("/:clientId", anyRole, clientHandler.GetClient)
	clients.PUT("/:clientId", advisor, clientHandler.UpdateClient)
	clients.DELETE("/:clientId", advisor, clientHandler.DeleteClient)

	// Nested planning resources
	nested := v1.Group("/clients/:clientId")

	nested.POST("/wallet", advisor, walletHandler.CreateWalletItem)
	nested.GET("/wallet", anyRole, walletHandler.GetWalletItems)
	nested.PUT("/wallet/:itemId", advisor, walletHandler.UpdateWalletItem)
	nested.DELETE("/wallet/:itemId", advisor, walletHandler.DeleteWalletItem)

	nested.POST("/ideal-wallet", advisor, idealWalletHandler.CreateIdealWalletItem)
	nested.GET("/ideal-wallet", anyRole, idealWalletHandler.GetIdealWalletItems)
	nested.PUT("/ideal-wallet/:itemId", advisor, idealWalletHandler.UpdateIdealWalletItem)
	nested.DELETE("/ideal-wallet/:itemId", advisor, idealWalletHandler.DeleteIdealWalletItem)

	nested.POST("/goals", advisor, goalHandler.UpsertGoal)
	nested.GET("/goals", anyRole, goalHandler.GetGoals)
	nested.PUT("/goals/:goalId", advisor, goalHandler.UpdateGoal)
	nested.DELETE("/goals/:goalId", advisor, goalHandler.DeleteGoal)

	nested.POST("/insurances", advisor, insuranceHandler.CreateInsurance)
	nested.GET("/insurances", anyRole, insuranceHandler.GetInsurances)
	nested.PUT("/insurances/:insuranceId", advisor, insuranceHandler.UpdateInsurance)
	nested.DELETE("/insurances/:insuranceId", advisor, insuranceHandler.DeleteInsurance)

	nested.POST("/retirement", advisor, retirementHandler.CreateRetirementProfile)
	nested.GET("/retirement", anyRole, retirementHandler.GetRetirementProfile)
	nested.PUT("/retirement", advisor, retirementHandler.UpdateRetirementProfile)
	nested.DELETE("/retirement", advisor, retirementHandler.DeleteRetirementProfile)

	nested.POST("/net-worth", advisor, netWorthHandler.CreateSnapshot)
	nested.GET("/net-worth", anyRole, netWorthHandler.GetSnapshots)
	nested.GET("/net-worth/latest", anyRole, netWorthHandler.GetLatestSnapshot)
	nested.DELETE("/net-worth/:snapshotId", advisor, netWorthHandler.DeleteSnapshot)

	nested.POST("/simulations", advisor, simulationHandler.CreateSimulation)
	nested.GET("/simulations", anyRole, simulationHandler.GetSimulations)
	nested.GET("/simulations/:simulationId/data", anyRole, simulationHandler.GetSimulationData)
	nested.DELETE("/simulations/:simulationId", advisor, simulationHandler.DeleteSimulation)

	nested.POST("/events", advisor, eventHandler.CreateEvent)
	nested.GET("/events", anyRole, eventHandler.GetEvents)
	nested.PUT("/events/:eventId", advisor, eventHandler.UpdateEvent)
	nested.DELETE("/events/:eventId", advisor, eventHandler.DeleteEvent)

	log.Infof("Starting Wealthdesk backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
