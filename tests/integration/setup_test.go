package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wealthdesk/internal/handlers"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/middleware"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
	"wealthdesk/internal/testutil"
	"wealthdesk/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Client{},
		&models.WalletItem{},
		&models.IdealWalletItem{},
		&models.Goal{},
		&models.Insurance{},
		&models.RetirementProfile{},
		&models.NetWorthSnapshot{},
		&models.Simulation{},
		&models.SimulationDataPoint{},
		&models.Event{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
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

	// Handlers
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

	// Router, mirroring the production route table and role policies.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	advisor := middleware.AuthMiddleware(string(models.RoleAdvisor))
	anyRole := middleware.AuthMiddleware(string(models.RoleAdvisor), string(models.RoleViewer))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	v1.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

	users := v1.Group("/users")
	users.POST("", advisor, userHandler.CreateUser)
	users.GET("", advisor, userHandler.GetUsers)
	users.GET("/:id", advisor, userHandler.GetUser)
	users.PUT("/:id", advisor, userHandler.UpdateUser)
	users.DELETE("/:id", advisor, userHandler.DeleteUser)

	clients := v1.Group("/clients")
	clients.POST("", advisor, clientHandler.CreateClient)
	clients.GET("", anyRole, clientHandler.GetClients)
	clients.GET("/planning-distribution", advisor, clientHandler.GetPlanningDistribution)
	clients.GET("/planning-summary", advisor, clientHandler.GetPlanningSummary)
	clients.GET("/:clientId", anyRole, clientHandler.GetClient)
	clients.PUT("/:clientId", advisor, clientHandler.UpdateClient)
	clients.DELETE("/:clientId", advisor, clientHandler.DeleteClient)

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// advisorToken seeds an advisor and returns a signed token for it.
func (app *testApp) advisorToken(t *testing.T) string {
	t.Helper()
	user := testutil.CreateTestAdvisor(t, app.DB)
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate advisor token: %v", err)
	}
	return token
}

// viewerToken seeds a viewer and returns a signed token for it.
func (app *testApp) viewerToken(t *testing.T) string {
	t.Helper()
	user := testutil.CreateTestViewer(t, app.DB)
	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate viewer token: %v", err)
	}
	return token
}

// createClient creates a client through the API and returns its id.
func (app *testApp) createClient(t *testing.T, token, name, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"email":%q,"age":45,"family_profile":"moderate"}`, name, email)
	rec := app.request("POST", "/api/v1/clients", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	client := result["client"].(map[string]interface{})
	return client["id"].(string)
}
