package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"main/handler"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// appServices bundles everything the router needs. All wiring is constructor
// injection; nothing package-global.
type appServices struct {
	Users     repository.UserStore
	Tokens    *services.TokenService
	Auth      *usecase.AuthService
	Tracker   *usecase.TrackerService
	Alerts    *usecase.AlertService
	Dashboard *usecase.DashboardService
	Zones     *usecase.ZoneService
}

func setupRouter(app *appServices) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			handler.RegistrationHandler(c, app.Auth)
		})
		auth.POST("/login", func(c *gin.Context) {
			handler.LoginHandler(c, app.Auth)
		})
	}

	api.GET("/zones", func(c *gin.Context) {
		handler.ListZonesHandler(c, app.Zones)
	})

	// Tourist routes
	tourist := api.Group("/tourist")
	tourist.Use(middleware.RequireRole(app.Users, app.Tokens, model.RoleTourist))
	{
		tourist.GET("/profile", func(c *gin.Context) {
			handler.GetTouristProfileHandler(c, app.Auth)
		})
		tourist.PUT("/location", func(c *gin.Context) {
			handler.UpdateLocationHandler(c, app.Tracker)
		})
		tourist.POST("/panic", func(c *gin.Context) {
			handler.PanicHandler(c, app.Alerts)
		})
	}

	// Authority routes
	authority := api.Group("/authority")
	authority.Use(middleware.RequireRole(app.Users, app.Tokens, model.RoleAuthority))
	{
		authority.GET("/dashboard", func(c *gin.Context) {
			handler.DashboardHandler(c, app.Dashboard)
		})
		authority.GET("/alerts", func(c *gin.Context) {
			handler.ListAlertsHandler(c, app.Alerts)
		})
		authority.PUT("/alerts/:id/resolve", func(c *gin.Context) {
			handler.ResolveAlertHandler(c, app.Alerts)
		})
	}

	// Zone creation is authority-only; listing above is open.
	zones := api.Group("/zones")
	zones.Use(middleware.RequireRole(app.Users, app.Tokens, model.RoleAuthority))
	{
		zones.POST("", func(c *gin.Context) {
			handler.CreateZoneHandler(c, app.Zones)
		})
	}

	return router
}

func main() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()

	mongoClient, err := utils.NewMongoClient(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(os.Getenv("MONGO_DB"))

	userRepo := repository.GetUserRepo(db)
	profileRepo := repository.GetProfileRepo(db)
	zoneRepo := repository.GetZoneRepo(db)
	alertRepo := repository.GetAlertRepo(db)

	tokenService := services.NewTokenService(
		os.Getenv("JWT_SECRET_KEY"),
		utils.GetEnvAsDuration("TOKEN_TTL", services.DefaultTokenTTL),
	)

	// Redis is optional; without it the dashboard reads the stores directly.
	var dashboardCache *services.DashboardCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		dashboardCache, err = services.NewDashboardCache(
			redisURL,
			utils.GetEnvAsDuration("DASHBOARD_CACHE_TTL", 10*time.Second),
		)
		if err != nil {
			log.Printf("Dashboard cache disabled: %v", err)
			dashboardCache = nil
		}
	}

	alertService := &usecase.AlertService{Alerts: alertRepo, Profiles: profileRepo}
	app := &appServices{
		Users:  userRepo,
		Tokens: tokenService,
		Auth: &usecase.AuthService{
			Users:    userRepo,
			Profiles: profileRepo,
			Tokens:   tokenService,
		},
		Tracker: &usecase.TrackerService{
			Profiles: profileRepo,
			Zones:    zoneRepo,
			Alerts:   alertService,
		},
		Alerts: alertService,
		Dashboard: &usecase.DashboardService{
			Profiles: profileRepo,
			Alerts:   alertService,
			Zones:    zoneRepo,
			Cache:    dashboardCache,
		},
		Zones: &usecase.ZoneService{Zones: zoneRepo},
	}

	utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))

	router := setupRouter(app)

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
