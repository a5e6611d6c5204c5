package http

import (
	"net/http"

	"github.com/mototrack/mototrack_service/internal/config"
	"github.com/mototrack/mototrack_service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
	bikeHandler *BikeHandler,
	fuelHandler *FuelHandler,
	tripHandler *TripHandler,
	serviceHandler *ServiceHandler,
	reminderHandler *ReminderHandler,
	reportHandler *ReportHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Profile
	users := router.Group("/users")
	users.Use(AuthMiddleware(tokenService))
	{
		users.GET("/me", authHandler.Profile)
	}

	// Bikes routes
	bikes := router.Group("/bikes")
	bikes.Use(AuthMiddleware(tokenService))
	{
		bikes.POST("", bikeHandler.CreateBike)
		bikes.GET("", bikeHandler.ListBikes)
		bikes.GET("/:id", bikeHandler.GetBike)
		bikes.PUT("/:id", bikeHandler.UpdateBike)
		bikes.DELETE("/:id", bikeHandler.DeleteBike)
	}

	// Fuel log routes
	fuelLogs := router.Group("/fuel-logs")
	fuelLogs.Use(AuthMiddleware(tokenService))
	{
		fuelLogs.POST("", fuelHandler.CreateFuelLog)
		fuelLogs.GET("", fuelHandler.ListFuelLogs)
		fuelLogs.GET("/:id", fuelHandler.GetFuelLog)
		fuelLogs.PUT("/:id", fuelHandler.UpdateFuelLog)
		fuelLogs.DELETE("/:id", fuelHandler.DeleteFuelLog)
	}

	// Trip routes
	trips := router.Group("/trips")
	trips.Use(AuthMiddleware(tokenService))
	{
		trips.POST("", tripHandler.CreateTrip)
		trips.GET("", tripHandler.ListTrips)
		trips.GET("/:id", tripHandler.GetTrip)
		trips.PUT("/:id", tripHandler.UpdateTrip)
		trips.DELETE("/:id", tripHandler.DeleteTrip)
	}

	// Service record routes
	serviceRecords := router.Group("/services")
	serviceRecords.Use(AuthMiddleware(tokenService))
	{
		serviceRecords.POST("", serviceHandler.CreateServiceRecord)
		serviceRecords.GET("", serviceHandler.ListServiceRecords)
		serviceRecords.GET("/:id", serviceHandler.GetServiceRecord)
		serviceRecords.PUT("/:id", serviceHandler.UpdateServiceRecord)
		serviceRecords.DELETE("/:id", serviceHandler.DeleteServiceRecord)
	}

	// Reminder routes
	reminders := router.Group("/reminders")
	reminders.Use(AuthMiddleware(tokenService))
	{
		reminders.POST("", reminderHandler.CreateReminder)
		reminders.GET("", reminderHandler.ListReminders)
		reminders.GET("/:id", reminderHandler.GetReminder)
		reminders.PUT("/:id", reminderHandler.UpdateReminder)
		reminders.POST("/:id/complete", reminderHandler.CompleteReminder)
		reminders.DELETE("/:id", reminderHandler.DeleteReminder)
	}

	// Report routes
	reports := router.Group("/reports")
	reports.Use(AuthMiddleware(tokenService))
	{
		reports.GET("", reportHandler.GetReport)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
