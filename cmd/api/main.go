package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/config"
	"spendtrack/internal/database"
	"spendtrack/internal/handlers"
	"spendtrack/internal/logger"
	"spendtrack/internal/middleware"
	"spendtrack/internal/services"
	"spendtrack/internal/validator"
)

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
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom form validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, appConfig.SessionTTL)
	expenseService := services.NewExpenseService(db)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService(expenseService)
	auditService := services.NewAuditService(db)

	// Drop sessions that expired while the process was down
	if err := sessionService.PurgeExpired(); err != nil {
		log.Warnf("failed to purge expired sessions: %v", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService, auditService, appConfig.SessionTTL, appConfig.CookieSecure)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	router.GET("/signup", authHandler.SignupForm)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.SessionAuth(sessionService, userService, appConfig.CookieSecure))

	protected.GET("/dashboard", reportHandler.Dashboard)
	protected.GET("/add_expense", expenseHandler.AddExpenseForm)
	protected.POST("/add_expense", expenseHandler.AddExpense)
	protected.GET("/view_expenses", expenseHandler.ViewExpenses)
	protected.POST("/view_expenses", expenseHandler.FilterExpenses)
	protected.GET("/edit_expense/:id", expenseHandler.EditExpenseForm)
	protected.POST("/edit_expense/:id", expenseHandler.EditExpense)
	protected.GET("/delete_expense/:id", expenseHandler.DeleteExpense)
	protected.GET("/export_csv", exportHandler.ExportCSV)

	log.Infof("Starting Spendtrack server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
