// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"hardpos/internal/core/security"
	"hardpos/internal/domain/auth"
	"hardpos/internal/domain/billing"
	"hardpos/internal/domain/calculation"
	"hardpos/internal/domain/customer"
	"hardpos/internal/domain/reports"
	"hardpos/internal/domain/stock"
	"hardpos/internal/infrastructure/http/v1/handlers"
	"hardpos/internal/infrastructure/http/v1/middleware"
	"hardpos/internal/infrastructure/storage/postgres"
	"hardpos/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// Domain services
	AuthService        *auth.Service
	BillingService     *billing.Service
	CalculationService *calculation.Service
	StockService       *stock.Service
	CustomerService    *customer.Service
	ReportsService     *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Access policies. Staff can bill, calculate and sell; catalog changes
	// need a manager, user management needs an admin.
	manageStock := middleware.RequirePolicy(security.MustCompile(security.ExprManageStock))
	manageUsers := middleware.RequirePolicy(security.MustCompile(security.ExprManageUsers))

	baseHandler := handlers.NewBaseHandler()

	// API v1
	api := router.Group("/api/v1")
	{
		// Public auth endpoints
		authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
		api.POST("/auth/login", authHandler.Login)

		// Protected endpoints
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		// Billing
		billHandler := handlers.NewBillHandler(baseHandler, cfg.BillingService)
		bills := protected.Group("/bills")
		{
			bills.POST("", billHandler.Create)
			bills.GET("", billHandler.Recent)
			bills.GET("/:id", billHandler.Get)
		}

		// Price calculator
		calcHandler := handlers.NewCalculationHandler(baseHandler, cfg.CalculationService)
		calcs := protected.Group("/calculations")
		{
			calcs.POST("/preview", calcHandler.Preview)
			calcs.POST("", calcHandler.Save)
			calcs.GET("", calcHandler.Recent)
			calcs.GET("/:id", calcHandler.Get)
		}

		// Stock catalog
		stockHandler := handlers.NewStockHandler(baseHandler, cfg.StockService)
		stockGroup := protected.Group("/stock")
		{
			stockGroup.GET("", stockHandler.List)
			stockGroup.GET("/categories", stockHandler.Categories)
			stockGroup.GET("/:id", stockHandler.Get)
			stockGroup.POST("/:id/sell", stockHandler.Sell)

			stockGroup.POST("", manageStock, stockHandler.Create)
			stockGroup.PUT("/:id/quantity", manageStock, stockHandler.SetQuantity)
			stockGroup.PUT("/:id/min-quantity", manageStock, stockHandler.SetMinQuantity)
		}

		// Customers
		customerHandler := handlers.NewCustomerHandler(baseHandler, cfg.CustomerService)
		customers := protected.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.GET("/stats", customerHandler.Stats)
			customers.GET("/:id", customerHandler.Get)
			customers.POST("", manageStock, customerHandler.Create)
		}

		// Dashboard
		dashboardHandler := handlers.NewDashboardHandler(baseHandler, cfg.ReportsService)
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.Summary)
			dashboard.GET("/activity", dashboardHandler.RecentActivity)
		}

		// User management
		protected.POST("/users", manageUsers, authHandler.CreateUser)
	}

	return router
}
