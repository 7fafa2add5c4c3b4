package main

import (
	"time"

	"kbikes-api/internal/handler"
	"kbikes-api/internal/middleware"
	"kbikes-api/internal/validation"
	"kbikes-api/pkg/config"
	"kbikes-api/pkg/database"
	"kbikes-api/pkg/logger"
	"kbikes-api/prometheus"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	log.Info("Starting KBIKES API...", zap.String("environment", cfg.Server.Env))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	if err := database.InitDB(cfg, log); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_host", cfg.DB.Host), zap.String("db_name", cfg.DB.DBName))

	// Create Echo instance
	e := echo.New()
	e.Validator = validation.New()

	// Middleware
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	// Request logging middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Process request
			err := next(c)

			// Log request details
			log := logger.FromContext(c)
			log.Info("HTTP Request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Float64("duration_s", time.Since(start).Seconds()),
				zap.String("ip", c.RealIP()),
			)

			return err
		}
	})

	// Root and health endpoints
	e.GET("/", handler.Hello)
	e.GET("/health", handler.Hello)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(middleware.MetricsHandler()))

	// Entity endpoints: create, list and atomic bulk-create per entity
	e.POST("/branch", handler.CreateBranch)
	e.GET("/branch", handler.ListBranches)
	e.POST("/branch/bulk", handler.CreateBranchesBulk)

	e.POST("/supplier", handler.CreateSupplier)
	e.GET("/supplier", handler.ListSuppliers)
	e.POST("/supplier/bulk", handler.CreateSuppliersBulk)

	e.POST("/customer", handler.CreateCustomer)
	e.GET("/customer", handler.ListCustomers)
	e.POST("/customer/bulk", handler.CreateCustomersBulk)

	e.POST("/employee", handler.CreateEmployee)
	e.GET("/employee", handler.ListEmployees)
	e.POST("/employee/bulk", handler.CreateEmployeesBulk)

	e.POST("/product", handler.CreateProduct)
	e.GET("/product", handler.ListProducts)
	e.POST("/product/bulk", handler.CreateProductsBulk)

	e.POST("/sale", handler.CreateSale)
	e.GET("/sale", handler.ListSales)
	e.POST("/sale/bulk", handler.CreateSalesBulk)

	// Report endpoints
	e.GET("/query1", handler.SalesByBranch)
	e.GET("/query2", handler.ProductsByPriceRange)
	e.GET("/query3", handler.TopSellers)
	e.GET("/query4/:customer_id", handler.PurchaseHistory)
	e.GET("/query5/:branch_id", handler.BranchInventory)
	e.GET("/query6", handler.BestSellingProducts)
	e.GET("/query7", handler.BranchPerformance)
	e.GET("/query8", handler.SupplierAnalysis)
	e.GET("/query9", handler.FrequentCustomers)
	e.GET("/query10", handler.ProductsByYear)
	e.GET("/query11", handler.SalesByPeriodAndBranch)
	e.GET("/query12", handler.EmployeeSalesSummary)
	e.GET("/query13", handler.UnsoldProducts)
	e.GET("/query14", handler.SalesByBrand)
	e.GET("/query15", handler.SellerEfficiency)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
