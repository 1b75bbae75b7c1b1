package router

import (
	"time"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/config"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/handler"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/infra"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/middleware"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/repository"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOriginList(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true, // session cookie travels with every call
		MaxAge:           12 * time.Hour,
	}))

	cache := infra.NewSummaryCache(rdb, time.Duration(cfg.DashboardTTLSec)*time.Second)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, supplierRepo, cache)
	supplierSvc := service.NewSupplierService(supplierRepo, cache)
	inventorySvc := service.NewInventoryService(inventoryRepo, productRepo, cache)
	transactionSvc := service.NewTransactionService(transactionRepo, productRepo, cache)
	alertSvc := service.NewAlertService(alertRepo, inventoryRepo, cache)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	transactionsH := handler.NewTransactionsHandler(transactionSvc)
	alertsH := handler.NewAlertsHandler(alertSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/register", middleware.LoginRateLimiter(), authH.Register)
	r.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	r.POST("/logout", authH.Logout)

	// Protected routes — session cookie required
	auth := r.Group("/", middleware.SessionAuth(cfg.SessionCookieName, cfg.JWTSecret))
	{
		auth.GET("/profile", authH.Profile)

		auth.GET("/products", productsH.List)
		auth.POST("/products", productsH.Create)
		auth.PUT("/products/:id", productsH.Update)
		auth.DELETE("/products/:id", productsH.Delete)

		auth.GET("/suppliers", suppliersH.List)
		auth.POST("/suppliers", suppliersH.Create)
		auth.PUT("/suppliers/:id", suppliersH.Update)
		auth.DELETE("/suppliers/:id", suppliersH.Delete)

		auth.GET("/inventory", inventoryH.List)
		auth.POST("/inventory", inventoryH.Create)
		auth.PUT("/inventory/:id", inventoryH.Update)
		auth.DELETE("/inventory/:id", inventoryH.Delete)

		auth.GET("/transactions", transactionsH.List)
		auth.POST("/transactions", transactionsH.Create)
		auth.DELETE("/transactions/:id", transactionsH.Delete)

		auth.GET("/alerts", alertsH.List)
		auth.POST("/alerts", alertsH.Create)
		auth.PUT("/alerts/:id", alertsH.Update)
		auth.DELETE("/alerts/:id", alertsH.Delete)

		auth.GET("/dashboard/stats", dashboardH.Stats)
		auth.GET("/dashboard/inventory-status", dashboardH.InventoryStatus)
		auth.GET("/dashboard/transaction-trends", dashboardH.TransactionTrends)
		auth.GET("/dashboard/low-stock-products", dashboardH.LowStockProducts)
		auth.GET("/dashboard/category-distribution", dashboardH.CategoryDistribution)

		// User administration — admins only
		users := auth.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}
	}

	return r
}
