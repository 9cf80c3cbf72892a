package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finance-tracker-backend/internal/config"
	"finance-tracker-backend/internal/handlers"
	"finance-tracker-backend/internal/logger"
	"finance-tracker-backend/internal/middleware"
	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"
	"finance-tracker-backend/internal/services/auth"
	"finance-tracker-backend/internal/services/categories"
	"finance-tracker-backend/internal/services/importer"
	"finance-tracker-backend/internal/services/reports"
	"finance-tracker-backend/internal/services/transactions"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	importJobRepo := repository.NewImportJobRepository(db)

	authService := auth.NewService(db, cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	categoryService := categories.NewService(categoryRepo, transactionRepo)
	transactionService := transactions.NewService(transactionRepo, categoryRepo)
	reportService := reports.NewService(db)
	importService := importer.NewService(importJobRepo, categoryRepo, transactionRepo, logger.Get())

	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	importHandler := handlers.NewImportHandler(importService, cfg.UploadDir)

	authenticated := middleware.Authenticate(authService)
	companyAccess := middleware.RequireCompanyAccess(db)
	canEdit := middleware.RequireRole(models.RoleOwner, models.RoleAccountant)

	// Health check
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authenticated, authHandler.Logout)

	// Everything under a company is scoped by the companyId path param.
	company := r.Group("/companies/:companyId")
	company.Use(authenticated, companyAccess)
	{
		company.GET("/categories", categoryHandler.List)
		company.POST("/categories", canEdit, categoryHandler.Create)

		company.GET("/transactions", transactionHandler.List)
		company.POST("/transactions", canEdit, transactionHandler.Create)

		company.GET("/reports/summary", reportHandler.Summary)
		company.GET("/reports/by-category", reportHandler.ByCategory)
		company.GET("/reports/timeline", reportHandler.Timeline)

		company.POST("/import/csv", canEdit, importHandler.Upload)
		company.GET("/import/:jobId", importHandler.GetJob)
	}

	category := r.Group("/categories")
	category.Use(authenticated, canEdit)
	category.PUT("/:id", categoryHandler.Update)
	category.DELETE("/:id", categoryHandler.Delete)

	tx := r.Group("/transactions")
	tx.Use(authenticated, canEdit)
	tx.PUT("/:id", transactionHandler.Update)
	tx.DELETE("/:id", transactionHandler.Delete)
}
