package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billforge/internal/handler"
	"billforge/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	healthH *handler.HealthHandler,
	invoiceH *handler.InvoiceHandler,
	profileH *handler.ProfileHandler,
	templateH *handler.TemplateHandler,
	hsnH *handler.HSNHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Invoice lifecycle
	invoices := v1.Group("/invoices")
	invoices.POST("/compute", invoiceH.Compute)
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.GET("/csv", invoiceH.ExportCSV)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/render", invoiceH.Render)
	invoices.GET("/:id/pdf", invoiceH.ExportPDF)
	invoices.POST("/:id/email", invoiceH.Email)
	invoices.GET("/:id/archive", invoiceH.Archive)

	// Company profiles
	profiles := v1.Group("/profiles")
	profiles.POST("", profileH.Create)
	profiles.GET("", profileH.List)
	profiles.GET("/:id", profileH.GetByID)
	profiles.PUT("/:id", profileH.Update)
	profiles.DELETE("/:id", profileH.Delete)

	// Reference data
	v1.GET("/templates", templateH.List)
	v1.GET("/hsn", hsnH.Search)

	return r
}
