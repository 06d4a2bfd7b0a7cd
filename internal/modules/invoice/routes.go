package invoice

import "github.com/gin-gonic/gin"

// RegisterRoutes registers invoice routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	invoices := r.Group("/invoices")
	{
		invoices.GET("", handler.List)
		invoices.POST("", handler.Create)
		invoices.GET("/stats", handler.GetStats)
		invoices.GET("/:id", handler.Get)
		invoices.PATCH("/:id/status", handler.UpdateStatus)
	}
}
