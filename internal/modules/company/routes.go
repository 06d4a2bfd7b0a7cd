package company

import "github.com/gin-gonic/gin"

// RegisterRoutes registers company routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.POST("", handler.Create)
		companies.GET("/:id", handler.Get)
		companies.PATCH("/:id", handler.Update)
	}
}
