package job

import "github.com/gin-gonic/gin"

// RegisterRoutes registers job routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.Get)
		jobs.PATCH("/:id", handler.Update)
	}
}
