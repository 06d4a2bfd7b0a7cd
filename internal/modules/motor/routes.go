package motor

import "github.com/gin-gonic/gin"

// RegisterRoutes registers motor routes
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	motors := r.Group("/motors")
	{
		motors.GET("", handler.List)
		motors.POST("", handler.Create)
		motors.GET("/:id", handler.Get)
	}
}
