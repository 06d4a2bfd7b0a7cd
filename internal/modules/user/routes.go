package user

import "github.com/gin-gonic/gin"

// RegisterRoutes registers user routes
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	users := rg.Group("/users")
	{
		users.GET("", handler.List)
		users.GET("/:id", handler.Get)
	}
}
