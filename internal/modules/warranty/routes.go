package warranty

import "github.com/gin-gonic/gin"

// RegisterRoutes registers warranty routes
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	warranties := rg.Group("/warranties")
	{
		warranties.GET("", handler.List)
		warranties.POST("", handler.Create)
		warranties.GET("/stats", handler.GetStats)
		warranties.GET("/:id", handler.Get)
		warranties.POST("/:id/claim", handler.Claim)
		warranties.POST("/:id/extend", handler.Extend)
	}
}
