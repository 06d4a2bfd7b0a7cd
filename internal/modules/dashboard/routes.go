package dashboard

import "github.com/gin-gonic/gin"

// RegisterRoutes registers dashboard routes
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	rg.GET("/dashboard/stats", handler.GetStats)
}
