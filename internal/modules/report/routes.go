package report

import "github.com/gin-gonic/gin"

// RegisterRoutes registers report routes
func RegisterRoutes(rg *gin.RouterGroup, handler *Handler) {
	rg.GET("/reports/overview", handler.GetOverview)
}
