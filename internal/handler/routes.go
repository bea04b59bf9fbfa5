package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API on router
func RegisterRoutes(router *gin.Engine, sites *SiteHandler, visits *VisitHandler) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/sites", sites.Register)
		v1.GET("/sites", sites.List)
		v1.PATCH("/sites/:publicId", sites.Update)
		v1.DELETE("/sites/:publicId", sites.Delete)
		v1.GET("/sites/:publicId/stats", sites.Stats)
		v1.POST("/sites/:publicId/visits", visits.Record)
		v1.POST("/sites/:publicId/visits/async", visits.RecordAsync)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
