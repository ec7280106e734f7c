package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jpennells/stakeholder-map-go/internal/handler"
	"github.com/jpennells/stakeholder-map-go/internal/middleware"
)

// SetupRouter wires the HTTP surface: health check, dashboard projections
// and the submission endpoint.
func SetupRouter(dashboard *handler.DashboardHandler, submissions *handler.SubmissionHandler, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Stakeholder Map API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		dash := api.Group("/dashboard")
		{
			dash.GET("/filters", dashboard.GetFilterOptions)
			dash.GET("/map", dashboard.GetMap)
			dash.GET("/legend", dashboard.GetLegend)
			dash.GET("/table", dashboard.GetTable)
		}

		subs := api.Group("/submissions")
		subs.Use(middleware.RateLimit(10, time.Minute))
		{
			subs.POST("/mailto", submissions.PrepareEmail)
		}
	}

	return r
}
