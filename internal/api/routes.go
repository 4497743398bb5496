package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelplanner/internal/api/controllers"
	"travelplanner/pkg/middleware"
)

type Handlers struct {
	Health    *controllers.HealthController
	Tags      *controllers.TagController
	Itinerary *controllers.ItineraryController
	Planner   *controllers.PlannerController
	Share     *controllers.ShareController
}

// RegisterRoutes mounts every endpoint. Generation endpoints share the
// per-client limiter; metrics may be nil.
func RegisterRoutes(r *gin.Engine, h Handlers, limiter *middleware.ClientRateLimiter, metrics http.Handler) {
	limited := middleware.RateLimitMiddleware(limiter)

	r.GET("/healthz", h.Health.Healthz)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	r.GET("/tags", h.Tags.ListAllTagsHandler)
	r.GET("/form/defaults", h.Tags.FormDefaultsHandler)

	r.POST("/itineraries", limited, h.Itinerary.GenerateHandler)

	sessions := r.Group("/sessions")
	sessions.POST("", h.Planner.StartSession)
	sessions.GET("/:id", h.Planner.GetSession)
	sessions.POST("/:id/get-started", h.Planner.GetStarted)
	sessions.POST("/:id/submit", limited, h.Planner.Submit)
	sessions.POST("/:id/back", h.Planner.Back)
	sessions.POST("/:id/share", h.Planner.Share)
	sessions.GET("/:id/download", h.Planner.Download)

	r.GET("/shared/:token", h.Share.ResolveHandler)
}
