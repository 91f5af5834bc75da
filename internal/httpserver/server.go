package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/revlytics/lead-insights-service/internal/handlers"
	"github.com/revlytics/lead-insights-service/internal/httpserver/requestid"
)

// Store is everything the HTTP layer needs from persistence. The Postgres
// store satisfies it; tests substitute in-memory fakes.
type Store interface {
	handlers.LeadStore
	handlers.EventStore
	Ping(ctx context.Context) error
}

// NewRouter wires the public API surface.
// Public: /health, /ready, /api/leads, /api/events
func NewRouter(st Store, en handlers.Enricher) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())

	// The dashboard frontend is served from arbitrary origins, so CORS is
	// wide open. Credentials stay off: browsers ignore them under a wildcard
	// origin and gin-contrib/cors rejects the combination outright.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if err := st.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	handlers.RegisterLeadRoutes(r, st, en)
	handlers.RegisterEventRoutes(r, st)

	return r
}
