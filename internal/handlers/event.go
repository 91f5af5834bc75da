package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/revlytics/lead-insights-service/internal/models"
)

// EventStore is the persistence surface for analytics events.
type EventStore interface {
	InsertEvent(ctx context.Context, e models.Event) (int64, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// RegisterEventRoutes registers the analytics ingestion and listing endpoints.
//
// POST /api/events
//   - All payload fields optional; unknown keys ignored
//   - timestamp, when present, is parsed naively ("Z" stripped, no zone math)
//   - Missing timestamp defaults to the server's current UTC time
//
// GET /api/events
//   - Returns every stored event, store-native field names
func RegisterEventRoutes(r gin.IRoutes, st EventStore) {
	r.POST("/api/events", func(c *gin.Context) {
		var req models.EventIngestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
			return
		}

		occurredAt := time.Now().UTC()
		if req.Timestamp != nil && *req.Timestamp != "" {
			ts, err := models.ParseNaiveTime(*req.Timestamp)
			if err != nil {
				// Parse failure happens before the insert, so nothing is
				// partially persisted for this request.
				c.JSON(http.StatusBadRequest, gin.H{"error": "timestamp must be ISO-8601"})
				return
			}
			occurredAt = ts
		}

		_, err := st.InsertEvent(c.Request.Context(), models.Event{
			UserID:     req.UserID,
			Action:     req.Action,
			Metadata:   req.Metadata,
			OccurredAt: occurredAt,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db insert failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/events", func(c *gin.Context) {
		events, err := st.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}
		c.JSON(http.StatusOK, events)
	})
}
