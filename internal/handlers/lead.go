package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/revlytics/lead-insights-service/internal/enrich"
	"github.com/revlytics/lead-insights-service/internal/httpserver/requestid"
	"github.com/revlytics/lead-insights-service/internal/models"
)

// LeadStore is the read side of lead persistence.
type LeadStore interface {
	ListLeads(ctx context.Context, f models.LeadFilter) ([]models.Lead, error)
}

// Enricher produces the per-lead {quality, summary} judgment.
type Enricher interface {
	Enrich(ctx context.Context, industry string, size int64) (enrich.Result, error)
}

// RegisterLeadRoutes registers the lead-listing endpoint.
//
// GET /api/leads?industry=...&size=...
//   - industry: exact match when non-empty
//   - size: minimum-inclusive threshold when > 0
//
// Each matched lead is enriched with one external call; calls run
// sequentially in store order so the response order tracks insertion order.
// A failed enrichment only costs that one lead its quality/summary fields —
// the request still returns 200 with every matched record.
func RegisterLeadRoutes(r gin.IRoutes, st LeadStore, en Enricher) {
	r.GET("/api/leads", func(c *gin.Context) {
		filter := models.LeadFilter{Industry: c.Query("industry")}

		if raw := c.Query("size"); raw != "" {
			size, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
				return
			}
			filter.MinSize = size
		}

		leads, err := st.ListLeads(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		out := make([]models.EnrichedLead, 0, len(leads))
		for _, l := range leads {
			merged := models.EnrichedLead{Lead: l}

			res, err := en.Enrich(c.Request.Context(), l.Industry, l.Size)
			if err != nil {
				log.Printf("request %s: enrichment for lead %d unavailable: %v",
					requestid.Get(c), l.ID, err)
			} else {
				merged.Quality = res.Quality
				merged.Summary = res.Summary
			}

			out = append(out, merged)
		}

		c.JSON(http.StatusOK, out)
	})
}
