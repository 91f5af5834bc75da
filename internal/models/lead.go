package models

import "time"

// Lead is a sales-prospect record. Rows are written once by the seed loader
// and never updated or deleted afterwards.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Industry  string    `json:"industry"`
	Size      int64     `json:"size"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadFilter holds the optional /api/leads query constraints.
// Zero values mean "no constraint": an empty Industry matches everything and
// MinSize 0 imposes no threshold, mirroring the truthiness semantics clients
// already depend on.
type LeadFilter struct {
	Industry string
	MinSize  int64
}

// EnrichedLead is the /api/leads response row: the stored lead plus whichever
// enrichment fields the model produced. Absent fields are omitted entirely so
// callers can distinguish "enrichment unavailable" from an empty string.
type EnrichedLead struct {
	Lead
	Quality string `json:"quality,omitempty"`
	Summary string `json:"summary,omitempty"`
}
