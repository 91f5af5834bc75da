// Package seed performs the one-time CSV import of lead records.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/revlytics/lead-insights-service/internal/models"
)

// expected CSV header, in order.
var header = []string{"id", "name", "company", "industry", "size", "source", "created_at"}

// LeadWriter is the slice of the store the loader needs.
type LeadWriter interface {
	CountLeads(ctx context.Context) (int64, error)
	InsertLeads(ctx context.Context, leads []models.Lead) error
}

// LoadLeads imports the CSV at path when the leads table is empty, committing
// the whole file in one transaction. A populated table makes it a no-op, so
// restarts never duplicate data. Any file or parse error is returned to the
// caller, which treats it as fatal to startup.
func LoadLeads(ctx context.Context, st LeadWriter, path string) error {
	count, err := st.CountLeads(ctx)
	if err != nil {
		return fmt.Errorf("count leads: %w", err)
	}
	if count > 0 {
		log.Printf("seed: leads table already has %d rows, skipping import", count)
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	leads, err := readLeads(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := st.InsertLeads(ctx, leads); err != nil {
		return fmt.Errorf("insert seed leads: %w", err)
	}

	log.Printf("seed: imported %d leads from %s", len(leads), path)
	return nil
}

// readLeads parses the full file, validating the header and coercing the
// numeric and timestamp columns.
func readLeads(r io.Reader) ([]models.Lead, error) {
	cr := csv.NewReader(r)

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(first) != len(header) {
		return nil, fmt.Errorf("header has %d columns, want %d", len(first), len(header))
	}
	for i, name := range header {
		if first[i] != name {
			return nil, fmt.Errorf("header column %d is %q, want %q", i, first[i], name)
		}
	}

	leads := []models.Lead{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad id %q", len(leads)+1, rec[0])
		}
		size, err := strconv.ParseInt(rec[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad size %q", len(leads)+1, rec[4])
		}
		createdAt, err := models.ParseNaiveTime(rec[6])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad created_at %q: %w", len(leads)+1, rec[6], err)
		}

		leads = append(leads, models.Lead{
			ID:        id,
			Name:      rec[1],
			Company:   rec[2],
			Industry:  rec[3],
			Size:      size,
			Source:    rec[5],
			CreatedAt: createdAt,
		})
	}
	return leads, nil
}
