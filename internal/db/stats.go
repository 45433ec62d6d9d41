package db

import (
	"context"
	"fmt"
	"time"

	"github.com/augurhq/augur/internal/models"
)

// Stats aggregates the local prediction history: total predictions recorded,
// plus per-domain counts and average confidence
func (d *DB) Stats(ctx context.Context) (*models.StatsSummary, error) {
	summary := &models.StatsSummary{
		GeneratedAt: time.Now().UTC(),
	}

	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE role = 'prediction'`).
		Scan(&summary.TotalPredictions)
	if err != nil {
		return nil, fmt.Errorf("failed to count predictions: %w", err)
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT COALESCE(domain, 'general'), COUNT(*), COALESCE(AVG(confidence), 0), MAX(created_at)
		 FROM messages WHERE role = 'prediction'
		 GROUP BY COALESCE(domain, 'general')
		 ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate domains: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ds models.DomainStats
		var lastSeen string
		if err := rows.Scan(&ds.Domain, &ds.Predictions, &ds.AvgConfidence, &lastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan domain stats: %w", err)
		}
		ds.LastSeen = parseStoredTime(lastSeen)
		summary.ByDomain = append(summary.ByDomain, ds)
	}

	return summary, rows.Err()
}

// parseStoredTime parses a timestamp as SQLite hands it back from an
// aggregate, where the column's declared type is lost
func parseStoredTime(s string) time.Time {
	layouts := []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
