package repository

import (
	"context"
	"database/sql"

	"github.com/vaultpass/passkit/internal/model"
)

// UsageRepository stores anonymous generation events.
type UsageRepository struct {
	db *sql.DB
}

// NewUsageRepository creates a new UsageRepository.
func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Record inserts an event and sets the generated ID on it.
func (r *UsageRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	query := `INSERT INTO generation_events (length, classes, exclude_similar, score, level)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.Length,
		event.Classes,
		event.ExcludeSimilar,
		event.Score,
		event.Level,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// Summary aggregates all recorded events per strength level.
func (r *UsageRepository) Summary(ctx context.Context) (model.UsageSummary, error) {
	query := `SELECT level, COUNT(*), COALESCE(SUM(length), 0)
		FROM generation_events GROUP BY level`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return model.UsageSummary{}, err
	}
	defer rows.Close()

	summary := model.UsageSummary{ByLevel: make(map[string]int64)}
	var totalLength int64

	for rows.Next() {
		var (
			level       string
			count, sumL int64
		)
		if err := rows.Scan(&level, &count, &sumL); err != nil {
			return model.UsageSummary{}, err
		}
		summary.ByLevel[level] = count
		summary.Total += count
		totalLength += sumL
	}
	if err := rows.Err(); err != nil {
		return model.UsageSummary{}, err
	}

	if summary.Total > 0 {
		summary.AverageLength = float64(totalLength) / float64(summary.Total)
	}

	return summary, nil
}
