package service

import (
	"context"
	"errors"

	"github.com/vaultpass/passkit/internal/model"
)

var ErrStatsUnavailable = errors.New("usage statistics are not enabled")

// UsageStore reads and writes anonymous generation events.
type UsageStore interface {
	UsageRecorder
	Summary(ctx context.Context) (model.UsageSummary, error)
}

// UsageService exposes aggregated usage statistics.
type UsageService struct {
	store UsageStore
}

// NewUsageService creates a new UsageService. A nil store disables statistics.
func NewUsageService(store UsageStore) *UsageService {
	return &UsageService{store: store}
}

// Summary returns totals per strength level.
func (s *UsageService) Summary(ctx context.Context) (model.UsageSummary, error) {
	if s.store == nil {
		return model.UsageSummary{}, ErrStatsUnavailable
	}
	return s.store.Summary(ctx)
}
