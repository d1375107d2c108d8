package model

import "time"

// GenerationEvent is an anonymous record of one generation. It never carries
// the generated password.
type GenerationEvent struct {
	ID             int64
	Length         int
	Classes        int
	ExcludeSimilar bool
	Score          int
	Level          string
	CreatedAt      time.Time
}

// UsageSummary aggregates recorded generation events.
type UsageSummary struct {
	Total         int64            `json:"total"`
	AverageLength float64          `json:"average_length"`
	ByLevel       map[string]int64 `json:"by_level"`
}
