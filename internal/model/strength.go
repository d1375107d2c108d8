package model

import "github.com/vaultpass/passkit/internal/strength"

// EvaluateRequest represents a password strength request.
type EvaluateRequest struct {
	Password string `json:"password" validate:"max=1024"`
}

// Estimate is a guessability estimate that accompanies the rule-based report.
type Estimate struct {
	GuessScore  int     `json:"guess_score"`
	EntropyBits float64 `json:"entropy_bits"`
	CrackTime   string  `json:"crack_time"`
}

// EvaluateResponse represents a password strength response.
type EvaluateResponse struct {
	Score       int              `json:"score"`
	Level       strength.Level   `json:"level"`
	Label       string           `json:"label"`
	Suggestions []string         `json:"suggestions"`
	Checks      []strength.Check `json:"checks,omitempty"`
	Estimate    *Estimate        `json:"estimate,omitempty"`
}
