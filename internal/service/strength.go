package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/nbutton23/zxcvbn-go"

	"github.com/vaultpass/passkit/internal/metrics"
	"github.com/vaultpass/passkit/internal/model"
	"github.com/vaultpass/passkit/internal/strength"
)

// maxEstimatedRunes bounds the input handed to zxcvbn, whose cost grows
// quickly with length.
const maxEstimatedRunes = 50

// StrengthService scores passwords.
type StrengthService struct {
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewStrengthService creates a new StrengthService.
func NewStrengthService(m *metrics.Metrics) *StrengthService {
	return &StrengthService{metrics: m, validate: newValidator()}
}

// Evaluate returns the rule-based report for req.Password together with a
// zxcvbn guessability estimate.
func (s *StrengthService) Evaluate(req model.EvaluateRequest) (model.EvaluateResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return model.EvaluateResponse{}, err
	}

	report := strength.Evaluate(req.Password)
	s.metrics.Evaluations.WithLabelValues(string(report.Level)).Inc()

	return model.EvaluateResponse{
		Score:       report.Score,
		Level:       report.Level,
		Label:       report.Level.Label(),
		Suggestions: report.Suggestions,
		Checks:      report.Checks,
		Estimate:    estimate(req.Password),
	}, nil
}

func estimate(password string) *model.Estimate {
	if password == "" {
		return nil
	}

	runes := []rune(password)
	if len(runes) > maxEstimatedRunes {
		runes = runes[:maxEstimatedRunes]
	}

	result := zxcvbn.PasswordStrength(string(runes), nil)
	return &model.Estimate{
		GuessScore:  result.Score,
		EntropyBits: result.Entropy,
		CrackTime:   result.CrackTimeDisplay,
	}
}
