package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/vaultpass/passkit/internal/crypto"
	"github.com/vaultpass/passkit/internal/metrics"
	"github.com/vaultpass/passkit/internal/model"
	"github.com/vaultpass/passkit/internal/strength"
)

// UsageRecorder persists anonymous generation events.
type UsageRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	source   crypto.Source
	usage    UsageRecorder
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewGeneratorService creates a new GeneratorService. usage may be nil, in
// which case no events are recorded.
func NewGeneratorService(src crypto.Source, usage UsageRecorder, m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{
		source:   src,
		usage:    usage,
		metrics:  m,
		validate: newValidator(),
	}
}

// Generate produces the requested passwords, each with its strength report.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := validateRequest(s.validate, req); err != nil {
		s.metrics.GenerationErrors.WithLabelValues("invalid_request").Inc()
		return model.GenerateResponse{}, err
	}

	cfg := configFromRequest(req)
	count := req.Count
	if count == 0 {
		count = 1
	}

	resp := model.GenerateResponse{Passwords: make([]model.GeneratedPassword, 0, count)}

	for i := 0; i < count; i++ {
		password, err := crypto.Generate(s.source, cfg)
		if err != nil {
			s.metrics.GenerationErrors.WithLabelValues(errorReason(err)).Inc()
			return model.GenerateResponse{}, err
		}

		report := strength.Evaluate(password)
		s.metrics.PasswordsGenerated.WithLabelValues(string(report.Level)).Inc()
		s.record(ctx, cfg, report)

		resp.Passwords = append(resp.Passwords, model.GeneratedPassword{
			Password: password,
			Length:   len(password),
			Strength: report,
		})
	}

	return resp, nil
}

// record stores an anonymous usage event. Failures are logged and swallowed.
func (s *GeneratorService) record(ctx context.Context, cfg crypto.GenerationConfig, report strength.Report) {
	if s.usage == nil {
		return
	}

	event := &model.GenerationEvent{
		Length:         cfg.Length,
		Classes:        len(cfg.ActiveClasses()),
		ExcludeSimilar: cfg.ExcludeSimilar,
		Score:          report.Score,
		Level:          string(report.Level),
	}
	if err := s.usage.Record(ctx, event); err != nil {
		slog.WarnContext(ctx, "recording generation event failed", "error", err)
	}
}

func configFromRequest(req model.GenerateRequest) crypto.GenerationConfig {
	cfg := crypto.GenerationConfig{
		Length:           req.Length,
		IncludeUppercase: boolOrDefault(req.Uppercase, true),
		IncludeLowercase: boolOrDefault(req.Lowercase, true),
		IncludeNumbers:   boolOrDefault(req.Numbers, true),
		IncludeSymbols:   boolOrDefault(req.Symbols, true),
		ExcludeSimilar:   req.ExcludeSimilar,
	}

	if cfg.Length == 0 {
		cfg.Length = crypto.DefaultLength
	}

	return cfg
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrNoCharacterClassSelected):
		return "no_character_class"
	case errors.Is(err, crypto.ErrLengthOutOfRange):
		return "length_out_of_range"
	default:
		return "entropy"
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
