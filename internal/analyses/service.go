package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"detectia-backend/internal/indicators"
	"detectia-backend/internal/providers"
	"detectia-backend/internal/shared/metrics"
	"detectia-backend/internal/shared/telemetry"
)

// Input length bounds, in characters after trimming.
const (
	MinTextLen = 50
	MaxTextLen = 10000
)

// Service runs analyses and reads back stored results.
type Service struct {
	Repo      Repo
	Providers []providers.Provider
	Timeout   time.Duration
}

// AnalyzeInput describes one analysis request.
type AnalyzeInput struct {
	UserID       string
	Text         string
	AnalysisType string
	Filename     string
	DocumentID   string
}

// Analyze runs the full pipeline synchronously: local indicators, external
// signals, aggregation, section classification, then persistence. Provider
// failures degrade the result; a persistence failure fails the request.
func (s *Service) Analyze(ctx context.Context, in AnalyzeInput) (Result, error) {
	text := strings.TrimSpace(in.Text)
	if err := validateText(text); err != nil {
		return Result{}, err
	}
	analysisType, err := normalizeType(in.AnalysisType)
	if err != nil {
		return Result{}, err
	}

	metrics.IncAnalysisStarted()
	start := time.Now()

	set := indicators.Compute(text)
	localMean := set.Mean()

	signals := providers.Gather(ctx, s.Providers, text, s.timeout())

	overall := Overall(localMean, signals)
	result := Result{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		DocumentID:   in.DocumentID,
		Filename:     in.Filename,
		Text:         text,
		AnalysisType: analysisType,
		OverallScore: overall,
		SuspectedAI:  SuspectedAgent(overall, set, signals),
		Indicators:   set,
		Sections:     ClassifySections(text, analysisType, signals),
		APISources:   sourceFlags(signals),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, result); err != nil {
		metrics.IncAnalysisFailed()
		return Result{}, fmt.Errorf("store analysis: %w", err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":   result.ID,
		"user_id":       in.UserID,
		"analysis_type": analysisType,
		"overall_score": result.OverallScore,
		"api_sources":   result.APISources,
		"duration_ms":   time.Since(start).Milliseconds(),
	})
	return result, nil
}

// Get returns a stored result owned by the user.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (Result, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns the user's stored results, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Result, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return providers.DefaultTimeout
}

func validateText(text string) error {
	length := len([]rune(text))
	if length < MinTextLen {
		return ErrTextTooShort
	}
	if length > MaxTextLen {
		return ErrTextTooLong
	}
	return nil
}

func normalizeType(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", TypeQuick:
		return TypeQuick, nil
	case TypeAdvanced:
		return TypeAdvanced, nil
	default:
		return "", ErrInvalidType
	}
}

// sourceFlags records every provider slot, active or not, so a result always
// shows which external services contributed.
func sourceFlags(signals map[string]providers.Signal) map[string]bool {
	flags := make(map[string]bool, len(providers.Names))
	for _, name := range providers.Names {
		_, ok := signals[name]
		flags[name] = ok
	}
	return flags
}
