package analyses

import (
	"time"

	"detectia-backend/internal/indicators"
)

// Analysis modes.
const (
	TypeQuick    = "quick"
	TypeAdvanced = "advanced"
)

// Suspicion levels attached to section results.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Section is the per-paragraph verdict included in a result.
type Section struct {
	Index   int      `json:"index"`
	Excerpt string   `json:"excerpt"`
	Level   string   `json:"suspicionLevel"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Result is a completed analysis. It is immutable once stored.
type Result struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	DocumentID   string          `json:"documentId,omitempty"`
	Filename     string          `json:"filename,omitempty"`
	Text         string          `json:"text"`
	AnalysisType string          `json:"analysisType"`
	OverallScore float64         `json:"overallScore"`
	SuspectedAI  string          `json:"suspectedAI"`
	Indicators   indicators.Set  `json:"indicators"`
	Sections     []Section       `json:"sectionAnalysis"`
	APISources   map[string]bool `json:"apiSources"`
	CreatedAt    time.Time       `json:"createdAt"`
}
