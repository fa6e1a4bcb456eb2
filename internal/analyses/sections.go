package analyses

import (
	"math"
	"strings"

	"detectia-backend/internal/indicators"
	"detectia-backend/internal/providers"
	"detectia-backend/internal/textstats"
)

const (
	// QuickSectionLimit caps how many paragraphs a quick analysis inspects.
	QuickSectionLimit = 3

	// excerptLen is the display budget for a section excerpt.
	excerptLen = 200

	// overlapProbe is how much of a provider sentence must appear inside a
	// section before its score is blended in.
	overlapProbe = 50
)

var highReasons = []string{
	"Patterns IA fortement détectés",
	"Structure artificielle confirmée",
	"Vocabulaire généré automatiquement",
	"Absence de variations naturelles",
}

var mediumReasons = []string{
	"Indicateurs suspects détectés",
	"Style possiblement assisté par IA",
	"Transitions trop parfaites",
}

var lowReasons = []string{
	"Style naturel détecté",
	"Variations humaines confirmées",
	"Imperfections naturelles présentes",
}

// ClassifySections splits the text into paragraphs and scores each one
// independently. Advanced mode inspects every paragraph, quick mode only the
// first few. Per-sentence provider scores are blended into a section when the
// sentence text overlaps it.
func ClassifySections(text, analysisType string, signals map[string]providers.Signal) []Section {
	paragraphs := textstats.Paragraphs(text)
	if analysisType != TypeAdvanced && len(paragraphs) > QuickSectionLimit {
		paragraphs = paragraphs[:QuickSectionLimit]
	}

	sections := make([]Section, 0, len(paragraphs))
	for i, paragraph := range paragraphs {
		score := indicators.Compute(paragraph).Mean()
		score = blendSentenceScores(score, paragraph, signals[providers.SourceOriginality])
		score = blendSentenceScores(score, paragraph, signals[providers.SourceWinston])
		score = math.Round(score)

		level := LevelLow
		reasons := lowReasons
		switch {
		case score > HighSuspicion:
			level = LevelHigh
			reasons = highReasons
		case score > MediumSuspicion:
			level = LevelMedium
			reasons = mediumReasons
		}

		sections = append(sections, Section{
			Index:   i,
			Excerpt: excerpt(paragraph),
			Level:   level,
			Score:   score,
			Reasons: append([]string(nil), reasons...),
		})
	}
	return sections
}

// blendSentenceScores averages the provider's matching per-sentence scores and
// folds the result into the running section score with equal weight.
func blendSentenceScores(score float64, paragraph string, sig providers.Signal) float64 {
	var sum float64
	var n int
	for _, sentence := range sig.Sentences {
		probe := sentence.Text
		if runes := []rune(probe); len(runes) > overlapProbe {
			probe = string(runes[:overlapProbe])
		}
		if probe == "" || !strings.Contains(paragraph, probe) {
			continue
		}
		sum += sentence.Score
		n++
	}
	if n == 0 {
		return score
	}
	return (score + sum/float64(n)) / 2
}

func excerpt(paragraph string) string {
	runes := []rune(paragraph)
	if len(runes) <= excerptLen {
		return paragraph
	}
	return string(runes[:excerptLen]) + "..."
}
