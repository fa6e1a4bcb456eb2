package analyses

import (
	"fmt"
	"math"

	"detectia-backend/internal/indicators"
	"detectia-backend/internal/providers"
)

// Aggregation tuning. Thresholds are heuristic and kept as constants so they
// can be adjusted without touching the aggregation shape.
const (
	// LocalWeight is how many times the local indicator mean is counted in
	// the overall average relative to one external signal.
	LocalWeight = 2

	// ConcordanceThreshold is the score above which a signal counts as a
	// high-suspicion vote.
	ConcordanceThreshold = 70.0

	// ConcordanceBonus is added when at least two distinct signals vote high.
	ConcordanceBonus = 10.0

	// HighSuspicion and MediumSuspicion bound the qualitative verdict tiers.
	HighSuspicion   = 70.0
	MediumSuspicion = 40.0

	// agentCutoff gates the per-agent attribution table.
	agentCutoff = 80.0
)

// Overall merges the local indicator mean with whatever external signals
// settled. The local mean is double-weighted so the result degrades to pure
// local analysis when every provider fails. A concordance bonus applies when
// at least two distinct sources agree on high suspicion; the local mean counts
// as a single source for that purpose regardless of its weight.
func Overall(localMean float64, signals map[string]providers.Signal) float64 {
	sum := localMean * LocalWeight
	n := LocalWeight
	for _, sig := range signals {
		sum += sig.Score
		n++
	}
	score := sum / float64(n)

	votes := 0
	if localMean > ConcordanceThreshold {
		votes++
	}
	for _, sig := range signals {
		if sig.Score > ConcordanceThreshold {
			votes++
		}
	}
	if votes >= 2 {
		score = math.Min(100, score+ConcordanceBonus)
	}
	return math.Round(score)
}

// SuspectedAgent derives a human-readable attribution label. When the
// Originality.ai scan names a model, that wins. Otherwise a decision table on
// the dominant indicators produces an indicative label. The label is
// illustrative, not evidence.
func SuspectedAgent(overall float64, set indicators.Set, signals map[string]providers.Signal) string {
	if sig, ok := signals[providers.SourceOriginality]; ok && sig.Agent != "" {
		return fmt.Sprintf("%s (Originality.ai)", sig.Agent)
	}

	switch {
	case overall > agentCutoff:
		switch {
		case set.FrenchSpecific > 70:
			return "ChatGPT (GPT-4/GPT-3.5)"
		case set.SyntaxComplexity > 75:
			return "Claude (Anthropic)"
		case set.VocabularyRichness > 80:
			return "Gemini (Google Bard)"
		case set.NaturalFlow > 70:
			return "GPT-4 (OpenAI)"
		default:
			return "IA Générative Détectée"
		}
	case overall > 60:
		return "Forte probabilité d'IA"
	case overall > MediumSuspicion:
		return "Possible assistance IA"
	default:
		return "Probablement humain"
	}
}
