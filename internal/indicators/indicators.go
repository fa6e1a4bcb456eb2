package indicators

import (
	"strings"
	"unicode"

	"detectia-backend/internal/textstats"
)

// Tunable heuristic constants. None of these values are calibrated against a
// labeled corpus; they are kept as named constants so they can be adjusted
// without touching the formulas.
const (
	// Neutral is returned when a text is too degenerate to measure.
	Neutral = 50.0

	// Lexical diversity bands (percent of distinct word forms).
	diversityVeryLow = 40.0
	diversityLow     = 50.0
	diversityMid     = 60.0

	// Sentence-length dispersion bands (standard deviation in words).
	dispersionVeryLow = 3.0
	dispersionLow     = 5.0
	dispersionMid     = 8.0

	// Long-word density bands (percent of words longer than longWordLen runes).
	longWordLen  = 7
	richnessHigh = 25.0
	richnessMid  = 18.0

	// Sentences needed before the absence of hesitation markers counts.
	hesitationMinSentences = 5

	sentenceVariationSlope = 8.0
	uniformityWindow       = 3.0
	uniformityTrigger      = 0.7
	liaisonDensityTrigger  = 2.0
)

// Set is the fixed battery of eight heuristic sub-scores. Every field is
// always populated and clamped to [0,100]; degenerate input maps to Neutral.
type Set struct {
	LexicalDiversity   float64 `json:"lexicalDiversity"`
	SyntaxComplexity   float64 `json:"syntaxComplexity"`
	SemanticCoherence  float64 `json:"semanticCoherence"`
	RepetitivePatterns float64 `json:"repetitivePatterns"`
	VocabularyRichness float64 `json:"vocabularyRichness"`
	SentenceVariation  float64 `json:"sentenceVariation"`
	NaturalFlow        float64 `json:"naturalFlow"`
	FrenchSpecific     float64 `json:"frenchSpecific"`
}

// Compute runs all eight indicators on the given text. The result is a pure
// function of the input: identical text always yields identical scores.
func Compute(text string) Set {
	stats := textstats.Analyze(text)
	return Set{
		LexicalDiversity:   LexicalDiversity(stats),
		SyntaxComplexity:   SyntaxComplexity(stats),
		SemanticCoherence:  SemanticCoherence(text, stats),
		RepetitivePatterns: RepetitivePatterns(stats),
		VocabularyRichness: VocabularyRichness(text, stats),
		SentenceVariation:  SentenceVariation(stats),
		NaturalFlow:        NaturalFlow(text, stats),
		FrenchSpecific:     FrenchSpecific(text),
	}
}

// Mean returns the unweighted average of the eight sub-scores.
func (s Set) Mean() float64 {
	return (s.LexicalDiversity + s.SyntaxComplexity + s.SemanticCoherence +
		s.RepetitivePatterns + s.VocabularyRichness + s.SentenceVariation +
		s.NaturalFlow + s.FrenchSpecific) / 8.0
}

// LexicalDiversity scores low vocabulary turnover as suspect: generated text
// reuses word forms more than human prose under this heuristic.
func LexicalDiversity(stats textstats.Stats) float64 {
	if stats.WordCount == 0 {
		return Neutral
	}
	unique := make(map[string]struct{}, stats.WordCount)
	for _, w := range stats.Words {
		if n := normalizeWord(w); n != "" {
			unique[n] = struct{}{}
		}
	}
	diversity := float64(len(unique)) / float64(stats.WordCount) * 100
	switch {
	case diversity < diversityVeryLow:
		return 85
	case diversity < diversityLow:
		return 60
	case diversity < diversityMid:
		return 35
	default:
		return 15
	}
}

// SyntaxComplexity scores uniform sentence lengths as suspect.
func SyntaxComplexity(stats textstats.Stats) float64 {
	if len(stats.Sentences) == 0 {
		return Neutral
	}
	switch dev := stats.SentenceStdDev; {
	case dev < dispersionVeryLow:
		return 90
	case dev < dispersionLow:
		return 70
	case dev < dispersionMid:
		return 45
	default:
		return 20
	}
}

// SemanticCoherence flags too-perfect transitions, announced essay structure
// and the complete absence of natural hesitation markers.
func SemanticCoherence(text string, stats textstats.Stats) float64 {
	if len(stats.Sentences) == 0 {
		return Neutral
	}
	score := 0.0
	for _, p := range perfectTransitions {
		score += float64(len(p.FindAllStringIndex(text, -1))) * 25
	}
	score += float64(len(structuralWords.FindAllStringIndex(text, -1))) * 15
	if len(stats.Sentences) > hesitationMinSentences && !hesitationMarkers.MatchString(text) {
		score += 40
	}
	return clamp(score)
}

// RepetitivePatterns counts repeated sentence-opening four-grams and
// formulaic academic openers.
func RepetitivePatterns(stats textstats.Stats) float64 {
	if len(stats.Sentences) == 0 {
		return Neutral
	}
	score := 0.0
	openers := make(map[string]int, len(stats.Sentences))
	for _, sentence := range stats.Sentences {
		words := textstats.Fields(sentence)
		n := len(words)
		if n > 4 {
			n = 4
		}
		opener := strings.ToLower(strings.Join(words[:n], " "))
		openers[opener]++

		lowered := strings.ToLower(sentence)
		for _, f := range formulaicOpeners {
			if strings.Contains(lowered, f) {
				score += 15
			}
		}
	}
	for _, count := range openers {
		if count > 1 {
			score += 30
		}
	}
	return clamp(score)
}

// VocabularyRichness scores an artificially polished register: a high density
// of long words plus the fixed list of "too perfect" adjectives.
func VocabularyRichness(text string, stats textstats.Stats) float64 {
	if stats.WordCount == 0 {
		return Neutral
	}
	long := 0
	for _, w := range stats.Words {
		if len([]rune(normalizeWord(w))) > longWordLen {
			long++
		}
	}
	density := float64(long) / float64(stats.WordCount) * 100

	var score float64
	switch {
	case density > richnessHigh:
		score = 55
	case density > richnessMid:
		score = 40
	default:
		score = 20
	}

	lowered := strings.ToLower(text)
	for _, adj := range polishedAdjectives {
		score += float64(strings.Count(lowered, adj)) * 8
	}
	return clamp(score)
}

// SentenceVariation is the inverse of sentence-length dispersion: near-uniform
// lengths yield a high score.
func SentenceVariation(stats textstats.Stats) float64 {
	if len(stats.Sentences) == 0 {
		return Neutral
	}
	return clamp(100 - stats.SentenceStdDev*sentenceVariationSlope)
}

// NaturalFlow combines length uniformity, flawless punctuation and liaison
// overuse into one "too smooth" signal.
func NaturalFlow(text string, stats textstats.Stats) float64 {
	if len(stats.Sentences) == 0 {
		return Neutral
	}
	score := 0.0

	within := 0
	for _, l := range stats.SentenceLengths {
		if diff := l - stats.MeanSentenceLen; diff < uniformityWindow && diff > -uniformityWindow {
			within++
		}
	}
	if float64(within)/float64(len(stats.Sentences)) > uniformityTrigger {
		score += 50
	}

	if len(stats.Sentences) > 3 && !punctuationSlips.MatchString(text) {
		score += 30
	}

	liaisons := len(liaisonPattern.FindAllStringIndex(text, -1))
	if float64(liaisons)/float64(len(stats.Sentences)) > liaisonDensityTrigger {
		score += 25
	}
	return clamp(score)
}

// FrenchSpecific counts formulaic French AI clichés, both as regex patterns
// and as plain academic stock phrases.
func FrenchSpecific(text string) float64 {
	score := 0.0
	for _, p := range frenchAIPatterns {
		score += float64(len(p.FindAllStringIndex(text, -1))) * 25
	}
	lowered := strings.ToLower(text)
	for _, c := range academicCliches {
		if strings.Contains(lowered, c) {
			score += 20
		}
	}
	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func normalizeWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(w) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
