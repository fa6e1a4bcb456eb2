package textstats

import (
	"math"
	"strings"
)

// Stats holds the text primitives shared by every heuristic indicator.
type Stats struct {
	Words           []string
	Sentences       []string
	Paragraphs      []string
	WordCount       int
	SentenceLengths []float64
	MeanSentenceLen float64
	SentenceStdDev  float64
}

// Analyze tokenizes text into words, sentences and paragraphs and derives
// the counts and dispersion the indicators consume. Degenerate input never
// fails: a text without terminal punctuation is one sentence, a text without
// blank lines is one paragraph, and empty input yields zeroed stats.
func Analyze(text string) Stats {
	stats := Stats{
		Words:      Fields(text),
		Sentences:  Sentences(text),
		Paragraphs: Paragraphs(text),
	}
	stats.WordCount = len(stats.Words)

	stats.SentenceLengths = make([]float64, 0, len(stats.Sentences))
	for _, s := range stats.Sentences {
		stats.SentenceLengths = append(stats.SentenceLengths, float64(len(Fields(s))))
	}
	stats.MeanSentenceLen = Mean(stats.SentenceLengths)
	stats.SentenceStdDev = StdDev(stats.SentenceLengths)

	return stats
}

// Fields splits text on whitespace, dropping empty tokens.
func Fields(text string) []string {
	return strings.Fields(text)
}

// Sentences splits text on terminal punctuation, trimming each segment and
// dropping empties. A non-empty text with no terminators is one sentence.
func Sentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

// Paragraphs splits text on blank-line boundaries, trimming each block and
// dropping empties. A non-empty text without blank lines is one paragraph.
func Paragraphs(text string) []string {
	var out []string
	for _, block := range splitBlankLines(text) {
		if p := strings.TrimSpace(block); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitBlankLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	var b strings.Builder
	blank := 0
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			blank++
			continue
		}
		if blank > 0 && b.Len() > 0 {
			blocks = append(blocks, b.String())
			b.Reset()
		}
		blank = 0
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		blocks = append(blocks, b.String())
	}
	return blocks
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, or 0 for fewer than two
// values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
