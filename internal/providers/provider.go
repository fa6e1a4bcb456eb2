package providers

import "context"

// Known provider names, used as keys in results and apiSources flags.
const (
	SourceOriginality = "originality"
	SourceWinston     = "winston"
	SourceOpenAI      = "openai"
)

// Names lists every provider slot, configured or not.
var Names = []string{SourceOriginality, SourceWinston, SourceOpenAI}

// Sentence is a per-sentence score from a provider, already normalized to
// the common 0-100 AI-likelihood scale.
type Sentence struct {
	Text  string
	Score float64
}

// Signal is one provider's normalized verdict: 0 reads human, 100 reads
// generated. Sentences and Agent are optional extras some providers return.
type Signal struct {
	Source    string
	Score     float64
	Sentences []Sentence
	Agent     string
}

// Provider is a single external detection service. Detect must honor ctx
// cancellation; any transport, status or payload problem is returned as an
// error and treated upstream as "signal absent".
type Provider interface {
	Name() string
	Detect(ctx context.Context, text string) (Signal, error)
}
