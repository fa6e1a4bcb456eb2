package indicators

import (
	"strings"
	"testing"
)

const humanSample = `Hier j'ai traîné au marché, enfin disons plutôt flâné. Peut-être une heure ?
On discutait, je pense, de tout et de rien avec la marchande de légumes.
Bref. Un vieux monsieur racontait sa jeunesse à Marseille, c'était drôle et un peu triste.`

func allScores(s Set) map[string]float64 {
	return map[string]float64{
		"lexicalDiversity":   s.LexicalDiversity,
		"syntaxComplexity":   s.SyntaxComplexity,
		"semanticCoherence":  s.SemanticCoherence,
		"repetitivePatterns": s.RepetitivePatterns,
		"vocabularyRichness": s.VocabularyRichness,
		"sentenceVariation":  s.SentenceVariation,
		"naturalFlow":        s.NaturalFlow,
		"frenchSpecific":     s.FrenchSpecific,
	}
}

func TestComputeAllScoresInRange(t *testing.T) {
	for name, score := range allScores(Compute(humanSample)) {
		if score < 0 || score > 100 {
			t.Fatalf("%s out of range: %f", name, score)
		}
	}
}

func TestComputeDegenerateInputInRange(t *testing.T) {
	for _, text := range []string{"", "   ", "mot"} {
		for name, score := range allScores(Compute(text)) {
			if score < 0 || score > 100 {
				t.Fatalf("%s out of range for %q: %f", name, text, score)
			}
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	first := Compute(humanSample)
	second := Compute(humanSample)
	if first != second {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestUniformSentencesScoreHigh(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("Le chat gris dort sur le tapis rouge. ")
	}
	set := Compute(b.String())
	if set.SyntaxComplexity < 60 {
		t.Fatalf("expected syntaxComplexity >= 60 for uniform sentences, got %f", set.SyntaxComplexity)
	}
	if set.SentenceVariation < 60 {
		t.Fatalf("expected sentenceVariation >= 60 for uniform sentences, got %f", set.SentenceVariation)
	}
}

func TestFrenchSpecificDetectsCliches(t *testing.T) {
	cliche := `Il est important de noter que le sujet est vaste. Il est important de noter que les avis divergent. Il est important de noter que la question reste ouverte. En conclusion, tout reste à faire.`
	control := `Le marché du village ouvre à huit heures. Les habitants y achètent du pain et des fruits. Certains restent bavarder un moment.`

	withCliches := FrenchSpecific(cliche)
	without := FrenchSpecific(control)
	if withCliches <= without+40 {
		t.Fatalf("expected cliché text to score materially higher: %f vs %f", withCliches, without)
	}
}

func TestLexicalDiversityLowForRepeatedVocabulary(t *testing.T) {
	repeated := strings.Repeat("le chat mange le chat dort ", 20)
	set := Compute(repeated)
	if set.LexicalDiversity < 85 {
		t.Fatalf("expected high suspicion for repeated vocabulary, got %f", set.LexicalDiversity)
	}
}

func TestMeanAveragesAllEight(t *testing.T) {
	set := Set{
		LexicalDiversity:   80,
		SyntaxComplexity:   80,
		SemanticCoherence:  80,
		RepetitivePatterns: 80,
		VocabularyRichness: 80,
		SentenceVariation:  80,
		NaturalFlow:        80,
		FrenchSpecific:     80,
	}
	if got := set.Mean(); got != 80 {
		t.Fatalf("expected mean 80, got %f", got)
	}
}
