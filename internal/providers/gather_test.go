package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	name   string
	signal Signal
	err    error
	block  bool
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) Detect(ctx context.Context, text string) (Signal, error) {
	if s.block {
		<-ctx.Done()
		return Signal{}, ctx.Err()
	}
	if s.err != nil {
		return Signal{}, s.err
	}
	return s.signal, nil
}

func TestGatherCollectsOnlySettledSuccesses(t *testing.T) {
	provs := []Provider{
		stubProvider{name: SourceOriginality, signal: Signal{Score: 80}},
		stubProvider{name: SourceWinston, err: errors.New("boom")},
		stubProvider{name: SourceOpenAI, signal: Signal{Score: 55}},
	}

	signals := Gather(context.Background(), provs, "texte", time.Second)
	if len(signals) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(signals))
	}
	if signals[SourceOriginality].Score != 80 {
		t.Fatalf("unexpected originality score: %f", signals[SourceOriginality].Score)
	}
	if signals[SourceOriginality].Source != SourceOriginality {
		t.Fatalf("expected source to be stamped, got %q", signals[SourceOriginality].Source)
	}
	if _, ok := signals[SourceWinston]; ok {
		t.Fatalf("failed provider must be absent")
	}
}

func TestGatherAllFailuresYieldsEmptyMap(t *testing.T) {
	provs := []Provider{
		stubProvider{name: SourceOriginality, err: errors.New("down")},
		stubProvider{name: SourceWinston, err: errors.New("down")},
	}
	signals := Gather(context.Background(), provs, "texte", time.Second)
	if len(signals) != 0 {
		t.Fatalf("expected no signals, got %d", len(signals))
	}
}

func TestGatherBoundsSlowProviders(t *testing.T) {
	provs := []Provider{
		stubProvider{name: SourceOriginality, block: true},
		stubProvider{name: SourceWinston, signal: Signal{Score: 42}},
	}

	start := time.Now()
	signals := Gather(context.Background(), provs, "texte", 50*time.Millisecond)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("gather took too long: %v", elapsed)
	}
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if signals[SourceWinston].Score != 42 {
		t.Fatalf("unexpected winston score: %f", signals[SourceWinston].Score)
	}
}

func TestGatherNoProviders(t *testing.T) {
	signals := Gather(context.Background(), nil, "texte", 0)
	if len(signals) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(signals))
	}
}
