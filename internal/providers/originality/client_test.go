package originality

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectNormalizesScores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scan/ai" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("X-OAI-API-KEY") != "key-1" {
			t.Fatalf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"score": {"ai": 0.8, "original": 0.2},
			"sentences": [{"text": "Première phrase.", "ai_score": 0.5}],
			"model_used": "GPT-4"
		}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, "key-1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	signal, err := client.Detect(context.Background(), "texte à analyser")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if math.Abs(signal.Score-80) > 1e-9 {
		t.Fatalf("expected score 80, got %f", signal.Score)
	}
	if len(signal.Sentences) != 1 || math.Abs(signal.Sentences[0].Score-50) > 1e-9 {
		t.Fatalf("unexpected sentences: %+v", signal.Sentences)
	}
	if signal.Agent != "GPT-4" {
		t.Fatalf("expected agent GPT-4, got %q", signal.Agent)
	}
}

func TestDetectNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := New(srv.URL, "key-1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Detect(context.Background(), "texte"); err == nil {
		t.Fatalf("expected error on 403")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New("", "  "); err == nil {
		t.Fatalf("expected error for missing api key")
	}
}
