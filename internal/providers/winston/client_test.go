package winston

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectInvertsHumanScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key-w" {
			t.Fatalf("missing bearer token")
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["language"] != "fr" {
			t.Fatalf("expected language fr, got %v", req["language"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"result": {
				"score": 0.3,
				"is_human": false,
				"sentences": [{"text": "Une phrase.", "score": 0.9}]
			}
		}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, "key-w")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	signal, err := client.Detect(context.Background(), "texte")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if math.Abs(signal.Score-70) > 1e-9 {
		t.Fatalf("expected inverted score 70, got %f", signal.Score)
	}
	if len(signal.Sentences) != 1 || math.Abs(signal.Sentences[0].Score-10) > 1e-9 {
		t.Fatalf("expected inverted sentence score 10, got %+v", signal.Sentences)
	}
}

func TestDetectMalformedPayloadIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer srv.Close()

	client, err := New(srv.URL, "key-w")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Detect(context.Background(), "texte"); err == nil {
		t.Fatalf("expected parse error")
	}
}
