package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func verdictServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["model"] != "gpt-4" {
			t.Fatalf("expected default model gpt-4, got %v", req["model"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "` + content + `"}}]}`))
	}))
}

func TestDetectParsesNumericVerdict(t *testing.T) {
	srv := verdictServer(t, "85")
	defer srv.Close()

	client, err := New(srv.URL, "key-o", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	signal, err := client.Detect(context.Background(), "texte")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if signal.Score != 85 {
		t.Fatalf("expected score 85, got %f", signal.Score)
	}
}

func TestDetectNonNumericVerdictIsError(t *testing.T) {
	srv := verdictServer(t, "je ne sais pas")
	defer srv.Close()

	client, err := New(srv.URL, "key-o", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Detect(context.Background(), "texte"); err == nil {
		t.Fatalf("expected error for non-numeric verdict")
	}
}

func TestDetectAPIErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "insufficient_quota"}}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, "key-o", "gpt-4")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := client.Detect(context.Background(), "texte"); err == nil {
		t.Fatalf("expected api error")
	}
}
