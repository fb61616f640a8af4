package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jackela/citegraph/pkg/types"
)

func TestNewServiceExtractorDisabled(t *testing.T) {
	if s := NewServiceExtractor(types.ExternalExtractorConfig{}); s != nil {
		t.Error("extractor created without an endpoint")
	}
}

func TestServiceExtractorExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract" {
			t.Errorf("path = %q, want /extract", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Text != "document text" {
			t.Errorf("text = %q", req.Text)
		}

		json.NewEncoder(w).Encode(extractResponse{Candidates: []Candidate{
			{RawText: "Smith, J. (2023). Test Paper.", Year: 2023, Confidence: 0.9},
		}})
	}))
	defer srv.Close()

	ext := NewServiceExtractor(types.ExternalExtractorConfig{
		Endpoint: srv.URL + "/", // trailing slash must not double up
		APIKey:   "test-key",
	})
	if ext == nil {
		t.Fatal("extractor not created")
	}

	candidates, err := ext.Extract(context.Background(), "document text")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Year != 2023 {
		t.Errorf("candidates = %+v", candidates)
	}
}

func TestServiceExtractorErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no capacity", http.StatusForbidden)
	}))
	defer srv.Close()

	ext := NewServiceExtractor(types.ExternalExtractorConfig{Endpoint: srv.URL})
	if _, err := ext.Extract(context.Background(), "text"); err == nil {
		t.Error("expected error on 403 response")
	}
}
