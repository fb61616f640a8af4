// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Jackela/citegraph/internal/httputil"
	"github.com/Jackela/citegraph/pkg/types"
)

// ServiceExtractor calls an HTTP extraction service implementing
// POST /extract with a plain-text body and a JSON candidate list reply.
type ServiceExtractor struct {
	cfg    types.ExternalExtractorConfig
	client *http.Client
}

// NewServiceExtractor returns a client for the configured endpoint, or
// nil when no endpoint is configured.
func NewServiceExtractor(cfg types.ExternalExtractorConfig) *ServiceExtractor {
	if cfg.Endpoint == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ServiceExtractor{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type extractRequest struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Extract submits text to the service and returns its candidates.
func (s *ServiceExtractor) Extract(ctx context.Context, text string) ([]Candidate, error) {
	headers := map[string]string{}
	if s.cfg.UserAgent != "" {
		headers["User-Agent"] = s.cfg.UserAgent
	}
	if s.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + s.cfg.APIKey
	}

	url := strings.TrimRight(s.cfg.Endpoint, "/") + "/extract"

	var resp extractResponse
	err := httputil.PostJSON(ctx, s.client, url, headers, extractRequest{Text: text}, &resp, s.cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("extraction service: %w", err)
	}
	return resp.Candidates, nil
}
