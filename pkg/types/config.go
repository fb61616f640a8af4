package types

import "time"

// HTTPConfig holds shared HTTP settings for components that call services.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citegraph/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ExternalExtractorConfig holds settings for the optional structured
// extraction service. An empty Endpoint disables the service entirely;
// the rule-based cascade then runs alone.
type ExternalExtractorConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the base URL of the extraction service.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// APIKey authenticates against the extraction service. Usually loaded
	// from .secrets/extractor-api-key rather than the config file.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate limiting or
	// transient server errors (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractionConfig holds settings for the citation extraction pipeline.
type ExtractionConfig struct {
	// External configures the optional structured extraction service.
	External ExternalExtractorConfig `json:"external" yaml:"external"`

	// Workers bounds concurrent document parses during batch extraction
	// (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the citation store.
type StoreConfig struct {
	// Path is the SQLite database file (default "citegraph.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// NetworkConfig holds settings for graph construction and analysis.
type NetworkConfig struct {
	// MaxDepth is the default traversal depth, within [1,3] (default 2).
	MaxDepth int `json:"max_depth" yaml:"max_depth"`

	// MinClusterSize is the smallest reported cluster (default 3).
	MinClusterSize int `json:"min_cluster_size" yaml:"min_cluster_size"`
}

// LinkConfig holds settings for cross-document citation resolution.
type LinkConfig struct {
	// Threshold is the minimum title similarity for creating a relation,
	// in (0,1] (default 0.5).
	Threshold float64 `json:"threshold" yaml:"threshold"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Network    NetworkConfig    `json:"network" yaml:"network"`
	Link       LinkConfig       `json:"link" yaml:"link"`
}
