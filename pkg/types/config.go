package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities client used by the
// search and fetch stages.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address NCBI asks every E-utilities caller to send.
	Email string `json:"email" yaml:"email"`

	// Tool names the calling application in the "tool" parameter.
	Tool string `json:"tool" yaml:"tool"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults caps the number of PMIDs returned by a search (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// OutputFormat selects how rows are printed to the console.
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)
