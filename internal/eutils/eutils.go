// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils talks to the NCBI E-utilities API: ESearch resolves a
// query to PMIDs and EFetch returns the PubMed XML for a PMID list.
package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/internal/httputil"
	"github.com/pdiddy/pubmed-fetcher/internal/logger"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Endpoint URLs. Declared as vars so tests can substitute an httptest server.
var (
	esearchURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

const (
	// DefaultMaxResults is the PMID cap applied when none is configured.
	DefaultMaxResults = 100

	// DefaultEmail is the contact address sent when none is configured.
	DefaultEmail = "abhinavprajapati351@gmail.com"

	// DefaultTool is the tool name sent when none is configured.
	DefaultTool = "pubmed-fetcher"

	database = "pubmed"
)

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Client queries PubMed through E-utilities.
type Client struct {
	HTTP *http.Client
	Cfg  types.EutilsConfig
}

// NewClient returns a Client for cfg. Missing email and tool fall back to
// the package defaults.
func NewClient(httpClient *http.Client, cfg types.EutilsConfig) *Client {
	if cfg.Email == "" {
		cfg.Email = DefaultEmail
	}
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{HTTP: httpClient, Cfg: cfg}
}

// Search runs an ESearch query and returns the matching PMIDs in the
// order PubMed ranks them. retmax <= 0 uses the configured cap, then
// DefaultMaxResults. A response without an id list yields an empty slice.
func (c *Client) Search(ctx context.Context, query string, retmax int) ([]string, error) {
	if retmax <= 0 {
		retmax = c.Cfg.MaxResults
	}
	if retmax <= 0 {
		retmax = DefaultMaxResults
	}

	params := c.baseParams()
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(retmax))
	params.Set("retmode", "json")

	logger.Debug("esearch term=%q retmax=%d", query, retmax)

	body, err := httputil.Get(ctx, c.HTTP, esearchURL+"?"+params.Encode(), c.Cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Endpoint: "ESearch", Err: err}
	}

	ids := []string{}
	if resp.Result != nil && resp.Result.IDList != nil {
		ids = resp.Result.IDList
	}
	logger.Debug("esearch returned %d ids", len(ids))
	return ids, nil
}

// Fetch retrieves the PubMed XML for ids in one EFetch request. The ids are
// sent as a single comma-separated parameter without chunking.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]byte, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one PMID is required")
	}

	params := c.baseParams()
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "xml")

	logger.Debug("efetch %d ids", len(ids))

	body, err := httputil.Get(ctx, c.HTTP, efetchURL+"?"+params.Encode(), c.Cfg.UserAgent)
	if err != nil {
		return nil, err
	}
	logger.Debug("efetch returned %d bytes", len(body))
	return body, nil
}

func (c *Client) baseParams() url.Values {
	params := url.Values{
		"db":    {database},
		"email": {c.Cfg.Email},
		"tool":  {c.Cfg.Tool},
	}
	if c.Cfg.APIKey != "" {
		params.Set("api_key", c.Cfg.APIKey)
	}
	return params
}

// ESearch JSON structures. Pointers distinguish an absent field from an
// empty one.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}
