// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs search, fetch and extract in sequence.
package pipeline

import (
	"context"
	"fmt"

	"github.com/pdiddy/pubmed-fetcher/internal/extract"
	"github.com/pdiddy/pubmed-fetcher/internal/logger"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Source resolves queries to PMIDs and PMIDs to EFetch XML. *eutils.Client
// implements it; tests supply a mock.
type Source interface {
	Search(ctx context.Context, query string, retmax int) ([]string, error)
	Fetch(ctx context.Context, ids []string) ([]byte, error)
}

// Options controls a single pipeline run.
type Options struct {
	// MaxResults caps the search; zero uses the source default.
	MaxResults int

	// OutputPath is the CSV file to write. Empty skips the file.
	OutputPath string
}

// Result holds the outcome of a run.
type Result struct {
	// IDs are the PMIDs returned by the search.
	IDs []string

	// Rows are the extracted rows, in document order.
	Rows []types.ArticleRow

	// NoResults is true when the search matched nothing and the fetch
	// and extract stages were skipped.
	NoResults bool
}

// Run executes the pipeline for query. An empty search result stops the
// run before Fetch. The first error from any stage is returned and any
// partial results are discarded.
func Run(ctx context.Context, src Source, query string, opts Options) (Result, error) {
	logger.Section("Search")
	ids, err := src.Search(ctx, query, opts.MaxResults)
	if err != nil {
		return Result{}, fmt.Errorf("searching PubMed: %w", err)
	}
	if len(ids) == 0 {
		logger.Info("no PMIDs matched %q", query)
		return Result{NoResults: true}, nil
	}
	logger.Info("%d PMIDs matched", len(ids))

	logger.Section("Fetch")
	data, err := src.Fetch(ctx, ids)
	if err != nil {
		return Result{}, fmt.Errorf("fetching records: %w", err)
	}

	logger.Section("Extract")
	rows, err := extract.ExtractToCSV(data, opts.OutputPath)
	if err != nil {
		return Result{}, fmt.Errorf("extracting records: %w", err)
	}

	return Result{IDs: ids, Rows: rows}, nil
}
