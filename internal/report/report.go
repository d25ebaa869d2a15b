// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes extracted article rows to CSV files and to the
// console in table, JSON or YAML form.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// WriteCSV creates or truncates path and writes the header followed by
// one record per row. Records end in CRLF.
func WriteCSV(path string, rows []types.ArticleRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}

	if err := EncodeCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing CSV file: %w", err)
	}
	return nil
}

// EncodeCSV writes the header and rows as CSV to w.
func EncodeCSV(w io.Writer, rows []types.ArticleRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(types.Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("writing CSV row %s: %w", r.PubmedID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// ReadCSV loads a file written by WriteCSV. It returns the header and the
// data rows separately.
func ReadCSV(path string) ([]string, []types.ArticleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening CSV file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = len(types.Columns)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("CSV file %s has no header", path)
	}

	rows := make([]types.ArticleRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, types.RowFromRecord(rec))
	}
	return records[0], rows, nil
}

// Print writes rows to w in the requested format. An unknown format is an
// error; the empty format means table.
func Print(w io.Writer, rows []types.ArticleRow, format types.OutputFormat) error {
	switch format {
	case "", types.OutputTable:
		FormatTable(rows, w)
		return nil
	case types.OutputJSON:
		return FormatJSON(rows, w)
	case types.OutputYAML:
		return FormatYAML(rows, w)
	default:
		return fmt.Errorf("unknown output format %q (want table, json, or yaml)", format)
	}
}

// FormatTable writes one labelled block per row.
func FormatTable(rows []types.ArticleRow, w io.Writer) {
	for i, r := range rows {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 40))
		}
		for j, v := range r.Record() {
			fmt.Fprintf(w, "%-27s %s\n", types.Columns[j]+":", v)
		}
	}
}

// FormatJSON writes rows as indented JSON.
func FormatJSON(rows []types.ArticleRow, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// FormatYAML writes rows as a YAML sequence.
func FormatYAML(rows []types.ArticleRow, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
