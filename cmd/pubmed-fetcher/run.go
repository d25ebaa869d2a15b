// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/extract"
	"github.com/pdiddy/pubmed-fetcher/internal/logger"
	"github.com/pdiddy/pubmed-fetcher/internal/pipeline"
	"github.com/pdiddy/pubmed-fetcher/internal/report"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

func runRoot(cmd *cobra.Command, args []string) error {
	format := types.OutputFormat(stringFlag(cmd, "format"))
	if err := validateFormat(format); err != nil {
		return err
	}

	if path := stringFlag(cmd, "show"); path != "" {
		return runShow(cmd, path, format)
	}
	if path := stringFlag(cmd, "from-xml"); path != "" {
		return runFromXML(cmd, path, format)
	}
	return runQuery(cmd, args[0], format)
}

// runQuery searches PubMed, fetches the matches and reports the rows.
func runQuery(cmd *cobra.Command, query string, format types.OutputFormat) error {
	file := stringFlag(cmd, "file")
	out := cmd.OutOrStdout()

	if logger.IsDebug() {
		fmt.Fprintf(out, "Running with query: %s\n", query)
	}

	cfg := eutilsConfig(viper.GetViper(), loadedSecrets)
	res, err := pipeline.Run(cmd.Context(), newSource(cfg), query, pipeline.Options{
		MaxResults: cfg.MaxResults,
		OutputPath: file,
	})
	if err != nil {
		return err
	}

	if res.NoResults {
		fmt.Fprintln(out, "No papers found.")
		return nil
	}
	return reportRows(cmd, res.Rows, file, format)
}

// runFromXML extracts rows from an EFetch document saved on disk.
func runFromXML(cmd *cobra.Command, path string, format types.OutputFormat) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading XML file: %w", err)
	}

	file := stringFlag(cmd, "file")
	rows, err := extract.ExtractToCSV(data, file)
	if err != nil {
		return err
	}
	return reportRows(cmd, rows, file, format)
}

func runShow(cmd *cobra.Command, path string, format types.OutputFormat) error {
	_, rows, err := report.ReadCSV(path)
	if err != nil {
		return err
	}
	return report.Print(cmd.OutOrStdout(), rows, format)
}

// reportRows confirms the CSV path when one was written, otherwise prints
// the rows.
func reportRows(cmd *cobra.Command, rows []types.ArticleRow, file string, format types.OutputFormat) error {
	out := cmd.OutOrStdout()
	if file != "" {
		fmt.Fprintf(out, "Results saved to %s\n", file)
		return nil
	}
	return report.Print(out, rows, format)
}

func validateFormat(f types.OutputFormat) error {
	switch f {
	case "", types.OutputTable, types.OutputJSON, types.OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json, or yaml)", f)
}

func stringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
