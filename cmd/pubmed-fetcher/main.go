// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubmed-fetcher CLI.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/eutils"
	"github.com/pdiddy/pubmed-fetcher/internal/logger"
	"github.com/pdiddy/pubmed-fetcher/internal/pipeline"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// newSource builds the PubMed source for a run. Tests replace it with a stub.
var newSource = func(cfg types.EutilsConfig) pipeline.Source {
	return eutils.NewClient(&http.Client{Timeout: cfg.Timeout}, cfg)
}

// newRootCmd returns the pubmed-fetcher command. The command has no
// subcommands so any single word, including "help" or "version", is
// taken as a query.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubmed-fetcher <query>",
		Short: "Fetch research papers from PubMed",
		Long: `pubmed-fetcher searches PubMed for a query, downloads the matching
records and reports, for each article, its PMID, title, publication date,
authors, authors with non-academic affiliations, their company
affiliations, and a corresponding-author email.

Results are printed to the console unless --file is given, in which case
they are written as CSV. --from-xml extracts rows from a saved EFetch
document without contacting NCBI, and --show prints a CSV written earlier.`,
		Version:           version,
		Args:              queryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: preRun,
		RunE:              runRoot,
	}
	cmd.SetVersionTemplate("pubmed-fetcher {{.Version}}\n")

	f := cmd.Flags()
	f.String("config", "", "config file (default: ./pubmed-fetcher.yaml or ~/.config/pubmed-fetcher/pubmed-fetcher.yaml)")
	f.BoolP("debug", "d", false, "enable debug output")
	f.StringP("file", "f", "", "write results to this CSV file instead of the console")
	f.String("format", string(types.OutputTable), "console format: table, json, or yaml")
	f.Int("retmax", 0, "maximum number of PMIDs to fetch (default 100)")
	f.String("email", "", "contact email sent to NCBI")
	f.String("api-key", "", "NCBI API key")
	f.Duration("timeout", 0, "HTTP request timeout (default 60s)")
	f.String("from-xml", "", "extract rows from a saved EFetch XML file instead of querying PubMed")
	f.String("show", "", "print a CSV file written by pubmed-fetcher")
	cmd.MarkFlagsMutuallyExclusive("from-xml", "show")

	_ = viper.BindPFlag(keyMaxResults, f.Lookup("retmax"))
	_ = viper.BindPFlag(keyEmail, f.Lookup("email"))
	_ = viper.BindPFlag(keyAPIKey, f.Lookup("api-key"))
	_ = viper.BindPFlag(keyTimeout, f.Lookup("timeout"))

	return cmd
}

// queryArgs requires exactly one query unless an offline mode is selected,
// in which case no positional argument is accepted.
func queryArgs(cmd *cobra.Command, args []string) error {
	if stringFlag(cmd, "from-xml") != "" || stringFlag(cmd, "show") != "" {
		return cobra.NoArgs(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func preRun(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger.SetDebug(debug)

	initConfig(stringFlag(cmd, "config"))

	s, err := secrets.Load(".secrets/")
	if err != nil {
		return err
	}
	loadedSecrets = s
	if len(s) > 0 {
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.Debug("loaded secrets: %v", keys)
	}
	return nil
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubmed-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubmed-fetcher"))
		}
	}

	viper.SetEnvPrefix("PUBMED_FETCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file: %s", viper.ConfigFileUsed())
	}
}

// run executes the CLI with args and returns the process exit code. Any
// error is reported once on stderr with an "Error:" prefix.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
