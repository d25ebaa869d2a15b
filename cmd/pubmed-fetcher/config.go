// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/eutils"
	"github.com/pdiddy/pubmed-fetcher/internal/secrets"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "pubmed-fetcher/0.1"
)

// Viper keys. Each can be set in the config file or as
// PUBMED_FETCHER_<KEY> in the environment.
const (
	keyEmail      = "email"
	keyAPIKey     = "api_key"
	keyTool       = "tool"
	keyMaxResults = "max_results"
	keyTimeout    = "timeout"
	keyUserAgent  = "user_agent"
)

func init() {
	viper.SetDefault(keyMaxResults, eutils.DefaultMaxResults)
	viper.SetDefault(keyTimeout, defaultTimeout)
	viper.SetDefault(keyUserAgent, defaultUserAgent)
	viper.SetDefault(keyTool, eutils.DefaultTool)
}

// eutilsConfig resolves the E-utilities settings. Values from flags,
// environment or the config file win; the .secrets/ files fill in the
// email and API key otherwise.
func eutilsConfig(v *viper.Viper, s secrets.Secrets) types.EutilsConfig {
	timeout := v.GetDuration(keyTimeout)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return types.EutilsConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: v.GetString(keyUserAgent),
		},
		Email:      s.Or(v.GetString(keyEmail), secrets.NCBIEmail),
		Tool:       v.GetString(keyTool),
		APIKey:     s.Or(v.GetString(keyAPIKey), secrets.NCBIAPIKey),
		MaxResults: v.GetInt(keyMaxResults),
	}
}
