// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citegraph CLI, the command
// surface over citation extraction, storage, and graph analytics.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jackela/citegraph/internal/secrets"
	"github.com/Jackela/citegraph/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd is the base command for the citegraph CLI.
var rootCmd = &cobra.Command{
	Use:   "citegraph",
	Short: "Citation extraction and citation-graph analytics",
	Long: `citegraph extracts bibliographic citations from plain document text and
builds a navigable citation graph across the collection.

Ingest registers documents, parse runs the rule-based extraction pipeline,
link resolves citations into cross-document relations, and the network,
rank, and clusters commands analyze the resulting graph.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citegraph.yaml or ~/.config/citegraph/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database file (default: ./citegraph.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citegraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citegraph"))
		}
	}

	viper.SetEnvPrefix("CITEGRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// storeConfig resolves the store settings from flags, config file, and
// defaults, in that order.
func storeConfig(cmd *cobra.Command) types.StoreConfig {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.path")
	}
	if path == "" {
		path = "citegraph.db"
	}
	maxResults := viper.GetInt("store.max_results")
	return types.StoreConfig{Path: path, MaxResults: maxResults}
}

// extractionConfig resolves the extraction settings, wiring the service
// API key from secrets when the config file does not set one.
func extractionConfig() types.ExtractionConfig {
	cfg := types.ExtractionConfig{
		External: types.ExternalExtractorConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("extraction.external.timeout"),
				UserAgent: "citegraph/" + version,
			},
			Endpoint:   viper.GetString("extraction.external.endpoint"),
			APIKey:     viper.GetString("extraction.external.api_key"),
			MaxRetries: viper.GetInt("extraction.external.max_retries"),
		},
		Workers: viper.GetInt("extraction.workers"),
	}
	if cfg.External.Timeout <= 0 {
		cfg.External.Timeout = 30 * time.Second
	}
	if cfg.External.APIKey == "" {
		cfg.External.APIKey = loadedSecrets.Get(secrets.ExtractorAPIKey)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
