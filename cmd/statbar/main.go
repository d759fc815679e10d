// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the statbar CLI: xbar-compatible
// menu bar plugins for GitHub status and Google Scholar citations. The
// host runs one subcommand per poll and displays its stdout as a menu.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hwu/statbar/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultTimeout bounds each HTTP request.
const defaultTimeout = 30 * time.Second

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the statbar CLI.
var rootCmd = &cobra.Command{
	Use:   "statbar",
	Short: "Menu bar status plugins for GitHub and Google Scholar",
	Long: `statbar renders xbar-compatible menu text for two data sources: GitHub
user status (stars, followers, monitored repositories, recent stars by
followed users) and Google Scholar citation statistics via SerpAPI.

The render subcommands (github, scholar) always exit 0: failures are
rendered as menu lines so the host has something to display. history shows
recorded snapshots of past fetches.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./statbar.yaml or ~/.config/statbar/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("statbar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "statbar"))
		}
	}

	viper.SetEnvPrefix("STATBAR")
	viper.AutomaticEnv()

	// The original plugin scripts configured themselves through these
	// unprefixed variables; keep honoring them.
	viper.BindEnv("github.username", "STATBAR_GITHUB_USERNAME", "GITHUB_USERNAME")
	viper.BindEnv("github.token", "STATBAR_GITHUB_TOKEN", "GITHUB_TOKEN")
	viper.BindEnv("github.monitored_repos", "STATBAR_MONITORED_REPOS", "MONITORED_REPOS")
	viper.BindEnv("scholar.author_id", "STATBAR_SCHOLAR_ID", "SCHOLAR_ID")
	viper.BindEnv("scholar.api_key", "STATBAR_SERP_API_KEY", "SERP_API_KEY")

	viper.ReadInConfig()
}

// splitList splits comma-separated entries, so the env form
// ("owner/a,owner/b") and the YAML list form both work.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
