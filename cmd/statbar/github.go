package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hwu/statbar/internal/cache"
	"github.com/hwu/statbar/internal/github"
	"github.com/hwu/statbar/internal/httputil"
	"github.com/hwu/statbar/internal/menu"
	"github.com/hwu/statbar/internal/pipeline"
	"github.com/hwu/statbar/pkg/types"
)

var githubCmd = &cobra.Command{
	Use:   "github",
	Short: "Render the GitHub status menu",
	Long: `Github fetches the configured user's profile counters, total stars
received, monitored repositories, and recent stars by followed users, then
prints an xbar menu. Results are cached for an hour; when the live fetch
fails, a stale cache entry is rendered with a warning instead.

This command always exits 0 so the host has menu text to display.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		return renderGitHub(cmd.Context(), githubConfig(), historyPath(), format, cmd.OutOrStdout())
	},
}

func init() {
	githubCmd.Flags().String("output", "menu", "output format: menu, json, or yaml")
	rootCmd.AddCommand(githubCmd)
}

func githubConfig() types.GitHubConfig {
	timeout := viper.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	window := viper.GetDuration("github.cache_window")
	if window <= 0 {
		window = time.Hour
	}
	dir := viper.GetString("github.cache_dir")
	if dir == "" {
		dir = cache.DefaultDir("github")
	}

	return types.GitHubConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "statbar/" + version,
		},
		BaseURL:        viper.GetString("github.base_url"),
		Username:       viper.GetString("github.username"),
		Token:          secretDefault("github-token", viper.GetString("github.token")),
		MonitoredRepos: splitList(viper.GetStringSlice("github.monitored_repos")),
		CacheDir:       dir,
		CacheWindow:    window,
	}
}

func renderGitHub(ctx context.Context, cfg types.GitHubConfig, histPath, format string, w io.Writer) error {
	store := cache.New(cfg.CacheDir, cfg.CacheWindow)
	client := &github.Client{HTTP: httputil.NewClient(cfg.Timeout), Cfg: cfg}

	out := pipeline.Run(ctx, store, github.CacheKey(cfg.Username), client.Fetch)

	if format != "menu" {
		if out.State == pipeline.StateHardFailure {
			return out.Err
		}
		return dumpRecord(w, format, out.Data)
	}

	var m *menu.Menu
	now := time.Now()
	switch out.State {
	case pipeline.StateFresh:
		m = github.Render(out.Data, now)
		if out.Live {
			recordSnapshot(ctx, histPath, "github", cfg.Username, out.Data.StarsReceived, out.Data)
		}
	case pipeline.StateStaleFallback:
		m = github.RenderCached(out.Data, now, out.Err)
	case pipeline.StateHardFailure:
		m = github.RenderFailure(out.Err)
	}

	m.WriteTo(w)
	return nil
}
