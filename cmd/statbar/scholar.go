package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hwu/statbar/internal/cache"
	"github.com/hwu/statbar/internal/httputil"
	"github.com/hwu/statbar/internal/menu"
	"github.com/hwu/statbar/internal/pipeline"
	"github.com/hwu/statbar/internal/scholar"
	"github.com/hwu/statbar/pkg/types"
)

var scholarCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Render the Google Scholar citations menu",
	Long: `Scholar fetches citation statistics for the configured author profile
through SerpAPI and prints an xbar menu. Results are cached for four hours;
when the live fetch fails, a stale cache entry is rendered with a warning
instead.

This command always exits 0 so the host has menu text to display.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		return renderScholar(cmd.Context(), scholarConfig(), historyPath(), format, cmd.OutOrStdout())
	},
}

func init() {
	scholarCmd.Flags().String("output", "menu", "output format: menu, json, or yaml")
	rootCmd.AddCommand(scholarCmd)
}

func scholarConfig() types.ScholarConfig {
	timeout := viper.GetDuration("http.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	window := viper.GetDuration("scholar.cache_window")
	if window <= 0 {
		window = 4 * time.Hour
	}
	dir := viper.GetString("scholar.cache_dir")
	if dir == "" {
		dir = cache.DefaultDir("scholar")
	}

	return types.ScholarConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "statbar/" + version,
		},
		BaseURL:     viper.GetString("scholar.base_url"),
		AuthorID:    viper.GetString("scholar.author_id"),
		APIKey:      secretDefault("serpapi-api-key", viper.GetString("scholar.api_key")),
		CacheDir:    dir,
		CacheWindow: window,
	}
}

func renderScholar(ctx context.Context, cfg types.ScholarConfig, histPath, format string, w io.Writer) error {
	store := cache.New(cfg.CacheDir, cfg.CacheWindow)
	client := &scholar.Client{HTTP: httputil.NewClient(cfg.Timeout), Cfg: cfg}

	out := pipeline.Run(ctx, store, scholar.CacheKey(cfg.AuthorID), client.Fetch)

	if format != "menu" {
		if out.State == pipeline.StateHardFailure {
			return out.Err
		}
		return dumpRecord(w, format, out.Data)
	}

	var m *menu.Menu
	switch out.State {
	case pipeline.StateFresh:
		m = scholar.Render(out.Data, cfg.AuthorID)
		if out.Live {
			recordSnapshot(ctx, histPath, "scholar", cfg.AuthorID, out.Data.Citations, out.Data)
		}
	case pipeline.StateStaleFallback:
		m = scholar.RenderCached(out.Data, cfg.AuthorID, out.Err)
	case pipeline.StateHardFailure:
		m = scholar.RenderFailure(out.Err)
	}

	m.WriteTo(w)
	return nil
}
