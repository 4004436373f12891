package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/drills/internal/config"
	"github.com/nao1215/drills/internal/model"
	"github.com/nao1215/drills/internal/ranking"
	"github.com/nao1215/drills/internal/report"
	"github.com/nao1215/drills/internal/transport"
	"github.com/nao1215/drills/internal/tvseries"
)

// NewBestCmd creates the best command.
func NewBestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best [genre]",
		Short: "Print the best-rated TV series of a genre",
		Long: `Best fetches every page of the TV series API, keeps the series whose genre
list contains the requested genre (case-insensitive) and prints the one with
the highest IMDb rating. Rating ties go to the alphabetically first name.

At most 20 pages are requested. If the API reports more, the result is
computed from the pages fetched and a warning is logged.

Examples:
  # Best action series
  drills best Action

  # Best drama series with the five runners-up
  drills best drama --top 5

  # Query another endpoint through a SOCKS5 proxy
  drills best --url http://localhost:8080/api/tvseries --proxy 127.0.0.1:1080 Comedy

  # Output JSON report
  drills best --json Action`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBestCmd,
	}

	cmd.Flags().StringP("url", "u", config.DefaultBaseURL,
		"Series API endpoint")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to fetch (1-20)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().StringP("proxy", "x", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:1080)")
	cmd.Flags().IntP("top", "n", 0,
		"Also list the N best series of the genre")
	addOutputFlags(cmd)

	return cmd
}

// runBestCmd executes the best command.
func runBestCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildBestConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	logger.Debug("starting query",
		"url", cfg.BaseURL,
		"genre", cfg.Genre,
		"max_pages", cfg.MaxPages,
		"proxy", cfg.ProxyAddress,
		"headers", cfg.Headers,
	)

	rankingReport, err := runBest(cmd, cfg, logger)
	if err != nil {
		return err
	}

	return outputReport(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteRanking(rankingReport)
		return err
	})
}

// buildBestConfig layers defaults, the config file, the genre argument and
// explicitly set flags, in that order.
func buildBestConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		cfg.Genre = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		if cfg.BaseURL, err = flags.GetString("url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-pages") {
		if cfg.MaxPages, err = flags.GetInt("max-pages"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if cfg.Top, err = flags.GetInt("top"); err != nil {
		return nil, err
	}

	if cfg.UserAgent == config.DefaultUserAgent {
		cfg.UserAgent = userAgent()
	}

	return cfg, nil
}

// runBest fetches every page and reduces the records to a ranking report.
func runBest(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*model.RankingReport, error) {
	httpClient, err := transport.NewHTTPClient(transport.Options{
		Timeout:      cfg.Timeout,
		ProxyAddress: cfg.ProxyAddress,
		UserAgent:    cfg.UserAgent,
		Headers:      cfg.Headers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	client, err := tvseries.NewClient(cfg.BaseURL,
		tvseries.WithHTTPClient(httpClient),
		tvseries.WithMaxPages(cfg.MaxPages),
		tvseries.WithUserAgent(cfg.UserAgent),
		tvseries.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	queriedAt := time.Now()
	result, err := client.FetchAll(cmd.Context())
	if err != nil {
		return nil, err
	}

	logger.Debug("fetch completed",
		"records", len(result.Records),
		"pages", result.PagesFetched,
		"stop_reason", result.StopReason,
		"elapsed", time.Since(queriedAt).Round(time.Millisecond),
	)

	evaluation := ranking.Evaluate(cfg.Genre, result.Records, cfg.Top)

	rankingReport := &model.RankingReport{
		Genre:          cfg.Genre,
		Found:          evaluation.Found,
		Message:        evaluation.Message(),
		Candidates:     evaluation.Candidates,
		Top:            evaluation.Top,
		RecordsFetched: len(result.Records),
		PagesFetched:   result.PagesFetched,
		TotalPages:     result.TotalPages,
		StopReason:     result.StopReason,
		QueriedAt:      queriedAt,
	}
	if evaluation.Found {
		winner := evaluation.Best
		rankingReport.Winner = &winner
	}

	return rankingReport, nil
}
