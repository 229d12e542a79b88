package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opendict/wordscan/internal/config"
	"github.com/opendict/wordscan/internal/dict"
	"github.com/opendict/wordscan/internal/fetch"
	wslog "github.com/opendict/wordscan/internal/log"
	"github.com/opendict/wordscan/internal/lookup"
	"github.com/opendict/wordscan/internal/model"
	"github.com/opendict/wordscan/internal/report"
)

// errAllDictionariesDisabled is returned when the configuration file
// disables every dictionary the user selected.
var errAllDictionariesDisabled = errors.New("every selected dictionary is disabled in the configuration file")

// NewLookupCmd creates the lookup command.
func NewLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [word]...",
		Short: "Look up word translations on the dictionary sites",
		Long: `Lookup fetches each dictionary site's result page for a word and extracts
its translations into one report.

Both sites are queried concurrently. A site that fails or finds nothing
still appears in the report, annotated with what went wrong, so one site's
outage never hides the other's translations.

Examples:
  # Look up one word from English to Spanish
  wordscan lookup --from en --to es hello

  # Full language names and region tags work too
  wordscan lookup --from english --to spanish hello
  wordscan lookup --from en --to pt-BR hello

  # Look up several words with bounded concurrency
  wordscan lookup --from en --to fr --batch 2 hello world peace

  # Query only one site and emit JSON
  wordscan lookup --from en --to de --dictionaries linguee --json hello

  # Route requests through a SOCKS5 proxy
  wordscan lookup --from en --to it --proxy 127.0.0.1:9050 hello

Configuration file (.wordscan) example:
  defaults:
    userAgent: "Mozilla/5.0 ..."
  dictionaries:
    linguee:
      mirrors:
        - "https://corsproxy.io/?%s"
    wordreference:
      headers:
        Accept-Language: "en-US,en;q=0.9"`,
		Args: cobra.ArbitraryArgs,
		RunE: runLookupCmd,
	}

	// Language pair flags
	cmd.Flags().StringP("from", "f", "",
		"Source language (code like 'en' or name like 'english')")
	cmd.Flags().StringP("to", "t", "",
		"Target language (code like 'es' or name like 'spanish')")

	// Lookup behavior flags
	cmd.Flags().StringSliceP("dictionaries", "d", nil,
		"Dictionaries to query (wordreference, linguee; default: all)")
	cmd.Flags().DurationP("timeout", "T", config.DefaultTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().StringP("proxy", "p", "",
		"SOCKS5 proxy address for all requests (e.g., 127.0.0.1:9050)")
	cmd.Flags().Float64P("rate", "r", config.DefaultRateLimit,
		"Maximum requests per second per dictionary (0 disables pacing)")
	cmd.Flags().StringP("user-agent", "u", "",
		"User-Agent header to send (default: a desktop browser)")

	// Batch lookup flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent word lookups")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wordscan in current, XDG config, or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runLookupCmd executes the lookup command.
func runLookupCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging. The trim handler keeps raw HTML
	// fragments out of debug output.
	logger := wslog.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runLookup(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.FromLang, err = cmd.Flags().GetString("from")
	if err != nil {
		return nil, err
	}

	cfg.ToLang, err = cmd.Flags().GetString("to")
	if err != nil {
		return nil, err
	}

	cfg.Dictionaries, err = cmd.Flags().GetStringSlice("dictionaries")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
	if err != nil {
		return nil, err
	}

	cfg.RateLimit, err = cmd.Flags().GetFloat64("rate")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-dictionary configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.DictionaryConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.DictionaryConfigs = &config.File{
			Dictionaries: make(map[string]config.DictionaryConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Get positional arguments (words to look up)
	cfg.Words = args

	return cfg, nil
}

// runLookup executes the lookup.
func runLookup(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	dictionaries, err := buildDictionaries(cfg)
	if err != nil {
		return err
	}

	output, closeOutput, err := openReportOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer := newReportWriter(cfg, output)
	service := lookup.NewService(dictionaries, lookup.WithLogger(logger))

	logger.Info("starting lookup",
		"words", cfg.Words,
		"from", cfg.FromLang,
		"to", cfg.ToLang,
		"dictionaries", len(dictionaries),
	)

	// Single word: one lookup, one report.
	if len(cfg.Words) == 1 {
		lookupReport, err := service.Lookup(ctx, lookup.Request{
			Word: cfg.Words[0],
			From: cfg.FromLang,
			To:   cfg.ToLang,
		})
		if err != nil {
			return err
		}
		_, err = writer.Write(lookupReport)
		return err
	}

	// Multiple words run through the batch processor so lookups overlap
	// while the fetch layer's rate limiter still paces the requests.
	// Reports come back in input order and are written sequentially.
	bp := lookup.NewBatchProcessor(service,
		lookup.WithBatchConcurrency(cfg.BatchSize),
		lookup.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, cfg.Words, cfg.FromLang, cfg.ToLang)
	for _, lookupReport := range reports {
		if lookupReport == nil {
			continue
		}
		if _, writeErr := writer.Write(lookupReport); writeErr != nil {
			return writeErr
		}
	}
	return err
}

// buildDictionaries assembles the dictionary clients the lookup fans out
// over. Each client gets its own fetch client so per-dictionary settings
// from the config file (user agent, headers, mirrors) apply independently.
func buildDictionaries(cfg *config.Config) ([]dict.Dictionary, error) {
	// Validate the selection against the registry first; this also fixes
	// the client order for deterministic reports.
	selected, err := dict.ByName(nil, cfg.Dictionaries)
	if err != nil {
		return nil, err
	}

	dictionaries := make([]dict.Dictionary, 0, len(selected))
	for _, d := range selected {
		dictConfig := cfg.DictionaryConfigs.GetDictionaryConfig(d.Name().String())
		if dictConfig.Disabled {
			slog.Debug("dictionary disabled by configuration", "dictionary", d.Name().String())
			continue
		}

		client, err := buildFetchClient(cfg, dictConfig)
		if err != nil {
			return nil, fmt.Errorf("build fetch client for %s: %w", d.Name(), err)
		}

		switch d.Name() {
		case model.SourceWordReference:
			dictionaries = append(dictionaries, dict.NewWordReference(client))
		case model.SourceLinguee:
			dictionaries = append(dictionaries, dict.NewLinguee(client))
		}
	}

	if len(dictionaries) == 0 {
		return nil, errAllDictionariesDisabled
	}
	return dictionaries, nil
}

// buildFetchClient builds a fetch client from the global flags merged with
// one dictionary's configuration. The per-dictionary user agent wins over
// the --user-agent flag.
func buildFetchClient(cfg *config.Config, dictConfig config.DictionaryConfig) (dict.Fetcher, error) {
	opts := []fetch.Option{
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithRateLimit(cfg.RateLimit, fetch.DefaultBurst),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	}

	userAgent := cfg.UserAgent
	if dictConfig.UserAgent != "" {
		userAgent = dictConfig.UserAgent
	}
	if userAgent != "" {
		opts = append(opts, fetch.WithUserAgent(userAgent))
	}
	if len(dictConfig.Headers) > 0 {
		opts = append(opts, fetch.WithHeaders(dictConfig.Headers))
	}
	if len(dictConfig.Mirrors) > 0 {
		opts = append(opts, fetch.WithMirrors(dictConfig.Mirrors))
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, fetch.WithProxyAddress(cfg.ProxyAddress))
	}

	return fetch.NewClient(opts...)
}

// newReportWriter selects the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// openReportOutput opens the report destination: the given file path, or
// stdout when the path is empty. The returned closer is a no-op for stdout.
func openReportOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided report path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil //nolint:errcheck // close error on report file is not actionable
}
