package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values are chosen for polite scraping of the public dictionary
// sites, which respond within a few seconds under normal conditions.
const (
	// DefaultTimeout is the per-request timeout. The dictionary sites are
	// ordinary clearnet services; 15 seconds covers slow mirrors without
	// letting a dead endpoint stall a whole batch.
	DefaultTimeout = 15 * time.Second

	// DefaultBatchSize is the number of words looked up concurrently when
	// processing a word list. Each word already fans out to every selected
	// dictionary, so a small batch keeps total connections modest.
	DefaultBatchSize = 4

	// DefaultRateLimit is the request pacing in requests per second.
	// One request per second is conservative and respectful of the sites.
	// Can be adjusted via the --rate CLI flag.
	DefaultRateLimit = 1.0

	// DefaultMaxBodySize limits the maximum response body size to read.
	// 5MB is far above any real dictionary page while preventing memory
	// exhaustion from misbehaving mirrors.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// AppName is the application name used for XDG directory paths.
	AppName = "wordscan"
)

// Config holds all configuration options for wordscan.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., FetchConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Words is the list of words to look up.
	// Must contain at least one word.
	Words []string

	// FromLang is the source language, as an ISO 639-1 code or an English
	// language name. Resolution happens in the language package.
	FromLang string

	// ToLang is the target language, as an ISO 639-1 code or an English
	// language name.
	ToLang string

	// Dictionaries is the list of dictionary names to query.
	// An empty list selects every registered dictionary.
	Dictionaries []string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When empty, requests go directly to the sites.
	ProxyAddress string

	// Timeout is the timeout for each HTTP request.
	// This applies to individual requests, not the overall lookup duration.
	Timeout time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent word lookups when processing
	// a word list. Higher values increase throughput but multiply the
	// request rate against the sites.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .wordscan in the current directory,
	// the XDG config directory, and then the user's home directory.
	ConfigFilePath string

	// DictionaryConfigs holds per-dictionary configurations loaded from the
	// config file. This is populated by LoadConfigFile and used when
	// building fetch clients.
	DictionaryConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs the full normalized result as JSON.
	// When false, outputs a human-readable report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable
	// format. When true, outputs Markdown with tables and a source chart.
	// When false, outputs a human-readable report (default).
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// UserAgent is the User-Agent header sent with HTTP requests.
	// When empty, the fetch client's browser-like default is used; the
	// sites serve reduced pages to clients that identify as scripts.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Responses larger than this are truncated to prevent memory exhaustion.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// RateLimit is the request pacing in requests per second.
	// Zero disables pacing entirely; use with care.
	RateLimit float64
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeout, rate limit).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		BatchSize:   DefaultBatchSize,
		RateLimit:   DefaultRateLimit,
		MaxBodySize: DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for wordscan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/wordscan
// On macOS: ~/Library/Application Support/wordscan
// On Windows: %APPDATA%\wordscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any lookup begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// We must have at least one word to look up
	if len(c.Words) == 0 {
		return ErrNoWord
	}

	// Both sides of the language pair are required
	if c.FromLang == "" || c.ToLang == "" {
		return ErrNoLanguagePair
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	// BatchSize must be positive; zero would mean no lookups
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// RateLimit must be non-negative; zero means unpaced
	if c.RateLimit < 0 {
		return ErrInvalidRateLimit
	}

	// MaxBodySize must be non-negative; zero means use the default
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	return nil
}
