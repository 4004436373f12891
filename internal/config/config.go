package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/drills/internal/board"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "drills"

	// DefaultBaseURL is the public mock endpoint serving paginated TV series.
	DefaultBaseURL = "https://jsonmock.hackerrank.com/api/tvseries"

	// DefaultGenre is queried when no genre is given.
	DefaultGenre = "Action"

	// MaxPagesLimit is the largest accepted page ceiling.
	MaxPagesLimit = 20

	// DefaultMaxPages requests every page up to the limit.
	DefaultMaxPages = MaxPagesLimit

	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies drills in HTTP requests.
	// The CLI appends its version: "drills/1.2.3".
	DefaultUserAgent = AppName
)

// Config holds all configuration options for drills.
// It is populated from defaults, then the config file, then CLI flags, and
// passed down explicitly rather than kept in global state.
type Config struct {
	// BaseURL is the series API endpoint without the page parameter.
	BaseURL string

	// Genre is the genre to rank.
	Genre string

	// MaxPages lowers the page ceiling of a fetch. Must be in 1..20.
	MaxPages int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// Headers are extra HTTP headers sent with every request.
	// Values may hold credentials; they are never logged in clear text.
	Headers map[string]string

	// Top is the number of ranked series to list after the winner.
	// 0 lists only the winner.
	Top int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogFormat is the log output format, "text" or "json".
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// BoardFile is the path to a board file for the minesweeper command.
	BoardFile string

	// Board is the board loaded from the config file, if any.
	// A board file given on the command line takes precedence.
	Board *board.Grid

	// JSONReport enables JSON output instead of plain text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of plain text.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Genre:     DefaultGenre,
		MaxPages:  DefaultMaxPages,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for drills.
// On Linux: ~/.config/drills
// On macOS: ~/Library/Application Support/drills
// On Windows: %APPDATA%\drills
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGConfigFile returns the config file path inside XDGConfigDir.
func XDGConfigFile() string {
	return filepath.Join(XDGConfigDir(), "config.yaml")
}

// ApplyFile overlays the non-zero values of a config file onto c.
// Headers are merged, with file values replacing existing keys.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	s := f.Series
	if s.BaseURL != "" {
		c.BaseURL = s.BaseURL
	}
	if s.Genre != "" {
		c.Genre = s.Genre
	}
	if s.MaxPages != 0 {
		c.MaxPages = s.MaxPages
	}
	if s.Timeout != 0 {
		c.Timeout = s.Timeout
	}
	if s.Proxy != "" {
		c.ProxyAddress = s.Proxy
	}
	if s.UserAgent != "" {
		c.UserAgent = s.UserAgent
	}
	if len(s.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(s.Headers))
		}
		for k, v := range s.Headers {
			c.Headers[k] = v
		}
	}
	if f.Board != nil {
		c.Board = f.Board
	}
}

// Validate checks the configuration used by a genre query.
// It returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrEmptyBaseURL
	}

	if strings.TrimSpace(c.Genre) == "" {
		return ErrEmptyGenre
	}

	if c.MaxPages < 1 || c.MaxPages > MaxPagesLimit {
		return ErrInvalidMaxPages
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Top < 0 {
		return ErrInvalidTop
	}

	return c.ValidateOutput()
}

// ValidateOutput checks only the report options.
// Commands that do not touch the network use this instead of Validate.
func (c *Config) ValidateOutput() error {
	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
