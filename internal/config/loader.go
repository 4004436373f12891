package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/drills/internal/board"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".drills"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// SeriesConfig holds the series API settings of the config file.
type SeriesConfig struct {
	// BaseURL overrides the API endpoint.
	BaseURL string `yaml:"baseURL,omitempty"`

	// Genre is the genre queried when none is given on the command line.
	Genre string `yaml:"genre,omitempty"`

	// MaxPages lowers the page ceiling. Must be in 1..20.
	MaxPages int `yaml:"maxPages,omitempty"`

	// Timeout is the per-request timeout, e.g. "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Proxy is an optional SOCKS5 proxy in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`

	// Headers are custom HTTP headers to include in every request.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// File represents the structure of the .drills configuration file.
type File struct {
	// Series configures the genre ranking client.
	Series SeriesConfig `yaml:"series,omitempty"`

	// Board is a raw board annotated when no --board file is given.
	Board *board.Grid `yaml:"board,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Unknown keys are rejected so that typos do not pass silently.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cf.Series.Headers == nil {
		cf.Series.Headers = make(map[string]string)
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .drills in the current directory
// 3. Look for config.yaml in the XDG config directory
// 4. Look for .drills in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	if xdgConfig := XDGConfigFile(); xdgConfig != "" {
		if _, err := os.Stat(xdgConfig); err == nil {
			return xdgConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
