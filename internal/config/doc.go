// Package config provides configuration structures and utilities for drills.
// It defines the series API settings, the report output options, and the
// YAML configuration file that can supply both along with a default board.
package config
