// Package config provides configuration structures and utilities for wordscan.
// It defines the main configuration options for dictionary lookups, fetch
// behavior, and report generation preferences.
package config
