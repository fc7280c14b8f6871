// Package config loads labelgrid settings from TOML with environment
// overrides and sensible defaults when no file exists.
package config
