// Package config holds campuskit's configuration: defaults, the flat
// Config struct populated from CLI flags, validation, and the optional
// YAML configuration file with per-deployment overrides.
package config
