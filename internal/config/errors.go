package config

import "errors"

// Configuration validation errors, returned by Config.Validate.
// Package-level sentinels so callers can use errors.Is while still
// getting a readable message.
var (
	// ErrNoEndpoint is returned when the Overpass endpoint is empty.
	ErrNoEndpoint = errors.New("no Overpass endpoint configured")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidPadding is returned when the bounding-box padding is
	// negative. Use 0 for no padding.
	ErrInvalidPadding = errors.New("invalid padding: must be non-negative")

	// ErrNoBoundaryFile is returned when no boundary file is configured.
	ErrNoBoundaryFile = errors.New("no boundary file configured")

	// ErrNoOutputFile is returned when no output file is configured.
	ErrNoOutputFile = errors.New("no output file configured")
)
