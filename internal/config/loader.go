package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".campuskit"

// ErrConfigNotFound is returned when the configuration file does not
// exist. Callers decide whether that is fatal based on whether the
// path was explicitly requested.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .campuskit configuration file.
// Every field is optional; absent fields leave the corresponding
// Config value untouched.
type File struct {
	// Endpoint overrides the Overpass interpreter URL, e.g. to point
	// at a self-hosted mirror.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Timeout overrides the Overpass request timeout, in Go duration
	// syntax ("180s", "3m").
	Timeout string `yaml:"timeout,omitempty"`

	// Padding overrides the bounding-box padding in degrees.
	Padding *float64 `yaml:"padding,omitempty"`

	// Campus overrides the campus label in output metadata.
	Campus string `yaml:"campus,omitempty"`

	// Boundary, Output, Schedule and Geometries override the dataset
	// file locations.
	Boundary   string `yaml:"boundary,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Schedule   string `yaml:"schedule,omitempty"`
	Geometries string `yaml:"geometries,omitempty"`

	// Fragments append name fragments to the categorizer's default
	// lists, keyed by category label.
	Fragments map[string][]string `yaml:"fragments,omitempty"`
}

// LoadConfigFile loads overrides from a YAML file. A missing file
// yields ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Apply copies the file's overrides onto the config. Returns an error
// when a value fails to parse (currently only the timeout).
func (f *File) Apply(cfg *Config) error {
	if f.Endpoint != "" {
		cfg.Endpoint = f.Endpoint
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %w", err)
		}
		cfg.Timeout = d
	}
	if f.Padding != nil {
		cfg.Padding = *f.Padding
	}
	if f.Campus != "" {
		cfg.Campus = f.Campus
	}
	if f.Boundary != "" {
		cfg.BoundaryFile = f.Boundary
	}
	if f.Output != "" {
		cfg.OutputFile = f.Output
	}
	if f.Schedule != "" {
		cfg.ScheduleFile = f.Schedule
	}
	if f.Geometries != "" {
		cfg.GeometryFile = f.Geometries
	}
	if len(f.Fragments) > 0 {
		if cfg.ExtraFragments == nil {
			cfg.ExtraFragments = make(map[string][]string, len(f.Fragments))
		}
		for category, frags := range f.Fragments {
			cfg.ExtraFragments[category] = append(cfg.ExtraFragments[category], frags...)
		}
	}
	return nil
}

// FindConfigFile locates the configuration file. Search order:
//  1. the explicit path, when given
//  2. .campuskit in the current directory
//  3. the XDG config directory
//  4. .campuskit in the user's home directory
//
// Returns an empty string when nothing is found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	xdgCandidate := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(xdgCandidate); err == nil {
		return xdgCandidate
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
