package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values. The geographic defaults describe the
// UTM Johor Bahru campus dataset this tooling was built around; all of
// them can be overridden per deployment via flags or the config file.
const (
	// DefaultEndpoint is the public Overpass API interpreter.
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"

	// DefaultTimeout bounds the single Overpass round trip. Composite
	// bbox queries routinely take tens of seconds on the public
	// servers, so this is deliberately generous. There are no retries:
	// when this expires the run aborts.
	DefaultTimeout = 180 * time.Second

	// DefaultPadding, in degrees, expands the boundary bounding box on
	// every side so elements sitting right on the campus edge are not
	// clipped out of the query. 0.002 degrees is roughly 220 m.
	DefaultPadding = 0.002

	// DefaultBoundaryFile is the campus boundary polygon location.
	DefaultBoundaryFile = "data/campus_boundary.geojson"

	// DefaultOutputFile is where the extracted POI document is written.
	DefaultOutputFile = "data/campus_pois.json"

	// DefaultScheduleFile is the bus schedule dataset location.
	DefaultScheduleFile = "data/schedule.json"

	// DefaultGeometryFile is the route geometries dataset location.
	DefaultGeometryFile = "data/route_geometries.json"

	// DefaultCampus is the campus label recorded in output metadata.
	DefaultCampus = "Universiti Teknologi Malaysia (UTM) Johor Bahru"

	// DefaultUserAgent identifies campuskit to the Overpass operators,
	// as their usage policy asks of automated clients.
	DefaultUserAgent = "campuskit/1.0 (+https://github.com/utm-transit/campuskit)"

	// AppName is the application name used for XDG directory paths.
	AppName = "campuskit"
)

// Config holds all options for a campuskit invocation. It is populated
// from CLI flags and the optional config file, then passed down by
// dependency injection rather than global state.
type Config struct {
	// Endpoint is the Overpass API interpreter URL.
	Endpoint string

	// Timeout is the Overpass request timeout. The same value is sent
	// to the server as the query's [timeout:] directive.
	Timeout time.Duration

	// Padding is the bounding-box expansion in degrees.
	Padding float64

	// BoundaryFile is the path of the campus boundary GeoJSON.
	BoundaryFile string

	// OutputFile is the path the POI document is written to. Parent
	// directories are created as needed.
	OutputFile string

	// MarkdownFile, when set, receives an additional Markdown summary
	// of the extraction run.
	MarkdownFile string

	// ScheduleFile is the path of the schedule dataset operated on by
	// the schedule subcommands.
	ScheduleFile string

	// GeometryFile is the path of the route geometries dataset.
	GeometryFile string

	// Campus is the human-readable campus label for output metadata.
	Campus string

	// UserAgent is sent with Overpass requests.
	UserAgent string

	// ExtraFragments append to the categorizer's per-category name
	// fragment lists. Keys are category labels.
	ExtraFragments map[string][]string

	// ConfigFilePath is an explicit config file location. When empty
	// the file is searched for in the usual places.
	ConfigFilePath string
}

// NewConfig creates a Config with default values. Defaults live in a
// constructor rather than zero values because most of them are
// non-zero.
func NewConfig() *Config {
	return &Config{
		Endpoint:     DefaultEndpoint,
		Timeout:      DefaultTimeout,
		Padding:      DefaultPadding,
		BoundaryFile: DefaultBoundaryFile,
		OutputFile:   DefaultOutputFile,
		ScheduleFile: DefaultScheduleFile,
		GeometryFile: DefaultGeometryFile,
		Campus:       DefaultCampus,
		UserAgent:    DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for campuskit,
// following the XDG Base Directory Specification.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem
// found. It runs once after flag parsing, before any work begins.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return ErrNoEndpoint
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Padding < 0 {
		return ErrInvalidPadding
	}
	if c.BoundaryFile == "" {
		return ErrNoBoundaryFile
	}
	if c.OutputFile == "" {
		return ErrNoOutputFile
	}
	return nil
}
