package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/utm-transit/campuskit/internal/config"
	"github.com/utm-transit/campuskit/internal/model"
	"github.com/utm-transit/campuskit/internal/overpass"
	"github.com/utm-transit/campuskit/internal/pipeline"
	"github.com/utm-transit/campuskit/internal/poi"
	"github.com/utm-transit/campuskit/internal/report"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract campus points of interest from OpenStreetMap",
		Long: `Extract runs the POI extraction pipeline.

It loads the campus boundary polygon, queries the Overpass API for
buildings, amenities, shops and transit infrastructure inside the
padded bounding box, filters the results against the boundary,
categorizes the survivors, and writes the POI document.

Examples:
  # Extract with the default dataset layout
  campuskit extract

  # Use a different boundary and output location
  campuskit extract --boundary campus.geojson --output pois.json

  # Point at a self-hosted Overpass mirror with a longer timeout
  campuskit extract --endpoint http://localhost/api/interpreter --timeout 5m

  # Also write a Markdown summary
  campuskit extract --markdown summary.md

Configuration file (.campuskit) example:
  endpoint: https://overpass.example.org/api/interpreter
  timeout: 3m
  campus: "Universiti Teknologi Malaysia (UTM) Johor Bahru"
  fragments:
    dining:
      - warung`,
		Args: cobra.NoArgs,
		RunE: runExtractCmd,
	}

	cmd.Flags().StringP("boundary", "b", config.DefaultBoundaryFile,
		"Campus boundary GeoJSON file")
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Output file for the POI document (creates directories if needed)")
	cmd.Flags().StringP("endpoint", "e", config.DefaultEndpoint,
		"Overpass API interpreter URL")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Overpass request timeout")
	cmd.Flags().Float64P("padding", "p", config.DefaultPadding,
		"Bounding-box padding in degrees")
	cmd.Flags().StringP("markdown", "m", "",
		"Write an additional Markdown summary to the given file")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .campuskit in current or home directory)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildExtractConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Cancel the pipeline on interrupt so a slow Overpass request does
	// not hold the terminal hostage.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runExtract(ctx, cmd, cfg, logger)
}

// buildExtractConfig creates a Config from cobra command flags and the
// optional configuration file. Flags changed by the user win over file
// values; file values win over defaults.
func buildExtractConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if it
	// is not found. Otherwise a missing file just means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("boundary") {
		if cfg.BoundaryFile, err = cmd.Flags().GetString("boundary"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.OutputFile, err = cmd.Flags().GetString("output"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("endpoint") {
		if cfg.Endpoint, err = cmd.Flags().GetString("endpoint"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("padding") {
		if cfg.Padding, err = cmd.Flags().GetFloat64("padding"); err != nil {
			return nil, err
		}
	}

	cfg.MarkdownFile, err = cmd.Flags().GetString("markdown")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runExtract executes the extraction pipeline and prints the console
// summary.
func runExtract(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting extraction",
		"boundary", cfg.BoundaryFile,
		"output", cfg.OutputFile,
		"endpoint", cfg.Endpoint,
	)

	client := overpass.New(
		overpass.WithEndpoint(cfg.Endpoint),
		overpass.WithTimeout(cfg.Timeout),
		overpass.WithUserAgent(cfg.UserAgent),
		overpass.WithLogger(logger),
	)

	categorizer := poi.New(poi.WithExtraFragments(cfg.ExtraFragments))

	p := pipeline.Extraction(client, categorizer, pipeline.ExtractionParams{
		BoundaryPath: cfg.BoundaryFile,
		OutputPath:   cfg.OutputFile,
		Padding:      cfg.Padding,
	}, pipeline.WithLogger(logger))

	ext := model.NewExtraction(cfg.Campus)
	if err := p.Execute(ctx, ext); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if _, err := report.NewSimpleWriter(cmd.OutOrStdout()).Write(ext.Document); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if cfg.MarkdownFile != "" {
		if err := writeMarkdownSummary(cfg.MarkdownFile, ext.Document); err != nil {
			return err
		}
		logger.Info("markdown summary written", "path", cfg.MarkdownFile)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %d POIs to %s\n", len(ext.POIs), cfg.OutputFile)
	return nil
}

// writeMarkdownSummary writes the Markdown report to the given path.
func writeMarkdownSummary(path string, doc *model.Document) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create markdown directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return fmt.Errorf("failed to create markdown file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Close error surfaces via the explicit Close below

	if _, err := report.NewMarkdownWriter(f).Write(doc); err != nil {
		return fmt.Errorf("failed to write markdown summary: %w", err)
	}
	return f.Close()
}
