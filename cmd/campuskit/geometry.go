package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/utm-transit/campuskit/internal/config"
	"github.com/utm-transit/campuskit/internal/schedule"
)

// NewGeometryCmd creates the geometry command group.
func NewGeometryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Maintain the route geometry dataset",
	}

	cmd.PersistentFlags().StringP("file", "f", config.DefaultGeometryFile,
		"Route geometry dataset file")

	cmd.AddCommand(newGeometryReverseCmd())

	return cmd
}

func newGeometryReverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reverse",
		Short: "Reverse the coordinate order of one route geometry",
		Long: `Reverse flips the drawing order of the named route's polyline in
route_geometries.json. Useful when a traced route runs opposite to
the direction of travel.

Example:
  campuskit geometry reverse --route "Route E(N24) : To K9/10"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveDatasetPath(cmd, func(cfg *config.Config) string { return cfg.GeometryFile })
			if err != nil {
				return err
			}
			route, err := cmd.Flags().GetString("route")
			if err != nil {
				return err
			}

			geoms, err := schedule.LoadGeometries(path)
			if err != nil {
				return err
			}

			if err := schedule.ReverseGeometry(geoms, route); err != nil {
				return err
			}

			if err := schedule.SaveGeometries(path, geoms); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reversed coordinates for %q.\n", route)
			return nil
		},
	}

	cmd.Flags().StringP("route", "r", "", "Route geometry key to reverse")
	_ = cmd.MarkFlagRequired("route") //nolint:errcheck // Flag is defined above

	return cmd
}
