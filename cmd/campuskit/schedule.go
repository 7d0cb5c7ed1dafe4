package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/utm-transit/campuskit/internal/config"
	"github.com/utm-transit/campuskit/internal/schedule"
)

// NewScheduleCmd creates the schedule command group.
func NewScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Maintain the bus schedule dataset",
		Long: `Schedule groups the maintenance operations for schedule.json:
deduplicating departure times, validating structure, and applying or
undoing the Friday prayer-window timetable split.`,
	}

	cmd.PersistentFlags().StringP("file", "f", config.DefaultScheduleFile,
		"Schedule dataset file")

	cmd.AddCommand(newScheduleDedupeCmd())
	cmd.AddCommand(newScheduleValidateCmd())
	cmd.AddCommand(newScheduleFridayCmd())

	return cmd
}

// resolveDatasetPath returns the dataset path for a schedule or
// geometry command. An explicit --file flag wins; otherwise a
// discovered config file may override the compiled-in default.
func resolveDatasetPath(cmd *cobra.Command, pick func(*config.Config) string) (string, error) {
	if cmd.Flags().Changed("file") {
		return cmd.Flags().GetString("file")
	}

	cfg := config.NewConfig()
	if configPath := config.FindConfigFile(""); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return "", fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return "", fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	}
	return pick(cfg), nil
}

// scheduleFile resolves the schedule dataset path.
func scheduleFile(cmd *cobra.Command) (string, error) {
	return resolveDatasetPath(cmd, func(cfg *config.Config) string { return cfg.ScheduleFile })
}

func newScheduleDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe",
		Short: "Remove duplicate departure times",
		Long: `Dedupe removes duplicate departure times from every trip in the
schedule, keeping the first occurrence of each time. The file is
rewritten in place only when something changed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := scheduleFile(cmd)
			if err != nil {
				return err
			}

			sched, err := schedule.Load(path)
			if err != nil {
				return err
			}

			changes := schedule.Dedupe(sched)
			if len(changes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No duplicate times found.")
				return nil
			}

			for _, c := range changes {
				fmt.Fprintf(cmd.OutOrStdout(), "cleaned %d duplicates from %s - %s\n",
					c.Removed, c.Route, c.Headsign)
			}

			if err := schedule.Save(path, sched); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done. Modified %d trip time lists.\n", len(changes))
			return nil
		},
	}
}

func newScheduleValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the schedule's structure",
		Long: `Validate checks schedule.json for structural problems: duplicate
stop definitions, trip sequences referencing unknown stops, malformed
departure times, and unsorted time lists. The file is never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := scheduleFile(cmd)
			if err != nil {
				return err
			}

			sched, err := schedule.Load(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Found %d stop definitions and %d routes.\n",
				len(sched.Stops), len(sched.Routes))

			issues := schedule.Validate(sched)
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No structural issues found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Issues found:")
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", issue)
			}
			return fmt.Errorf("schedule has %d structural issues", len(issues))
		},
	}
}

func newScheduleFridayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friday",
		Short: "Manage the Friday prayer-window timetable split",
	}
	cmd.AddCommand(newFridayApplyCmd())
	cmd.AddCommand(newFridayUndoCmd())
	return cmd
}

func newFridayApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Split Friday services and drop prayer-window departures",
		Long: `Apply splits the friday day out of every WEEKDAY service into a
dedicated FRIDAY service, then removes departures between 12:40
(inclusive) and 14:00 (exclusive) from all FRIDAY services. Running it
again is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := scheduleFile(cmd)
			if err != nil {
				return err
			}

			sched, err := schedule.Load(path)
			if err != nil {
				return err
			}

			res := schedule.ApplyFriday(sched)
			if res.Split == 0 && res.Filtered == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to apply.")
				return nil
			}

			if err := schedule.Save(path, sched); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done. Split %d services. Filtered times in %d trip lists.\n",
				res.Split, res.Filtered)
			return nil
		},
	}
}

func newFridayUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Merge FRIDAY services back into WEEKDAY",
		Long: `Undo reverses the Friday split: the friday day is added back to
WEEKDAY day lists and FRIDAY services are deleted. Departures removed
by the prayer-window filter come back with the next apply, rebuilt
from the weekday timetable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := scheduleFile(cmd)
			if err != nil {
				return err
			}

			sched, err := schedule.Load(path)
			if err != nil {
				return err
			}

			res := schedule.UndoFriday(sched)
			if res.Split == 0 && res.Removed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo.")
				return nil
			}

			if err := schedule.Save(path, sched); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Done. Merged %d services. Removed %d services.\n",
				res.Split, res.Removed)
			return nil
		},
	}
}
