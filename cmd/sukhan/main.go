package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sukhan/internal/bootstrap"
	progressdto "sukhan/internal/modules/progress/dto"
	"sukhan/internal/platform/config"
	"sukhan/internal/ui/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "sukhan",
		Short:         "Tajik vocabulary course with spaced repetition",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory (progress, content, session journal)")

	root.AddCommand(newUnitsCmd(&dataPath))
	root.AddCommand(newUnitCmd(&dataPath))
	root.AddCommand(newProgressCmd(&dataPath))
	root.AddCommand(newWordCmd(&dataPath))
	root.AddCommand(newReviewCmd(&dataPath))
	root.AddCommand(newSessionCmd(&dataPath))
	root.AddCommand(newSettingsCmd(&dataPath))
	return root
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, os.Stderr)
}

// withApp runs fn against a freshly wired app and closes it afterwards.
func withApp(dataPath string, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(dataPath)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(context.Background(), app)
}

func newUnitsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List curriculum units with lesson progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				units, err := app.CurriculumCLI.ListUnits(ctx)
				if err != nil {
					return err
				}
				progress := make(map[string]progressdto.UnitProgressOutput, len(units))
				for _, unit := range units {
					p, err := app.ProgressCLI.UnitProgress(ctx, unit.ID)
					if err != nil {
						return err
					}
					progress[unit.ID] = p
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.Units(units, progress))
				return nil
			})
		},
	}
}

func newUnitCmd(dataPath *string) *cobra.Command {
	unit := &cobra.Command{Use: "unit", Short: "Unit details"}
	unit.AddCommand(&cobra.Command{
		Use:   "show <unit-id>",
		Short: "Show the checkpoint path of a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				u, err := app.CurriculumCLI.GetUnit(ctx, args[0])
				if err != nil {
					return err
				}
				progress, err := app.ProgressCLI.UnitProgress(ctx, u.ID)
				if err != nil {
					return err
				}
				checkpoints, err := app.ProgressCLI.Checkpoints(ctx, u.ID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), render.CheckpointPath(u.Title, progress, checkpoints))
				return nil
			})
		},
	})
	return unit
}

func newProgressCmd(dataPath *string) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Completion ledger"}

	progress.AddCommand(&cobra.Command{
		Use:   "complete <lesson|review|quiz> <id>",
		Short: "Mark a checkpoint complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ProgressCLI.Complete(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s completed\n", args[0], args[1])
				return nil
			})
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "status <unit-id> <checkpoint-id>",
		Short: "Show the status of one checkpoint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				cp, err := app.ProgressCLI.Checkpoint(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", cp.ID, cp.Kind, cp.Status, cp.Title)
				return nil
			})
		},
	})

	progress.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear the completion ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ProgressCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
				return nil
			})
		},
	})
	return progress
}

func newSettingsCmd(dataPath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Learner preferences"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				s := app.SettingsCLI.Show(ctx)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pronunciationDisplay: %s\n", s.PronunciationDisplay)
				return nil
			})
		},
	})

	settings.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting (pronunciationDisplay: both|cyrillic|latin|none)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.SettingsCLI.Set(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pronunciationDisplay: %s\n", s.PronunciationDisplay)
				return nil
			})
		},
	})
	return settings
}
