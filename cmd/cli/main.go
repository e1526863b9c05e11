package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/cmd/cli/commands"
	"github.com/courseops/debate-signup/internal/config"
	"github.com/courseops/debate-signup/pkg/core/reveal"
	"github.com/courseops/debate-signup/pkg/store"
	"github.com/courseops/debate-signup/pkg/utils/logging"
)

var (
	configPath string
	app        = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "debate-signup",
		Short: "Classroom debate sign-up - declare positions, reveal after deadlines",
		Long: `A tool for classroom debate sign-up and scheduling. Teams declare their
position ("For"/"Against") for assigned debates; positions stay hidden until
the per-day reveal deadline passes. Instructors can audit missing submissions
and apply manual overrides.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: debate_signup_config.yaml in cwd or home)")

	rootCmd.AddCommand(commands.ViewScheduleCmd(app))
	rootCmd.AddCommand(commands.FindDebatesCmd(app))
	rootCmd.AddCommand(commands.SignupCmd(app))
	rootCmd.AddCommand(commands.InstructorCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, reveal policy, and the file-backed stores
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger("debate_signup")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Location, err = app.Cfg.Location()
	if err != nil {
		return err
	}

	revealTimes, err := app.Cfg.RevealTimes()
	if err != nil {
		return err
	}
	app.Policy = reveal.NewPolicy(revealTimes)

	app.Schedule = store.NewScheduleReader(app.Cfg.ScheduleFile)
	app.Submissions = store.NewSubmissionStore(app.Cfg.SubmissionsFile, app.Location)

	app.Logger.Debug("Application initialized",
		zap.String("schedule_file", app.Cfg.ScheduleFile),
		zap.String("submissions_file", app.Cfg.SubmissionsFile),
		zap.String("timezone", app.Cfg.Timezone),
		zap.Int("reveal_entries", len(revealTimes)))

	return nil
}
