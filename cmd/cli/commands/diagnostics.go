package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courseops/debate-signup/pkg/core/services"
)

func diagnosticsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnostics",
		Short: "Check schedule dates against the reveal schedule and show the app clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireInstructor(app, cmd); err != nil {
				return err
			}

			app.Logger.Debug("instructor diagnostics command")

			result, err := services.Diagnostics(
				app.Ctx,
				app.Schedule,
				app.Policy,
				app.Logger,
				app.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n🔧 Schedule Sanity Check\n\n")
			if len(result.Issues) == 0 {
				fmt.Println("✓ All debate dates in the schedule have a matching reveal date.")
			} else {
				for _, issue := range result.Issues {
					fmt.Printf("  ✗ Debate %d (%q): %s\n", issue.DebateID, issue.DateTime, issue.Reason)
				}
				fmt.Printf("\nThese debates render as CONFIG ERROR until the reveal schedule is fixed.\n")
			}

			fmt.Printf("\n🕒 System Time Debugger\n\n")
			fmt.Printf("Current app time: %s\n\n", result.Now.Format("2006-01-02 15:04:05 MST"))
			for _, entry := range result.Entries {
				state := "pending"
				if entry.Passed {
					state = "revealed"
				}
				fmt.Printf("  %-8s reveals %s  [%s]\n",
					entry.DayKey,
					entry.RevealAt.Format("2006-01-02 15:04:05 MST"),
					state)
			}
			fmt.Println()

			return nil
		},
	}
}
