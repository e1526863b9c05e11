package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/courseops/debate-signup/pkg/core/services"
)

func missingSubmissionsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List past-deadline slots with no submission on record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireInstructor(app, cmd); err != nil {
				return err
			}

			app.Logger.Debug("instructor missing command")

			result, err := services.MissingSubmissions(
				app.Ctx,
				app.Schedule,
				app.Submissions,
				app.Policy,
				app.Logger,
				app.Now(),
			)
			if err != nil {
				return err
			}

			if len(result.Missing) == 0 {
				fmt.Println("\n✓ No missing submissions — every past-deadline slot has a position on record.")
				return nil
			}

			fmt.Printf("\n⚠️  Action required: %d team(s) missed their deadline.\n\n", len(result.Missing))
			for _, m := range result.Missing {
				fmt.Printf("  Debate %d: %s (%s)\n", m.DebateID, m.TeamName, m.Stakeholder)
			}
			fmt.Println("\nAssign a position with: instructor override <debate_id> <stakeholder> <team> <For|Against>")

			return nil
		},
	}
}
