package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule [team]",
		Short: "View the full debate schedule (optionally filtered by team)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var teamFilter string
			if len(args) > 0 {
				teamFilter = args[0]
			}

			app.Logger.Debug("viewSchedule command", zap.String("team", teamFilter))

			result, err := services.ViewSchedule(
				app.Ctx,
				app.Schedule,
				app.Submissions,
				app.Policy,
				app.Logger,
				teamFilter,
				app.Now(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n📅 Full Debate Schedule\n")
			fmt.Println("Positions are revealed automatically after the sign-up deadline for each debate day.")
			fmt.Println()

			if len(result.Rows) == 0 {
				fmt.Println("No debates found.")
				return nil
			}

			for _, row := range result.Rows {
				rec := row.Record
				fmt.Printf("Debate %d — %s\n", rec.ID, rec.DateTime)
				fmt.Printf("  Resolution: %s\n", rec.Resolution)
				for i, slot := range rec.Slots {
					if slot.IsEmpty() && slot.Stakeholder == "" {
						continue
					}
					team := slot.Team
					if team == "" {
						team = "—"
					}
					fmt.Printf("  %-20s %-24s %s\n", slot.Stakeholder, team, row.Labels[i])
				}
				fmt.Println()
			}

			if teamFilter == "" {
				fmt.Printf("Teams: %s\n", strings.Join(result.Teams, ", "))
			}

			return nil
		},
	}
}
