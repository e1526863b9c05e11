package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/services"
)

// FindDebatesCmd creates the findDebates command
func FindDebatesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "findDebates <team>",
		Short: "Find a team's assigned debates and sign-up status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamName := args[0]

			app.Logger.Debug("findDebates command", zap.String("team", teamName))

			result, err := services.FindTeamDebates(
				app.Ctx,
				app.Schedule,
				app.Submissions,
				app.Policy,
				app.Logger,
				teamName,
				app.Now(),
			)
			if errors.Is(err, services.ErrTeamNotFound) {
				fmt.Println("\n❌ Team name not found. Please check the spelling and try again.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n🔍 Debates for %s\n\n", result.TeamName)

			openCount := 0
			for _, d := range result.Debates {
				status := "closed"
				switch {
				case d.ConfigError:
					status = "open (no reveal date configured)"
					openCount++
				case d.Open:
					status = fmt.Sprintf("open until %s", d.RevealAt.Format("Jan 02 15:04"))
					openCount++
				}

				fmt.Printf("Debate %d — %s [%s]\n", d.Record.ID, d.Record.DateTime, status)
				fmt.Printf("  Resolution:  %s\n", d.Record.Resolution)
				fmt.Printf("  Your role:   %s\n", d.Stakeholder)
				if d.Existing != nil {
					fmt.Printf("  On record:   %s (submitted %s)\n", d.Existing.Position, d.Existing.SubmittedAt)
				}
				fmt.Println()
			}

			if openCount == 0 {
				fmt.Println("There are no open debates for your team to sign up for at this time.")
			} else {
				fmt.Printf("Sign up with: signup %q <debate_id> <For|Against>\n", result.TeamName)
			}

			return nil
		},
	}
}
