package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/services"
)

// SignupCmd creates the signup command
func SignupCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "signup <team> <debate_id> <For|Against>",
		Short: "Declare or change a team's position for one of its debates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			teamName := args[0]
			debateID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("debate_id must be a number: %w", err)
			}
			position := model.Position(args[2])

			app.Logger.Debug("signup command",
				zap.String("team", teamName),
				zap.Int("debate_id", debateID),
				zap.String("position", args[2]))

			result, err := services.Signup(
				app.Ctx,
				app.Schedule,
				app.Submissions,
				app.Policy,
				app.Logger,
				teamName,
				debateID,
				position,
				app.Now(),
			)
			if services.IsUserError(err) {
				fmt.Printf("\n❌ %v\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Your position has been locked in successfully!\n\n")
			fmt.Printf("Debate:      %d\n", result.Submission.DebateID)
			fmt.Printf("Role:        %s\n", result.Submission.Stakeholder)
			fmt.Printf("Team:        %s\n", result.Submission.TeamName)
			fmt.Printf("Position:    %s\n", result.Submission.Position)
			fmt.Printf("Recorded at: %s\n", result.Submission.SubmittedAt)
			if result.Replaced {
				fmt.Println("\nAn earlier submission for this debate was replaced.")
			}
			fmt.Println()

			return nil
		},
	}
}
