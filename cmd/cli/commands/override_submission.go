package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courseops/debate-signup/pkg/core/model"
	"github.com/courseops/debate-signup/pkg/core/services"
)

func overrideSubmissionCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "override <debate_id> <stakeholder> <team> <For|Against>",
		Short: "Force-record a position for a team, bypassing the deadline",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireInstructor(app, cmd); err != nil {
				return err
			}

			debateID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("debate_id must be a number: %w", err)
			}
			stakeholder := args[1]
			teamName := args[2]
			position := model.Position(args[3])

			app.Logger.Debug("instructor override command",
				zap.Int("debate_id", debateID),
				zap.String("stakeholder", stakeholder),
				zap.String("team", teamName))

			result, err := services.OverrideSubmission(
				app.Ctx,
				app.Submissions,
				app.Logger,
				debateID,
				stakeholder,
				teamName,
				position,
			)
			if errors.Is(err, services.ErrInvalidPosition) {
				fmt.Printf("\n❌ %v\n", err)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Position assigned.\n\n")
			fmt.Printf("Debate:      %d\n", result.Submission.DebateID)
			fmt.Printf("Stakeholder: %s\n", result.Submission.Stakeholder)
			fmt.Printf("Team:        %s\n", result.Submission.TeamName)
			fmt.Printf("Position:    %s\n", result.Submission.Position)
			fmt.Printf("Recorded at: %s\n\n", result.Submission.SubmittedAt)

			return nil
		},
	}
}
