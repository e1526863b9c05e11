package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrBadPassword means the instructor password did not match
var ErrBadPassword = errors.New("instructor password incorrect")

// InstructorCmd creates the instructor command group. Every subcommand is
// gated by the shared instructor secret passed via --password.
func InstructorCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructor",
		Short: "Instructor panel: audit submissions and apply manual overrides",
	}

	cmd.PersistentFlags().StringP("password", "p", "", "Instructor password")

	cmd.AddCommand(missingSubmissionsCmd(app))
	cmd.AddCommand(overrideSubmissionCmd(app))
	cmd.AddCommand(resetSubmissionsCmd(app))
	cmd.AddCommand(diagnosticsCmd(app))

	return cmd
}

// requireInstructor checks the --password flag against the configured secret.
// Plain string equality; this is an access gate, not authentication.
func requireInstructor(app *AppContext, cmd *cobra.Command) error {
	password, _ := cmd.Flags().GetString("password")
	if password != app.Cfg.InstructorPassword {
		return ErrBadPassword
	}
	return nil
}
