package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/courseops/debate-signup/pkg/core/services"
)

// resetConfirmPhrase must be typed verbatim before the reset proceeds
const resetConfirmPhrase = "delete all submissions"

func resetSubmissionsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every student submission (irreversible)",
		Long: `Delete the entire submissions file. This cannot be undone.

Two confirmations are required: the --acknowledge flag, and typing the
confirmation phrase when prompted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireInstructor(app, cmd); err != nil {
				return err
			}

			acknowledged, _ := cmd.Flags().GetBool("acknowledge")
			if !acknowledged {
				fmt.Println("\n❌ Refusing to reset: pass --acknowledge to confirm you understand")
				fmt.Println("   this will delete all student submissions.")
				return nil
			}

			fmt.Printf("\n⚠️  This will delete ALL submissions and cannot be undone.\n")
			fmt.Printf("Type %q to proceed: ", resetConfirmPhrase)

			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return scanner.Err()
			}
			if strings.TrimSpace(scanner.Text()) != resetConfirmPhrase {
				fmt.Println("\nReset aborted; nothing was deleted.")
				return nil
			}

			app.Logger.Debug("instructor reset command confirmed")

			if err := services.ResetSubmissions(app.Ctx, app.Submissions, app.Logger); err != nil {
				return err
			}

			fmt.Println("\n✓ All submissions have been deleted.")
			return nil
		},
	}

	cmd.Flags().Bool("acknowledge", false, "Acknowledge that all student submissions will be deleted")

	return cmd
}
