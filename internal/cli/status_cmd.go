package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var discordID string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a user is currently clocked in",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Attendance.Status(cmd.Context(), discordID)
			if err != nil {
				return err
			}
			if status.ClockedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "clocked in")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "clocked out")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&discordID, "user", "u", "", "Discord user ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
