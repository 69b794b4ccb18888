package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/felixgrant/punchcard/internal/render"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		discordID string
		weeksAgo  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a weekly hours report for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.Weekly(cmd.Context(), discordID, -weeksAgo)
			if err != nil {
				return fmt.Errorf("building weekly report: %w", err)
			}
			if report.User == nil {
				return fmt.Errorf("no records for user %s", discordID)
			}

			colored := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			fmt.Fprintln(cmd.OutOrStdout(), render.WeeklyText(report.Summary, report.CategoryNames, colored))
			return nil
		},
	}

	cmd.Flags().StringVarP(&discordID, "user", "u", "", "Discord user ID")
	cmd.Flags().IntVarP(&weeksAgo, "weeks-ago", "w", 0, "how many weeks back (0 = current week)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
