package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgrant/punchcard/internal/bot"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and serve slash commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Config.RequireToken(); err != nil {
				return err
			}
			b, err := bot.New(
				app.Config.DiscordToken,
				app.Config.GuildID,
				app.Attendance,
				app.Categories,
				app.Reports,
				app.Logger,
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return b.Run(ctx)
		},
	}
}
