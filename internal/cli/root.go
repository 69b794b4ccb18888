package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/felixgrant/punchcard/internal/config"
	"github.com/felixgrant/punchcard/internal/service"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Attendance service.AttendanceService
	Categories service.CategoryService
	Reports    service.ReportService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewRootCmd creates the top-level "punchcard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "punchcard",
		Short:         "Discord attendance bot with weekly reporting",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept underscore spellings like the slash-command options use.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newServeCmd(app),
		newReportCmd(app),
		newStatusCmd(app),
		newTypesCmd(app),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the punchcard version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "punchcard", Version)
		},
	}
}
