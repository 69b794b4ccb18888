package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Manage attendance types",
	}

	var includeInactive bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance types",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Categories.List(cmd.Context(), !includeInactive)
			if err != nil {
				return err
			}
			for _, cat := range categories {
				marker := " "
				if !cat.Active {
					marker = "x"
				}
				if cat.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-20s %s\n", marker, cat.Name, cat.Description)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", marker, cat.Name)
				}
			}
			return nil
		},
	}
	listCmd.Flags().BoolVarP(&includeInactive, "all", "a", false, "include inactive types")

	var description string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new attendance type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := app.Categories.Create(cmd.Context(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added attendance type %q\n", category.Name)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "description for the type")

	cmd.AddCommand(listCmd, addCmd)
	return cmd
}
