package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewRolesCmd creates the roles command
func NewRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles [role]",
		Short: "Show the account each role uses on every network",
		Long: `Show the resolved named accounts. Each role is bound to an account index
on every registered network, falling back to its "default" binding.

Examples:
  chaincfg roles
  chaincfg roles deployer`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListRolesParams{}
			if len(args) == 1 {
				params.Role = args[0]
			}

			result, err := app.ListRoles.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewRolesRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}
}
