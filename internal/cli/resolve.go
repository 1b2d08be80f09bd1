package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve and print the project configuration",
		Long: `Resolve chaincfg.toml and the environment into the final configuration
descriptor and print it. Credentials are never printed; accounts are shown
by their derived addresses.

Examples:
  chaincfg resolve
  chaincfg resolve --network sepolia
  chaincfg resolve --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveDescriptor.Run(cmd.Context(), usecase.ResolveDescriptorParams{})
			if err != nil {
				return err
			}

			renderer := render.NewDescriptorRenderer(cmd.OutOrStdout(), app.Config.Format)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")

	return cmd
}
