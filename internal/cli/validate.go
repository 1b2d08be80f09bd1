package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the project configuration resolves",
		Long: `Resolve the project configuration and report the first error, if any.
Networks that resolve but cannot be used for live dispatch are reported as
warnings. Exits with status 1 when the configuration is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig.Run(cmd.Context(), usecase.ValidateConfigParams{})
			if err != nil {
				return err
			}

			renderer := render.NewValidateRenderer(cmd.OutOrStdout())
			if err := renderer.Render(result); err != nil {
				return err
			}

			if !result.Valid {
				// Already rendered above
				cmd.SilenceErrors = true
				return result.Error
			}
			return nil
		},
	}
}
