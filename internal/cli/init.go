package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/cli/render"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create chaincfg.toml and .env.example",
		Long: `Create chaincfg.toml with the built-in defaults and a matching .env.example
in the current project. Existing files are kept unless you confirm the
overwrite or pass --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return runInit(cmd, force)
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite existing files without asking")

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command, force bool) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.InitProject.Run(cmd.Context(), usecase.InitProjectParams{Force: force})
	renderer := render.NewInitRenderer(cmd.OutOrStdout())
	if result != nil {
		// Partial results are still rendered on error
		_ = renderer.Render(result)
	}
	return err
}
