package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chaincfg/internal/app"
	"github.com/trebuchet-org/chaincfg/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chaincfg",
		Short: "Resolve smart-contract project configuration",
		Long: `chaincfg resolves a smart-contract project's build, network, account-role
and test-report settings from chaincfg.toml and the environment into one
validated descriptor.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Without chaincfg.toml the working directory is the project and defaults apply
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				if projectRoot, err = os.Getwd(); err != nil {
					return err
				}
			}

			v, err := config.SetupViper(projectRoot, cmd)
			if err != nil {
				return err
			}

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use as the default network (e.g., hardhat, sepolia)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	resolveCmd := NewResolveCmd()
	resolveCmd.GroupID = "main"
	rootCmd.AddCommand(resolveCmd)

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "main"
	rootCmd.AddCommand(validateCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	rolesCmd := NewRolesCmd()
	rolesCmd.GroupID = "main"
	rootCmd.AddCommand(rolesCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	initCmd := NewInitCmd()
	initCmd.GroupID = "management"
	rootCmd.AddCommand(initCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
