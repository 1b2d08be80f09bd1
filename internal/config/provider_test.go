package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

func writeLocalConfig(t *testing.T, dir, content string) {
	t.Helper()
	dataDir := filepath.Join(dir, DataDirName)
	require.NoError(t, os.MkdirAll(dataDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, LocalConfigName), []byte(content), 0644))
}

func newViper(t *testing.T, dir string, cmd *cobra.Command) *viper.Viper {
	t.Helper()
	v, err := SetupViper(dir, cmd)
	require.NoError(t, err)
	return v
}

func TestProvider(t *testing.T) {
	t.Run("defaults when no project file", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Provider(newViper(t, dir, nil))
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".chaincfg"), cfg.DataDir)
		assert.Equal(t, config.ConfigSourceDefaults, cfg.ConfigSource)
		assert.Equal(t, config.FormatText, cfg.Format)
		assert.Empty(t, cfg.NetworkOverride)
		require.NotNil(t, cfg.Settings)
		assert.Equal(t, "hardhat", cfg.Settings.DefaultNetwork)
	})

	t.Run("uses chaincfg.toml when present", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, "default_network = \"sepolia\"\n")

		cfg, err := Provider(newViper(t, dir, nil))
		require.NoError(t, err)

		assert.Equal(t, config.ConfigSourceFile, cfg.ConfigSource)
		assert.Equal(t, "sepolia", cfg.Settings.DefaultNetwork)
	})

	t.Run("reads dotenv files into the snapshot", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHAINCFG_PROVIDER_TEST=from-dotenv\n"), 0644))

		cfg, err := Provider(newViper(t, dir, nil))
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.Env["CHAINCFG_PROVIDER_TEST"])
	})

	t.Run("local config sets network and format", func(t *testing.T) {
		dir := t.TempDir()
		writeLocalConfig(t, dir, `{"network": "sepolia", "format": "JSON"}`)

		cfg, err := Provider(newViper(t, dir, nil))
		require.NoError(t, err)

		assert.Equal(t, "sepolia", cfg.NetworkOverride)
		assert.Equal(t, config.FormatJSON, cfg.Format)
	})

	t.Run("flag wins over local config", func(t *testing.T) {
		dir := t.TempDir()
		writeLocalConfig(t, dir, `{"network": "sepolia"}`)

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().StringP("network", "n", "", "network")
		cmd.Flags().Bool("non-interactive", false, "")
		require.NoError(t, cmd.Flags().Parse([]string{"--network", "hardhat", "--non-interactive"}))

		cfg, err := Provider(newViper(t, dir, cmd))
		require.NoError(t, err)

		assert.Equal(t, "hardhat", cfg.NetworkOverride)
		assert.True(t, cfg.NonInteractive)
	})

	t.Run("invalid format", func(t *testing.T) {
		dir := t.TempDir()
		writeLocalConfig(t, dir, `{"format": "xml"}`)

		_, err := Provider(newViper(t, dir, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output format")
	})

	t.Run("broken project file", func(t *testing.T) {
		dir := t.TempDir()
		writeProjectFile(t, dir, "[paths]\nsrc = \"src\"\n")

		_, err := Provider(newViper(t, dir, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load project settings")
	})

	t.Run("malformed local config", func(t *testing.T) {
		dir := t.TempDir()
		writeLocalConfig(t, dir, `{"network": `)

		_, err := SetupViper(dir, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config.local.json")
	})
}
