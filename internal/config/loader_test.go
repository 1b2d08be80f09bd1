package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

func TestLoader_Load(t *testing.T) {
	t.Run("empty environment falls back to defaults", func(t *testing.T) {
		raw := NewLoader(DefaultSettings()).Load(Snapshot{})

		assert.Equal(t, config.CompilerSetting{Version: "0.8.28", OptimizerEnabled: true, OptimizerRuns: 200}, raw.Compiler)
		assert.Equal(t, "hardhat", raw.DefaultNetwork)
		require.Len(t, raw.Networks, 1)
		assert.Equal(t, "sepolia", raw.Networks[0].Name)
		assert.Equal(t, "", raw.Networks[0].URL)
		assert.NotNil(t, raw.Networks[0].Credentials)
		assert.Empty(t, raw.Networks[0].Credentials)
		assert.Equal(t, 60000, raw.Report.TimeoutMs)
		assert.Equal(t, map[string]map[string]int{"deployer": {"default": 0}}, raw.Roles)
	})

	t.Run("expands endpoint and credentials", func(t *testing.T) {
		raw := NewLoader(DefaultSettings()).Load(Snapshot{
			"SEPOLIA_RPC_URL": "  https://rpc.sepolia.org  ",
			"PRIVATE_KEY":     "0xaaa",
		})

		assert.Equal(t, "https://rpc.sepolia.org", raw.Networks[0].URL)
		assert.Equal(t, []string{"0xaaa"}, raw.Networks[0].Credentials)
	})

	t.Run("credential reference may hold a list", func(t *testing.T) {
		raw := NewLoader(DefaultSettings()).Load(Snapshot{
			"PRIVATE_KEY": "0xaaa, 0xbbb,,",
		})

		assert.Equal(t, []string{"0xaaa", "0xbbb"}, raw.Networks[0].Credentials)
	})

	t.Run("literal and embedded values", func(t *testing.T) {
		settings := DefaultSettings()
		settings.Networks = []config.NetworkSettings{{
			Name:     "base",
			URL:      "https://base.example/v2/${API_KEY}",
			Accounts: []string{"0xliteral", "${MISSING}"},
		}}

		raw := NewLoader(settings).Load(Snapshot{"API_KEY": "abc"})

		assert.Equal(t, "https://base.example/v2/abc", raw.Networks[0].URL)
		assert.Equal(t, []string{"0xliteral"}, raw.Networks[0].Credentials)
	})

	t.Run("override keys", func(t *testing.T) {
		raw := NewLoader(DefaultSettings()).Load(Snapshot{
			"CHAINCFG_NETWORK":      "sepolia",
			"CHAINCFG_SOLC_VERSION": "0.8.24",
			"CHAINCFG_REPORTERS":    "junit, spec",
		})

		assert.Equal(t, "sepolia", raw.DefaultNetwork)
		assert.Equal(t, "0.8.24", raw.Compiler.Version)
		assert.Equal(t, []string{"junit", "spec"}, raw.Report.Reporters)
	})

	t.Run("empty override keys are ignored", func(t *testing.T) {
		raw := NewLoader(DefaultSettings()).Load(Snapshot{
			"CHAINCFG_NETWORK":   "",
			"CHAINCFG_REPORTERS": " , ",
		})

		assert.Equal(t, "hardhat", raw.DefaultNetwork)
		assert.Equal(t, []string{"spec", "junit", "mochawesome"}, raw.Report.Reporters)
	})

	t.Run("unset pointers load as zero values", func(t *testing.T) {
		raw := NewLoader(config.Settings{}).Load(Snapshot{})

		assert.False(t, raw.Compiler.OptimizerEnabled)
		assert.Equal(t, 0, raw.Compiler.OptimizerRuns)
		assert.Equal(t, 0, raw.Report.TimeoutMs)
		assert.Empty(t, raw.Networks)
	})

	t.Run("does not mutate the template", func(t *testing.T) {
		settings := DefaultSettings()
		loader := NewLoader(settings)

		raw := loader.Load(Snapshot{})
		raw.Roles["deployer"]["default"] = 7
		raw.Report.Outputs["junit"] = "elsewhere.xml"

		again := loader.Load(Snapshot{})
		assert.Equal(t, 0, again.Roles["deployer"]["default"])
		assert.Equal(t, "reports/junit.xml", again.Report.Outputs["junit"])
		assert.Equal(t, 0, settings.Roles["deployer"]["default"])
	})
}

func TestLoader_Load_NilSnapshotIgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("CHAINCFG_NETWORK", "sepolia")
	t.Setenv("CHAINCFG_SOLC_VERSION", "0.7.6")
	t.Setenv("PRIVATE_KEY", "0xaaa")

	raw := NewLoader(DefaultSettings()).Load(nil)

	assert.Equal(t, "hardhat", raw.DefaultNetwork)
	assert.Equal(t, "0.8.28", raw.Compiler.Version)
	assert.Empty(t, raw.Networks[0].Credentials)
	assert.Equal(t, envOverrides{}, parseOverrides(nil))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,b,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}
