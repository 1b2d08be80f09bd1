package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func resolveResult(t *testing.T, env internalconfig.Snapshot) *usecase.ResolveDescriptorResult {
	t.Helper()
	descriptor, err := internalconfig.Resolve(internalconfig.DefaultSettings(), env, internalconfig.Overrides{})
	require.NoError(t, err)
	return &usecase.ResolveDescriptorResult{
		Descriptor:   descriptor,
		View:         descriptor.View(),
		ConfigSource: config.ConfigSourceDefaults,
		MissingEnv:   internalconfig.MissingEnvVars(internalconfig.DefaultSettings(), env),
	}
}

func TestDescriptorRenderer(t *testing.T) {
	secret := internalconfig.DevelopmentKeys[3]
	env := internalconfig.Snapshot{
		"SEPOLIA_RPC_URL": "https://rpc.sepolia.org",
		"PRIVATE_KEY":     secret,
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDescriptorRenderer(&buf, config.FormatJSON).Render(resolveResult(t, env)))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "hardhat", decoded["defaultNetwork"])
		assert.Len(t, decoded["networks"], 2)
		assert.NotContains(t, buf.String(), secret[2:])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDescriptorRenderer(&buf, config.FormatYAML).Render(resolveResult(t, env)))

		out := buf.String()
		assert.Contains(t, out, "defaultNetwork: hardhat\n")
		assert.Contains(t, out, "  version: 0.8.28\n")
		assert.Contains(t, out, "url: https://rpc.sepolia.org")
		assert.NotContains(t, out, secret[2:])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDescriptorRenderer(&buf, config.FormatText).Render(resolveResult(t, nil)))

		out := buf.String()
		assert.Contains(t, out, "Compiler\n")
		assert.Contains(t, out, "optimizer:  enabled (200 runs)")
		assert.Contains(t, out, "hardhat (built-in, default)")
		assert.Contains(t, out, "accounts:  10 accounts")
		assert.Contains(t, out, "unusable: no endpoint url configured")
		assert.Contains(t, out, "(no key)")
		assert.Contains(t, out, "timeout:    1m0s")
		assert.Contains(t, out, "Unset environment variables: PRIVATE_KEY, SEPOLIA_RPC_URL")
		assert.Contains(t, out, "Config source: defaults")
		assert.NotContains(t, out, internalconfig.DevelopmentKeys[0][2:])
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := NewDescriptorRenderer(&bytes.Buffer{}, "xml").Render(resolveResult(t, nil))
		assert.EqualError(t, err, `unsupported format "xml"`)
	})
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListNetworksResult{
		DefaultNetwork: "hardhat",
		Networks: []usecase.NetworkStatus{
			{Name: "hardhat", Accounts: 10, Builtin: true, Default: true, Usable: true},
			{Name: "sepolia", Reason: "no endpoint url configured"},
		},
	}

	require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(result))

	out := buf.String()
	assert.Contains(t, out, "(in-process)")
	assert.Contains(t, out, "ready")
	assert.Contains(t, out, "unusable: no endpoint url configured")
	assert.Contains(t, out, "* default network: hardhat")
}

func TestRolesRenderer(t *testing.T) {
	t.Run("roles table", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListRolesResult{
			Networks: []string{"hardhat", "sepolia"},
			Roles: []config.RoleView{{
				Role: "deployer",
				Accounts: []config.AccountRef{
					{Network: "hardhat", Index: 0, Address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
					{Network: "sepolia", Index: 0},
				},
			}},
		}

		require.NoError(t, NewRolesRenderer(&buf).Render(result))

		out := buf.String()
		assert.Contains(t, out, "deployer")
		assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		assert.Contains(t, out, "(no key)")
	})

	t.Run("no roles", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRolesRenderer(&buf).Render(&usecase.ListRolesResult{}))
		assert.Equal(t, "No roles configured\n", buf.String())
	})
}

func TestValidateRenderer(t *testing.T) {
	t.Run("invalid configuration", func(t *testing.T) {
		var buf bytes.Buffer
		cfgErr := domain.NewConfigError(domain.ErrUnknownDefaultNetwork, "default_network", "sep", "is not a registered network").
			WithSuggestion("sepolia")

		require.NoError(t, NewValidateRenderer(&buf).Render(&usecase.ValidateConfigResult{Error: cfgErr}))

		out := buf.String()
		assert.Contains(t, out, "UnknownDefaultNetwork in default_network")
		assert.Contains(t, out, `"sep" is not a registered network`)
		assert.Contains(t, out, `Did you mean "sepolia"?`)
		assert.Equal(t, 1, strings.Count(out, "sepolia"))
	})

	t.Run("valid with warnings", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ValidateConfigResult{
			Valid:        true,
			ConfigSource: config.ConfigSourceFile,
			Networks:     2,
			Roles:        1,
			Unusable:     []config.NetworkEntry{{Name: "sepolia", Unusable: true, UnusableReason: "no endpoint url configured"}},
			EndpointVars: map[string]string{"sepolia": "SEPOLIA_RPC_URL"},
			MissingEnv:   []string{"SEPOLIA_RPC_URL"},
		}

		require.NoError(t, NewValidateRenderer(&buf).Render(result))

		out := buf.String()
		assert.Contains(t, out, "Configuration is valid (2 networks, 1 role)")
		assert.Contains(t, out, "Network sepolia is not usable: no endpoint url configured")
		assert.Contains(t, out, "Set SEPOLIA_RPC_URL in .env to enable it")
		assert.Contains(t, out, "Config source: chaincfg.toml")
	})
}

func TestInitRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.InitProjectResult{
		ProjectFileCreated: true,
		Steps: []usecase.InitStep{
			{Name: "Create chaincfg.toml", Success: true, Message: "Created chaincfg.toml"},
			{Name: "Create .env.example", Success: true, Skipped: true, Message: "kept existing .env.example"},
			{Name: "Create data dir", Error: errors.New("permission denied")},
		},
	}

	require.NoError(t, NewInitRenderer(&buf).Render(result))

	out := buf.String()
	assert.Contains(t, out, "✅ Created chaincfg.toml")
	assert.Contains(t, out, "⏭️  kept existing .env.example")
	assert.Contains(t, out, "❌ Create data dir\n   permission denied")
	assert.Contains(t, out, "Next steps")
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 role", pluralize(1, "role"))
	assert.Equal(t, "0 roles", pluralize(0, "role"))
	assert.Equal(t, "3 networks", pluralize(3, "network"))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Bad thing", FormatError("bad thing"))
	assert.Equal(t, "❌ ", FormatError(""))
}
