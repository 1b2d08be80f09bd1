package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

const (
	firstDevAddress  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	secondDevAddress = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func TestRegister(t *testing.T) {
	t.Run("built-in network is always present", func(t *testing.T) {
		networks, err := Register(nil)
		require.NoError(t, err)

		hardhat, ok := networks[config.BuiltinNetwork]
		require.True(t, ok)
		assert.True(t, hardhat.Builtin)
		assert.False(t, hardhat.Unusable)
		assert.Empty(t, hardhat.URL)
		assert.Len(t, hardhat.Credentials, 10)
		require.Len(t, hardhat.Addresses, 10)
		assert.Equal(t, firstDevAddress, hardhat.Addresses[0])
		assert.Equal(t, secondDevAddress, hardhat.Addresses[1])
	})

	t.Run("registers declared networks", func(t *testing.T) {
		networks, err := Register([]config.RawNetwork{
			{Name: "sepolia", URL: "https://rpc.sepolia.org"},
			{Name: "base", URL: "https://mainnet.base.org"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"base", "hardhat", "sepolia"}, networks.Names())
		assert.Equal(t, "https://rpc.sepolia.org", networks["sepolia"].URL)
	})

	t.Run("duplicate network", func(t *testing.T) {
		_, err := Register([]config.RawNetwork{
			{Name: "sepolia", URL: "https://a.example"},
			{Name: "sepolia", URL: "https://b.example"},
		})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateNetwork))
		var cfgErr *domain.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "networks.sepolia", cfgErr.Field)
		assert.Equal(t, "declared more than once", cfgErr.Reason)
	})

	t.Run("redeclaring the built-in network", func(t *testing.T) {
		_, err := Register([]config.RawNetwork{{Name: config.BuiltinNetwork, URL: "http://127.0.0.1:8545"}})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateNetwork))
		assert.Contains(t, err.Error(), "built-in")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := Register([]config.RawNetwork{{Name: "sepolia"}, {Name: ""}})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnnamedNetwork))
		var cfgErr *domain.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "networks[1].name", cfgErr.Field)
	})

	t.Run("does not alias credentials", func(t *testing.T) {
		credentials := []string{DevelopmentKeys[0]}
		networks, err := Register([]config.RawNetwork{{Name: "local", URL: "http://127.0.0.1:8545", Credentials: credentials}})
		require.NoError(t, err)

		credentials[0] = "changed"
		assert.Equal(t, DevelopmentKeys[0], networks["local"].Credentials[0])
	})
}

func TestRegister_Usability(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		credentials []string
		unusable    bool
		reason      string
		addresses   []string
	}{
		{
			name:     "no url",
			unusable: true,
			reason:   "no endpoint url configured",
		},
		{
			name:     "url without scheme",
			url:      "rpc.sepolia.org",
			unusable: true,
			reason:   "malformed endpoint url",
		},
		{
			name:     "unsupported scheme",
			url:      "ftp://rpc.sepolia.org",
			unusable: true,
			reason:   "malformed endpoint url",
		},
		{
			name: "url without credentials",
			url:  "https://rpc.sepolia.org",
		},
		{
			name: "websocket url",
			url:  "wss://rpc.sepolia.org/ws",
		},
		{
			name:        "valid key with prefix",
			url:         "https://rpc.sepolia.org",
			credentials: []string{DevelopmentKeys[0]},
			addresses:   []string{firstDevAddress},
		},
		{
			name:        "valid key without prefix",
			url:         "http://127.0.0.1:8545",
			credentials: []string{DevelopmentKeys[1][2:]},
			addresses:   []string{secondDevAddress},
		},
		{
			name:        "short key",
			url:         "https://rpc.sepolia.org",
			credentials: []string{DevelopmentKeys[0], "0x1234"},
			unusable:    true,
			reason:      "credential 1 is not a 32-byte hex private key",
			addresses:   []string{firstDevAddress, ""},
		},
		{
			name:        "unexpanded reference",
			url:         "https://rpc.sepolia.org",
			credentials: []string{"${PRIVATE_KEY}"},
			unusable:    true,
			reason:      "credential 0 is not a 32-byte hex private key",
			addresses:   []string{""},
		},
		{
			name:        "key above the curve order",
			url:         "https://rpc.sepolia.org",
			credentials: []string{strings.Repeat("f", 64)},
			addresses:   []string{""},
		},
		{
			name:        "zero key",
			url:         "https://rpc.sepolia.org",
			credentials: []string{"0x" + strings.Repeat("0", 64)},
			addresses:   []string{""},
		},
		{
			name:        "odd length key",
			url:         "https://rpc.sepolia.org",
			credentials: []string{strings.Repeat("a", 63)},
			unusable:    true,
			reason:      "credential 0 is not a 32-byte hex private key",
			addresses:   []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			networks, err := Register([]config.RawNetwork{{Name: "target", URL: tt.url, Credentials: tt.credentials}})
			require.NoError(t, err)

			entry := networks["target"]
			assert.Equal(t, tt.unusable, entry.Unusable)
			assert.Equal(t, tt.reason, entry.UnusableReason)
			assert.Equal(t, tt.addresses, entry.Addresses)
		})
	}
}

func TestNetworkMap_Unusable(t *testing.T) {
	networks, err := Register([]config.RawNetwork{
		{Name: "zksync"},
		{Name: "sepolia", URL: "https://rpc.sepolia.org"},
		{Name: "base"},
	})
	require.NoError(t, err)

	unusable := networks.Unusable()
	require.Len(t, unusable, 2)
	assert.Equal(t, "base", unusable[0].Name)
	assert.Equal(t, "zksync", unusable[1].Name)
}
