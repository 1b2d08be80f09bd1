package config

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// NetworkMap maps network names to registered entries
type NetworkMap map[string]config.NetworkEntry

// Names returns the registered network names in sorted order.
func (m NetworkMap) Names() []string {
	names := lo.Keys(m)
	sort.Strings(names)
	return names
}

// Unusable returns the entries flagged as not ready for live dispatch, sorted by name.
func (m NetworkMap) Unusable() []config.NetworkEntry {
	var out []config.NetworkEntry
	for _, name := range m.Names() {
		if m[name].Unusable {
			out = append(out, m[name])
		}
	}
	return out
}

// Register builds the network map. The built-in network is always registered
// first, so declaring it again is a duplicate.
func Register(entries []config.RawNetwork) (NetworkMap, error) {
	networks := NetworkMap{
		config.BuiltinNetwork: builtinNetwork(),
	}

	for i, raw := range entries {
		if raw.Name == "" {
			return nil, domain.NewConfigError(domain.ErrUnnamedNetwork, fmt.Sprintf("networks[%d].name", i), raw.Name,
				"must not be empty")
		}

		if existing, exists := networks[raw.Name]; exists {
			reason := "declared more than once"
			if existing.Builtin {
				reason = "redeclares the built-in in-process network"
			}
			return nil, domain.NewConfigError(domain.ErrDuplicateNetwork, "networks."+raw.Name, raw.Name, reason)
		}

		networks[raw.Name] = newNetworkEntry(raw)
	}

	return networks, nil
}

func builtinNetwork() config.NetworkEntry {
	credentials := cloneList(DevelopmentKeys)
	return config.NetworkEntry{
		Name:        config.BuiltinNetwork,
		Credentials: credentials,
		Addresses:   deriveAddresses(credentials),
		Builtin:     true,
	}
}

func newNetworkEntry(raw config.RawNetwork) config.NetworkEntry {
	entry := config.NetworkEntry{
		Name:        raw.Name,
		URL:         raw.URL,
		Credentials: cloneList(raw.Credentials),
		Addresses:   deriveAddresses(raw.Credentials),
	}
	entry.Unusable, entry.UnusableReason = usability(entry)
	return entry
}

// usability flags entries that are valid configuration but cannot be dispatched to.
func usability(entry config.NetworkEntry) (bool, string) {
	if entry.URL == "" {
		return true, "no endpoint url configured"
	}
	if !isEndpointURL(entry.URL) {
		return true, "malformed endpoint url"
	}
	for i, credential := range entry.Credentials {
		if !IsPrivateKey(credential) {
			return true, fmt.Sprintf("credential %d is not a 32-byte hex private key", i)
		}
	}
	return false, ""
}

func isEndpointURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return true
	}
	return false
}
