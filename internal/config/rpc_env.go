package config

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// embeddedVarPattern finds every $VAR or ${VAR} inside a value
var embeddedVarPattern = regexp.MustCompile(`\$\{?([A-Za-z_][A-Za-z0-9_]*)\}?`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ReferencedEnvVars returns the sorted, unique variable names referenced by settings.
func ReferencedEnvVars(settings config.Settings) []string {
	var values []string
	values = append(values, settings.DefaultNetwork, settings.Compiler.Version)
	for _, n := range settings.Networks {
		values = append(values, n.URL)
		values = append(values, n.Accounts...)
	}
	values = append(values, settings.Paths.Sources, settings.Paths.Artifacts, settings.Paths.Cache)
	values = append(values, lo.Values(settings.Report.Outputs)...)

	var names []string
	for _, v := range values {
		for _, m := range embeddedVarPattern.FindAllStringSubmatch(v, -1) {
			names = append(names, m[1])
		}
	}

	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// MissingEnvVars returns the referenced variables that are unset or empty in env.
func MissingEnvVars(settings config.Settings, env Snapshot) []string {
	return lo.Filter(ReferencedEnvVars(settings), func(name string, _ int) bool {
		return env.Get(name) == ""
	})
}

// EndpointEnvVar returns the variable that supplies a network's endpoint: the
// declared ${VAR} reference when there is one, else the conventional name.
func EndpointEnvVar(settings config.Settings, network string) string {
	for _, n := range settings.Networks {
		if n.Name != network {
			continue
		}
		if name, ok := DetectEnvVar(strings.TrimSpace(n.URL)); ok {
			return name
		}
	}
	return GenerateEnvVarName(network)
}
