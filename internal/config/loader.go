package config

import (
	"maps"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// envOverrides are the recognized keys that override settings directly.
type envOverrides struct {
	Network     string   `env:"CHAINCFG_NETWORK"`
	SolcVersion string   `env:"CHAINCFG_SOLC_VERSION"`
	Reporters   []string `env:"CHAINCFG_REPORTERS" envSeparator:","`
}

// Loader turns a settings template into raw values by reading an environment snapshot.
type Loader struct {
	template config.Settings
}

// NewLoader creates a loader over a private copy of settings.
func NewLoader(settings config.Settings) *Loader {
	return &Loader{template: settings.Clone()}
}

// Load expands every variable reference from env and applies the override keys.
// It never fails: an absent value expands to "" and an absent key list to none.
// A nil snapshot is an empty environment, never the process one.
func (l *Loader) Load(snapshot Snapshot) *config.RawValues {
	if snapshot == nil {
		snapshot = Snapshot{}
	}
	s := l.template
	expand := func(value string) string {
		return strings.TrimSpace(os.Expand(value, snapshot.Get))
	}

	raw := &config.RawValues{
		Compiler: config.CompilerSetting{
			Version: expand(s.Compiler.Version),
		},
		DefaultNetwork: expand(s.DefaultNetwork),
		Networks:       make([]config.RawNetwork, 0, len(s.Networks)),
		Paths: config.PathMapping{
			Sources:   expand(s.Paths.Sources),
			Artifacts: expand(s.Paths.Artifacts),
			Cache:     expand(s.Paths.Cache),
		},
		Roles: make(map[string]map[string]int, len(s.Roles)),
		Report: config.ReportConfig{
			Reporters: cloneList(s.Report.Reporters),
			Outputs:   make(map[string]string, len(s.Report.Outputs)),
		},
		Plugins: cloneList(s.Plugins),
	}

	if s.Compiler.Optimizer != nil {
		raw.Compiler.OptimizerEnabled = *s.Compiler.Optimizer
	}
	if s.Compiler.OptimizerRuns != nil {
		raw.Compiler.OptimizerRuns = *s.Compiler.OptimizerRuns
	}
	if s.Report.TimeoutMs != nil {
		raw.Report.TimeoutMs = *s.Report.TimeoutMs
	}

	for _, n := range s.Networks {
		raw.Networks = append(raw.Networks, config.RawNetwork{
			Name:        strings.TrimSpace(n.Name),
			URL:         expand(n.URL),
			Credentials: expandAccounts(n.Accounts, snapshot, expand),
		})
	}

	for role, bindings := range s.Roles {
		raw.Roles[role] = maps.Clone(bindings)
	}

	for reporter, path := range s.Report.Outputs {
		raw.Report.Outputs[reporter] = expand(path)
	}

	applyOverrides(raw, parseOverrides(snapshot))

	return raw
}

// expandAccounts expands credential references. An entry that is exactly one
// ${VAR} reference may carry a comma-separated list of keys.
func expandAccounts(accounts []string, snapshot Snapshot, expand func(string) string) []string {
	credentials := []string{}
	for _, account := range accounts {
		if name, ok := DetectEnvVar(strings.TrimSpace(account)); ok {
			credentials = append(credentials, splitList(snapshot.Get(name))...)
			continue
		}
		if value := expand(account); value != "" {
			credentials = append(credentials, value)
		}
	}
	return credentials
}

func parseOverrides(snapshot Snapshot) envOverrides {
	var o envOverrides
	// env falls back to os.Environ for a nil map.
	environment := map[string]string(snapshot)
	if environment == nil {
		environment = map[string]string{}
	}
	if err := env.ParseWithOptions(&o, env.Options{Environment: environment}); err != nil {
		// Only string fields are parsed, so an error here leaves no override to apply.
		return envOverrides{}
	}
	return o
}

func applyOverrides(raw *config.RawValues, o envOverrides) {
	if v := strings.TrimSpace(o.Network); v != "" {
		raw.DefaultNetwork = v
	}
	if v := strings.TrimSpace(o.SolcVersion); v != "" {
		raw.Compiler.Version = v
	}
	if reporters := splitList(strings.Join(o.Reporters, ",")); len(reporters) > 0 {
		raw.Report.Reporters = reporters
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
