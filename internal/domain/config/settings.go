package config

import "maps"

// Settings is one layer of project configuration as it appears in chaincfg.toml.
// Pointer fields distinguish "not set in this layer" from an explicit zero.
type Settings struct {
	DefaultNetwork string                    `toml:"default_network,omitempty"`
	Plugins        []string                  `toml:"plugins,omitempty"`
	Compiler       CompilerSettings          `toml:"compiler"`
	Networks       []NetworkSettings         `toml:"networks,omitempty"`
	Paths          PathSettings              `toml:"paths"`
	Report         ReportSettings            `toml:"report"`
	Roles          map[string]map[string]int `toml:"roles,omitempty"`
}

// CompilerSettings represents the [compiler] section
type CompilerSettings struct {
	Version       string `toml:"version,omitempty"`
	Optimizer     *bool  `toml:"optimizer,omitempty"`
	OptimizerRuns *int   `toml:"optimizer_runs,omitempty"`
}

// NetworkSettings represents a [[networks]] entry. URL and Accounts may hold
// ${VAR} references that are expanded from the environment snapshot.
type NetworkSettings struct {
	Name     string   `toml:"name"`
	URL      string   `toml:"url,omitempty"`
	Accounts []string `toml:"accounts,omitempty"`
}

// PathSettings represents the [paths] section
type PathSettings struct {
	Sources   string `toml:"sources,omitempty"`
	Artifacts string `toml:"artifacts,omitempty"`
	Cache     string `toml:"cache,omitempty"`
}

// ReportSettings represents the [report] section
type ReportSettings struct {
	TimeoutMs *int              `toml:"timeout_ms,omitempty"`
	Reporters []string          `toml:"reporters,omitempty"`
	Outputs   map[string]string `toml:"outputs,omitempty"`
}

// Clone returns a deep copy so layers can be merged without aliasing.
func (s Settings) Clone() Settings {
	out := s
	out.Plugins = cloneStrings(s.Plugins)

	if s.Compiler.Optimizer != nil {
		v := *s.Compiler.Optimizer
		out.Compiler.Optimizer = &v
	}
	if s.Compiler.OptimizerRuns != nil {
		v := *s.Compiler.OptimizerRuns
		out.Compiler.OptimizerRuns = &v
	}

	if s.Networks != nil {
		out.Networks = make([]NetworkSettings, len(s.Networks))
		for i, n := range s.Networks {
			n.Accounts = cloneStrings(n.Accounts)
			out.Networks[i] = n
		}
	}

	if s.Report.TimeoutMs != nil {
		v := *s.Report.TimeoutMs
		out.Report.TimeoutMs = &v
	}
	out.Report.Reporters = cloneStrings(s.Report.Reporters)
	if s.Report.Outputs != nil {
		out.Report.Outputs = maps.Clone(s.Report.Outputs)
	}

	if s.Roles != nil {
		out.Roles = make(map[string]map[string]int, len(s.Roles))
		for role, bindings := range s.Roles {
			out.Roles[role] = maps.Clone(bindings)
		}
	}

	return out
}

// RawNetwork is a network entry after environment expansion, before registration.
type RawNetwork struct {
	Name        string
	URL         string
	Credentials []string
}

// RawValues is the output of the source loader: every reference expanded,
// nothing validated. Networks keep declaration order so duplicates survive
// until registration.
type RawValues struct {
	Compiler       CompilerSetting
	DefaultNetwork string
	Networks       []RawNetwork
	Paths          PathMapping
	Roles          map[string]map[string]int
	Report         ReportConfig
	Plugins        []string
}

// ValidatedConfig is RawValues that passed schema validation. Role bindings
// are sorted by role name.
type ValidatedConfig struct {
	Compiler       CompilerSetting
	DefaultNetwork string
	Networks       []RawNetwork
	Paths          PathMapping
	Bindings       []RoleBinding
	Report         ReportConfig
	Plugins        []string
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
