package config

import (
	"maps"
	"slices"
	"sort"
	"time"
)

// BuiltinNetwork is the in-process network present in every descriptor.
const BuiltinNetwork = "hardhat"

// DefaultBinding is the role binding key used when a network has no explicit binding.
const DefaultBinding = "default"

// Reporter names with a fixed output convention.
const (
	ReporterSpec        = "spec"
	ReporterJUnit       = "junit"
	ReporterMochawesome = "mochawesome"
)

// CompilerSetting selects the compiler release and optimizer.
type CompilerSetting struct {
	Version          string `json:"version" yaml:"version"`
	OptimizerEnabled bool   `json:"optimizerEnabled" yaml:"optimizerEnabled"`
	OptimizerRuns    int    `json:"optimizerRuns" yaml:"optimizerRuns"`
}

// NetworkEntry is a registered network. Dispatch collaborators must check
// Unusable before using an entry.
type NetworkEntry struct {
	Name           string
	URL            string
	Credentials    []string // secret key material, never rendered
	Addresses      []string // derived from Credentials, "" where a credential is not a valid key
	Builtin        bool
	Unusable       bool
	UnusableReason string
}

// Clone returns a copy that shares no slices with e.
func (e NetworkEntry) Clone() NetworkEntry {
	e.Credentials = cloneStrings(e.Credentials)
	e.Addresses = cloneStrings(e.Addresses)
	return e
}

// PathMapping holds the project-relative source, artifact and cache directories.
type PathMapping struct {
	Sources   string `json:"sources" yaml:"sources"`
	Artifacts string `json:"artifacts" yaml:"artifacts"`
	Cache     string `json:"cache" yaml:"cache"`
}

// RoleBinding maps a role to an account index per network, with "default" as fallback.
type RoleBinding struct {
	Role            string
	PerNetworkIndex map[string]int
}

// AccountRef is the account a role resolves to on one network.
type AccountRef struct {
	Network string `json:"network" yaml:"network"`
	Index   int    `json:"index" yaml:"index"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

// ResolvedRole is a role bound on every registered network.
type ResolvedRole struct {
	Role     string
	Accounts map[string]AccountRef
}

// For returns the account the role uses on network.
func (r ResolvedRole) For(network string) (AccountRef, bool) {
	ref, ok := r.Accounts[network]
	return ref, ok
}

// ReportConfig configures the test-report runner.
type ReportConfig struct {
	TimeoutMs int               `json:"timeoutMs" yaml:"timeoutMs"`
	Reporters []string          `json:"reporters" yaml:"reporters"`
	Outputs   map[string]string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Timeout returns the per-test timeout.
func (r ReportConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutMs) * time.Millisecond
}

// Enabled reports whether reporter is enabled.
func (r ReportConfig) Enabled(reporter string) bool {
	return slices.Contains(r.Reporters, reporter)
}

// MachineReadablePath is where the junit report is written, or "" when disabled.
func (r ReportConfig) MachineReadablePath() string {
	if !r.Enabled(ReporterJUnit) {
		return ""
	}
	return r.Outputs[ReporterJUnit]
}

// HumanReadablePath is the mochawesome report base path, or "" when disabled.
func (r ReportConfig) HumanReadablePath() string {
	if !r.Enabled(ReporterMochawesome) {
		return ""
	}
	return r.Outputs[ReporterMochawesome]
}

// Clone returns a copy that shares no slices or maps with r.
func (r ReportConfig) Clone() ReportConfig {
	r.Reporters = cloneStrings(r.Reporters)
	if r.Outputs != nil {
		r.Outputs = maps.Clone(r.Outputs)
	}
	return r
}

// Descriptor is the resolved configuration. It is immutable after construction:
// every accessor returns a copy, so it can be shared across goroutines freely.
type Descriptor struct {
	compiler       CompilerSetting
	defaultNetwork string
	networks       map[string]NetworkEntry
	paths          PathMapping
	roles          map[string]ResolvedRole
	report         ReportConfig
	plugins        []string
}

// NewDescriptor copies its inputs into a new Descriptor.
func NewDescriptor(
	compiler CompilerSetting,
	defaultNetwork string,
	networks map[string]NetworkEntry,
	paths PathMapping,
	roles map[string]ResolvedRole,
	report ReportConfig,
	plugins []string,
) *Descriptor {
	d := &Descriptor{
		compiler:       compiler,
		defaultNetwork: defaultNetwork,
		networks:       make(map[string]NetworkEntry, len(networks)),
		paths:          paths,
		roles:          make(map[string]ResolvedRole, len(roles)),
		report:         report.Clone(),
		plugins:        cloneStrings(plugins),
	}
	for name, entry := range networks {
		d.networks[name] = entry.Clone()
	}
	for name, role := range roles {
		d.roles[name] = cloneRole(role)
	}
	return d
}

func (d *Descriptor) Compiler() CompilerSetting { return d.compiler }

func (d *Descriptor) DefaultNetwork() string { return d.defaultNetwork }

func (d *Descriptor) Paths() PathMapping { return d.paths }

func (d *Descriptor) Report() ReportConfig { return d.report.Clone() }

func (d *Descriptor) Plugins() []string { return cloneStrings(d.plugins) }

// Network returns the entry registered under name.
func (d *Descriptor) Network(name string) (NetworkEntry, bool) {
	entry, ok := d.networks[name]
	if !ok {
		return NetworkEntry{}, false
	}
	return entry.Clone(), true
}

// NetworkNames returns the registered network names in sorted order.
func (d *Descriptor) NetworkNames() []string {
	names := make([]string, 0, len(d.networks))
	for name := range d.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Networks returns every registered network sorted by name.
func (d *Descriptor) Networks() []NetworkEntry {
	names := d.NetworkNames()
	out := make([]NetworkEntry, 0, len(names))
	for _, name := range names {
		out = append(out, d.networks[name].Clone())
	}
	return out
}

// Role returns the resolved role named name.
func (d *Descriptor) Role(name string) (ResolvedRole, bool) {
	role, ok := d.roles[name]
	if !ok {
		return ResolvedRole{}, false
	}
	return cloneRole(role), true
}

// Roles returns every resolved role sorted by name.
func (d *Descriptor) Roles() []ResolvedRole {
	names := make([]string, 0, len(d.roles))
	for name := range d.roles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ResolvedRole, 0, len(names))
	for _, name := range names {
		out = append(out, cloneRole(d.roles[name]))
	}
	return out
}

func cloneRole(r ResolvedRole) ResolvedRole {
	if r.Accounts != nil {
		r.Accounts = maps.Clone(r.Accounts)
	}
	return r
}
