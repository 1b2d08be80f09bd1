package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// compilerVersionPattern matches compiler releases such as 0.8.28,
// 0.8.28-nightly.2024.1.1 or 0.8.28+commit.7893614a.
var compilerVersionPattern = regexp.MustCompile(
	`^(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)\.(0|[1-9][0-9]*)(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`,
)

// Validate checks raw against the configuration schema. Checks run in a fixed
// order and the first violation is returned as a *domain.ConfigError.
func Validate(raw *config.RawValues) (*config.ValidatedConfig, error) {
	if err := validateCompiler(raw.Compiler); err != nil {
		return nil, err
	}

	paths, err := validatePaths(raw.Paths)
	if err != nil {
		return nil, err
	}

	if err := validateDefaultNetwork(raw.DefaultNetwork, raw.Networks); err != nil {
		return nil, err
	}

	if raw.Report.TimeoutMs <= 0 {
		return nil, domain.NewConfigError(domain.ErrInvalidReportTimeout, "report.timeout_ms", raw.Report.TimeoutMs,
			"must be a positive number of milliseconds")
	}

	plugins, err := validatePlugins(raw.Plugins)
	if err != nil {
		return nil, err
	}

	return &config.ValidatedConfig{
		Compiler:       raw.Compiler,
		DefaultNetwork: raw.DefaultNetwork,
		Networks:       cloneNetworks(raw.Networks),
		Paths:          paths,
		Bindings:       bindingsFromRaw(raw.Roles),
		Report:         normalizeReport(raw.Report),
		Plugins:        plugins,
	}, nil
}

func validateCompiler(c config.CompilerSetting) error {
	if c.Version == "" {
		return domain.NewConfigError(domain.ErrInvalidCompilerSetting, "compiler.version", c.Version,
			"must not be empty")
	}
	if !compilerVersionPattern.MatchString(c.Version) {
		return domain.NewConfigError(domain.ErrInvalidCompilerSetting, "compiler.version", c.Version,
			"must look like MAJOR.MINOR.PATCH")
	}
	if c.OptimizerRuns < 1 {
		return domain.NewConfigError(domain.ErrInvalidCompilerSetting, "compiler.optimizer_runs", c.OptimizerRuns,
			"must be at least 1")
	}
	return nil
}

func validatePaths(p config.PathMapping) (config.PathMapping, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"paths.sources", p.Sources},
		{"paths.artifacts", p.Artifacts},
		{"paths.cache", p.Cache},
	}

	seen := make(map[string]string, len(fields))
	cleaned := make([]string, len(fields))

	for i, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return config.PathMapping{}, domain.NewConfigError(domain.ErrPathCollision, f.name, f.value,
				"must not be empty")
		}
		if filepath.IsAbs(f.value) {
			return config.PathMapping{}, domain.NewConfigError(domain.ErrPathCollision, f.name, f.value,
				"must be relative to the project root")
		}

		clean := filepath.Clean(f.value)
		if other, exists := seen[clean]; exists {
			return config.PathMapping{}, domain.NewConfigError(domain.ErrPathCollision, f.name, f.value,
				fmt.Sprintf("resolves to the same directory as %s", other))
		}
		seen[clean] = f.name
		cleaned[i] = clean
	}

	return config.PathMapping{
		Sources:   cleaned[0],
		Artifacts: cleaned[1],
		Cache:     cleaned[2],
	}, nil
}

func validateDefaultNetwork(name string, networks []config.RawNetwork) error {
	known := append([]string{config.BuiltinNetwork}, lo.Map(networks, func(n config.RawNetwork, _ int) string {
		return n.Name
	})...)

	if name != "" && lo.Contains(known, name) {
		return nil
	}

	reason := "is not a registered network"
	if name == "" {
		reason = "must not be empty"
	}
	return domain.NewConfigError(domain.ErrUnknownDefaultNetwork, "default_network", name, reason).
		WithSuggestion(Suggest(name, known))
}

func validatePlugins(plugins []string) ([]string, error) {
	out := make([]string, 0, len(plugins))
	for _, plugin := range plugins {
		plugin = strings.TrimSpace(plugin)
		if !lo.Contains(KnownPlugins, plugin) {
			return nil, domain.NewConfigError(domain.ErrUnknownPlugin, "plugins", plugin,
				"is not a recognized plugin").WithSuggestion(Suggest(plugin, KnownPlugins))
		}
		out = append(out, plugin)
	}
	out = lo.Uniq(out)
	sort.Strings(out)
	return out, nil
}

func bindingsFromRaw(roles map[string]map[string]int) []config.RoleBinding {
	names := lo.Keys(roles)
	sort.Strings(names)

	bindings := make([]config.RoleBinding, 0, len(names))
	for _, role := range names {
		bindings = append(bindings, config.RoleBinding{
			Role:            role,
			PerNetworkIndex: maps.Clone(roles[role]),
		})
	}
	return bindings
}

func normalizeReport(r config.ReportConfig) config.ReportConfig {
	reporters := lo.Uniq(lo.FilterMap(r.Reporters, func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	}))
	sort.Strings(reporters)

	outputs := make(map[string]string, len(r.Outputs))
	for reporter, path := range r.Outputs {
		if path != "" {
			outputs[reporter] = path
		}
	}

	return config.ReportConfig{
		TimeoutMs: r.TimeoutMs,
		Reporters: reporters,
		Outputs:   outputs,
	}
}

func cloneNetworks(in []config.RawNetwork) []config.RawNetwork {
	out := make([]config.RawNetwork, len(in))
	for i, n := range in {
		n.Credentials = cloneList(n.Credentials)
		out[i] = n
	}
	return out
}
