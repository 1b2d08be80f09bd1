package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DescriptorRenderer renders a resolved configuration as text, JSON or YAML.
// Only the secret-free view is rendered.
type DescriptorRenderer struct {
	out    io.Writer
	format string
}

// NewDescriptorRenderer creates a new descriptor renderer
func NewDescriptorRenderer(out io.Writer, format string) *DescriptorRenderer {
	return &DescriptorRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the resolved descriptor
func (r *DescriptorRenderer) Render(result *usecase.ResolveDescriptorResult) error {
	switch r.format {
	case config.FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result.View)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(result.View); err != nil {
			return err
		}
		return encoder.Close()
	case config.FormatText, "":
		r.renderText(result)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", r.format)
	}
}

func (r *DescriptorRenderer) renderText(result *usecase.ResolveDescriptorResult) {
	view := result.View
	title := cases.Title(language.English)
	section := color.New(color.FgCyan, color.Bold)
	faint := color.New(color.FgHiBlack)

	heading := func(name string) {
		section.Fprintln(r.out, title.String(name))
	}

	heading("compiler")
	fmt.Fprintf(r.out, "  version:    %s\n", view.Compiler.Version)
	if view.Compiler.OptimizerEnabled {
		fmt.Fprintf(r.out, "  optimizer:  enabled (%d runs)\n", view.Compiler.OptimizerRuns)
	} else {
		fmt.Fprintf(r.out, "  optimizer:  disabled\n")
	}
	fmt.Fprintln(r.out)

	heading("networks")
	for _, network := range view.Networks {
		var tags []string
		if network.Builtin {
			tags = append(tags, "built-in")
		}
		if network.Default {
			tags = append(tags, "default")
		}
		name := color.New(color.Bold).Sprint(network.Name)
		if len(tags) > 0 {
			name += faint.Sprintf(" (%s)", strings.Join(tags, ", "))
		}
		fmt.Fprintf(r.out, "  %s\n", name)
		if network.URL != "" {
			fmt.Fprintf(r.out, "    url:       %s\n", network.URL)
		}
		fmt.Fprintf(r.out, "    accounts:  %s\n", pluralize(len(network.Accounts), "account"))
		if network.Unusable {
			fmt.Fprintf(r.out, "    %s\n", color.New(color.FgYellow).Sprintf("unusable: %s", network.UnusableReason))
		}
	}
	fmt.Fprintln(r.out)

	heading("paths")
	fmt.Fprintf(r.out, "  sources:    %s\n", view.Paths.Sources)
	fmt.Fprintf(r.out, "  artifacts:  %s\n", view.Paths.Artifacts)
	fmt.Fprintf(r.out, "  cache:      %s\n", view.Paths.Cache)
	fmt.Fprintln(r.out)

	heading("roles")
	if len(view.Roles) == 0 {
		faint.Fprintln(r.out, "  (none)")
	}
	for _, role := range view.Roles {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.Bold).Sprint(role.Role))
		for _, ref := range role.Accounts {
			fmt.Fprintf(r.out, "    %-12s #%d %s\n", ref.Network, ref.Index, formatAddress(ref.Address))
		}
	}
	fmt.Fprintln(r.out)

	heading("report")
	fmt.Fprintf(r.out, "  timeout:    %s\n", view.Report.Timeout())
	fmt.Fprintf(r.out, "  reporters:  %s\n", strings.Join(view.Report.Reporters, ", "))
	if path := view.Report.MachineReadablePath(); path != "" {
		fmt.Fprintf(r.out, "  junit:      %s\n", path)
	}
	if path := view.Report.HumanReadablePath(); path != "" {
		fmt.Fprintf(r.out, "  html/json:  %s.{html,json}\n", path)
	}
	fmt.Fprintln(r.out)

	heading("plugins")
	if len(view.Plugins) == 0 {
		faint.Fprintln(r.out, "  (none)")
	} else {
		fmt.Fprintf(r.out, "  %s\n", strings.Join(view.Plugins, ", "))
	}

	if len(result.MissingEnv) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Unset environment variables: %s", strings.Join(result.MissingEnv, ", "))))
	}

	if result.ConfigSource != "" {
		fmt.Fprintln(r.out)
		faint.Fprintf(r.out, "Config source: %s\n", result.ConfigSource)
	}
}

func formatAddress(address string) string {
	if address == "" {
		return color.New(color.FgHiBlack).Sprint("(no key)")
	}
	return address
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
