package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/domain"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// ValidateRenderer renders the outcome of a configuration check
type ValidateRenderer struct {
	out io.Writer
}

// NewValidateRenderer creates a new validate renderer
func NewValidateRenderer(out io.Writer) *ValidateRenderer {
	return &ValidateRenderer{out: out}
}

// Render renders the validation result
func (r *ValidateRenderer) Render(result *usecase.ValidateConfigResult) error {
	if !result.Valid {
		cfgErr := result.Error
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s in %s", domain.KindName(cfgErr), cfgErr.Field)))
		if cfgErr.Reason != "" {
			fmt.Fprintf(r.out, "   %s\n", describeFailure(cfgErr))
		}
		if cfgErr.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(r.out, "   Did you mean %q?\n", cfgErr.Suggestion)
		}
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Configuration is valid (%s, %s)",
		pluralize(result.Networks, "network"), pluralize(result.Roles, "role"))))

	for _, entry := range result.Unusable {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Network %s is not usable: %s", entry.Name, entry.UnusableReason)))
		if envVar := result.EndpointVars[entry.Name]; envVar != "" && entry.URL == "" {
			color.New(color.FgHiBlack).Fprintf(r.out, "   Set %s in .env to enable it\n", envVar)
		}
	}

	if len(result.MissingEnv) > 0 {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Unset environment variables: %s", strings.Join(result.MissingEnv, ", "))))
	}

	if result.ConfigSource != "" {
		color.New(color.FgHiBlack).Fprintf(r.out, "Config source: %s\n", result.ConfigSource)
	}
	return nil
}

// describeFailure is the error's reason prefixed by the offending value, if any.
// The suggestion is left to the caller.
func describeFailure(cfgErr *domain.ConfigError) string {
	switch v := cfgErr.Value.(type) {
	case nil:
		return cfgErr.Reason
	case string:
		return fmt.Sprintf("%q %s", v, cfgErr.Reason)
	default:
		return fmt.Sprintf("%v %s", v, cfgErr.Reason)
	}
}
