package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// InitRenderer renders init command results
type InitRenderer struct {
	out io.Writer
}

// NewInitRenderer creates a new init renderer
func NewInitRenderer(out io.Writer) *InitRenderer {
	return &InitRenderer{out: out}
}

// Render renders the init project result
func (r *InitRenderer) Render(result *usecase.InitProjectResult) error {
	for _, step := range result.Steps {
		switch {
		case step.Error != nil:
			color.New(color.FgRed).Fprintf(r.out, "❌ %s\n", step.Name)
			fmt.Fprintf(r.out, "   %s\n", step.Error.Error())
		case step.Skipped:
			color.New(color.FgYellow).Fprintf(r.out, "⏭️  %s\n", step.Message)
		default:
			color.New(color.FgGreen).Fprintf(r.out, "✅ %s\n", step.Message)
		}
	}

	if result.ProjectFileCreated {
		r.printNextSteps()
	}

	return nil
}

func (r *InitRenderer) printNextSteps() {
	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "📋 Next steps:")

	fmt.Fprintln(r.out, "1. Copy .env.example to .env and fill in:")
	fmt.Fprintln(r.out, "   • SEPOLIA_RPC_URL for the sepolia endpoint")
	fmt.Fprintln(r.out, "   • PRIVATE_KEY for the deployer account")
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, "2. Check the resolved configuration:")
	color.New(color.FgHiBlack).Fprintln(r.out, "   chaincfg validate")
	color.New(color.FgHiBlack).Fprintln(r.out, "   chaincfg resolve --network sepolia")
}
