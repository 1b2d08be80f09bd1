package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders the registered networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	fmt.Fprintln(r.out, "🌐 Networks:")
	fmt.Fprintln(r.out)

	t := newTable(5)
	t.AppendHeader(table.Row{"", "NAME", "ENDPOINT", "ACCOUNTS", "STATUS"})

	for _, network := range result.Networks {
		marker := ""
		if network.Default {
			marker = "*"
		}

		endpoint := network.URL
		if network.Builtin {
			endpoint = "(in-process)"
		} else if endpoint == "" {
			endpoint = "-"
		}

		status := color.New(color.FgGreen).Sprint("ready")
		if !network.Usable {
			status = color.New(color.FgYellow).Sprintf("unusable: %s", network.Reason)
		}

		t.AppendRow(table.Row{marker, network.Name, endpoint, network.Accounts, status})
	}

	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "* default network: %s\n", result.DefaultNetwork)
	return nil
}
