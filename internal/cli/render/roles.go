package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// RolesRenderer renders role bindings as a role by network table
type RolesRenderer struct {
	out io.Writer
}

// NewRolesRenderer creates a new roles renderer
func NewRolesRenderer(out io.Writer) *RolesRenderer {
	return &RolesRenderer{out: out}
}

// Render renders the roles table
func (r *RolesRenderer) Render(result *usecase.ListRolesResult) error {
	if len(result.Roles) == 0 {
		fmt.Fprintln(r.out, "No roles configured")
		return nil
	}

	fmt.Fprintln(r.out, "👤 Roles:")
	fmt.Fprintln(r.out)

	t := newTable(4)
	t.AppendHeader(table.Row{"ROLE", "NETWORK", "INDEX", "ADDRESS"})
	for _, role := range result.Roles {
		for i, ref := range role.Accounts {
			name := role.Role
			if i > 0 {
				name = ""
			}
			t.AppendRow(table.Row{name, ref.Network, ref.Index, formatAddress(ref.Address)})
		}
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}
