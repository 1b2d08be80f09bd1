package config

// DescriptorView is a secret-free, fully exported copy of a Descriptor used for
// rendering and comparison. Credentials are replaced by their derived addresses.
type DescriptorView struct {
	Compiler       CompilerSetting `json:"compiler" yaml:"compiler"`
	DefaultNetwork string          `json:"defaultNetwork" yaml:"defaultNetwork"`
	Networks       []NetworkView   `json:"networks" yaml:"networks"`
	Paths          PathMapping     `json:"paths" yaml:"paths"`
	Roles          []RoleView      `json:"roles" yaml:"roles"`
	Report         ReportConfig    `json:"report" yaml:"report"`
	Plugins        []string        `json:"plugins" yaml:"plugins"`
}

// NetworkView is the renderable part of a NetworkEntry
type NetworkView struct {
	Name           string   `json:"name" yaml:"name"`
	URL            string   `json:"url,omitempty" yaml:"url,omitempty"`
	Accounts       []string `json:"accounts" yaml:"accounts"`
	Builtin        bool     `json:"builtin,omitempty" yaml:"builtin,omitempty"`
	Default        bool     `json:"default,omitempty" yaml:"default,omitempty"`
	Unusable       bool     `json:"unusable" yaml:"unusable"`
	UnusableReason string   `json:"unusableReason,omitempty" yaml:"unusableReason,omitempty"`
}

// RoleView lists a role's account on each network, ordered by network name
type RoleView struct {
	Role     string       `json:"role" yaml:"role"`
	Accounts []AccountRef `json:"accounts" yaml:"accounts"`
}

// View builds the renderable copy of d.
func (d *Descriptor) View() DescriptorView {
	view := DescriptorView{
		Compiler:       d.compiler,
		DefaultNetwork: d.defaultNetwork,
		Networks:       make([]NetworkView, 0, len(d.networks)),
		Paths:          d.paths,
		Roles:          make([]RoleView, 0, len(d.roles)),
		Report:         d.report.Clone(),
		Plugins:        cloneStrings(d.plugins),
	}
	if view.Plugins == nil {
		view.Plugins = []string{}
	}

	networkNames := d.NetworkNames()
	for _, name := range networkNames {
		entry := d.networks[name]
		accounts := cloneStrings(entry.Addresses)
		if accounts == nil {
			accounts = []string{}
		}
		view.Networks = append(view.Networks, NetworkView{
			Name:           entry.Name,
			URL:            entry.URL,
			Accounts:       accounts,
			Builtin:        entry.Builtin,
			Default:        entry.Name == d.defaultNetwork,
			Unusable:       entry.Unusable,
			UnusableReason: entry.UnusableReason,
		})
	}

	for _, role := range d.Roles() {
		rv := RoleView{Role: role.Role, Accounts: make([]AccountRef, 0, len(role.Accounts))}
		for _, network := range networkNames {
			if ref, ok := role.Accounts[network]; ok {
				rv.Accounts = append(rv.Accounts, ref)
			}
		}
		view.Roles = append(view.Roles, rv)
	}

	return view
}
