package config

import (
	"fmt"
	"strings"
)

// ProjectTemplate is the chaincfg.toml written by init. Every value matches
// DefaultSettings, so an untouched file resolves exactly like no file at all.
const ProjectTemplate = `# chaincfg.toml: smart-contract project configuration
#
# Values may reference environment variables as ${NAME}. They are read from
# the process environment, then .env.local, then .env.

default_network = "hardhat"

plugins = [
  "env-enc",
  "hardhat-ethers",
  "hardhat-upgrades",
  "hardhat-deploy",
  "solidity-coverage",
]

[compiler]
version = "0.8.28"
optimizer = true
optimizer_runs = 200

# The in-process "hardhat" network is always available and must not be declared here.
# Declaring any [[networks]] entry replaces this list.
[[networks]]
name = "sepolia"
url = "${SEPOLIA_RPC_URL}"
accounts = ["${PRIVATE_KEY}"]

[paths]
sources = "contracts"
artifacts = "artifacts"
cache = "cache"

[report]
timeout_ms = 60000
reporters = ["spec", "junit", "mochawesome"]

[report.outputs]
junit = "reports/junit.xml"
mochawesome = "reports/mochawesome/report"

# Named accounts: role -> network -> account index. "default" applies to every
# network without its own entry.
[roles.deployer]
default = 0
`

// EnvExample renders a .env.example listing every variable the settings reference.
func EnvExample(vars []string) string {
	var b strings.Builder
	b.WriteString("# chaincfg environment\n")
	b.WriteString("# Copy to .env and fill in. Never commit real keys.\n\n")
	for _, name := range vars {
		fmt.Fprintf(&b, "%s=\n", name)
	}
	return b.String()
}
