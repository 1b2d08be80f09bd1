package config

import (
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// KnownPlugins is the recognized set of toolchain extensions.
var KnownPlugins = []string{
	"env-enc",
	"hardhat-deploy",
	"hardhat-ethers",
	"hardhat-upgrades",
	"solidity-coverage",
}

// DevelopmentKeys are the well-known, publicly documented keys funded on the
// in-process development network. They must never hold real value.
var DevelopmentKeys = []string{
	"0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"0x47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
	"0x8b3a350cf5c34c9194ca85829a2df0ec3153be0318b5e2d3348e872092edffba",
	"0x92db14e403b83dfe3df233f83dfa3a0d7096f21ca9b0d6d6b8d88b2b4ec1564e",
	"0x4bbbf85ce3377467afe5d46f804f221813b2bb87f24d81f60f1fcdbf7cbf4356",
	"0xdbda1821b80551c9d65939329250298aa3472ba22feea921c0cf5d620ea67b97",
	"0x2a871d0798f97d79848a013d4936a73bf4cc922c825d33c1cf7073dff6d409c6",
}

// DefaultSettings returns the built-in bottom layer every project starts from.
func DefaultSettings() config.Settings {
	optimizer := true
	runs := 200
	timeout := 60000

	return config.Settings{
		DefaultNetwork: config.BuiltinNetwork,
		Plugins: []string{
			"env-enc",
			"hardhat-ethers",
			"hardhat-upgrades",
			"hardhat-deploy",
			"solidity-coverage",
		},
		Compiler: config.CompilerSettings{
			Version:       "0.8.28",
			Optimizer:     &optimizer,
			OptimizerRuns: &runs,
		},
		Networks: []config.NetworkSettings{
			{
				Name:     "sepolia",
				URL:      "${SEPOLIA_RPC_URL}",
				Accounts: []string{"${PRIVATE_KEY}"},
			},
		},
		Paths: config.PathSettings{
			Sources:   "contracts",
			Artifacts: "artifacts",
			Cache:     "cache",
		},
		Report: config.ReportSettings{
			TimeoutMs: &timeout,
			Reporters: []string{
				config.ReporterSpec,
				config.ReporterJUnit,
				config.ReporterMochawesome,
			},
			Outputs: map[string]string{
				config.ReporterJUnit:       "reports/junit.xml",
				config.ReporterMochawesome: "reports/mochawesome/report",
			},
		},
		Roles: map[string]map[string]int{
			"deployer": {config.DefaultBinding: 0},
		},
	}
}
