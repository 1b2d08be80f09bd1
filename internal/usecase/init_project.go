package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// InitProjectParams contains parameters for project initialization
type InitProjectParams struct {
	// Force overwrites existing files without asking
	Force bool
}

// InitProjectResult contains the result of project initialization
type InitProjectResult struct {
	ProjectFileCreated bool
	EnvExampleCreated  bool
	Steps              []InitStep
}

// InitStep represents a step in the initialization process
type InitStep struct {
	Name    string
	Success bool
	Skipped bool
	Message string
	Error   error
}

// InitProject handles project initialization
type InitProject struct {
	config     *config.RuntimeConfig
	fileWriter FileWriter
	confirmer  Confirmer
}

// NewInitProject creates a new init project use case
func NewInitProject(cfg *config.RuntimeConfig, fileWriter FileWriter, confirmer Confirmer) *InitProject {
	return &InitProject{
		config:     cfg,
		fileWriter: fileWriter,
		confirmer:  confirmer,
	}
}

// Run writes chaincfg.toml and .env.example into the project root
func (i *InitProject) Run(ctx context.Context, params InitProjectParams) (*InitProjectResult, error) {
	result := &InitProjectResult{}

	settings, err := internalconfig.DecodeSettings([]byte(internalconfig.ProjectTemplate))
	if err != nil {
		return nil, fmt.Errorf("project template is invalid: %w", err)
	}

	step := i.writeFile(ctx, internalconfig.ProjectFileName, internalconfig.ProjectTemplate, params.Force)
	result.Steps = append(result.Steps, step)
	if step.Error != nil {
		return result, step.Error
	}
	result.ProjectFileCreated = step.Success && !step.Skipped

	merged, err := internalconfig.MergeSettings(internalconfig.DefaultSettings(), settings)
	if err != nil {
		return result, err
	}
	envExample := internalconfig.EnvExample(internalconfig.ReferencedEnvVars(merged))

	step = i.writeFile(ctx, ".env.example", envExample, params.Force)
	result.Steps = append(result.Steps, step)
	if step.Error != nil {
		return result, step.Error
	}
	result.EnvExampleCreated = step.Success && !step.Skipped

	if err := i.fileWriter.EnsureDirectory(ctx, i.config.DataDir); err != nil {
		return result, fmt.Errorf("failed to create %s: %w", i.config.DataDir, err)
	}

	return result, nil
}

func (i *InitProject) writeFile(ctx context.Context, name, content string, force bool) InitStep {
	stepName := "Create " + name
	path := filepath.Join(i.config.ProjectRoot, name)

	exists, err := i.fileWriter.FileExists(ctx, path)
	if err != nil {
		return InitStep{Name: stepName, Error: fmt.Errorf("failed to check %s: %w", name, err)}
	}

	if exists && !force {
		if i.config.NonInteractive {
			return InitStep{
				Name:    stepName,
				Success: true,
				Skipped: true,
				Message: fmt.Sprintf("%s already exists (use --force to overwrite)", name),
			}
		}
		ok, err := i.confirmer.Confirm(ctx, fmt.Sprintf("%s already exists. Overwrite", name))
		if err != nil {
			return InitStep{Name: stepName, Error: err}
		}
		if !ok {
			return InitStep{
				Name:    stepName,
				Success: true,
				Skipped: true,
				Message: fmt.Sprintf("kept existing %s", name),
			}
		}
	}

	if err := i.fileWriter.WriteFile(ctx, path, content); err != nil {
		return InitStep{Name: stepName, Error: fmt.Errorf("failed to create %s: %w", name, err)}
	}

	message := "Created " + name
	if exists {
		message = "Overwrote " + name
	}
	return InitStep{Name: stepName, Success: true, Message: message}
}
