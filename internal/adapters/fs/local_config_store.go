package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	internalconfig "github.com/trebuchet-org/chaincfg/internal/config"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
	"github.com/trebuchet-org/chaincfg/internal/usecase"
)

// LocalConfigStoreAdapter keeps the per-checkout network and format choice in
// .chaincfg/config.local.json, the same file the root command reads through viper.
type LocalConfigStoreAdapter struct {
	configPath string
}

func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		configPath: filepath.Join(cfg.DataDir, internalconfig.LocalConfigName),
	}
}

func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Load returns the stored choice, or the defaults when nothing has been saved.
// An unset format reads back as text.
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config.DefaultLocalConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", internalconfig.LocalConfigName, err)
	}

	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("parse %s: %w", internalconfig.LocalConfigName, err)
	}
	if local.Format == "" {
		local.Format = config.DefaultLocalConfig().Format
	}
	return &local, nil
}

// Save replaces the file through a rename in the same directory, so a reader
// never sees a half-written document.
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, local *config.LocalConfig) error {
	dir := filepath.Dir(s.configPath)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, internalconfig.LocalConfigName+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", internalconfig.LocalConfigName, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", internalconfig.LocalConfigName, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", internalconfig.LocalConfigName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", internalconfig.LocalConfigName, err)
	}
	if err := os.Rename(tmp.Name(), s.configPath); err != nil {
		return fmt.Errorf("write %s: %w", internalconfig.LocalConfigName, err)
	}
	return nil
}

func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigRepository = (*LocalConfigStoreAdapter)(nil)
