package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/chaincfg/internal/domain/config"
)

// MockDescriptorResolver is a mock implementation of DescriptorResolver
type MockDescriptorResolver struct {
	mock.Mock
}

func (m *MockDescriptorResolver) ResolveDescriptor(ctx context.Context, network string) (*config.Descriptor, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Descriptor), args.Error(1)
}

// MockEnvironmentInspector is a mock implementation of EnvironmentInspector
type MockEnvironmentInspector struct {
	mock.Mock
}

func (m *MockEnvironmentInspector) MissingEnvVars(ctx context.Context) []string {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockEnvironmentInspector) EndpointEnvVar(ctx context.Context, network string) string {
	args := m.Called(ctx, network)
	return args.String(0)
}

// MockNetworkCatalog is a mock implementation of NetworkCatalog
type MockNetworkCatalog struct {
	mock.Mock
}

func (m *MockNetworkCatalog) NetworkNames(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

// MockLocalConfigRepository is a mock implementation of LocalConfigRepository
type MockLocalConfigRepository struct {
	mock.Mock
}

func (m *MockLocalConfigRepository) Exists() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLocalConfigRepository) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigRepository) Save(ctx context.Context, cfg *config.LocalConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockLocalConfigRepository) GetPath() string {
	args := m.Called()
	return args.String(0)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, networks []string, prompt string) (string, error) {
	args := m.Called(ctx, networks, prompt)
	return args.String(0), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MemoryFileWriter keeps written files in memory
type MemoryFileWriter struct {
	Files       map[string]string
	Directories []string
	WriteErr    error
}

func NewMemoryFileWriter() *MemoryFileWriter {
	return &MemoryFileWriter{Files: map[string]string{}}
}

func (w *MemoryFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	if w.WriteErr != nil {
		return w.WriteErr
	}
	w.Files[path] = content
	return nil
}

func (w *MemoryFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	_, ok := w.Files[path]
	return ok, nil
}

func (w *MemoryFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	w.Directories = append(w.Directories, path)
	return nil
}
