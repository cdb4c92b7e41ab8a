package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/songnote/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/songnote/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/songnote/internal/core/domain"
	"github.com/custodia-labs/songnote/internal/core/ports/driving"
	"github.com/custodia-labs/songnote/internal/core/services"
	"github.com/custodia-labs/songnote/internal/normalisers/lyrics"
)

// MockPatchService implements driving.PatchService for CLI tests.
type MockPatchService struct {
	PreviewFunc func(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error)
	PatchFunc   func(ctx context.Context, path string, opts domain.PatchOptions) (*domain.PatchResult, error)
	ApplyFunc   func(ctx context.Context, result *domain.PatchResult) error

	// NormalisedPath records the path of the most recent NormaliseNote call.
	NormalisedPath string

	// LastOptions records the options of the most recent Preview or Patch call.
	LastOptions domain.PatchOptions
	Applied     int
}

var _ driving.PatchService = (*MockPatchService)(nil)

func (m *MockPatchService) Preview(
	ctx context.Context, path string, opts domain.PatchOptions,
) (*domain.PatchResult, error) {
	m.LastOptions = opts
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, path, opts)
	}
	return &domain.PatchResult{Path: path, Lyrics: "Hold on", Changed: true, Preset: opts.Preset}, nil
}

func (m *MockPatchService) Patch(
	ctx context.Context, path string, opts domain.PatchOptions,
) (*domain.PatchResult, error) {
	m.LastOptions = opts
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, path, opts)
	}
	return &domain.PatchResult{Path: path, Lyrics: "Hold on", Changed: true, Written: true}, nil
}

func (m *MockPatchService) Apply(ctx context.Context, result *domain.PatchResult) error {
	m.Applied++
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, result)
	}
	result.Written = true
	return nil
}

// NormaliseNote reads from disk through the real service so path handling
// matches production.
func (m *MockPatchService) NormaliseNote(
	ctx context.Context, path string, preset domain.PunctuationPreset,
) (string, domain.NormaliseStats, error) {
	m.NormalisedPath = path
	return services.NewPatchService(filesystem.NewNoteStore(), lyrics.New()).NormaliseNote(ctx, path, preset)
}

func (m *MockPatchService) NormaliseText(text string, preset domain.PunctuationPreset) (string, domain.NormaliseStats) {
	return lyrics.New().Normalise(text, preset)
}

// setupTestServices installs a mock patch service and a settings service
// backed by an in-memory config store.
func setupTestServices() (*MockPatchService, *services.SettingsService, func()) {
	origPatch, origSettings, origInit := patchService, settingsService, initialiser

	mock := &MockPatchService{}
	settings := services.NewSettingsService(memory.NewConfigStore())

	patchService = mock
	settingsService = settings
	initialiser = nil
	resetFlags(rootCmd)

	return mock, settings, func() {
		patchService, settingsService, initialiser = origPatch, origSettings, origInit
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}
}

// resetFlags restores every flag of cmd and its children to its default so
// values and mutual-exclusion state do not leak between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "songnote", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "[Verse]")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"normalise", "patch", "settings", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestInitialiser_ReceivesConfigDir(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	var got string
	SetInitialiser(func(dir string) error {
		got = dir
		return nil
	})

	rootCmd.SetArgs([]string{"--config-dir", "/tmp/songnote-test", "version"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "/tmp/songnote-test", got)
}

func TestInitialiser_Error(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	SetInitialiser(func(string) error {
		return errors.New("disk on fire")
	})

	rootCmd.SetArgs([]string{"version"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialise")
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestSetters(t *testing.T) {
	_, _, cleanup := setupTestServices()
	defer cleanup()

	mock := &MockPatchService{}
	SetPatchService(mock)
	assert.Equal(t, driving.PatchService(mock), patchService)

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetSettingsService(settings)
	assert.Equal(t, driving.SettingsService(settings), settingsService)

	orig := version
	defer func() { version = orig }()
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
