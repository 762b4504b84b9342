package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func requiredFlags() []string {
	return []string{
		"-unsafe-origin", "http://localhost:3000",
		"-safe-origin", "https://sandbox.example.com",
		"-admin-email", "admin@example.com",
		"-file-path", "/srv/datastore",
		"-archive-path", "/srv/archive",
		"-pin-path", "/srv/pins",
		"-task-path", "/srv/tasks",
		"-block-path", "/srv/block",
		"-blob-path", "/srv/blob",
		"-blob-staging-path", "/srv/blobstage",
		"-decree-path", "/srv/decrees",
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources fails with
// missing required fields.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingField)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from several sources
// are merged into a single record.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	first := validPartial()
	first.LogLevel = ptr("debug")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&sourceConfig{Partial: first},
		&sourceConfig{Partial: PartialConfig{HTTPPort: ptr(4000)}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.Logging().Level)
	assert.Equal(t, 4000, cfg.HTTP().Port)
	assert.Equal(t, "a@b.com", cfg.AdminEmail())
}

// TestBuild_LaterSourceWins verifies override order, including explicit
// false values replacing earlier true ones.
func TestBuild_LaterSourceWins(t *testing.T) {
	base := validPartial()
	base.Verbose = ptr(true)
	base.LogToStdout = ptr(true)
	base.LogLevel = ptr("debug")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&sourceConfig{Partial: base},
		&sourceConfig{Partial: PartialConfig{
			Verbose:     ptr(false),
			LogToStdout: ptr(false),
			AdminEmail:  ptr("ops@example.com"),
		}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.Logging().Verbose)
	assert.False(t, cfg.Logging().ToStdout)
	assert.Equal(t, LogLevelDebug, cfg.Logging().Level)
	assert.Equal(t, "ops@example.com", cfg.AdminEmail())
}

// TestBuild_MergeDoesNotMutateSources verifies that merging leaves the
// collected partial records untouched.
func TestBuild_MergeDoesNotMutateSources(t *testing.T) {
	base := validPartial()
	override := PartialConfig{AdminEmail: ptr("ops@example.com")}

	b := newConfigBuilder()
	b.configs = append(b.configs, &sourceConfig{Partial: base}, &sourceConfig{Partial: override})

	_, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", *b.configs[0].Partial.AdminEmail)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CRYPTPAD_ADMIN_EMAIL": "env@example.com",
		"CRYPTPAD_LOG_LEVEL":   "error",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, ptr("env@example.com"), b.configs[0].Partial.AdminEmail)
	assert.Equal(t, ptr("error"), b.configs[0].Partial.LogLevel)
}

// TestWithEnv_SetsError verifies that a malformed variable is recorded.
func TestWithEnv_SetsError(t *testing.T) {
	setEnvVars(t, map[string]string{"CRYPTPAD_HTTP_PORT": "x"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-http-port", "x"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_ReturnsBuilder verifies the fluent interface.
func TestWithFile_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFile())
}

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no source names a config file.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &sourceConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_PrependsConfig verifies that the file source is placed first
// so every other source overrides it.
func TestWithFile_PrependsConfig(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"adminEmail": "file@example.com"}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &sourceConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, ptr("file@example.com"), b.configs[0].Partial.AdminEmail)
}

// TestWithFile_UsesLastPath verifies that when several sources name a file,
// the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"adminEmail": "first@example.com"}`)
	last := writeConfigFile(t, "last.yaml", "adminEmail: last@example.com\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&sourceConfig{FilePath: first},
		&sourceConfig{FilePath: ""},
		&sourceConfig{FilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, ptr("last@example.com"), b.configs[0].Partial.AdminEmail)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &sourceConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithFile_KeepsEarlierError verifies that an error recorded by a
// previous source survives withFile.
func TestWithFile_KeepsEarlierError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &sourceConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── GetConfig ─────────────────────────────────────────────────────────────────

// TestGetConfig_Precedence verifies file < env < flags.
func TestGetConfig_Precedence(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
httpUnsafeOrigin: http://localhost:3000
httpSafeOrigin: https://sandbox.example.com
adminEmail: file@example.com
filePath: /srv/datastore
archivePath: /srv/archive
pinPath: /srv/pins
taskPath: /srv/tasks
blockPath: /srv/block
blobPath: /srv/blob
blobStagingPath: /srv/blobstage
decreePath: /srv/decrees
logLevel: debug
verbose: true
httpPort: 3100
`)
	setEnvVars(t, map[string]string{
		"CRYPTPAD_CONFIG":      path,
		"CRYPTPAD_ADMIN_EMAIL": "env@example.com",
		"CRYPTPAD_LOG_LEVEL":   "warn",
		"CRYPTPAD_VERBOSE":     "false",
	})

	cfg, err := GetConfig([]string{"-log-level", "error"})
	require.NoError(t, err)

	assert.Equal(t, "env@example.com", cfg.AdminEmail())
	assert.Equal(t, LogLevelError, cfg.Logging().Level)
	assert.False(t, cfg.Logging().Verbose)
	assert.Equal(t, 3100, cfg.HTTP().Port)
	assert.Equal(t, "/srv/blob", cfg.Storage().Blob)
}

func TestGetConfig_FlagsOnly(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetConfig(requiredFlags())
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail())
	assert.Equal(t, LogLevelInfo, cfg.Logging().Level)
	assert.True(t, cfg.Logging().ToStdout)
}

func TestGetConfig_ValidationError(t *testing.T) {
	clearEnvVars(t)

	args := append(requiredFlags(), "-blob-path", "/srv/datastore")
	cfg, err := GetConfig(args)
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrPathCollision)

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "blobPath", fe.Field)
}

func TestGetConfig_SourceErrorsAreJoined(t *testing.T) {
	setEnvVars(t, map[string]string{"CRYPTPAD_HTTP_PORT": "x"})

	cfg, err := GetConfig([]string{"-verbose=sometimes"})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
	assert.Contains(t, err.Error(), "error parsing flags")
}
