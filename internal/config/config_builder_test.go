package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
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

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
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

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "https://api.example.com"}},
		&StructuredConfig{Storage: Storage{DSN: "/var/data/sessions.db"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "/var/data/sessions.db", cfg.Storage.DSN)
}

// TestBuild_EarlierSourceWins verifies the priority contract: when two
// sources fill the same field, the one appended first survives the merge.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "https://first.example.com"}},
		&StructuredConfig{API: API{BaseURL: "https://second.example.com", UserAgent: "second-agent"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", cfg.API.BaseURL)
	assert.Equal(t, "second-agent", cfg.API.UserAgent)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://env.example.com")
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "https://env.example.com", b.configs[0].API.BaseURL)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathIsNoop verifies that withJSON appends nothing when no
// source names a config file.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsNamedFile verifies that the file named by an earlier
// source is parsed and appended.
func TestWithJSON_LoadsNamedFile(t *testing.T) {
	p := writeTempJSONConfig(t, `{"api": {"base_url": "https://json.example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: p})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].API.BaseURL)
}

// TestWithJSON_FirstPathWins verifies that the path is resolved from the
// highest-priority source that set one.
func TestWithJSON_FirstPathWins(t *testing.T) {
	first := writeTempJSONConfig(t, `{"api": {"base_url": "https://first.example.com"}}`)
	second := writeTempJSONConfig(t, `{"api": {"base_url": "https://second.example.com"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "https://first.example.com", b.configs[2].API.BaseURL)
}

// TestWithJSON_BadFileSetsError verifies that an unreadable file surfaces
// through b.err and fails the build.
func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "definitely-does-not-exist.json"})

	b.withJSON()

	require.Error(t, b.err)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

// TestWithDefaults_FillsGaps verifies that defaults land only where no
// higher-priority source set a value.
func TestWithDefaults_FillsGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		API: API{BaseURL: "https://override.example.com"},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
}

// TestDefaultConfig_IsComplete verifies that defaults alone produce a config
// both binaries can run on.
func TestDefaultConfig_IsComplete(t *testing.T) {
	cfg := defaultConfig()

	assert.NotEmpty(t, cfg.API.BaseURL)
	assert.NotZero(t, cfg.API.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.DSN)
	assert.NotEmpty(t, cfg.Server.Address)
	assert.NotZero(t, cfg.Server.RequestTimeout)
}
