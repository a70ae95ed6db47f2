package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hatsunemiku3939/personread/pkg/jsonschema"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "personread.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultPath, cfg.Path)
	assert.Equal(t, "strict", cfg.ExitPolicy)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
}

func TestLoad_File(t *testing.T) {
	file := writeConfig(t, `
path = "people/ada.txt"
exit_policy = "legacy"

[log]
level = "debug"
json = true
`)

	cfg, err := Load(New(), file)
	require.NoError(t, err)

	assert.Equal(t, "people/ada.txt", cfg.Path)
	assert.Equal(t, "legacy", cfg.ExitPolicy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	file := writeConfig(t, `path = "from-file.txt"`)
	t.Setenv("PERSONREAD_PATH", "from-env.txt")
	t.Setenv("PERSONREAD_LOG_LEVEL", "info")

	cfg, err := Load(New(), file)
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", cfg.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ExplicitSetWins(t *testing.T) {
	t.Setenv("PERSONREAD_PATH", "from-env.txt")
	v := New()
	v.Set("path", "from-arg.txt")

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "from-arg.txt", cfg.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown exit policy", `exit_policy = "lenient"`},
		{"unknown log level", "[log]\nlevel = \"chatty\""},
		{"empty path", `path = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
			assert.True(t, errors.Is(err, jsonschema.ErrSchemaValidationFailed))
			assert.NotEmpty(t, errors.FlattenHints(err))
		})
	}
}
