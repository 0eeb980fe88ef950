package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/aeroconst/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"list"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, app.CommandList, cfg.Command)
	assert.Empty(t, cfg.Args)
	assert.Equal(t, app.DefaultClassName, cfg.ClassName)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_FlagsAndArgs(t *testing.T) {
	args := []string{"--class", "AS", "--format", "json", "--log-format", "JSON", "--log-level", "DEBUG", "eval", "AS.OPT_TTL", "+", "1"}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, app.CommandEval, cfg.Command)
	assert.Equal(t, []string{"AS.OPT_TTL", "+", "1"}, cfg.Args)
	assert.Equal(t, "AS", cfg.ClassName)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv("AEROCONST_CLASS", "Client")
	t.Setenv("AEROCONST_LOG_LEVEL", "info")
	t.Setenv("AEROCONST_FORMAT", "yaml")

	t.Run("env supplies defaults", func(t *testing.T) {
		cfg, _, err := Parse([]string{"version"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Client", cfg.ClassName)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "yaml", cfg.Format)
	})

	t.Run("flags override env", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--class", "Other", "version"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "Other", cfg.ClassName)
	})
}

func TestParse_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("AEROCONST_LOG_FORMAT=json\n"), 0o600))

	// Register the variable with t.Setenv first so it is restored afterwards,
	// then clear it so the dotenv file is the only source.
	t.Setenv("AEROCONST_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("AEROCONST_LOG_FORMAT"))

	orig := DotEnvFiles
	DotEnvFiles = []string{filepath.Join(dir, "missing.env"), envFile}
	t.Cleanup(func() { DotEnvFiles = orig })

	cfg, _, err := Parse([]string{"list"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_ShouldExit(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help flag", []string{"-h"}},
		{"no command", []string{}},
		{"help command", []string{"help"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			cfg, shouldExit, err := Parse(tt.args, out)

			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "aeroconst [options] COMMAND [ARGS]")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"--nope", "list"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"--log-format", "xml", "list"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "trace", "list"}, "invalid log-level"},
		{"bad output format", []string{"--format", "toml", "list"}, "unknown output format"},
		{"bad class", []string{"--class", "my class", "list"}, "invalid class name"},
		{"unknown command", []string{"drop"}, `unknown command "drop"`},
		{"eval without expression", []string{"eval"}, "eval requires an expression"},
		{"verify without path", []string{"verify"}, "verify requires"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tt.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.msg)
		})
	}
}
