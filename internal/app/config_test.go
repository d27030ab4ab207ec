package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every ADVENT_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvInputDir, EnvNoCache, EnvWorkers, EnvVerbose} {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v) // registers restore on cleanup
			require.NoError(t, os.Unsetenv(k))
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	p := NewPaths(t.TempDir())

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.True(t, cfg.Cache)
	assert.Equal(t, "input", cfg.InputDir)
}

func TestLoadConfig_YAML(t *testing.T) {
	clearEnv(t)
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.Config, []byte("input_dir: puzzles\nworkers: 3\n"), 0644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Cache, "keys missing from the file keep their defaults")
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.Config, []byte("workers: [1, 2\n"), 0644))

	_, err := LoadConfig(p)
	assert.Error(t, err)
}

func TestLoadConfig_DotEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	p := NewPaths(t.TempDir())
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.Config, []byte("input_dir: puzzles\n"), 0644))
	require.NoError(t, os.WriteFile(p.Env, []byte("ADVENT_INPUT_DIR=from-dotenv\nADVENT_NO_CACHE=true\n"), 0644))

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.InputDir)
	assert.False(t, cfg.Cache)
}

func TestLoadConfig_EnvOverridesDotEnv(t *testing.T) {
	clearEnv(t)
	p := NewPaths(t.TempDir())
	require.NoError(t, os.WriteFile(p.Env, []byte("ADVENT_WORKERS=2\n"), 0644))
	t.Setenv(EnvWorkers, "5")
	t.Setenv(EnvVerbose, "1")

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	for _, kv := range [][2]string{
		{EnvWorkers, "many"},
		{EnvWorkers, "-1"},
		{EnvNoCache, "maybe"},
		{EnvVerbose, "loud"},
	} {
		t.Run(kv[0]+"="+kv[1], func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := LoadConfig(NewPaths(t.TempDir()))
			assert.Error(t, err)
		})
	}
}
