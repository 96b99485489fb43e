package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadwork/config"
	"github.com/katalvlaran/roadwork/face"
	"github.com/katalvlaran/roadwork/reserve"
	"github.com/katalvlaran/roadwork/scheduler"
	"github.com/katalvlaran/roadwork/spt"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "roadwork.yaml", `seed: 42
logging:
  level: debug
  format: console
metrics:
  file: /tmp/roadwork.prom
reserve:
  iterations: 800
face:
  rect_limit: 450
search:
  time_limit: 2s
  max_iterations: 10000
  acceptance: metropolis
  locality_bias: 0.5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"seed", cfg.Seed, int64(42)},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"metrics.file", cfg.Metrics.File, "/tmp/roadwork.prom"},
		{"reserve.iterations", cfg.Reserve.Iterations, 800},
		{"reserve.max_temp", cfg.Reserve.MaxTemp, reserve.DefaultMaxTemp},
		{"face.rect_limit", cfg.Face.RectLimit, 450},
		{"search.time_limit", cfg.Search.TimeLimit, 2 * time.Second},
		{"search.max_iterations", cfg.Search.MaxIterations, 10000},
		{"search.acceptance", cfg.Search.Acceptance, "metropolis"},
		{"search.locality_bias", cfg.Search.LocalityBias, 0.5},
		{"search.repair_retries", cfg.Search.RepairRetries, scheduler.DefaultRepairRetries},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
	assert.Len(t, cfg.Search.Options(), 8)
	assert.Len(t, cfg.Reserve.Options(), 2)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "roadwork.json", `{"seed": 7, "search": {"repair_retries": 3}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Search.RepairRetries)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, reserve.DefaultIterations, cfg.Reserve.Iterations)
	assert.Equal(t, face.DefaultRectLimit, cfg.Face.RectLimit)
	assert.Equal(t, scheduler.DefaultTimeLimit, cfg.Search.TimeLimit)
	assert.Equal(t, "greedy", cfg.Search.Acceptance)
	assert.Equal(t, spt.DefaultExactRootLimit, cfg.Search.ExactRootLimit)
	assert.Empty(t, cfg.Metrics.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROADWORK_SEED", "99")
	t.Setenv("ROADWORK_SEARCH__ACCEPTANCE", "metropolis")
	t.Setenv("ROADWORK_LOGGING__LEVEL", "warn")
	path := write(t, "roadwork.yaml", "seed: 1\nlogging:\n  level: debug\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "metropolis", cfg.Search.Acceptance)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "roadwork.toml", "seed = 1"))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cases := map[string]string{
		"level":      "logging:\n  level: loud\n",
		"format":     "logging:\n  format: xml\n",
		"acceptance": "search:\n  acceptance: tabu\n",
		"bias":       "search:\n  locality_bias: 2\n",
		"temp":       "reserve:\n  max_temp: 10\n  min_temp: 20\n",
		"rect":       "face:\n  rect_limit: -1\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "roadwork.yaml", data))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
