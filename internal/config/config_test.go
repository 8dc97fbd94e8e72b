package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "v3test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("V3MATH_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, float32(1e-5), cfg.Harness.Tolerance)
	assert.Equal(t, float32(1e-4), cfg.Harness.LooseTolerance)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
harness:
  tolerance: 0.001
  noise_samples: 8
logging:
  level: debug
  dir: logs
metrics:
  dump: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, cfg.Harness.Tolerance, 1e-9)
	assert.Equal(t, float32(1e-4), cfg.Harness.LooseTolerance, "незаданные поля сохраняют значения по умолчанию")
	assert.Equal(t, 8, cfg.Harness.GetNoiseSamples())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "logs", cfg.Logging.Dir)
	assert.True(t, cfg.Metrics.Dump)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, "harness:\n  noise_seed: 7\n")
	t.Setenv("V3MATH_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Harness.GetNoiseSeed())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "harness: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "harness:\n  tolerance: -1\n"))
	assert.ErrorContains(t, err, "tolerance must be positive")
}

func TestHarnessEnvFallback(t *testing.T) {
	h := HarnessConfig{}

	t.Setenv("V3MATH_SEED", "")
	t.Setenv("V3MATH_SAMPLES", "")
	assert.Equal(t, int64(42), h.GetNoiseSeed())
	assert.Equal(t, 64, h.GetNoiseSamples())

	t.Setenv("V3MATH_SEED", "1234")
	t.Setenv("V3MATH_SAMPLES", "16")
	assert.Equal(t, int64(1234), h.GetNoiseSeed())
	assert.Equal(t, 16, h.GetNoiseSamples())

	t.Setenv("V3MATH_SAMPLES", "not-a-number")
	assert.Equal(t, 64, h.GetNoiseSamples())

	h.NoiseSamples = 3
	assert.Equal(t, 3, h.GetNoiseSamples(), "значение из конфига важнее env")
}
