package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/v3math/internal/config"
)

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Harness.NoiseSamples = 8

	var stdout, stderr bytes.Buffer
	code := run(cfg, true, false, &stdout, &stderr)

	assert.Equal(t, 0, code, stdout.String())
	assert.Contains(t, stdout.String(), "ALL TESTS PASSED")
	assert.Contains(t, stdout.String(), `v3math_failures_total{kind="degenerate_geometry",op="normalize"} 2`)
	assert.Contains(t, stderr.String(), "[vec] Error: v3_normalize: degenerate geometry")
	assert.Contains(t, stderr.String(), "finished: 0 failed checks")
}

func TestRun_BadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "shout"

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(cfg, false, false, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "invalid logging.level")
}
