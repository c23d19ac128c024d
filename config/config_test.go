package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/forecast"
	"github.com/kilianp07/picapacity/core/model"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `simulation:
  trials: 5000
  seed: 42
  workers: 4
  strategy:
    kind: resampling
    variability_low: 0.7
    variability_high: 1.3
report:
  percentile: 95
  bins: 20
  format: json
metrics:
  sinks:
    - type: prometheus
      conf:
        textfile: /tmp/forecast.prom
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"trials", cfg.Simulation.Trials, 5000},
		{"seed", cfg.Simulation.Seed, uint64(42)},
		{"workers", cfg.Simulation.Workers, 4},
		{"kind", cfg.Simulation.Strategy.Kind, forecast.KindResampling},
		{"low", *cfg.Simulation.Strategy.VariabilityLow, 0.7},
		{"high", *cfg.Simulation.Strategy.VariabilityHigh, 1.3},
		{"percentile", cfg.Report.Percentile, 95.0},
		{"bins", cfg.Report.Bins, 20},
		{"format", cfg.Report.Format, "json"},
		{"sink", cfg.Metrics.Sinks[0].Type, "prometheus"},
		{"textfile", cfg.Metrics.Sinks[0].Settings["textfile"], "/tmp/forecast.prom"},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, forecast.DefaultTrials, cfg.Simulation.Trials)
	assert.Equal(t, forecast.KindRatio, cfg.Simulation.Strategy.Kind)
	assert.Equal(t, 90.0, cfg.Report.Percentile)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Empty(t, cfg.Metrics.Sinks)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PIC_SIMULATION__TRIALS", "250")
	t.Setenv("PIC_SIMULATION__STRATEGY__UNCERTAINTY_FACTOR", "0.2")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Simulation.Trials)
	assert.Equal(t, 0.2, cfg.Simulation.Strategy.UncertaintyFactor)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
		want error
	}{
		{"negative trials", "simulation:\n  trials: -5\n", model.ErrInvalidInput},
		{"uncertainty", "simulation:\n  strategy:\n    uncertainty_factor: 2\n", model.ErrConfiguration},
		{"bounds", "simulation:\n  strategy:\n    kind: resampling\n    variability_low: 1.5\n    variability_high: 1.0\n", model.ErrConfiguration},
		{"format", "report:\n  format: xml\n", model.ErrConfiguration},
		{"percentile", "report:\n  percentile: 150\n", model.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			_, err := Load(path)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_SingleVariabilityBound(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		data string
		low  float64
		high float64
	}{
		{"only high", "simulation:\n  strategy:\n    kind: resampling\n    variability_high: 1.5\n", forecast.DefaultVariabilityLow, 1.5},
		{"only low", "simulation:\n  strategy:\n    kind: resampling\n    variability_low: 0.9\n", 0.9, forecast.DefaultVariabilityHigh},
		{"explicit zero low", "simulation:\n  strategy:\n    kind: resampling\n    variability_low: 0\n", 0, forecast.DefaultVariabilityHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			cfg, err := Load(path)
			require.NoError(t, err)
			lo, hi := cfg.Simulation.Strategy.Bounds()
			assert.Equal(t, tt.low, lo)
			assert.Equal(t, tt.high, hi)
		})
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load("config.ini")
	assert.Error(t, err)
}
