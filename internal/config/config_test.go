package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vfmatch/features"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vfmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, "partition", p.Name())
}

func TestLoadYAMLAndEnv(t *testing.T) {
	path := writeFile(t, `
match:
  features: decay
  tolerance: 0.001
  mode: subgraph
  sort_nodes: true
  anchor_pruning: false
  time_limit: 2s
input:
  format: text
  labels: true
log:
  level: debug
  format: json
metrics:
  file: /tmp/vfmatch.prom
`)
	t.Setenv("VFMATCH_TIME_LIMIT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "decay", cfg.Match.Features)
	assert.Equal(t, 5*time.Second, cfg.Match.TimeLimit)
	assert.False(t, cfg.Match.AnchorPruning)
	assert.True(t, cfg.Input.Labels)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/vfmatch.prom", cfg.Metrics.File)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.True(t, p.Equal(1.0, 1.0005))
	assert.False(t, p.Equal(1.0, 1.01))

	sopts, err := cfg.StateOptions()
	require.NoError(t, err)
	assert.Len(t, sopts, 3)
	assert.Len(t, cfg.SearchOptions(nil), 2)
	assert.Len(t, cfg.LoadOptions(), 2)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"features":  func(c *Config) { c.Match.Features = "magic" },
		"source":    func(c *Config) { c.Match.DistanceSource = "dijkstra" },
		"tolerance": func(c *Config) { c.Match.Features = "decay"; c.Match.Tolerance = -1 },
		"mode":      func(c *Config) { c.Match.Mode = "fuzzy" },
		"time":      func(c *Config) { c.Match.TimeLimit = -time.Second },
		"format":    func(c *Config) { c.Input.Format = "xml" },
		"level":     func(c *Config) { c.Log.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := Default()
	cfg.Match.Features = "decay"
	cfg.Match.Tolerance = -1
	_, err := cfg.Policy()
	assert.ErrorIs(t, err, features.ErrOptionViolation)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeFile(t, "match: [unclosed"))
	assert.Error(t, err)
}
