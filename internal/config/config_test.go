package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 0.89, cfg.Analysis.Calibration.Settlement)
	assert.Equal(t, 0.92, cfg.Analysis.Calibration.Negation)
	assert.Equal(t, 0.94, cfg.Analysis.Calibration.Authority)
	assert.Equal(t, 0.70, cfg.Analysis.Calibration.SimilarityThreshold)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  addr: ":9090"
analysis:
  min_similarity: 0.6
  calibration:
    settlement: 0.85
    negation: 0.92
    authority: 0.94
    similarity_threshold: 0.70
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 0.6, cfg.Analysis.MinSimilarity)
	assert.Equal(t, 0.85, cfg.Analysis.Calibration.Settlement)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
}

func TestValidateRejectsBadCalibration(t *testing.T) {
	cfg := Default()
	cfg.Analysis.Calibration.Settlement = 1.5

	assert.Error(t, cfg.Validate())
}
