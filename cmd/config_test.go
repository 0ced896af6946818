package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing default file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("missing explicit file errors", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("parses fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stencil.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: claude-sonnet-4-20250514\noutput: ./build\n"), 0o644))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "claude-sonnet-4-20250514", cfg.Model)
		assert.Equal(t, "./build", cfg.Output)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: [unclosed\n"), 0o644))

		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}
