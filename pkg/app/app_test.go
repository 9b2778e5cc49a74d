package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/lessons/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/lessons.yaml": &fstest.MapFile{Data: []byte("frameCap: 30\nscreen:\n  title: Embedded\n")},
	})

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FrameCap)
	assert.Equal(t, "Embedded", cfg.Screen.Title)
	assert.Equal(t, 640, cfg.Screen.Width, "missing fields keep defaults")
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dot:\n  velocity: 5\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Dot.Velocity)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	embedded.Init(fstest.MapFS{})
	_, err = loadConfig("")
	assert.Error(t, err)
}

func TestImagePaths(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "..", "data", "lessons.yaml"))
	require.NoError(t, err)

	paths := imagePaths(cfg)
	assert.Len(t, paths, len(cfg.Images))
	assert.Contains(t, paths, "assets/textures/dot.bmp")
}
