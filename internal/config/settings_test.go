package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablog-io/lablog/internal/models"
)

func TestResolveServerURL(t *testing.T) {
	s := models.NewSettings()
	s.Server.URL = "http://configured:8000"

	assert.Equal(t, "http://flagged:9000", ResolveServerURL("http://flagged:9000", s))
	assert.Equal(t, "http://configured:8000", ResolveServerURL("", s))
	assert.Equal(t, "http://configured:8000", ResolveServerURL("   ", s))
}

func TestResolveDropDir(t *testing.T) {
	s := models.NewSettings()

	s.Attachments.DropDir = "-"
	dir, err := ResolveDropDir(s)
	require.NoError(t, err)
	assert.Empty(t, dir, "\"-\" disables the drop directory")

	s.Attachments.DropDir = "/data/drops"
	dir, err = ResolveDropDir(s)
	require.NoError(t, err)
	assert.Equal(t, "/data/drops", dir)

	s.Attachments.DropDir = ""
	dir, err = ResolveDropDir(s)
	require.NoError(t, err)
	assert.Contains(t, dir, DropDirName)
}

func TestLoadYAMLOrDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	loaded, err := LoadYAMLOrDefault(path, models.NewSettings)
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings().Server.URL, loaded.Server.URL, "missing file yields defaults")

	loaded.Server.URL = "http://elsewhere:8000"
	loaded.Editor.DefaultAuthors = []string{"alice"}
	require.NoError(t, SaveYAML(path, loaded))

	again, err := LoadYAMLOrDefault(path, models.NewSettings)
	require.NoError(t, err)
	assert.Equal(t, "http://elsewhere:8000", again.Server.URL)
	assert.Equal(t, []string{"alice"}, again.Editor.DefaultAuthors)
}
