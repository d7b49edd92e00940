package main

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"data/config.yaml": {Data: []byte(
			"StartState: Playback\n" +
				"PlaybackFile: last.newyear\n" +
				"ShowDebugInfo: true\n")},
	}
	cfg := Config{RecordingFile: "default.newyear"}
	LoadYAML(fsys, "data/config.yaml", &cfg)
	assert.Equal(t, "Playback", cfg.StartState)
	assert.Equal(t, "last.newyear", cfg.PlaybackFile)
	assert.True(t, cfg.ShowDebugInfo)
	assert.False(t, cfg.RecordToFile)
	// Missing from the file, keeps its value.
	assert.Equal(t, "default.newyear", cfg.RecordingFile)
}

func TestLoadYAML_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("StartState: [unclosed\n")},
	}
	var cfg Config
	assert.Panics(t, func() { LoadYAML(fsys, "bad.yaml", &cfg) })
	assert.Panics(t, func() { LoadYAML(fsys, "missing.yaml", &cfg) })

	CheckCrashes = false
	defer func() { CheckCrashes = true }()
	CheckFailed = nil
	LoadYAML(fsys, "missing.yaml", &cfg)
	assert.Error(t, CheckFailed)
}

func TestEmbeddedConfigs(t *testing.T) {
	for _, name := range []string{"data/config.yaml", "data/config-dev.yaml"} {
		var cfg Config
		LoadYAML(&embeddedFiles, name, &cfg)
		assert.Equal(t, "Play", cfg.StartState, name)
	}
}

func TestFileExists(t *testing.T) {
	fsys := fstest.MapFS{"data/config.yaml": {Data: []byte("")}}
	assert.True(t, FileExists(fsys, "data/config.yaml"))
	assert.False(t, FileExists(fsys, "data/other.yaml"))
}

func TestFolderWatcher(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.yaml")
	assert.NoError(t, os.WriteFile(name, []byte("a"), 0644))

	f := FolderWatcher{Folder: dir}
	assert.True(t, f.FolderContentsChanged())
	assert.False(t, f.FolderContentsChanged())

	later := time.Now().Add(time.Hour)
	assert.NoError(t, os.Chtimes(name, later, later))
	assert.True(t, f.FolderContentsChanged())

	assert.False(t, (&FolderWatcher{}).FolderContentsChanged())
}
