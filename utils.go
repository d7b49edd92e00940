package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"io/fs"
	"os"
	"time"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func CloseFile(f fs.File) {
	Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// LoadYAML reads a YAML file from fsys into v. Fields missing from the file
// keep whatever value v had before, so v can be pre-filled with defaults.
func LoadYAML(fsys FS, name string, v any) {
	data, err := fsys.ReadFile(name)
	Check(err)
	if err != nil {
		return
	}
	err = yaml.Unmarshal(data, v)
	if err != nil {
		Check(fmt.Errorf("failed to parse %s: %w", name, err))
	}
}

type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
