// Package fsutil provides file system helpers for input discovery.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindInputs resolves a user-supplied path into the list of model files to
// convert. A regular file is returned as-is; a directory is walked
// recursively for files with any of the given extensions. The result is
// sorted so batch conversions are deterministic.
func FindInputs(path string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("fsutil: at least one extension is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolving input path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if strings.EqualFold(filepath.Ext(p), ext) {
				files = append(files, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Strings(files)
	return files, nil
}
