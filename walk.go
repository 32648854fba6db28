package main

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// findTestFiles walks root and returns every file whose name ends in
// suffix, in walk order.
func findTestFiles(root, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}
