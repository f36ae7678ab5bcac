package match

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"tmtidy/internal/faults"
)

// Dir returns the paths of the direct children of dir whose name matches any
// of the shell-glob patterns. Duplicates are removed, matching is
// case-sensitive, and results are sorted so identical directory contents
// always yield identical output.
func Dir(dir string, patterns []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrDirectoryNotFound, "matching", "scan", dir, err)
		}
		return nil, faults.Wrap(faults.ErrDirectoryNotFound, "matching", "read directory", dir, err)
	}

	var matched []string
	for _, entry := range entries {
		name := entry.Name()
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, name)
			if err != nil {
				return nil, faults.Wrap(faults.ErrInvalidRecord, "matching", "pattern", pattern, err)
			}
			if ok {
				matched = append(matched, filepath.Join(dir, name))
				break
			}
		}
	}
	sort.Strings(matched)
	return matched, nil
}
