// SPDX-License-Identifier: AGPL-3.0-or-later

// Package projectroot locates the enclosing Go module and its gattgen config.
package projectroot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no go.mod exists in start or its ancestors.
var ErrNotFound = errors.New("project root not found")

// Find returns the closest directory at or above start that holds a go.mod.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}
	for {
		if exists(filepath.Join(dir, "go.mod")) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no go.mod above %s", ErrNotFound, start)
		}
		dir = parent
	}
}

// FindFile looks for name in start and each parent up to the project root.
// The search stops at the filesystem root when start is outside a module.
func FindFile(start, name string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, name)
		if exists(candidate) {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir || exists(filepath.Join(dir, "go.mod")) {
			return "", false
		}
		dir = parent
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
