// SPDX-License-Identifier: AGPL-3.0-or-later

// Package collect gathers GATT records from a file or a flat directory.
package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/bartekus/gattgen/internal/gattxml"
)

var (
	// ErrInputNotFound is returned when the input path is missing or is
	// neither a regular file nor a directory.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformed is returned when a single input file cannot be parsed.
	ErrMalformed = errors.New("malformed input file")
)

// Options configures a collection pass.
type Options struct {
	Filter FilterOptions
	Log    *zap.Logger
}

// Collect parses every record found at path.
//
// A regular file must parse; its failure is fatal. A directory is scanned
// one level deep in file-name order, and entries that cannot be read or do
// not match the parser's schema are skipped.
func Collect(path string, p gattxml.Parser, opts Options) ([]gattxml.Record, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, path, err)
	}

	switch {
	case info.Mode().IsRegular():
		rec, err := parseFile(path, p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
		log.Debug("Parsed input file", zap.String("path", path), zap.String("name", rec.Name))
		return []gattxml.Record{rec}, nil
	case info.IsDir():
		return collectDir(path, p, opts.Filter, log)
	default:
		return nil, fmt.Errorf("%w: %s is neither a file nor a directory", ErrInputNotFound, path)
	}
}

func collectDir(dir string, p gattxml.Parser, filter FilterOptions, log *zap.Logger) ([]gattxml.Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInputNotFound, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}

	records := make([]gattxml.Record, 0, len(names))
	for _, name := range FilterNames(names, filter) {
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
			log.Debug("Skipping non-regular entry", zap.String("path", path))
			continue
		}
		rec, err := parseFile(path, p)
		if err != nil {
			log.Debug("Skipping input file", zap.String("path", path), zap.Error(err))
			continue
		}
		log.Debug("Parsed input file", zap.String("path", path), zap.String("name", rec.Name))
		records = append(records, rec)
	}
	return records, nil
}

func parseFile(path string, p gattxml.Parser) (gattxml.Record, error) {
	f, err := os.Open(path) //nolint:gosec // input paths come from the build configuration
	if err != nil {
		return gattxml.Record{}, err
	}
	defer func() { _ = f.Close() }()

	rec, err := p.Parse(bufio.NewReader(f))
	if err != nil {
		return gattxml.Record{}, err
	}
	rec.Source = path
	return rec, nil
}
