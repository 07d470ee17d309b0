// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads gattgen job definitions from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/gattgen/internal/gattxml"
	"github.com/bartekus/gattgen/internal/idgen"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "gattgen.yaml"

// ErrInvalid is returned when a config file fails validation.
var ErrInvalid = errors.New("invalid config")

// JobSpec is one entry of the jobs list.
type JobSpec struct {
	ID         string   `yaml:"id"`
	Kind       string   `yaml:"kind"`
	Input      string   `yaml:"input"`
	Type       string   `yaml:"type"`
	Output     string   `yaml:"output"`
	Prefix     string   `yaml:"prefix,omitempty"`
	Strict     bool     `yaml:"strict,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
}

// Config is the top-level shape of gattgen.yaml.
type Config struct {
	Jobs []JobSpec `yaml:"jobs"`

	// dir anchors relative paths; empty means the working directory.
	dir string
}

// Default mirrors the build plugin layout: services and characteristics
// read from src/main and written to build/generated.
func Default() *Config {
	return &Config{Jobs: []JobSpec{
		{
			ID:     "services",
			Kind:   string(gattxml.KindService),
			Input:  "src/main/services",
			Type:   "gatt.Service",
			Output: "build/generated/gatt",
		},
		{
			ID:     "characteristics",
			Kind:   string(gattxml.KindCharacteristic),
			Input:  "src/main/characteristics",
			Type:   "gatt.Characteristic",
			Output: "build/generated/gatt",
		},
	}}
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path is user supplied by design
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config YAML: %v", ErrInvalid, err)
	}
	cfg.dir = filepath.Dir(path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields, kinds, type names and duplicate IDs.
func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return fmt.Errorf("%w: no jobs defined", ErrInvalid)
	}

	seenIDs := make(map[string]bool)
	for i, spec := range c.Jobs {
		if spec.ID == "" {
			return fmt.Errorf("%w: job at index %d missing id", ErrInvalid, i)
		}
		if seenIDs[spec.ID] {
			return fmt.Errorf("%w: duplicate job id: %s", ErrInvalid, spec.ID)
		}
		seenIDs[spec.ID] = true

		job, err := c.job(spec)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if err := job.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	return nil
}

// ResolvedJobs converts the specs into runnable jobs with resolved paths.
func (c *Config) ResolvedJobs() ([]idgen.Job, error) {
	jobs := make([]idgen.Job, 0, len(c.Jobs))
	for _, spec := range c.Jobs {
		job, err := c.job(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (c *Config) job(spec JobSpec) (idgen.Job, error) {
	kind, err := gattxml.ParseKind(spec.Kind)
	if err != nil {
		return idgen.Job{}, fmt.Errorf("job %s: %w", spec.ID, err)
	}
	return idgen.Job{
		ID:                spec.ID,
		Kind:              kind,
		Input:             c.resolve(spec.Input),
		TypeName:          spec.Type,
		OutputDir:         c.resolve(spec.Output),
		MemberPrefix:      spec.Prefix,
		Strict:            spec.Strict,
		IncludeExtensions: spec.Extensions,
	}, nil
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}
