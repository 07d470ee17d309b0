// SPDX-License-Identifier: AGPL-3.0-or-later

// Package idgen runs one generation job: collect records, derive constant
// names and identifiers, render the enumeration and write it.
package idgen

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bartekus/gattgen/internal/collect"
	"github.com/bartekus/gattgen/internal/emit"
	"github.com/bartekus/gattgen/internal/gattxml"
	"github.com/bartekus/gattgen/internal/identifier"
	"github.com/bartekus/gattgen/internal/naming"
	"github.com/bartekus/gattgen/internal/projection"
)

var (
	// ErrInvalidJob is returned when a job definition is incomplete or malformed.
	ErrInvalidJob = errors.New("invalid job")

	// ErrWrite is returned when the generated file cannot be written.
	ErrWrite = errors.New("writing generated file")

	// ErrStale is returned by Check when the file on disk differs from what
	// would be generated.
	ErrStale = errors.New("generated file is out of date")

	// ErrNameClash is returned by Preflight when jobs writing one package
	// would produce files that do not compile together.
	ErrNameClash = errors.New("generated declarations clash")
)

// Job is the full parameter set of one generation run.
type Job struct {
	ID        string
	Kind      gattxml.Kind
	Input     string
	TypeName  string // fully qualified, e.g. "github.com/acme/ble/gatt.Service"
	OutputDir string

	// MemberPrefix is prepended to every constant name before deduplication.
	MemberPrefix string

	// Strict rejects short identifiers that do not expand to a valid UUID.
	// Without it malformed codes are emitted as is.
	Strict bool

	IncludeExtensions []string
}

// Validate checks that j can be run.
func (j Job) Validate() error {
	if j.Input == "" {
		return fmt.Errorf("%w %s: input path is required", ErrInvalidJob, j.label())
	}
	if j.OutputDir == "" {
		return fmt.Errorf("%w %s: output directory is required", ErrInvalidJob, j.label())
	}
	if _, err := gattxml.ParserFor(j.Kind); err != nil {
		return fmt.Errorf("%w %s: %v", ErrInvalidJob, j.label(), err)
	}
	if _, _, err := emit.ParseTypeName(j.TypeName); err != nil {
		return fmt.Errorf("%w %s: %v", ErrInvalidJob, j.label(), err)
	}
	if j.MemberPrefix != "" && !token.IsIdentifier(j.MemberPrefix) {
		return fmt.Errorf("%w %s: member prefix %q is not a Go identifier", ErrInvalidJob, j.label(), j.MemberPrefix)
	}
	return nil
}

// OutputPath is the file the job writes.
func (j Job) OutputPath() (string, error) {
	_, typeName, err := emit.ParseTypeName(j.TypeName)
	if err != nil {
		return "", err
	}
	return filepath.Join(j.OutputDir, emit.FileName(typeName)), nil
}

func (j Job) label() string {
	if j.ID != "" {
		return j.ID
	}
	return string(j.Kind)
}

// Result describes a finished job.
type Result struct {
	Job     string
	Path    string
	Members int

	// Written is false when the file on disk already matched.
	Written bool
}

// Generator executes jobs. The zero value is ready to use.
type Generator struct {
	Log *zap.Logger

	// Parser overrides the parser selected from the job kind.
	Parser gattxml.Parser
}

func (g *Generator) logger() *zap.Logger {
	if g.Log == nil {
		return zap.NewNop()
	}
	return g.Log
}

// Plan builds the enumeration model for job without writing anything.
func (g *Generator) Plan(ctx context.Context, job Job) (emit.Enum, error) {
	if err := job.Validate(); err != nil {
		return emit.Enum{}, err
	}
	pkg, typeName, _ := emit.ParseTypeName(job.TypeName)

	parser := g.Parser
	if parser == nil {
		parser, _ = gattxml.ParserFor(job.Kind)
	}

	log := g.logger().With(zap.String("job", job.label()))
	records, err := collect.Collect(job.Input, parser, collect.Options{
		Filter: collect.FilterOptions{IncludeExtensions: job.IncludeExtensions},
		Log:    log,
	})
	if err != nil {
		return emit.Enum{}, err
	}
	if err := ctx.Err(); err != nil {
		return emit.Enum{}, err
	}

	namer := naming.NewNamer(job.MemberPrefix)
	members := make([]emit.Member, 0, len(records))
	for _, rec := range records {
		if job.Strict {
			if err := identifier.Validate(rec.ShortCode); err != nil {
				return emit.Enum{}, fmt.Errorf("%s: %w", rec.Source, err)
			}
		}

		m := emit.Member{
			Constant:    namer.Next(rec.Name),
			Name:        rec.Name,
			ShortCode:   rec.ShortCode,
			UUIDString:  identifier.Expand(rec.ShortCode),
			Description: rec.Description,
		}
		if identifier.Parse(m.UUIDString) == uuid.Nil {
			log.Warn("Short identifier does not expand to a valid UUID",
				zap.String("name", m.Name),
				zap.String("short", m.ShortCode),
				zap.String("source", rec.Source))
		}
		log.Debug("Mapped record",
			zap.String("name", m.Name),
			zap.String("short", m.ShortCode),
			zap.String("constant", m.Constant),
			zap.String("uuid", m.UUIDString))
		members = append(members, m)
	}

	return emit.Enum{
		Package:  pkg,
		TypeName: typeName,
		Kind:     job.Kind,
		Members:  members,
	}, nil
}

// Render plans job and returns the output path with the generated source.
func (g *Generator) Render(ctx context.Context, job Job) (string, emit.Enum, []byte, error) {
	enum, err := g.Plan(ctx, job)
	if err != nil {
		return "", emit.Enum{}, nil, err
	}
	src, err := emit.Render(enum)
	if err != nil {
		return "", emit.Enum{}, nil, err
	}
	path, err := job.OutputPath()
	if err != nil {
		return "", emit.Enum{}, nil, err
	}
	return path, enum, src, nil
}

// Run generates the job's file. The file is replaced atomically and left
// untouched when its content would not change.
func (g *Generator) Run(ctx context.Context, job Job) (Result, error) {
	path, enum, src, err := g.Render(ctx, job)
	if err != nil {
		return Result{}, err
	}
	res := Result{Job: job.label(), Path: path, Members: len(enum.Members)}

	same, err := projection.Unchanged(path, src)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if !same {
		if err := projection.AtomicWrite(path, src); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrWrite, err)
		}
		res.Written = true
	}

	g.logger().Info("Generated enumeration",
		zap.String("job", res.Job),
		zap.String("path", path),
		zap.Int("members", res.Members),
		zap.Bool("written", res.Written))
	return res, nil
}

// Check renders the job and compares it with the file on disk.
func (g *Generator) Check(ctx context.Context, job Job) (Result, error) {
	path, enum, src, err := g.Render(ctx, job)
	if err != nil {
		return Result{}, err
	}
	res := Result{Job: job.label(), Path: path, Members: len(enum.Members)}

	same, err := projection.Unchanged(path, src)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if !same {
		return res, fmt.Errorf("%w: %s", ErrStale, path)
	}
	return res, nil
}

// Preflight plans every job and rejects sets whose outputs share a directory
// but cannot compile as one package: differing package names, two jobs
// writing one file, or one identifier declared twice. Nothing is written.
func (g *Generator) Preflight(ctx context.Context, jobs []Job) error {
	type owner struct {
		job string
		pkg string
	}
	packages := make(map[string]owner)
	files := make(map[string]string)
	declared := make(map[string]map[string]string)

	for _, job := range jobs {
		enum, err := g.Plan(ctx, job)
		if err != nil {
			return err
		}
		label := job.label()
		dir := filepath.Clean(job.OutputDir)

		if first, ok := packages[dir]; !ok {
			packages[dir] = owner{job: label, pkg: enum.Package}
		} else if first.pkg != enum.Package {
			return fmt.Errorf("%w: jobs %s and %s write package %q and %q into %s",
				ErrNameClash, first.job, label, first.pkg, enum.Package, dir)
		}

		path, _ := job.OutputPath()
		if other, ok := files[path]; ok {
			return fmt.Errorf("%w: jobs %s and %s both write %s", ErrNameClash, other, label, path)
		}
		files[path] = label

		names := declared[dir]
		if names == nil {
			names = make(map[string]string)
			declared[dir] = names
		}
		for _, name := range enum.Declared() {
			other, ok := names[name]
			switch {
			case !ok:
				names[name] = label
			case other == label:
				return fmt.Errorf("%w: job %s declares %s twice in %s; set a member prefix",
					ErrNameClash, label, name, dir)
			default:
				return fmt.Errorf("%w: %s is declared by jobs %s and %s in %s; set a distinct prefix for one of them",
					ErrNameClash, name, other, label, dir)
			}
		}
	}
	return nil
}
