// Package runner executes a list of generation jobs in order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bartekus/gattgen/internal/idgen"
)

// ErrUnknownJob is returned by RunList for an ID no job carries.
var ErrUnknownJob = errors.New("unknown job")

// Executor runs or checks a single job.
type Executor interface {
	Run(ctx context.Context, job idgen.Job) (idgen.Result, error)
	Check(ctx context.Context, job idgen.Job) (idgen.Result, error)
}

// Preflighter is implemented by executors that can reject a job list as a
// whole before any job runs.
type Preflighter interface {
	Preflight(ctx context.Context, jobs []idgen.Job) error
}

// Mode selects what the runner does with each job.
type Mode int

const (
	// ModeGenerate writes generated files and stops at the first failure.
	ModeGenerate Mode = iota
	// ModeCheck compares generated output with the files on disk and
	// reports every stale job before failing.
	ModeCheck
)

// Runner manages the execution of jobs.
type Runner struct {
	exec Executor
	jobs []idgen.Job
	mode Mode
	out  io.Writer
}

// NewRunner creates a new runner. Progress lines go to out.
func NewRunner(exec Executor, jobs []idgen.Job, mode Mode, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{
		exec: exec,
		jobs: jobs,
		mode: mode,
		out:  out,
	}
}

// RunAll executes all jobs in order.
func (r *Runner) RunAll(ctx context.Context) (Summary, error) {
	return r.executeSequence(ctx, r.jobs)
}

// RunList executes the jobs with the given IDs, in the order given.
func (r *Runner) RunList(ctx context.Context, ids []string) (Summary, error) {
	var toRun []idgen.Job
	for _, id := range ids {
		job, ok := r.findJob(id)
		if !ok {
			return Summary{}, fmt.Errorf("%w: %s", ErrUnknownJob, id)
		}
		toRun = append(toRun, job)
	}
	return r.executeSequence(ctx, toRun)
}

func (r *Runner) findJob(id string) (idgen.Job, bool) {
	for _, j := range r.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return idgen.Job{}, false
}

// executeSequence runs jobs one after another. Any failure other than a
// stale file aborts the sequence; in ModeCheck stale jobs are collected.
func (r *Runner) executeSequence(ctx context.Context, jobs []idgen.Job) (Summary, error) {
	summary := Summary{Status: "pass"}

	if p, ok := r.exec.(Preflighter); ok {
		if err := p.Preflight(ctx, jobs); err != nil {
			summary.Status = "fail"
			_, _ = fmt.Fprintf(r.out, "%s: %v\n", StatusFail, err)
			return summary, err
		}
	}

	var firstErr error
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := r.execute(ctx, job)
		jr := JobResult{Job: job.ID, Path: res.Path, Members: res.Members}

		switch {
		case err == nil && r.mode == ModeCheck:
			jr.Status = StatusCurrent
		case err == nil && res.Written:
			jr.Status = StatusWritten
		case err == nil:
			jr.Status = StatusUnchanged
		case errors.Is(err, idgen.ErrStale):
			jr.Status = StatusStale
			jr.Note = err.Error()
		default:
			jr.Status = StatusFail
			jr.Note = err.Error()
		}
		summary.Jobs = append(summary.Jobs, jr)
		r.report(jr)

		if err == nil {
			continue
		}
		summary.Status = "fail"
		summary.Failed = append(summary.Failed, job.ID)
		if jr.Status != StatusStale {
			return summary, fmt.Errorf("job %s: %w", job.ID, err)
		}
		if firstErr == nil {
			firstErr = fmt.Errorf("job %s: %w", job.ID, err)
		}
	}

	return summary, firstErr
}

func (r *Runner) execute(ctx context.Context, job idgen.Job) (idgen.Result, error) {
	if r.mode == ModeCheck {
		return r.exec.Check(ctx, job)
	}
	return r.exec.Run(ctx, job)
}

func (r *Runner) report(jr JobResult) {
	switch jr.Status {
	case StatusFail, StatusStale:
		_, _ = fmt.Fprintf(r.out, "%s: %s (%s)\n", jr.Status, jr.Job, jr.Note)
	default:
		_, _ = fmt.Fprintf(r.out, "%s: %s -> %s (%d members)\n", jr.Status, jr.Job, jr.Path, jr.Members)
	}
}
