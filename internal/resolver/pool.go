// Package resolver runs a bounded pool of workers over a queue of
// independent fetch/copy/unpack tasks, reporting aggregate progress and
// collecting every failure before the orchestrator decides whether to
// proceed.
package resolver

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task is one independent unit of work the pool executes. Implementations
// must be idempotent and must only touch files under their own declared
// target path.
type Task interface {
	// Label is a short human-readable description for progress reporting.
	Label() string
	// Run executes the task. It must be safe to call concurrently with
	// other tasks' Run methods.
	Run(ctx context.Context) error
}

// ProgressFunc is called at most once per task transition with the
// number of tasks completed so far, the total, and the task's label.
type ProgressFunc func(done, total int, label string)

// Pool runs tasks with bounded concurrency.
type Pool struct {
	// Workers is the number of concurrent workers; defaults to 4.
	Workers int
	OnProgress ProgressFunc
}

// New returns a Pool with the default worker count.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = 4
	}
	return &Pool{Workers: workers}
}

// TaskError pairs a failed task with its error, for the aggregated
// report returned by Run.
type TaskError struct {
	Label string
	Err   error
}

func (e *TaskError) Error() string { return e.Label + ": " + e.Err.Error() }

// AggregateError collects every task failure from one Run call.
type AggregateError struct {
	Errors []*TaskError
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := "multiple tasks failed:"
	for _, te := range e.Errors {
		msg += "\n  " + te.Error()
	}
	return msg
}

// Run executes every task with bounded concurrency, draining the full
// queue even after individual task failures, and returns an
// AggregateError (nil if every task succeeded) once all tasks have
// been attempted.
func (p *Pool) Run(ctx context.Context, tasks []Task) error {
	workers := p.Workers
	if workers <= 0 {
		workers = 4
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu     sync.Mutex
		failed []*TaskError
		done   int32
		total  = len(tasks)
	)

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			err := task.Run(gctx)
			if err != nil {
				mu.Lock()
				failed = append(failed, &TaskError{Label: task.Label(), Err: err})
				mu.Unlock()
			}
			n := atomic.AddInt32(&done, 1)
			if p.OnProgress != nil {
				p.OnProgress(int(n), total, task.Label())
			}
			// Returning nil keeps the group from cancelling gctx and
			// aborting sibling tasks on the first failure.
			return nil
		})
	}

	// errgroup.Wait only ever returns an error from a task func itself;
	// every task func above swallows its own error into `failed`.
	_ = g.Wait()

	if len(failed) == 0 {
		return nil
	}
	return &AggregateError{Errors: failed}
}
