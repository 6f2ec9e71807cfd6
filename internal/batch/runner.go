// Package batch runs independent dynamicac problems concurrently.
//
// A single Engine is not safe for concurrent use, but nothing prevents
// running many independent Engines, each with its own variables and
// constraints, in parallel, e.g. when batch-checking a set of unrelated CSP
// instances for consistency. Runner provides a fixed-size worker pool for
// exactly that: no dynamic scaling, work stealing, or rate limiting,
// because batch jobs here are uniform, short, and CPU-bound.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrRunnerShutdown is returned by Submit after Shutdown has been called.
var ErrRunnerShutdown = errors.New("batch: runner has been shut down")

// Job is one unit of work: typically a closure that builds an Engine,
// applies a set of constraints, and reports whatever the caller needs
// (final domains, a Stats snapshot, a Dump string) through its own closure
// state.
type Job func()

// Runner is a fixed-size worker pool for running Jobs concurrently. It is
// safe for concurrent use: multiple goroutines may call Submit at once.
type Runner struct {
	workers      int
	taskChan     chan Job
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewRunner creates a Runner with the given number of workers. A
// non-positive count defaults to runtime.NumCPU().
func NewRunner(workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	r := &Runner{
		workers:      workers,
		taskChan:     make(chan Job, workers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		r.workerWg.Add(1)
		go r.worker()
	}

	return r
}

func (r *Runner) worker() {
	defer r.workerWg.Done()

	for {
		select {
		case job := <-r.taskChan:
			if job != nil {
				job()
			}
		case <-r.shutdownChan:
			return
		}
	}
}

// Submit enqueues job for execution by one of the pool's workers. It blocks
// until a worker can accept the job, ctx is done, or the runner has been
// shut down.
func (r *Runner) Submit(ctx context.Context, job Job) error {
	select {
	case <-r.shutdownChan:
		return ErrRunnerShutdown
	default:
	}

	select {
	case r.taskChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-r.shutdownChan:
		return ErrRunnerShutdown
	}
}

// RunAll submits every job and blocks until all of them have completed or
// ctx is cancelled. It is the common case: run a batch of independent
// Engine checks and wait for the results each job closure records for
// itself.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(jobs))

	for _, job := range jobs {
		job := job
		wg.Add(1)
		err := r.Submit(ctx, func() {
			defer wg.Done()
			job()
		})
		if err != nil {
			wg.Done()
			errs <- err
		}
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// WorkerCount returns the fixed number of workers in the pool.
func (r *Runner) WorkerCount() int {
	return r.workers
}

// QueueDepth returns the current number of jobs waiting to be picked up by a
// worker.
func (r *Runner) QueueDepth() int {
	return len(r.taskChan)
}

// Shutdown stops accepting new jobs and waits for in-flight workers to
// drain. It is safe to call more than once.
func (r *Runner) Shutdown() {
	r.once.Do(func() {
		close(r.shutdownChan)
		close(r.taskChan)
		r.workerWg.Wait()
	})
}
