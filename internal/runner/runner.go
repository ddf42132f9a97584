// Package runner executes pip commands and normalizes their outcome.
//
// A Runner owns a single in-flight slot: at most one asynchronous task
// runs at a time, and a second request while one is active is rejected
// with ErrBusy rather than queued.
package runner

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/quantmind-br/pipctl/internal/helpers"
	"github.com/quantmind-br/pipctl/internal/pip"
	"github.com/rs/zerolog"
)

// ErrBusy is returned by RunAsync when a task is already in flight.
// The rejected command is never spawned.
var ErrBusy = errors.New("another operation is already running")

// Result is the normalized outcome of one command execution.
// Output carries captured stdout on success and captured stderr (or a
// descriptive spawn-failure message) on failure.
type Result struct {
	Success bool
	Output  string
}

// Runner executes pip commands through a CommandRunner.
type Runner struct {
	exec helpers.CommandRunner
	log  *zerolog.Logger
	busy atomic.Bool
}

// New creates a Runner that spawns processes via exec.
func New(exec helpers.CommandRunner, log *zerolog.Logger) *Runner {
	return &Runner{exec: exec, log: log}
}

// Busy reports whether an asynchronous task is currently in flight.
func (r *Runner) Busy() bool {
	return r.busy.Load()
}

// Run executes cmd synchronously, blocking the caller until the process
// finishes. A non-zero exit or a spawn failure is recovered into a
// failed Result, never propagated as an error.
func (r *Runner) Run(ctx context.Context, cmd pip.Command) Result {
	r.log.Debug().
		Str("executable", cmd.Executable()).
		Strs("args", cmd.Args()).
		Msg("spawning command")

	stdout, stderr, err := r.exec.RunCommandWithOutput(ctx, cmd.Executable(), cmd.Args()...)
	res := normalize(stdout, stderr, err)

	r.log.Debug().
		Bool("success", res.Success).
		Int("exit_code", r.exec.GetExitCode(err)).
		Msg("command finished")

	return res
}

// RunAsync executes cmd on its own goroutine and delivers exactly one
// Result on the returned channel. If a task is already in flight the
// call returns ErrBusy immediately and nothing is spawned or delivered.
//
// The in-flight slot frees as soon as the result is ready, before the
// channel send, so a follow-up RunAsync is accepted once the previous
// task has completed even if its result has not been received yet.
// Completion handling runs on whichever goroutine receives from the
// channel. There is no timeout or cancellation beyond ctx: a hung
// process keeps the slot occupied until it exits or ctx fires.
func (r *Runner) RunAsync(ctx context.Context, cmd pip.Command) (<-chan Result, error) {
	if !r.busy.CompareAndSwap(false, true) {
		r.log.Warn().
			Str("executable", cmd.Executable()).
			Msg("rejected command: task already in flight")
		return nil, ErrBusy
	}

	ch := make(chan Result, 1)
	go func() {
		res := r.Run(ctx, cmd)
		r.busy.Store(false)
		ch <- res
	}()

	return ch, nil
}

// normalize maps raw process output onto a Result. Success means the
// process spawned and exited zero; otherwise Output prefers the error
// stream and falls back to the execution error text when the process
// never produced diagnostics (e.g. the executable is missing).
func normalize(stdout, stderr string, err error) Result {
	if err == nil {
		return Result{Success: true, Output: stdout}
	}

	output := stderr
	if strings.TrimSpace(output) == "" {
		output = err.Error()
	}
	return Result{Success: false, Output: output}
}
