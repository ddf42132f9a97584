package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// CommandRunner defines an interface for executing system commands
// This allows for mocking in tests and dependency injection
type CommandRunner interface {
	// CommandExists checks if a command is available in PATH
	CommandExists(name string) bool

	// RequireCommand ensures a command exists or returns error
	RequireCommand(name string) error

	// RunCommandWithOutput runs a command and returns both stdout and stderr
	RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	commandCache sync.Map // map[string]bool
}

// NewOSCommandRunner creates a new OSCommandRunner instance
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// CommandExists checks if a command is available in PATH
func (r *OSCommandRunner) CommandExists(name string) bool {
	if cached, ok := r.commandCache.Load(name); ok {
		if exists, ok := cached.(bool); ok {
			return exists
		}
		r.commandCache.Delete(name)
	}

	_, err := exec.LookPath(name)
	exists := err == nil
	r.commandCache.Store(name, exists)
	return exists
}

// RequireCommand ensures a command exists or returns error
func (r *OSCommandRunner) RequireCommand(name string) error {
	if !r.CommandExists(name) {
		return fmt.Errorf("required command %q not found in PATH", name)
	}
	return nil
}

// RunCommandWithOutput runs a command and returns both stdout and stderr
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		err = fmt.Errorf("command %q failed: %w", name, err)
	}

	return stdout, stderr, err
}

// GetExitCode extracts the exit code from a command error
func (r *OSCommandRunner) GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
