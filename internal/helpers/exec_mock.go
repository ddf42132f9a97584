package helpers

import (
	"context"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	CommandExistsFunc        func(name string) bool
	RequireCommandFunc       func(name string) error
	RunCommandWithOutputFunc func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	GetExitCodeFunc          func(err error) int
}

// CommandExists implements CommandRunner.CommandExists
func (m *MockCommandRunner) CommandExists(name string) bool {
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// RequireCommand implements CommandRunner.RequireCommand
func (m *MockCommandRunner) RequireCommand(name string) error {
	if m.RequireCommandFunc != nil {
		return m.RequireCommandFunc(name)
	}
	return nil
}

// RunCommandWithOutput implements CommandRunner.RunCommandWithOutput
func (m *MockCommandRunner) RunCommandWithOutput(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	if m.RunCommandWithOutputFunc != nil {
		return m.RunCommandWithOutputFunc(ctx, name, args...)
	}
	return "", "", nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	return 0
}
