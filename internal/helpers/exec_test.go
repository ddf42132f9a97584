package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOSCommandRunner(t *testing.T) {
	runner := NewOSCommandRunner()

	t.Run("CommandExists", func(t *testing.T) {
		assert.True(t, runner.CommandExists("echo"))
		assert.False(t, runner.CommandExists("nonexistentcommand123"))
	})

	t.Run("CommandExists is cached", func(t *testing.T) {
		// Second lookup hits the cache and returns the same answer
		assert.True(t, runner.CommandExists("echo"))
		assert.True(t, runner.CommandExists("echo"))
	})

	t.Run("RequireCommand", func(t *testing.T) {
		err := runner.RequireCommand("echo")
		assert.NoError(t, err)

		err = runner.RequireCommand("nonexistentcommand123")
		assert.Error(t, err)
	})

	t.Run("RunCommandWithOutput", func(t *testing.T) {
		ctx := context.Background()
		stdout, stderr, err := runner.RunCommandWithOutput(ctx, "echo", "hello")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "hello")
		assert.Empty(t, stderr)
	})

	t.Run("RunCommandWithOutput spawn failure", func(t *testing.T) {
		ctx := context.Background()
		stdout, stderr, err := runner.RunCommandWithOutput(ctx, "nonexistentcommand123")
		assert.Error(t, err)
		assert.Empty(t, stdout)
		assert.Empty(t, stderr)
	})

	t.Run("RunCommandWithOutput timeout exceeded", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, _, err := runner.RunCommandWithOutput(ctx, "sleep", "5")
		assert.Error(t, err)
	})

	t.Run("GetExitCode", func(t *testing.T) {
		ctx := context.Background()
		_, _, err := runner.RunCommandWithOutput(ctx, "false")
		assert.Error(t, err)
		code := runner.GetExitCode(err)
		// Exit code for false is typically 1, but may vary
		assert.NotEqual(t, 0, code)
	})

	t.Run("GetExitCode nil error", func(t *testing.T) {
		assert.Equal(t, 0, runner.GetExitCode(nil))
	})

	t.Run("GetExitCode non-exit error", func(t *testing.T) {
		assert.Equal(t, -1, runner.GetExitCode(assert.AnError))
	})
}

func TestCommandRunnerInterface(_ *testing.T) {
	var _ CommandRunner = &OSCommandRunner{}
	var _ CommandRunner = &MockCommandRunner{}
}
