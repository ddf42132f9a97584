package cmd

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()
	logger := zerolog.New(io.Discard)
	cfg := testConfig(t)

	cmd := NewRootCmd(cfg, &logger, "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "pipctl", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"install", "upgrade", "uninstall", "sources", "history", "doctor", "completion", "version"} {
		assert.Contains(t, names, want)
	}
}
