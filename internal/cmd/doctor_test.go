package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDoctorCmd_AllChecksPass(t *testing.T) {
	// "echo" stands in for pip so the executable check passes
	cfg := testConfig(t)
	log := zerolog.New(io.Discard)
	cmd := NewDoctorCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.NoError(t, err)
}

func TestDoctorCmd_MissingPip(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pip.Executable = "nonexistentcommand123"
	log := zerolog.New(io.Discard)
	cmd := NewDoctorCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "issue(s)")
}

func TestCheckDirectory(t *testing.T) {
	assert.True(t, checkDirectory(t.TempDir()))
	assert.False(t, checkDirectory("/proc/nonexistent/dir"))
}
