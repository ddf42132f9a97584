package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/quantmind-br/pipctl/internal/history"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpgradeCmd(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	log := zerolog.New(io.Discard)

	cmd := NewUpgradeCmd(cfg, &log)

	assert.NotNil(t, cmd)
	assert.Equal(t, "upgrade [package]", cmd.Use)

	// Upgrade carries the same source flags as install
	assert.NotNil(t, cmd.Flags().Lookup("source"))
	assert.NotNil(t, cmd.Flags().Lookup("index-url"))
	assert.NotNil(t, cmd.Flags().Lookup("select"))
}

func TestUpgradeCmd_Success(t *testing.T) {
	cfg := testConfig(t)
	log := zerolog.New(io.Discard)
	cmd := NewUpgradeCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--wait", "--source", "tuna", "requests"})
	err := cmd.Execute()
	assert.NoError(t, err)

	ctx := context.Background()
	store, err := history.New(ctx, cfg.Paths.HistoryDB)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, history.OpUpgrade, records[0].Operation)
	assert.Equal(t, "https://pypi.tuna.tsinghua.edu.cn/simple", records[0].SourceURL)
}

func TestUpgradeCmd_UnknownSource(t *testing.T) {
	cfg := testConfig(t)
	log := zerolog.New(io.Discard)
	cmd := NewUpgradeCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--wait", "--source", "not-a-mirror", "requests"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown source")
}

func TestUpgradeCmd_Failure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Pip.Executable = "false"
	log := zerolog.New(io.Discard)
	cmd := NewUpgradeCmd(cfg, &log)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	cmd.SetArgs([]string{"--wait", "requests"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "upgrade failed")
}
