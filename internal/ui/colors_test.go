package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorizeOperation(t *testing.T) {
	// Force colors off so Sprint output is the plain string
	DisableColors()
	defer EnableColors()

	tests := []struct {
		op   string
		want string
	}{
		{"install", "install"},
		{"upgrade", "upgrade"},
		{"uninstall", "uninstall"},
		{"unknown-op", "unknown-op"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorizeOperation(tt.op))
		})
	}
}

func TestInitColors(t *testing.T) {
	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		original := color.NoColor
		defer func() { color.NoColor = original }()

		t.Setenv("NO_COLOR", "1")
		InitColors()
		assert.True(t, color.NoColor)
	})

	t.Run("dumb terminal disables colors", func(t *testing.T) {
		original := color.NoColor
		defer func() { color.NoColor = original }()

		t.Setenv("NO_COLOR", "")
		t.Setenv("TERM", "dumb")
		InitColors()
		assert.True(t, color.NoColor)
	})
}

func TestPrintFunctionsDoNotPanic(t *testing.T) {
	DisableColors()
	defer EnableColors()

	assert.NotPanics(t, func() {
		PrintSuccess("installed %s", "requests")
		PrintError("failed %s", "requests")
		PrintWarning("busy")
		PrintInfo("resolving %s", "tuna")
		PrintOutput("Successfully installed requests")
		PrintOutput("")
		PrintHeader("Sources")
		PrintList([]string{"pypi", "tuna"})
	})
}
