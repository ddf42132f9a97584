package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color scheme for pipctl
var (
	// Primary actions
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	// Secondary actions
	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)

	// Status indicators
	CheckMark = color.GreenString("✓")
	CrossMark = color.RedString("✗")
	Arrow     = color.CyanString("→")
	Bullet    = color.HiBlackString("•")

	// Operation colors
	OpInstall   = color.New(color.FgGreen)
	OpUpgrade   = color.New(color.FgCyan)
	OpUninstall = color.New(color.FgRed)
)

// InitColors initializes color settings based on environment
func InitColors() {
	// Respect NO_COLOR environment variable
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	// Respect TERM environment variable
	if os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(os.Stdout, "%s %s\n", CheckMark, fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(os.Stderr, "%s Error: %s\n", CrossMark, fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(os.Stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(os.Stdout, "%s %s\n", Arrow, fmt.Sprintf(format, args...))
}

// PrintOutput prints captured process output indented under the status line
func PrintOutput(output string) {
	if output == "" {
		return
	}
	Muted.Fprintln(os.Stdout, output)
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(os.Stdout)
	Bold.Fprintln(os.Stdout, text)
	Muted.Fprintln(os.Stdout, "────────────────────────────────────────")
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Fprintf(os.Stdout, "  %s %s\n", Bullet, item)
	}
}

// ColorizeOperation returns a colored operation name
func ColorizeOperation(op string) string {
	switch op {
	case "install":
		return OpInstall.Sprint(op)
	case "upgrade":
		return OpUpgrade.Sprint(op)
	case "uninstall":
		return OpUninstall.Sprint(op)
	default:
		return op
	}
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// EnableColors enables color output
func EnableColors() {
	color.NoColor = false
}
