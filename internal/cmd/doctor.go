package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/quantmind-br/pipctl/internal/helpers"
	"github.com/quantmind-br/pipctl/internal/history"
	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check pip availability and configuration",
		Long:  `Check that pip can be found, the mirror configuration is valid, and the data directories are usable.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintHeader("System Diagnostics")
			fmt.Println()

			var issues []string
			exec := helpers.NewOSCommandRunner()

			// 1. pip executable
			exe := pipExecutable(cfg)
			if err := exec.RequireCommand(exe); err != nil {
				ui.PrintError("pip executable: NOT FOUND (%s)", exe)
				issues = append(issues, fmt.Sprintf("pip executable %q not found in PATH", exe))
			} else {
				ui.PrintSuccess("pip executable: %s", exe)
			}

			// 2. Source registry
			reg, err := buildRegistry(cfg)
			if err != nil {
				ui.PrintError("source registry: INVALID (%v)", err)
				issues = append(issues, fmt.Sprintf("invalid source configuration: %v", err))
			} else {
				ui.PrintSuccess("source registry: %d sources, default %q", reg.Len(), reg.Default().Name)
			}

			// 3. Data directories
			for _, dir := range []string{cfg.Paths.DataDir, filepath.Dir(cfg.Paths.HistoryDB), filepath.Dir(cfg.Paths.LogFile)} {
				if checkDirectory(dir) {
					ui.PrintSuccess("directory writable: %s", dir)
				} else {
					ui.PrintError("directory NOT writable: %s", dir)
					issues = append(issues, fmt.Sprintf("directory not writable: %s", dir))
				}
			}

			// 4. History database
			ctx := context.Background()
			store, err := history.New(ctx, cfg.Paths.HistoryDB)
			if err != nil {
				ui.PrintError("history database: NOT ACCESSIBLE")
				issues = append(issues, fmt.Sprintf("cannot open history database: %v", err))
			} else {
				defer store.Close()
				if records, err := store.Recent(ctx, 1); err != nil {
					ui.PrintError("history database: NOT READABLE")
					issues = append(issues, fmt.Sprintf("cannot read history: %v", err))
				} else if len(records) == 0 {
					ui.PrintSuccess("history database: accessible (empty)")
				} else {
					ui.PrintSuccess("history database: accessible")
				}
			}

			fmt.Println()

			if len(issues) == 0 {
				ui.PrintSuccess("All checks passed!")
				return nil
			}

			ui.PrintError("Found %d issue(s):", len(issues))
			ui.PrintList(issues)

			log.Warn().Int("issues", len(issues)).Msg("doctor found problems")
			return fmt.Errorf("system check failed with %d issue(s)", len(issues))
		},
	}

	return cmd
}

// checkDirectory checks if a directory exists and is writable
func checkDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		// Try to create if it doesn't exist
		if os.IsNotExist(err) {
			return os.MkdirAll(path, 0755) == nil
		}
		return false
	}

	if !info.IsDir() {
		return false
	}

	// Check if writable
	testFile := filepath.Join(path, ".pipctl-test")
	if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
		return false
	}
	os.Remove(testFile)

	return true
}
