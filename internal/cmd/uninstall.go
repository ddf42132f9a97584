package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/quantmind-br/pipctl/internal/helpers"
	"github.com/quantmind-br/pipctl/internal/history"
	"github.com/quantmind-br/pipctl/internal/pip"
	"github.com/quantmind-br/pipctl/internal/runner"
	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command. Uninstalling never
// contacts a mirror, so no source flags exist here.
func NewUninstallCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		yes  bool
		wait bool
	)

	cmd := &cobra.Command{
		Use:   "uninstall [package]",
		Short: "Uninstall a package",
		Long:  `Uninstall a Python package with pip.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			if err := ui.ValidateNonEmpty(pkg); err != nil {
				return fmt.Errorf("invalid package name: %w", err)
			}

			if !yes {
				confirmed, err := ui.ConfirmPrompt(fmt.Sprintf("Uninstall %s", pkg))
				if err != nil || !confirmed {
					ui.PrintWarning("uninstall cancelled")
					return nil
				}
			}

			log.Info().
				Str("package", pkg).
				Bool("wait", wait).
				Msg("starting uninstall")

			exe := pipExecutable(cfg)
			command := pip.Uninstall(exe, pkg)

			ui.PrintInfo("Uninstalling %s", pkg)

			ctx := context.Background()
			run := runner.New(helpers.NewOSCommandRunner(), log)
			res, err := execute(ctx, run, command, wait, fmt.Sprintf("Uninstalling %s", pkg))
			if errors.Is(err, runner.ErrBusy) {
				ui.PrintWarning("another operation is already running, try again once it finishes")
				return nil
			}
			if err != nil {
				return err
			}

			recordHistory(ctx, cfg, log, &history.Record{
				Operation: history.OpUninstall,
				Package:   pkg,
				Success:   res.Success,
				Output:    res.Output,
			})

			if !res.Success {
				ui.PrintError("uninstall of %s failed", pkg)
				ui.PrintOutput(res.Output)
				log.Error().Str("package", pkg).Msg("uninstall failed")
				return fmt.Errorf("uninstall failed")
			}

			ui.PrintSuccess("%s uninstalled", pkg)
			ui.PrintOutput(res.Output)

			log.Info().Str("package", pkg).Msg("uninstall completed")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&wait, "wait", false, "run synchronously without a spinner")

	return cmd
}
