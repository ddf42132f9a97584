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

// NewInstallCmd creates the install command
func NewInstallCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		srcName   string
		indexURL  string
		selectSrc bool
		wait      bool
	)

	cmd := &cobra.Command{
		Use:   "install [package]",
		Short: "Install a package",
		Long:  `Install a Python package with pip, pulling it from the selected mirror source.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			if err := ui.ValidateNonEmpty(pkg); err != nil {
				return fmt.Errorf("invalid package name: %w", err)
			}

			log.Info().
				Str("package", pkg).
				Str("source", srcName).
				Bool("wait", wait).
				Msg("starting install")

			reg, err := buildRegistry(cfg)
			if err != nil {
				ui.PrintError("invalid source configuration: %v", err)
				return fmt.Errorf("build source registry: %w", err)
			}

			name, url, err := selectSource(cfg, reg, srcName, indexURL, selectSrc)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}

			exe := pipExecutable(cfg)
			command := pip.Install(exe, pkg, url)

			ui.PrintInfo("Installing %s from %s", pkg, name)

			ctx := context.Background()
			run := runner.New(helpers.NewOSCommandRunner(), log)
			res, err := execute(ctx, run, command, wait, fmt.Sprintf("Installing %s", pkg))
			if errors.Is(err, runner.ErrBusy) {
				ui.PrintWarning("another operation is already running, try again once it finishes")
				return nil
			}
			if err != nil {
				return err
			}

			recordHistory(ctx, cfg, log, &history.Record{
				Operation: history.OpInstall,
				Package:   pkg,
				SourceURL: url,
				Success:   res.Success,
				Output:    res.Output,
			})

			if !res.Success {
				ui.PrintError("installation of %s failed", pkg)
				ui.PrintOutput(res.Output)
				log.Error().Str("package", pkg).Msg("install failed")
				return fmt.Errorf("installation failed")
			}

			ui.PrintSuccess("%s installed", pkg)
			ui.PrintOutput(res.Output)

			log.Info().
				Str("package", pkg).
				Str("source", name).
				Msg("install completed")

			return nil
		},
	}

	cmd.Flags().StringVarP(&srcName, "source", "s", "", "mirror source name (see 'pipctl sources')")
	cmd.Flags().StringVarP(&indexURL, "index-url", "i", "", "explicit index URL, bypassing the registry")
	cmd.Flags().BoolVar(&selectSrc, "select", false, "pick the mirror source interactively")
	cmd.Flags().BoolVar(&wait, "wait", false, "run synchronously without a spinner")

	return cmd
}
