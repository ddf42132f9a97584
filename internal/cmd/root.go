package cmd

import (
	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pipctl",
		Short:        "Mirror-aware pip front end",
		Long:         `A command line front end for pip: install, upgrade, and uninstall Python packages through a selectable mirror source.`,
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewInstallCmd(cfg, log))
	cmd.AddCommand(NewUpgradeCmd(cfg, log))
	cmd.AddCommand(NewUninstallCmd(cfg, log))
	cmd.AddCommand(NewSourcesCmd(cfg, log))
	cmd.AddCommand(NewHistoryCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd())
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
