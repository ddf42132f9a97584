package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewSourcesCmd creates the sources command
func NewSourcesCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List configured mirror sources",
		Long:  `List the mirror sources available to install and upgrade, in selection order. The first entry is the default.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cfg)
			if err != nil {
				ui.PrintError("invalid source configuration: %v", err)
				return fmt.Errorf("build source registry: %w", err)
			}

			defaultName := cfg.Sources.Default
			if defaultName == "" {
				defaultName = reg.Default().Name
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Name", "URL", ""}),
				tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, s := range reg.All() {
				marker := ""
				if s.Name == defaultName {
					marker = "default"
				}
				table.Append(s.Name, s.URL, marker)
			}

			table.Render()

			log.Debug().Int("count", reg.Len()).Msg("listed sources")
			return nil
		},
	}

	return cmd
}
