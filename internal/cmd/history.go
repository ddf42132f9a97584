package cmd

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/pipctl/internal/config"
	"github.com/quantmind-br/pipctl/internal/history"
	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent operations",
		Long:  `Show the most recent install, upgrade, and uninstall operations and whether they succeeded.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			store, err := history.New(ctx, cfg.Paths.HistoryDB)
			if err != nil {
				ui.PrintError("cannot open history database: %v", err)
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(ctx, limit)
			if err != nil {
				ui.PrintError("cannot read history: %v", err)
				return fmt.Errorf("read history: %w", err)
			}

			if len(records) == 0 {
				ui.PrintInfo("no operations recorded yet")
				return nil
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"When", "Operation", "Package", "Source", "Result"}),
				tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, rec := range records {
				result := ui.CrossMark
				if rec.Success {
					result = ui.CheckMark
				}
				source := rec.SourceURL
				if source == "" {
					source = "-"
				}
				table.Append(
					rec.CreatedAt.Local().Format("2006-01-02 15:04"),
					ui.ColorizeOperation(rec.Operation),
					rec.Package,
					source,
					result,
				)
			}

			table.Render()

			log.Debug().Int("count", len(records)).Msg("listed history")
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of records to show")

	return cmd
}
