package cmd

import (
	"os"

	"github.com/quantmind-br/pipctl/internal/ui"
	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion command
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pipctl.

To load completions:

Bash:
  $ source <(pipctl completion bash)

Zsh:
  $ pipctl completion zsh > "${fpath[1]}/_pipctl"

Fish:
  $ pipctl completion fish | source

PowerShell:
  PS> pipctl completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(os.Stdout); err != nil {
					ui.PrintError("Failed to generate bash completion: %v", err)
					return err
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(os.Stdout); err != nil {
					ui.PrintError("Failed to generate zsh completion: %v", err)
					return err
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(os.Stdout, true); err != nil {
					ui.PrintError("Failed to generate fish completion: %v", err)
					return err
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout); err != nil {
					ui.PrintError("Failed to generate powershell completion: %v", err)
					return err
				}
			}

			return nil
		},
	}

	return cmd
}
