package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for relaxicons. The shell defaults to bash.

To load completions:

Bash:
  $ source <(relaxicons completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ relaxicons completion bash > /etc/bash_completion.d/relaxicons
  # macOS:
  $ relaxicons completion bash > $(brew --prefix)/etc/bash_completion.d/relaxicons

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ relaxicons completion zsh > "${fpath[1]}/_relaxicons"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ relaxicons completion fish | source

  # To load completions for each session, execute once:
  $ relaxicons completion fish > ~/.config/fish/completions/relaxicons.fish

PowerShell:
  PS> relaxicons completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> relaxicons completion powershell > relaxicons.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No argument means bash.
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			switch shell {
			case "zsh":
				return cmd.Root().GenZshCompletion(stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(stdout)
			}
			return cmd.Root().GenBashCompletionV2(stdout, true)
		},
	}

	return cmd
}
