package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxxuzi/luka/internal/shell"
)

var initCmd = &cobra.Command{
	Use:   "init [shell]",
	Short: "Print the shell integration snippet",
	Long: fmt.Sprintf(`Print the wrapper function that makes path changes take effect in the
calling shell. Add one of these to your startup file:

  %s
  %s
  %s`,
		shell.EvalHint("bash"), shell.EvalHint("zsh"), shell.EvalHint("fish")),
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	if !shell.Supported(name) {
		return fmt.Errorf("unsupported shell: %q (use bash, zsh, or fish)", name)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), shell.InitSnippet(name))
	return nil
}
