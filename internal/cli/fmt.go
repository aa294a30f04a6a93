package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxxuzi/luka/internal/kvfmt"
)

var fmtFormat string

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Convert key=value lines from stdin",
	Long: `Read key=value lines from stdin and print them as JSON, YAML or CSV.
Dotted keys nest ("server.port=8080"), quoted values keep their text,
and bare numbers become numbers.`,
	Args: cobra.NoArgs,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtFormat, "format", "f", kvfmt.FormatJSON,
		"output format: json, yaml, or csv")
}

func runFmt(cmd *cobra.Command, _ []string) error {
	data, err := kvfmt.Parse(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to parse input: %w", err)
	}

	rendered, err := kvfmt.Render(data, fmtFormat)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
