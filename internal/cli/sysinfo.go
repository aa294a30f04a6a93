package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxxuzi/luka/internal/kvfmt"
	"github.com/rxxuzi/luka/internal/sysinfo"
)

var sysinfoFormat string

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Show a snapshot of the local machine",
	Long: `Show host, CPU, memory, disk and network information for the local
machine. Probes that fail are skipped rather than aborting the report.`,
	Args: cobra.NoArgs,
	RunE: runSysinfo,
}

func init() {
	sysinfoCmd.Flags().StringVarP(&sysinfoFormat, "format", "f", "plain",
		"output format: plain, json, yaml, or csv")
}

func runSysinfo(cmd *cobra.Command, _ []string) error {
	data := sysinfo.Collect().Map()
	out := cmd.OutOrStdout()

	if sysinfoFormat == "plain" {
		for _, kv := range kvfmt.Flatten(data) {
			_, _ = fmt.Fprintf(out, "%s=%v\n", kv.Key, kv.Value)
		}
		return nil
	}

	rendered, err := kvfmt.Render(data, sysinfoFormat)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
