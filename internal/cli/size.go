package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rxxuzi/luka/internal/config"
	"github.com/rxxuzi/luka/internal/sizer"
	"github.com/rxxuzi/luka/internal/style"
)

var sizeOpts struct {
	recursive bool
	depth     int
	threshold string
	hidden    bool
	ignore    []string
	filter    []string
	long      bool
}

var sizeCmd = &cobra.Command{
	Use:   "size [directory]",
	Short: "Summarize disk usage under a directory",
	Long: `Summarize disk usage under a directory, largest entries first.
Directory sizes are recursive totals. Symlinks are never followed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSize,
}

func init() {
	f := sizeCmd.Flags()
	f.BoolVarP(&sizeOpts.recursive, "recursive", "r", false, "descend without a depth limit")
	f.IntVarP(&sizeOpts.depth, "depth", "d", 0, "directory levels to report (default from config)")
	f.StringVarP(&sizeOpts.threshold, "size", "s", "", "minimum size to report, e.g. 10M (default from config)")
	f.BoolVarP(&sizeOpts.hidden, "all", "a", false, "include hidden files and directories")
	f.StringSliceVarP(&sizeOpts.ignore, "ignore", "i", nil, "glob patterns to exclude, subtrees included")
	f.StringSliceVarP(&sizeOpts.filter, "filter", "f", nil, "glob patterns files must match to be reported")
	f.BoolVar(&sizeOpts.long, "long", false, "show mode and modification time columns")
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	depth := sizeOpts.depth
	if depth <= 0 {
		depth = cfg.Size.Depth
	}
	thresholdSpec := sizeOpts.threshold
	if thresholdSpec == "" {
		thresholdSpec = cfg.Size.Threshold
	}
	threshold, err := sizer.ParseSize(thresholdSpec)
	if err != nil {
		return fmt.Errorf("invalid size threshold: %w", err)
	}

	items, err := sizer.Scan(root, sizer.Options{
		Depth:     depth,
		Recursive: sizeOpts.recursive,
		Hidden:    sizeOpts.hidden,
		Threshold: threshold,
		Ignore:    sizeOpts.ignore,
		Filter:    sizeOpts.filter,
	})
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}

	out := cmd.OutOrStdout()
	var total int64
	for _, it := range items {
		total += it.Size

		name, err := filepath.Rel(root, it.Path)
		if err != nil {
			name = it.Path
		}
		if it.IsDir {
			name = style.Render(style.Dir, name+"/")
		}

		size := fmt.Sprintf("%8s", sizer.FormatSize(it.Size))
		if sizeOpts.long {
			_, _ = fmt.Fprintf(out, "%s  %s  %s  %s\n",
				size, it.Mode, it.ModTime.Format("2006-01-02 15:04"), name)
		} else {
			_, _ = fmt.Fprintf(out, "%s  %s\n", size, name)
		}
	}

	_, _ = fmt.Fprintf(out, "%s  %s in %s\n",
		fmt.Sprintf("%8s", sizer.FormatSize(total)),
		style.Render(style.Header, "total"),
		Countf(len(items), "item", "items"))
	return nil
}
