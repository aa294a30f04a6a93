package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxxuzi/luka/internal/pathlist"
	"github.com/rxxuzi/luka/internal/style"
)

// pathCmd manages the shell search path. Flag parsing is disabled because
// the verbs themselves look like flags ("-l", "+=", "!").
var pathCmd = &cobra.Command{
	Use:   "path <command> [paths...]",
	Short: "Manage the shell search path",
	Long: `Manage the PATH list of the current shell session and, for persistent
operations, the profile file re-applied by future sessions.`,
	DisableFlagParsing: true,
	RunE:               runPath,
}

const pathUsage = `Usage:
  luka path <command> [paths...]

Commands:
  +=, add <path>...       Add to PATH for this session
  ++=, addp <path>...     Add to PATH and persist to the profile file
  -=, remove, del <path>...
                          Remove from PATH and the profile file
  !, dedup                Remove duplicate entries, keeping first occurrence
  list, -l                Show numbered PATH entries
  help, -h, ?             Show this help

One status line is printed per path processed, tagged [ADD], [SKIP],
[SAVE], [HAVE], [DEL], [NONE], [UNDO] or [ERROR].

Session changes need the wrapper from 'luka init' to reach your shell:
  eval "$(luka init bash)"
`

func printPathUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, pathUsage)
}

func runPath(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		printPathUsage(cmd.ErrOrStderr())
		return fmt.Errorf("%w: no command given", pathlist.ErrMissingArgument)
	}

	verb, paths := args[0], args[1:]

	switch verb {
	case "help", "--help", "-h", "?":
		printPathUsage(cmd.OutOrStdout())
		return nil

	case "list", "-l":
		return runPathList(cmd)

	case "+=", "add":
		return runPathAdd(cmd, verb, paths, false)

	case "++=", "addp":
		return runPathAdd(cmd, verb, paths, true)

	case "-=", "remove", "del":
		return runPathRemove(cmd, verb, paths)

	case "!", "dedup":
		return runPathDedup(cmd)

	default:
		PrintError("Unknown command: " + verb)
		printPathUsage(cmd.ErrOrStderr())
		return fmt.Errorf("%w: %q", pathlist.ErrUnknownCommand, verb)
	}
}

func runPathList(cmd *cobra.Command) error {
	mgr, err := newPathManager()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range mgr.List() {
		idx := style.Render(style.Index, fmt.Sprintf("%3d", i))
		_, _ = fmt.Fprintf(out, "%s  %s\n", idx, p)
	}
	return nil
}

func runPathAdd(cmd *cobra.Command, verb string, paths []string, persistent bool) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: %q needs at least one path", pathlist.ErrMissingArgument, verb)
	}

	mgr, err := newPathManager()
	if err != nil {
		return err
	}

	reports := mgr.Add(paths, persistent)
	return finishMutation(cmd, mgr, reports)
}

func runPathRemove(cmd *cobra.Command, verb string, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: %q needs at least one path", pathlist.ErrMissingArgument, verb)
	}

	mgr, err := newPathManager()
	if err != nil {
		return err
	}

	reports := mgr.Remove(paths)
	return finishMutation(cmd, mgr, reports)
}

func runPathDedup(cmd *cobra.Command) error {
	mgr, err := newPathManager()
	if err != nil {
		return err
	}

	if !mgr.Deduplicate() {
		PrintDim("no duplicates")
		return nil
	}

	PrintInfo(fmt.Sprintf("deduplicated, %s remain", Countf(mgr.Len(), "entry", "entries")))
	exportCurrent(cmd, mgr)
	return nil
}

// finishMutation prints the per-path reports, re-exports PATH when the
// list changed, and folds argument-level failures into the exit status.
func finishMutation(cmd *cobra.Command, mgr *pathlist.Manager, reports []pathlist.Report) error {
	failures := 0
	for _, r := range reports {
		PrintReport(r)
		if r.Failed() {
			failures++
		}
	}

	if mgr.Changed() {
		exportCurrent(cmd, mgr)
	}

	if failures > 0 {
		return fmt.Errorf("%s failed", Countf(failures, "path argument", "path arguments"))
	}
	return nil
}

// exportCurrent updates this process's environment and emits the export
// statement on stdout for the shell wrapper to eval.
func exportCurrent(cmd *cobra.Command, mgr *pathlist.Manager) {
	value := mgr.String()
	_ = os.Setenv("PATH", value)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), exportStatement(value))
}
