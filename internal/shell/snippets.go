// Package shell emits the shell-integration snippets that make PATH
// mutations take effect in the calling session.
//
// A child process cannot modify its parent shell's environment, so the
// path command prints the updated export statement on stdout and leaves
// status lines on stderr. The snippet installs a wrapper function that
// evals that stdout, which is the standard trick for tools of this kind.
package shell

import "fmt"

// InitSnippet returns the integration snippet for the named shell. The
// default covers bash and zsh; fish gets its own syntax.
func InitSnippet(shell string) string {
	switch shell {
	case "fish":
		return fishSnippet
	default:
		return posixSnippet
	}
}

// Supported reports whether a snippet exists for the named shell.
func Supported(shell string) bool {
	switch shell {
	case "", "bash", "zsh", "fish":
		return true
	default:
		return false
	}
}

// EvalHint returns the line users add to their profile to install the
// wrapper for the named shell.
func EvalHint(shell string) string {
	if shell == "fish" {
		return `luka init fish | source`
	}
	return fmt.Sprintf(`eval "$(luka init %s)"`, orBash(shell))
}

func orBash(shell string) string {
	if shell == "" {
		return "bash"
	}
	return shell
}

const posixSnippet = `# luka shell integration
luka() {
    case "$1" in
    path)
        local __luka_out __luka_rc
        __luka_out="$(command luka "$@")"
        __luka_rc=$?
        [ -n "$__luka_out" ] && eval "$__luka_out"
        return $__luka_rc
        ;;
    *)
        command luka "$@"
        ;;
    esac
}
`

// The binary emits fish syntax when LUKA_SHELL=fish is set, so the fish
// wrapper exports it for the duration of the call.
const fishSnippet = `# luka shell integration
function luka
    if test (count $argv) -ge 1; and test $argv[1] = path
        set -lx LUKA_SHELL fish
        set -l __luka_out (command luka $argv)
        set -l __luka_rc $status
        test -n "$__luka_out"; and eval "$__luka_out"
        return $__luka_rc
    else
        command luka $argv
    end
end
`
