package cli

import (
	"fmt"
	"os"

	"github.com/rxxuzi/luka/internal/config"
	"github.com/rxxuzi/luka/internal/fsops"
	"github.com/rxxuzi/luka/internal/pathlist"
	"github.com/rxxuzi/luka/internal/profile"
)

// newPathManager builds a manager over the current process PATH and the
// configured profile file.
func newPathManager() (*pathlist.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := profile.NewStore(fsops.NewRealFS(), cfg.ProfileFile)
	return pathlist.NewManager(os.Getenv("PATH"), store), nil
}

// exportStatement renders the statement that re-exports value as PATH in
// the calling shell. The fish wrapper sets LUKA_SHELL so it gets fish
// syntax back.
func exportStatement(value string) string {
	if os.Getenv("LUKA_SHELL") == "fish" {
		return fmt.Sprintf(`set -gx PATH "%s"`, value)
	}
	return fmt.Sprintf(`export PATH="%s"`, value)
}
