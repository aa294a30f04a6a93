package pathlist

import "errors"

var (
	// ErrInvalidPath indicates a path argument that cannot be normalized.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMissingArgument indicates a verb that requires at least one path
	// was given none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrUnknownCommand indicates an unrecognized verb token.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrConfigAccess indicates the profile file could not be read or written.
	ErrConfigAccess = errors.New("config file access")
)
