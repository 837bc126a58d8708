package domain

import "strings"

// Command is an external command invocation.
type Command struct {
	// Name is the executable name or path. Relative names are resolved
	// against PATH by the runner.
	Name string
	// Args are the command arguments, excluding the command name itself.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command the way it would be typed in a shell.
// Used for diagnostics only.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
