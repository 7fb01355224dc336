package cli

import "fmt"

// NuclideError reports a nuclide argument that could not be understood.
type NuclideError struct {
	Arg     string
	Message string
}

func (e *NuclideError) Error() string {
	return fmt.Sprintf("invalid nuclide %q: %s", e.Arg, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
