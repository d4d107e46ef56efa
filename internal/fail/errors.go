package fail

import (
	"strings"

	"github.com/fatih/color"
)

// DetailedError is an error meant to be displayed to end users.
// It carries a short summary, optional details and suggestions on how to
// address the problem.
type DetailedError struct {
	// Summary is a one-line description of the error.
	Summary string
	// Details gives more context on the error, if any.
	Details string
	// Parent is the underlying error.
	Parent error
	// Suggestions are hints on how to fix the error.
	Suggestions []string
	// ExitCode overrides the default exit code of the process.
	ExitCode *int
}

func (e DetailedError) Error() string {
	red := color.New(color.FgRed).SprintFunc()
	buffer := strings.Builder{}

	buffer.WriteString(red("Error: ") + e.Summary + "\n")

	if e.Details != "" {
		buffer.WriteString("│\n")
		for line := range strings.SplitSeq(e.Details, "\n") {
			buffer.WriteString("│ " + line + "\n")
		}
	}

	if e.Parent != nil {
		buffer.WriteString("│\n")
		buffer.WriteString("├─ " + e.Parent.Error() + "\n")
	}

	if len(e.Suggestions) != 0 {
		buffer.WriteString("│\n")
		buffer.WriteString("├─ Suggestions:\n")
		buffer.WriteString("│\n")

		for _, suggestion := range e.Suggestions {
			buffer.WriteString("│ • " + suggestion + "\n")
		}
	}

	buffer.WriteString("│\n")
	buffer.WriteString("└─")

	return buffer.String()
}

func (e DetailedError) Unwrap() error {
	return e.Parent
}

// WithExitCode returns a copy of the error with the given exit code.
func (e DetailedError) WithExitCode(code int) DetailedError {
	e.ExitCode = &code

	return e
}
