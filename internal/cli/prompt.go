package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword

// ReadSecret prompts on out and reads a line from in without echoing it.
// in must be a terminal; otherwise a *ValidationError names flag as the
// way to supply the value.
func ReadSecret(in *os.File, out io.Writer, prompt, flag string) (string, error) {
	if in == nil || !term.IsTerminal(int(in.Fd())) {
		return "", &ValidationError{Message: fmt.Sprintf("%s is required when stdin is not a terminal", flag)}
	}

	fmt.Fprint(out, prompt)
	data, err := readPassword(int(in.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
