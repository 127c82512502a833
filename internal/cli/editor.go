package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".json" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or run without --edit")
	}

	tmpFile, err := os.CreateTemp("", "addonsync-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// EditJSON round-trips a JSON value through the editor, indented for
// reading. An empty result returns ErrAborted; anything that is not valid
// JSON returns an *EditError.
func EditJSON(value json.RawMessage) (json.RawMessage, error) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, value, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format addon list: %w", err)
	}
	pretty.WriteByte('\n')

	edited, err := EditInEditor(pretty.Bytes(), ".json")
	if err != nil {
		return nil, err
	}

	edited = bytes.TrimSpace(edited)
	if len(edited) == 0 {
		return nil, ErrAborted
	}
	if !json.Valid(edited) {
		return nil, &EditError{Err: fmt.Errorf("not valid JSON")}
	}
	return json.RawMessage(edited), nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
func runEditor(editor, path string) error {
	// Split editor into command and args (e.g., "code --wait")
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
