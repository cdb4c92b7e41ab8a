package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const pathPrompt = "Drag and drop the song note here and press Enter: "

// ErrPathNotFound is returned when the given note path does not exist.
var ErrPathNotFound = errors.New("the file path you provided does not exist")

// promptForPath asks for a note path on in. The prompt is only shown when in
// is an interactive terminal.
func promptForPath(in io.Reader, out io.Writer) (string, error) {
	if isTerminal(in) {
		fmt.Fprint(out, pathPrompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read path: %w", err)
	}
	return cleanPathInput(line), nil
}

// cleanPathInput undoes what terminals add to dragged-in paths: surrounding
// whitespace and quotes, and PowerShell's doubled single quotes.
func cleanPathInput(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `'"`)
	return strings.ReplaceAll(s, "''", "'")
}

// checkNotePath fails early when the note is missing or is a directory.
func checkNotePath(path string) error {
	if path == "" {
		return errors.New("no note path given")
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("failed to check note: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a song note", path)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
