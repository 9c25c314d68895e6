package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/qradmin/internal/common"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The caller wipes the returned slice.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// clearValue is the answer that empties a field in an edit form.
const clearValue = "-"

// promptDefault asks for a value showing the current one; an empty answer
// keeps current and clearValue empties it.
func (a *App) promptDefault(label, current string) (string, error) {
	v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case clearValue:
		return "", nil
	}
	return v, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: expected yes or no, got %q", common.ErrValidation, s)
}

func yesNoLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (a *App) promptBool(label string, current bool) (bool, error) {
	v, err := a.promptDefault(label, yesNoLabel(current))
	if err != nil {
		return false, err
	}
	return parseYesNo(v)
}

// confirm asks a yes/no question that defaults to no.
func (a *App) confirm(question string) bool {
	v, err := getSimpleText(a.reader, question+" (y/N)", a.out)
	if err != nil || v == "" {
		return false
	}
	ok, err := parseYesNo(v)
	return err == nil && ok
}

// rowIndex parses a 1-based row number into a slice index.
func rowIndex(arg string, rows int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > rows {
		if rows == 0 {
			return 0, fmt.Errorf("%w: the list is empty", common.ErrValidation)
		}
		return 0, fmt.Errorf("%w: row must be a number between 1 and %d", common.ErrValidation, rows)
	}
	return n - 1, nil
}
