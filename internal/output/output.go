package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mozilla-it/heroku-audit/internal/models"
)

// Render joins result lines for display.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}

// AccountLines renders accounts with the classifier's one-line summary.
func AccountLines(accounts []models.Account) []string {
	lines := make([]string, 0, len(accounts))
	for _, a := range accounts {
		lines = append(lines, a.AsText())
	}
	return lines
}

// Emit writes the rendered result to w, optionally copying it to the system
// clipboard first. Text suitable for pasting into an offboarding email.
func Emit(w io.Writer, lines []string, clip bool) error {
	text := Render(lines)
	if clip {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying output to clipboard: %w", err)
		}
		fmt.Fprintln(w, "(also copied to clipboard)")
	}
	fmt.Fprintln(w, text)
	return nil
}
