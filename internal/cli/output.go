package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/neon-law-foundation/notation/internal/presentation/tui"
	"github.com/neon-law-foundation/notation/pkg/domain"
)

// StdinPath names standard input as a document source.
const StdinPath = "-"

// ReadDocument returns the content of path, or of stdin when path is "-".
func ReadDocument(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteReport writes a human readable validation report. Terminals get the
// full markdown report rendered with glamour; other writers get the one-line
// status followed by the raw markdown when there are findings.
func WriteReport(w io.Writer, name string, res domain.ValidationResponse) error {
	if f, ok := w.(*os.File); ok && tui.IsTerminal(f) {
		render, err := tui.NewRenderer(tui.Width(f))
		if err != nil {
			return err
		}
		out, err := render(tui.Report(name, res))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	tui.PrintStatus(w, name, res)
	if len(res.Errors) > 0 || len(res.Warnings) > 0 {
		_, err := io.WriteString(w, "\n"+tui.Report(name, res))
		return err
	}
	return nil
}
