package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/neon-law-foundation/notation/pkg/domain"
)

// Report renders one validation result as markdown.
func Report(name string, res domain.ValidationResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", name)
	if res.Valid {
		sb.WriteString("**Status:** valid\n")
	} else {
		fmt.Fprintf(&sb, "**Status:** invalid (%d %s)\n", len(res.Errors), plural(len(res.Errors), "error"))
	}

	if len(res.Errors) > 0 {
		sb.WriteString("\n## Errors\n\n| Line | Type | Field | Message |\n|---|---|---|---|\n")
		for _, e := range res.Errors {
			fmt.Fprintf(&sb, "| %s | `%s` | %s | %s |\n", line(e.Line), e.Type, cell(e.Field), cell(e.Message))
		}
		var hints []string
		for _, e := range res.Errors {
			if e.Suggestion != "" {
				hints = append(hints, fmt.Sprintf("- **%s**: %s", e.Type, e.Suggestion))
			}
		}
		if len(hints) > 0 {
			sb.WriteString("\n### Suggestions\n\n" + strings.Join(hints, "\n") + "\n")
		}
	}

	if len(res.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n| Line | Type | Variable | Message |\n|---|---|---|---|\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&sb, "| %s | `%s` | %s | %s |\n", line(w.Line), w.Type, cell(w.Variable), cell(w.Message))
		}
	}
	return sb.String()
}

// PrintStatus writes a one-line colored summary of res to w.
// Colors are dropped automatically when w is not a terminal.
func PrintStatus(w io.Writer, name string, res domain.ValidationResponse) {
	out := termenv.NewOutput(w)

	mark := out.String("✔").Foreground(out.Color("#22c55e"))
	if !res.Valid {
		mark = out.String("✘").Foreground(out.Color("#ef4444"))
	}
	summary := fmt.Sprintf("%d %s", len(res.Errors), plural(len(res.Errors), "error"))
	if len(res.Warnings) > 0 {
		summary += fmt.Sprintf(", %d %s", len(res.Warnings), plural(len(res.Warnings), "warning"))
	}
	fmt.Fprintf(w, "%s %s %s\n", mark, out.String(name).Bold(), out.String("("+summary+")").Faint())
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func line(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
