// Package frontmatter separates a notation into its YAML header and body.
package frontmatter

import (
	"fmt"
	"strings"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// Delimiter is the line that opens and closes a frontmatter block.
const Delimiter = "---"

// Error reports a delimiter problem at a 1-based line of the input.
type Error struct {
	Err  error
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Block is the result of splitting a document.
type Block struct {
	// YAML is the text strictly between the two delimiter lines.
	YAML string
	// YAMLLine is the 1-based line where YAML starts.
	YAMLLine int
	// Body is everything after the closing delimiter, without leading or trailing blank lines.
	Body string
	// BodyLine is the 1-based line where Body starts.
	BodyLine int
}

// Split extracts the frontmatter block and body from raw.
// The first line must be exactly "---"; the block ends at the next line that is
// exactly "---". CRLF line endings are accepted.
func Split(raw string) (Block, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	if lines[0] != Delimiter {
		return Block{}, &Error{Err: domain.ErrMissingFrontmatter, Line: 1}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		last := len(lines)
		if last > 1 && lines[last-1] == "" {
			last--
		}
		return Block{}, &Error{Err: domain.ErrUnclosedFrontmatter, Line: last}
	}

	body := lines[closing+1:]
	start := 0
	for start < len(body) && isBlank(body[start]) {
		start++
	}
	end := len(body)
	for end > start && isBlank(body[end-1]) {
		end--
	}

	return Block{
		YAML:     strings.Join(lines[1:closing], "\n"),
		YAMLLine: 2,
		Body:     strings.Join(body[start:end], "\n"),
		BodyLine: closing + 2 + start,
	}, nil
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
