// Package sanitize admits raw notation documents before validation.
package sanitize

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/neon-law-foundation/notation/pkg/domain"
)

// DefaultMaxDocumentSize is 1 MiB.
const DefaultMaxDocumentSize = 1 << 20

const byteOrderMark = "\uFEFF"

// Document enforces the size limit (in bytes; limit <= 0 uses the default),
// validates UTF-8 and drops a leading byte order mark. Every other byte is
// returned unchanged so the splitter and parser judge the text as written.
func Document(input string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultMaxDocumentSize
	}
	if len(input) > limit {
		// Rejected rather than truncated so results stay deterministic.
		return "", fmt.Errorf("%w: size=%d limit=%d", domain.ErrDocumentTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%w at byte %d", domain.ErrInvalidEncoding, firstInvalid(input))
	}
	return strings.TrimPrefix(input, byteOrderMark), nil
}

func firstInvalid(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
