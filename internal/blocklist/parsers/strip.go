package parsers

import (
	"strings"

	logpkg "github.com/haukened/rr-blocklist/internal/blocklist/common/log"
)

// CommentMarker starts a whole-line or inline comment.
const CommentMarker = "#"

// StripComments turns raw input lines into domain entries.
//
// Behavior:
// - Trims surrounding whitespace from every line
// - Skips lines that are empty or start with '#' after trimming
// - Truncates the remaining lines at the first '#' (inline comment)
// - The truncated part is not re-trimmed: "bar.net # x" yields "bar.net "
// - Preserves input order and keeps duplicates
func StripComments(lines []string, logger logpkg.Logger) []string {
	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimSpace(raw)

		if isEmpty, isComment := classifyLine(line); isEmpty || isComment {
			if isEmpty {
				logger.Debug(map[string]any{"line": lineNum}, "skip_empty")
			} else {
				logger.Debug(map[string]any{"line": lineNum}, "skip_comment")
			}
			continue
		}

		entry := stripInlineComment(line)
		out = append(out, entry)
		logger.Debug(map[string]any{"line": lineNum, "entry": entry}, "emit_entry")
	}
	return out
}

// classifyLine reports whether an already trimmed line is empty or a full-line comment.
func classifyLine(line string) (isEmpty, isComment bool) {
	if line == "" {
		return true, false
	}
	return false, strings.HasPrefix(line, CommentMarker)
}

// stripInlineComment returns the part of line before the first comment marker.
func stripInlineComment(line string) string {
	before, _, _ := strings.Cut(line, CommentMarker)
	return before
}
