package scan

import (
	"strings"

	"github.com/refract-dev/refract/pkg/types"
)

// IsEscaped reports whether the character at idx is escaped: it counts the
// consecutive backslashes immediately before idx, and an odd count means
// escaped. So in `\\"` the quote is unescaped (the backslash pair escapes
// itself), while in `\"` it is escaped.
func IsEscaped(s string, idx int) bool {
	count := 0
	for i := idx - 1; i >= 0 && s[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}

// Occurrences finds every textual match of literal in source that is safe to
// replace: not inside a string and not inside a comment on its line. Matches
// that would split an identifier or a longer number are also rejected.
func Occurrences(source, literal string, p Profile) []types.CodeRange {
	if literal == "" {
		return nil
	}
	var out []types.CodeRange
	lines := strings.Split(source, "\n")
	for lineNo, line := range lines {
		from := 0
		for {
			idx := strings.Index(line[from:], literal)
			if idx < 0 {
				break
			}
			idx += from
			if isValidLiteralLocation(line, idx, p) && isWordBounded(line, idx, len(literal)) {
				out = append(out, types.NewRange(lineNo, idx, lineNo, idx+len(literal)))
			}
			from = idx + 1
		}
	}
	return out
}

// isWordBounded rejects matches embedded in a larger token, e.g. 42 in 420
// or in foo42.
func isWordBounded(line string, idx, length int) bool {
	if idx > 0 && isWordChar(line[idx-1]) && isWordChar(line[idx]) {
		return false
	}
	end := idx + length
	if end < len(line) && isWordChar(line[end]) && isWordChar(line[end-1]) {
		return false
	}
	return true
}

// isValidLiteralLocation gates a match at idx on line: it is rejected when an
// odd number of unescaped quotes of any style precedes it (inside a string),
// or when a line-comment marker that is itself outside any string precedes
// it, or when it sits inside a block-comment span opened earlier on the line.
//
// Known limitation: block-comment tracking is line-local, so an unclosed
// block comment is treated as extending to the end of its line only.
func isValidLiteralLocation(line string, idx int, p Profile) bool {
	for _, q := range p.Quotes {
		if countUnescaped(line[:idx], q)%2 == 1 {
			return false
		}
	}

	if p.LineComment != "" {
		from := 0
		for {
			m := strings.Index(line[from:], p.LineComment)
			if m < 0 {
				break
			}
			m += from
			if m >= idx {
				break
			}
			if markerOutsideStrings(line, m, p) {
				return false
			}
			from = m + 1
		}
	}

	if p.BlockCommentOpen != "" {
		depth := 0
		from := 0
		for from < idx {
			open := strings.Index(line[from:idx], p.BlockCommentOpen)
			if open < 0 {
				break
			}
			open += from
			if !markerOutsideStrings(line, open, p) {
				from = open + 1
				continue
			}
			depth++
			closeIdx := strings.Index(line[open+len(p.BlockCommentOpen):], p.BlockCommentClose)
			if closeIdx < 0 {
				return false // unclosed on this line; rest of line is comment
			}
			closeAt := open + len(p.BlockCommentOpen) + closeIdx + len(p.BlockCommentClose)
			if closeAt > idx {
				return false
			}
			depth--
			from = closeAt
		}
	}

	return true
}

// markerOutsideStrings reports whether the marker at position m is not itself
// inside a string on this line.
func markerOutsideStrings(line string, m int, p Profile) bool {
	for _, q := range p.Quotes {
		if countUnescaped(line[:m], q)%2 == 1 {
			return false
		}
	}
	return true
}

func countUnescaped(s string, q byte) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == q && !IsEscaped(s, i) {
			count++
		}
	}
	return count
}
