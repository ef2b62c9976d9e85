package scan

import (
	"strconv"
	"strings"

	"github.com/refract-dev/refract/pkg/types"
)

// LocateLiteral finds the literal token containing col on the given line of
// text. It tries numeric literals first, then string literals, then keyword
// literals, and returns the literal text with its range on that line.
func LocateLiteral(lineText string, line, col int, p Profile) (string, types.CodeRange, bool) {
	if col < 0 || col > len(lineText) {
		return "", types.CodeRange{}, false
	}
	if lit, r, ok := locateNumber(lineText, line, col); ok {
		return lit, r, ok
	}
	if lit, r, ok := locateString(lineText, line, col, p); ok {
		return lit, r, ok
	}
	return locateKeyword(lineText, line, col, p)
}

func isNumChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '_' ||
		c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' ||
		c == 'x' || c == 'X' || c == 'o' || c == 'O' || c == 'b' || c == 'B'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// locateNumber scans left and right from col over number-shaped characters,
// honors a leading minus sign, and only accepts the span if it parses.
func locateNumber(lineText string, line, col int) (string, types.CodeRange, bool) {
	anchor := col
	if anchor >= len(lineText) || !isNumChar(lineText[anchor]) {
		if anchor > 0 && isNumChar(lineText[anchor-1]) {
			anchor--
		} else {
			return "", types.CodeRange{}, false
		}
	}

	start := anchor
	for start > 0 && isNumChar(lineText[start-1]) {
		start--
	}
	end := anchor + 1
	for end < len(lineText) && isNumChar(lineText[end]) {
		end++
	}

	// A leading minus sign belongs to the literal when it is not a binary
	// operator, i.e. nothing identifier-like precedes it.
	if start > 0 && lineText[start-1] == '-' {
		prev := start - 2
		for prev >= 0 && lineText[prev] == ' ' {
			prev--
		}
		if prev < 0 || !isWordChar(lineText[prev]) && lineText[prev] != ')' && lineText[prev] != ']' {
			start--
		}
	}

	// Part of an identifier like foo42, not a standalone number.
	if start > 0 && isWordChar(lineText[start-1]) {
		return "", types.CodeRange{}, false
	}

	text := lineText[start:end]
	if !parsesAsNumber(text) {
		return "", types.CodeRange{}, false
	}
	return text, types.NewRange(line, start, line, end), true
}

func parsesAsNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return false
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseUint(s, 0, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// locateString finds the quoted span containing col. Triple-quoted spans are
// tried first for languages that have them, then single-character quotes by
// scanning outward from col to the nearest unescaped matching quote.
func locateString(lineText string, line, col int, p Profile) (string, types.CodeRange, bool) {
	if p.TripleQuotes {
		for _, q := range p.Quotes {
			marker := strings.Repeat(string(q), 3)
			from := 0
			for {
				open := strings.Index(lineText[from:], marker)
				if open < 0 {
					break
				}
				open += from
				closeIdx := strings.Index(lineText[open+3:], marker)
				if closeIdx < 0 {
					break
				}
				end := open + 3 + closeIdx + 3
				if open <= col && col < end {
					return lineText[open:end], types.NewRange(line, open, line, end), true
				}
				from = end
			}
		}
	}

	for _, q := range p.Quotes {
		open := -1
		for i := col; i >= 0; i-- {
			if i < len(lineText) && lineText[i] == q && !IsEscaped(lineText, i) {
				open = i
				break
			}
		}
		if open < 0 {
			continue
		}
		closeIdx := -1
		for i := open + 1; i < len(lineText); i++ {
			if lineText[i] == q && !IsEscaped(lineText, i) {
				closeIdx = i
				break
			}
		}
		if closeIdx < 0 || col > closeIdx {
			continue
		}
		return lineText[open : closeIdx+1], types.NewRange(line, open, line, closeIdx+1), true
	}
	return "", types.CodeRange{}, false
}

// locateKeyword tries each keyword literal at every offset that could contain
// col, verifying word boundaries on both sides.
func locateKeyword(lineText string, line, col int, p Profile) (string, types.CodeRange, bool) {
	for _, kw := range p.KeywordLiterals {
		for start := col - len(kw); start <= col; start++ {
			if start < 0 || start+len(kw) > len(lineText) {
				continue
			}
			if lineText[start:start+len(kw)] != kw {
				continue
			}
			if col < start || col > start+len(kw) {
				continue
			}
			if start > 0 && isWordChar(lineText[start-1]) {
				continue
			}
			if end := start + len(kw); end < len(lineText) && isWordChar(lineText[end]) {
				continue
			}
			return kw, types.NewRange(line, start, line, start+len(kw)), true
		}
	}
	return "", types.CodeRange{}, false
}
