package types

import "fmt"

// CodeRange identifies a span of source text. Lines and columns are
// zero-based; EndCol is one past the last included character on EndLine.
type CodeRange struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
}

// NewRange builds a CodeRange without validating it.
func NewRange(startLine, startCol, endLine, endCol int) CodeRange {
	return CodeRange{StartLine: startLine, StartCol: startCol, EndLine: endLine, EndCol: endCol}
}

// TopOfFile is the insertion point for "before the first line".
func TopOfFile() CodeRange {
	return CodeRange{}
}

// PointAt returns a zero-width range at the given position.
func PointAt(line, col int) CodeRange {
	return CodeRange{StartLine: line, StartCol: col, EndLine: line, EndCol: col}
}

// IsZero reports whether the range is the zero value (top-of-file insert).
func (r CodeRange) IsZero() bool {
	return r.StartLine == 0 && r.StartCol == 0 && r.EndLine == 0 && r.EndCol == 0
}

// IsPoint reports whether the range spans no characters.
func (r CodeRange) IsPoint() bool {
	return r.StartLine == r.EndLine && r.StartCol == r.EndCol
}

// SingleLine reports whether the range starts and ends on the same line.
func (r CodeRange) SingleLine() bool {
	return r.StartLine == r.EndLine
}

// Valid checks the ordering invariant: start must not come after end.
func (r CodeRange) Valid() bool {
	if r.StartLine < 0 || r.StartCol < 0 || r.EndCol < 0 {
		return false
	}
	if r.StartLine > r.EndLine {
		return false
	}
	if r.StartLine == r.EndLine && r.StartCol > r.EndCol {
		return false
	}
	return true
}

func (r CodeRange) String() string {
	if r.SingleLine() {
		return fmt.Sprintf("%d:%d-%d", r.StartLine, r.StartCol, r.EndCol)
	}
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}
