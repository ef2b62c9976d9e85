package types

import "fmt"

// ErrorType classifies refactoring failures.
type ErrorType int

const (
	InvalidRange ErrorType = iota
	NotFound
	Unsupported
	InvalidName
	Blocked
	SyntaxError
	FileSystemError
)

func (t ErrorType) String() string {
	switch t {
	case InvalidRange:
		return "invalid_range"
	case NotFound:
		return "not_found"
	case Unsupported:
		return "unsupported"
	case InvalidName:
		return "invalid_name"
	case Blocked:
		return "blocked"
	case SyntaxError:
		return "syntax_error"
	case FileSystemError:
		return "filesystem_error"
	default:
		return "unknown"
	}
}

// RefactorError represents errors in refactoring operations.
type RefactorError struct {
	Type    ErrorType
	Message string
	File    string
	Line    int
	Column  int
	Cause   error
}

func (e *RefactorError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e *RefactorError) Unwrap() error {
	return e.Cause
}

// NewError builds a RefactorError with a formatted message.
func NewError(t ErrorType, format string, args ...any) *RefactorError {
	return &RefactorError{Type: t, Message: fmt.Sprintf(format, args...)}
}

// NewPositionError builds a RefactorError anchored at a file position.
func NewPositionError(t ErrorType, file string, line, col int, format string, args ...any) *RefactorError {
	return &RefactorError{
		Type:    t,
		Message: fmt.Sprintf(format, args...),
		File:    file,
		Line:    line,
		Column:  col,
	}
}

// IsErrorType reports whether err is a *RefactorError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	re, ok := err.(*RefactorError)
	return ok && re.Type == t
}
