// Package lang implements the per-language analyzers behind the uniform
// four-operation contract: extract function, inline variable, extract
// variable, and extract constant. Backends are a closed set dispatched by
// file extension; all of them are lexical (regex and line scanning), so the
// data they produce is best-effort advisory rather than exact.
package lang

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/refract-dev/refract/pkg/scan"
	"github.com/refract-dev/refract/pkg/types"
)

// Analyzer is the uniform contract every language backend satisfies. None of
// the operations mutate source; out-of-bounds positions yield a typed error,
// never a panic.
type Analyzer interface {
	// Name returns the language family identifier, e.g. "python".
	Name() string

	// Profile returns the lexical profile used for literal and occurrence
	// scanning in this language.
	Profile() scan.Profile

	// Forms returns the concrete declaration/call syntax the plan builder
	// uses to render edits for this language.
	Forms() Forms

	AnalyzeExtractFunction(source string, r types.CodeRange) (*types.ExtractableFunction, error)
	AnalyzeInlineVariable(source string, line, col int) (*types.InlineVariableAnalysis, error)
	AnalyzeExtractVariable(source string, r types.CodeRange) (*types.ExtractVariableAnalysis, error)
	AnalyzeExtractConstant(source string, line, col int) (*types.ExtractConstantAnalysis, error)
}

var (
	clikeAnalyzer      = newCLike()
	pythonAnalyzer     = newPython()
	rustAnalyzer       = newRust()
	javascriptAnalyzer = newJavaScript()
)

var extensions = map[string]Analyzer{
	".c":   clikeAnalyzer,
	".h":   clikeAnalyzer,
	".cc":  clikeAnalyzer,
	".cpp": clikeAnalyzer,
	".cxx": clikeAnalyzer,
	".hh":  clikeAnalyzer,
	".hpp": clikeAnalyzer,
	".py":  pythonAnalyzer,
	".pyw": pythonAnalyzer,
	".rs":  rustAnalyzer,
	".js":  javascriptAnalyzer,
	".jsx": javascriptAnalyzer,
	".mjs": javascriptAnalyzer,
	".cjs": javascriptAnalyzer,
	".ts":  javascriptAnalyzer,
	".tsx": javascriptAnalyzer,
	".mts": javascriptAnalyzer,
}

// ForPath selects the analyzer for a file by extension.
func ForPath(path string) (Analyzer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if a, ok := extensions[ext]; ok {
		return a, nil
	}
	return nil, types.NewError(types.Unsupported, "unsupported language for %s", path)
}

// ForFile selects the analyzer for a file, falling back to content-based
// detection for extensions the table does not know.
func ForFile(path string, content []byte) (Analyzer, error) {
	if a, err := ForPath(path); err == nil {
		return a, nil
	}
	switch enry.GetLanguage(filepath.Base(path), content) {
	case "C", "C++", "Objective-C":
		return clikeAnalyzer, nil
	case "Python":
		return pythonAnalyzer, nil
	case "Rust":
		return rustAnalyzer, nil
	case "JavaScript", "TypeScript", "JSX", "TSX":
		return javascriptAnalyzer, nil
	}
	return nil, types.NewError(types.Unsupported, "unsupported language for %s", path)
}
