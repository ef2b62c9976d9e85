// Package scan holds the lexical utilities shared by every language backend:
// locating the literal under a cursor, finding its safe-to-replace
// occurrences, and choosing a top-of-file insertion point.
//
// Everything here is line-local and heuristic. The scanner counts quotes and
// comment markers on the line containing a match instead of tokenizing the
// whole file; the trade-offs are documented on the functions that make them.
package scan

// Profile describes the lexical surface of a language family: its comment
// markers, quote characters, and keyword literals.
type Profile struct {
	LineComment       string
	BlockCommentOpen  string
	BlockCommentClose string
	Quotes            []byte
	TripleQuotes      bool
	KeywordLiterals   []string
}

// CProfile covers C, C++, and headers.
func CProfile() Profile {
	return Profile{
		LineComment:       "//",
		BlockCommentOpen:  "/*",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"', '\''},
		KeywordLiterals:   []string{"true", "false", "NULL", "nullptr"},
	}
}

// PythonProfile covers Python.
func PythonProfile() Profile {
	return Profile{
		LineComment:     "#",
		Quotes:          []byte{'"', '\''},
		TripleQuotes:    true,
		KeywordLiterals: []string{"True", "False", "None"},
	}
}

// RustProfile covers Rust.
func RustProfile() Profile {
	return Profile{
		LineComment:       "//",
		BlockCommentOpen:  "/*",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"'},
		KeywordLiterals:   []string{"true", "false"},
	}
}

// JavaScriptProfile covers JavaScript and TypeScript. Template strings are
// treated as ordinary quoted strings.
func JavaScriptProfile() Profile {
	return Profile{
		LineComment:       "//",
		BlockCommentOpen:  "/*",
		BlockCommentClose: "*/",
		Quotes:            []byte{'"', '\'', '`'},
		KeywordLiterals:   []string{"true", "false", "null", "undefined"},
	}
}
