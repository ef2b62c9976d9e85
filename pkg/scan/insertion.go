package scan

import (
	"strings"

	"github.com/refract-dev/refract/pkg/types"
)

// InsertProfile lists the line prefixes a language uses for imports and for
// top-level declarations, plus whether module docstrings must be skipped.
type InsertProfile struct {
	ImportPrefixes  []string
	DeclPrefixes    []string
	TrackDocstrings bool
}

// CInsertProfile places declarations after the #include block.
func CInsertProfile() InsertProfile {
	return InsertProfile{
		ImportPrefixes: []string{"#include", "#pragma", "#define"},
		DeclPrefixes:   []string{"int ", "void ", "char ", "float ", "double ", "struct ", "typedef ", "static ", "class ", "namespace "},
	}
}

// PythonInsertProfile places declarations after imports and the module
// docstring.
func PythonInsertProfile() InsertProfile {
	return InsertProfile{
		ImportPrefixes:  []string{"import ", "from "},
		DeclPrefixes:    []string{"def ", "class ", "async def ", "@"},
		TrackDocstrings: true,
	}
}

// RustInsertProfile places declarations after use/extern/mod lines.
func RustInsertProfile() InsertProfile {
	return InsertProfile{
		ImportPrefixes: []string{"use ", "extern crate ", "mod ", "#!["},
		DeclPrefixes:   []string{"fn ", "pub fn ", "struct ", "pub struct ", "enum ", "pub enum ", "impl ", "trait ", "pub trait "},
	}
}

// JavaScriptInsertProfile places declarations after the import block.
func JavaScriptInsertProfile() InsertProfile {
	return InsertProfile{
		ImportPrefixes: []string{"import ", "export import ", "/// <reference", "\"use strict\"", "'use strict'"},
		DeclPrefixes:   []string{"function ", "class ", "export ", "async function ", "interface ", "type "},
	}
}

// InsertionPoint scans lines top to bottom and returns the point after the
// last import-like line seen before the first declaration. Docstring spans
// are skipped when the profile tracks them.
func InsertionPoint(source string, prof InsertProfile) types.CodeRange {
	lines := strings.Split(source, "\n")
	insertLine := 0
	inDocstring := false
	docstringMarker := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if prof.TrackDocstrings {
			if inDocstring {
				if strings.Contains(trimmed, docstringMarker) {
					inDocstring = false
					insertLine = i + 1
				}
				continue
			}
			for _, marker := range []string{`"""`, "'''"} {
				if strings.HasPrefix(trimmed, marker) {
					rest := trimmed[len(marker):]
					if strings.Contains(rest, marker) {
						insertLine = i + 1 // one-line docstring
					} else {
						inDocstring = true
						docstringMarker = marker
					}
					break
				}
			}
			if inDocstring {
				continue
			}
		}

		if trimmed == "" {
			continue
		}
		if hasAnyPrefix(trimmed, prof.ImportPrefixes) {
			insertLine = i + 1
			continue
		}
		if hasAnyPrefix(trimmed, prof.DeclPrefixes) {
			break
		}
	}

	return types.PointAt(insertLine, 0)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
