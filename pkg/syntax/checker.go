// Package syntax runs the post-transform syntax check. Unlike the analyzers,
// which are deliberately lexical, this is a real parse: each supported
// language gets its tree-sitter grammar, and any ERROR or missing node in the
// resulting tree fails the check.
package syntax

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/refract-dev/refract/pkg/types"
)

var grammars = map[string]*sitter.Language{
	".c":   c.GetLanguage(),
	".h":   c.GetLanguage(),
	".cc":  cpp.GetLanguage(),
	".cpp": cpp.GetLanguage(),
	".cxx": cpp.GetLanguage(),
	".hh":  cpp.GetLanguage(),
	".hpp": cpp.GetLanguage(),
	".py":  python.GetLanguage(),
	".pyw": python.GetLanguage(),
	".rs":  rust.GetLanguage(),
	".js":  javascript.GetLanguage(),
	".jsx": javascript.GetLanguage(),
	".mjs": javascript.GetLanguage(),
	".cjs": javascript.GetLanguage(),
	".ts":  typescript.GetLanguage(),
	".mts": typescript.GetLanguage(),
	".tsx": tsx.GetLanguage(),
}

// Supported reports whether a grammar is available for the file.
func Supported(path string) bool {
	_, ok := grammars[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Check parses source with the grammar for path's language and returns a
// SyntaxError naming the first error position when the tree is broken.
// Files without a grammar pass the check; the analyzers have already gated
// the language set.
func Check(ctx context.Context, path, source string) error {
	grammar, ok := grammars[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil
	}

	root, err := sitter.ParseCtx(ctx, []byte(source), grammar)
	if err != nil {
		return types.NewError(types.SyntaxError, "parse %s: %v", path, err)
	}
	if !root.HasError() {
		return nil
	}

	if bad := firstError(root); bad != nil {
		p := bad.StartPoint()
		return types.NewPositionError(types.SyntaxError, path, int(p.Row), int(p.Column),
			"syntax error after transformation near %q", snippet(bad.Content([]byte(source))))
	}
	return types.NewError(types.SyntaxError, "syntax error after transformation in %s", path)
}

// firstError walks the tree for the first ERROR or missing node.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstError(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func snippet(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return s
}
