package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
)

var (
	jsVarDecl      = regexp.MustCompile(`^(\s*)(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*(?::\s*[A-Za-z_$][^=]*)?=\s*(.+?);?\s*$`)
	jsFuncStart    = regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s+[A-Za-z_$]|^\s*(?:export\s+)?(?:const|let)\s+[A-Za-z_$][A-Za-z0-9_$]*\s*=\s*(?:async\s*)?\([^)]*\)\s*(?::[^=]+)?=>`)
	jsCallableInit = regexp.MustCompile(`^(?:async\s+)?function\b|=>`)
)

var jsKeywords = makeSet(
	"abstract", "any", "as", "async", "await", "boolean", "break", "case",
	"catch", "class", "const", "continue", "debugger", "default", "delete",
	"do", "else", "enum", "export", "extends", "false", "finally", "for",
	"from", "function", "if", "implements", "import", "in", "instanceof",
	"interface", "let", "new", "null", "number", "of", "private", "protected",
	"public", "return", "static", "string", "super", "switch", "this", "throw",
	"true", "try", "type", "typeof", "undefined", "var", "void", "while",
	"with", "yield", "console", "log",
)

// newJavaScript covers both JavaScript and TypeScript; optional type
// annotations in declarations are tolerated by the patterns.
func newJavaScript() *analyzer {
	return &analyzer{
		name:            "javascript",
		profile:         scan.JavaScriptProfile(),
		insert:          scan.JavaScriptInsertProfile(),
		varDecl:         jsVarDecl,
		funcStart:       jsFuncStart,
		callableInit:    jsCallableInit,
		keywords:        jsKeywords,
		defaultFuncName: "extractedFunction",
		statementEnd:    ";",
		forms: Forms{
			ConstantDecl: func(name, value string) string {
				return fmt.Sprintf("const %s = %s;\n", name, value)
			},
			VariableDecl: func(indent, name, expr string) string {
				return fmt.Sprintf("%sconst %s = %s;\n", indent, name, expr)
			},
			FunctionDecl: jsFunctionDecl,
			CallSite:     jsCallSite,
		},
	}
}

func jsFunctionDecl(name string, params, body, returns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s(%s) {\n", name, strings.Join(params, ", "))
	for _, line := range reindent(body, "  ") {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	switch len(returns) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "  return %s;\n", returns[0])
	default:
		fmt.Fprintf(&b, "  return { %s };\n", strings.Join(returns, ", "))
	}
	b.WriteString("}\n")
	return b.String()
}

func jsCallSite(indent, name string, args, returns []string) string {
	call := fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	switch len(returns) {
	case 0:
		return fmt.Sprintf("%s%s;", indent, call)
	case 1:
		return fmt.Sprintf("%s%s = %s;", indent, returns[0], call)
	default:
		return fmt.Sprintf("%s({ %s } = %s);", indent, strings.Join(returns, ", "), call)
	}
}
