package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
)

var (
	rustVarDecl      = regexp.MustCompile(`^(\s*)let\s+(?:mut\s+)?([a-z_][A-Za-z0-9_]*)\s*(?::\s*[^=]+)?=\s*(.+?);\s*$`)
	rustFuncStart    = regexp.MustCompile(`^\s*(?:pub\s+)?(?:async\s+)?fn\s+[a-z_][A-Za-z0-9_]*`)
	rustCallableInit = regexp.MustCompile(`^(?:move\s*)?\|`)
)

var rustKeywords = makeSet(
	"as", "async", "await", "break", "const", "continue", "crate", "dyn",
	"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in", "let",
	"loop", "match", "mod", "move", "mut", "pub", "ref", "return", "self",
	"static", "struct", "super", "trait", "true", "type", "unsafe", "use",
	"where", "while", "println", "vec", "String", "Vec", "Some", "None", "Ok",
	"Err",
)

func newRust() *analyzer {
	return &analyzer{
		name:            "rust",
		profile:         scan.RustProfile(),
		insert:          scan.RustInsertProfile(),
		varDecl:         rustVarDecl,
		funcStart:       rustFuncStart,
		callableInit:    rustCallableInit,
		keywords:        rustKeywords,
		defaultFuncName: "extracted_function",
		statementEnd:    ";",
		forms: Forms{
			ConstantDecl: func(name, value string) string {
				return fmt.Sprintf("const %s: _ = %s;\n", name, value)
			},
			VariableDecl: func(indent, name, expr string) string {
				return fmt.Sprintf("%slet %s = %s;\n", indent, name, expr)
			},
			FunctionDecl: rustFunctionDecl,
			CallSite:     rustCallSite,
		},
	}
}

func rustFunctionDecl(name string, params, body, returns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fn %s(%s) {\n", name, strings.Join(params, ", "))
	for _, line := range reindent(body, "    ") {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	switch len(returns) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "    return %s;\n", returns[0])
	default:
		fmt.Fprintf(&b, "    return (%s);\n", strings.Join(returns, ", "))
	}
	b.WriteString("}\n")
	return b.String()
}

func rustCallSite(indent, name string, args, returns []string) string {
	call := fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	switch len(returns) {
	case 0:
		return fmt.Sprintf("%s%s;", indent, call)
	case 1:
		return fmt.Sprintf("%slet %s = %s;", indent, returns[0], call)
	default:
		return fmt.Sprintf("%slet (%s) = %s;", indent, strings.Join(returns, ", "), call)
	}
}
