package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
)

var (
	// Type tokens before the name are matched loosely: pointers, templates,
	// and qualified names all pass. Group 2 is still just the identifier.
	clikeVarDecl   = regexp.MustCompile(`^(\s*)(?:const\s+)?[A-Za-z_][A-Za-z0-9_:<>,\s\*&]*?[\s\*&]([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+?);\s*$`)
	clikeFuncStart = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_:<>,\s\*&]*?[\s\*&]([A-Za-z_][A-Za-z0-9_]*)\s*\([^;]*$|^\s*(?:static\s+)?[A-Za-z_][\w\s\*&]*\([^;]*\)\s*\{`)
)

var clikeKeywords = makeSet(
	"auto", "bool", "break", "case", "catch", "char", "class", "const",
	"continue", "default", "delete", "do", "double", "else", "enum", "extern",
	"false", "float", "for", "goto", "if", "inline", "int", "long", "namespace",
	"new", "nullptr", "NULL", "private", "protected", "public", "return",
	"short", "signed", "sizeof", "static", "struct", "switch", "template",
	"this", "throw", "true", "try", "typedef", "union", "unsigned", "using",
	"virtual", "void", "volatile", "while", "printf", "std",
)

// newCLike covers C and C++. Parameter inference cannot recover types from a
// line scan, so generated signatures carry bare names; the plan is advisory
// and expected to be touched up by the reviewer.
func newCLike() *analyzer {
	return &analyzer{
		name:            "clike",
		profile:         scan.CProfile(),
		insert:          scan.CInsertProfile(),
		varDecl:         clikeVarDecl,
		funcStart:       clikeFuncStart,
		keywords:        clikeKeywords,
		defaultFuncName: "extracted_function",
		statementEnd:    ";",
		forms: Forms{
			ConstantDecl: func(name, value string) string {
				return fmt.Sprintf("#define %s %s\n", name, value)
			},
			VariableDecl: func(indent, name, expr string) string {
				return fmt.Sprintf("%sauto %s = %s;\n", indent, name, expr)
			},
			FunctionDecl: clikeFunctionDecl,
			CallSite:     clikeCallSite,
		},
	}
}

func clikeFunctionDecl(name string, params, body, returns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "static void %s(%s) {\n", name, strings.Join(params, ", "))
	for _, line := range reindent(body, "    ") {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

func clikeCallSite(indent, name string, args, returns []string) string {
	call := fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	if len(returns) == 1 {
		return fmt.Sprintf("%s%s = %s;", indent, returns[0], call)
	}
	return fmt.Sprintf("%s%s;", indent, call)
}
