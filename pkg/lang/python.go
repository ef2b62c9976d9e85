package lang

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
)

var (
	pythonVarDecl      = regexp.MustCompile(`^(\s*)([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([^=].*)$`)
	pythonFuncStart    = regexp.MustCompile(`^\s*(?:async\s+)?def\s+[A-Za-z_][A-Za-z0-9_]*\s*\(`)
	pythonCallableInit = regexp.MustCompile(`^lambda\b`)
)

var pythonKeywords = makeSet(
	"False", "None", "True", "and", "as", "assert", "async", "await", "break",
	"class", "continue", "def", "del", "elif", "else", "except", "finally",
	"for", "from", "global", "if", "import", "in", "is", "lambda", "nonlocal",
	"not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
	"print", "len", "range", "str", "int", "float", "list", "dict", "set",
)

func newPython() *analyzer {
	return &analyzer{
		name:            "python",
		profile:         scan.PythonProfile(),
		insert:          scan.PythonInsertProfile(),
		varDecl:         pythonVarDecl,
		funcStart:       pythonFuncStart,
		callableInit:    pythonCallableInit,
		keywords:        pythonKeywords,
		defaultFuncName: "extracted_function",
		forms: Forms{
			ConstantDecl: func(name, value string) string {
				return fmt.Sprintf("%s = %s\n", name, value)
			},
			VariableDecl: func(indent, name, expr string) string {
				return fmt.Sprintf("%s%s = %s\n", indent, name, expr)
			},
			FunctionDecl: pythonFunctionDecl,
			CallSite:     pythonCallSite,
		},
	}
}

func pythonFunctionDecl(name string, params, body, returns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "def %s(%s):\n", name, strings.Join(params, ", "))
	for _, line := range reindent(body, "    ") {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(returns) > 0 {
		fmt.Fprintf(&b, "    return %s\n", strings.Join(returns, ", "))
	}
	return b.String()
}

func pythonCallSite(indent, name string, args, returns []string) string {
	call := fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	if len(returns) > 0 {
		return fmt.Sprintf("%s%s = %s", indent, strings.Join(returns, ", "), call)
	}
	return indent + call
}
