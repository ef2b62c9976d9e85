package lang

import (
	"regexp"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
	"github.com/refract-dev/refract/pkg/types"
)

// Forms holds the concrete syntax a language uses for the text the plan
// builder generates. All rendered declarations end with a newline.
type Forms struct {
	// ConstantDecl renders a top-level constant declaration.
	ConstantDecl func(name, value string) string
	// VariableDecl renders a local variable declaration at the given indent.
	VariableDecl func(indent, name, expr string) string
	// FunctionDecl renders a complete function: signature, re-indented body,
	// and a synthesized trailing return when returns is non-empty.
	FunctionDecl func(name string, params, body, returns []string) string
	// CallSite renders the statement that replaces the extracted selection.
	CallSite func(indent, name string, args, returns []string) string
}

// analyzer is the shared lexical implementation of the Analyzer contract.
// Each language family constructs one with its own profile, patterns, and
// forms; behavior differences between families live entirely in this
// configuration.
type analyzer struct {
	name    string
	profile scan.Profile
	insert  scan.InsertProfile
	forms   Forms

	// varDecl matches a single-variable declaration line. Group 1 is the
	// indent, group 2 the name, group 3 the initializer.
	varDecl *regexp.Regexp
	// funcStart matches the first line of a function definition.
	funcStart *regexp.Regexp
	// callableInit matches initializers that declare a callable or type
	// rather than a value; inlining those is unsafe.
	callableInit *regexp.Regexp
	// keywords are excluded from identifier collection.
	keywords map[string]bool
	// defaultFuncName seeds ExtractableFunction.SuggestedName.
	defaultFuncName string
	// statementEnd is the statement terminator, empty for Python.
	statementEnd string
}

func (a *analyzer) Name() string          { return a.name }
func (a *analyzer) Profile() scan.Profile { return a.profile }
func (a *analyzer) Forms() Forms          { return a.forms }

// splitLines splits source preserving empty trailing lines the way the
// transformer's line buffer does.
func splitLines(source string) []string {
	return strings.Split(source, "\n")
}

func (a *analyzer) checkLine(lines []string, line, col int) error {
	if line < 0 || line >= len(lines) {
		return types.NewPositionError(types.InvalidRange, "", line, col, "line %d is out of bounds (file has %d lines)", line, len(lines))
	}
	if col < 0 || col > len(lines[line]) {
		return types.NewPositionError(types.InvalidRange, "", line, col, "column %d is out of bounds on line %d", col, line)
	}
	return nil
}

func (a *analyzer) checkRange(lines []string, r types.CodeRange) error {
	if !r.Valid() {
		return types.NewError(types.InvalidRange, "malformed range %s", r)
	}
	if err := a.checkLine(lines, r.StartLine, r.StartCol); err != nil {
		return err
	}
	return a.checkLine(lines, r.EndLine, r.EndCol)
}

// textAt extracts the source text covered by r.
func textAt(lines []string, r types.CodeRange) string {
	if r.SingleLine() {
		return lines[r.StartLine][r.StartCol:r.EndCol]
	}
	parts := make([]string, 0, r.EndLine-r.StartLine+1)
	parts = append(parts, lines[r.StartLine][r.StartCol:])
	for i := r.StartLine + 1; i < r.EndLine; i++ {
		parts = append(parts, lines[i])
	}
	parts = append(parts, lines[r.EndLine][:r.EndCol])
	return strings.Join(parts, "\n")
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// identifiers collects identifiers from text in first-seen order, excluding
// language keywords.
func (a *analyzer) identifiers(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range identRe.FindAllString(text, -1) {
		if a.keywords[m] || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

var assignRe = regexp.MustCompile(`(?m)^\s*(?:(?:const|let|var|mut)\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*(?::[^=\n]+)?\s*(?:=|\+=|-=|\*=|/=)[^=]`)

// assignedNames collects names assigned anywhere in the given lines.
func assignedNames(lines []string) map[string]bool {
	out := make(map[string]bool)
	for _, line := range lines {
		if m := assignRe.FindStringSubmatch(line); m != nil {
			out[m[1]] = true
		}
	}
	return out
}

var returnRe = regexp.MustCompile(`(^|\s|;|\})return(\s|;|$|\()`)
var branchRe = regexp.MustCompile(`(^|\W)(if|for|while|switch|match|elif|else|case|except|catch)(\W|$)`)

// complexityScore is a bounded estimate from selection size and branching.
func complexityScore(body []string) int {
	score := len(body) / 5
	for _, line := range body {
		if branchRe.MatchString(line) {
			score++
		}
	}
	if score > 10 {
		score = 10
	}
	return score
}

// SuggestName derives a variable name from the shape of an expression.
func SuggestName(expr string) string {
	e := strings.TrimSpace(expr)
	if e == "" {
		return "extracted"
	}
	lower := strings.ToLower(e)
	switch {
	case strings.Contains(lower, "len(") || strings.Contains(lower, ".length") || strings.Contains(lower, ".len()") || strings.Contains(lower, "strlen(") || strings.Contains(lower, ".size()"):
		return "length"
	case e[0] == '"' || e[0] == '\'' || e[0] == '`':
		return "text"
	case e[0] == '[':
		return "items"
	case e[0] == '{':
		return "data"
	case isBooleanExpr(e):
		return "flag"
	case strings.ContainsAny(e, "+-*/%"):
		return "result"
	default:
		return "extracted"
	}
}

func isBooleanExpr(e string) bool {
	for _, op := range []string{"==", "!=", "<=", ">=", "&&", "||", " and ", " or ", " in ", "<", ">"} {
		if strings.Contains(e, op) {
			return true
		}
	}
	return strings.HasPrefix(e, "!") || strings.HasPrefix(e, "not ")
}

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// reindent strips the common leading whitespace from body lines and applies
// the language's block indent instead. Blank lines stay blank.
func reindent(body []string, indent string) []string {
	common := -1
	for _, line := range body {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := len(indentOf(line))
		if common < 0 || lead < common {
			common = lead
		}
	}
	if common < 0 {
		common = 0
	}
	out := make([]string, len(body))
	for i, line := range body {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		out[i] = indent + line[common:]
	}
	return out
}
