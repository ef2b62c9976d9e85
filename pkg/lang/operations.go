package lang

import (
	"sort"
	"strings"

	"github.com/refract-dev/refract/pkg/scan"
	"github.com/refract-dev/refract/pkg/types"
)

// AnalyzeExtractConstant locates the literal under the cursor, finds its
// safe-to-replace occurrences, and picks the top-of-file insertion point.
func (a *analyzer) AnalyzeExtractConstant(source string, line, col int) (*types.ExtractConstantAnalysis, error) {
	lines := splitLines(source)
	if err := a.checkLine(lines, line, col); err != nil {
		return nil, err
	}

	literal, _, ok := scan.LocateLiteral(lines[line], line, col, a.profile)
	if !ok {
		return nil, types.NewPositionError(types.NotFound, "", line, col, "no literal found at position %d:%d", line, col)
	}

	occurrences := scan.Occurrences(source, literal, a.profile)

	var blocking []string
	if len(occurrences) == 0 {
		blocking = append(blocking, "literal at cursor is inside a string or comment")
	}

	return &types.ExtractConstantAnalysis{
		LiteralValue:     literal,
		OccurrenceRanges: occurrences,
		IsValidLiteral:   len(blocking) == 0,
		BlockingReasons:  blocking,
		InsertionPoint:   scan.InsertionPoint(source, a.insert),
	}, nil
}

// AnalyzeInlineVariable matches a variable declaration on the given line and
// collects every lexical occurrence of the name strictly after it. Shadowing
// in inner scopes produces false positives; that is an accepted limitation of
// the line scan.
func (a *analyzer) AnalyzeInlineVariable(source string, line, col int) (*types.InlineVariableAnalysis, error) {
	lines := splitLines(source)
	if err := a.checkLine(lines, line, col); err != nil {
		return nil, err
	}

	m := a.varDecl.FindStringSubmatch(lines[line])
	if m == nil {
		return nil, types.NewPositionError(types.NotFound, "", line, col, "no variable declaration found at line %d", line)
	}
	name := m[2]
	initializer := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[3]), ";"))

	var usages []types.CodeRange
	for _, r := range scan.Occurrences(source, name, a.profile) {
		if r.StartLine > line {
			usages = append(usages, r)
		}
	}

	var blocking []string
	if a.callableInit != nil && a.callableInit.MatchString(initializer) {
		blocking = append(blocking, "initializer declares a callable, not a value")
	}
	if len(usages) == 0 {
		blocking = append(blocking, "variable is never used after its declaration")
	}

	return &types.InlineVariableAnalysis{
		VariableName:          name,
		DeclarationRange:      types.NewRange(line, 0, line, len(lines[line])),
		InitializerExpression: initializer,
		UsageLocations:        usages,
		IsSafeToInline:        len(blocking) == 0,
		BlockingReasons:       blocking,
	}, nil
}

// AnalyzeExtractVariable inspects the selected expression. Declarations,
// multi-statement selections, and unparenthesized multi-line expressions are
// rejected through blocking reasons, not hard errors.
func (a *analyzer) AnalyzeExtractVariable(source string, r types.CodeRange) (*types.ExtractVariableAnalysis, error) {
	lines := splitLines(source)
	if err := a.checkRange(lines, r); err != nil {
		return nil, err
	}

	expr := textAt(lines, r)
	trimmed := strings.TrimSpace(expr)

	var blocking []string
	switch {
	case trimmed == "":
		blocking = append(blocking, "selection is empty")
	case a.varDecl.MatchString(trimmed):
		blocking = append(blocking, "selection is a declaration, not an expression")
	case a.statementEnd != "" && strings.Contains(strings.TrimSuffix(trimmed, a.statementEnd), a.statementEnd):
		blocking = append(blocking, "selection spans multiple statements")
	case !r.SingleLine() && !isParenthesized(trimmed):
		blocking = append(blocking, "multi-line expression must be parenthesized")
	}

	return &types.ExtractVariableAnalysis{
		Expression:      expr,
		ExpressionRange: r,
		CanExtract:      len(blocking) == 0,
		SuggestedName:   SuggestName(expr),
		InsertionPoint:  types.PointAt(r.StartLine, 0),
		BlockingReasons: blocking,
		ScopeType:       a.scopeTypeAt(lines, r.StartLine),
	}, nil
}

// AnalyzeExtractFunction never fails for an in-bounds range: parameter and
// return inference is best-effort, and an empty result is a weaker plan, not
// an error.
func (a *analyzer) AnalyzeExtractFunction(source string, r types.CodeRange) (*types.ExtractableFunction, error) {
	lines := splitLines(source)
	if err := a.checkRange(lines, r); err != nil {
		return nil, err
	}

	body := lines[r.StartLine : r.EndLine+1]
	bodyText := strings.Join(body, "\n")

	enclosingStart := a.enclosingFunctionStart(lines, r.StartLine)
	before := lines[max(enclosingStart, 0):r.StartLine]
	after := lines[r.EndLine+1:]

	assignedBefore := assignedNames(before)
	if enclosingStart >= 0 {
		for _, p := range a.identifiers(lines[enclosingStart]) {
			assignedBefore[p] = true
		}
	}
	assignedIn := assignedNames(body)

	var params []string
	for _, id := range a.identifiers(bodyText) {
		if assignedBefore[id] && !assignedIn[id] {
			params = append(params, id)
		}
	}

	afterText := strings.Join(after, "\n")
	usedAfter := make(map[string]bool)
	for _, id := range a.identifiers(afterText) {
		usedAfter[id] = true
	}
	var returns []string
	for name := range assignedIn {
		if usedAfter[name] {
			returns = append(returns, name)
		}
	}
	sort.Strings(returns)

	insertion := types.CodeRange{}
	if enclosingStart >= 0 {
		insertion = types.PointAt(enclosingStart, 0)
	} else {
		insertion = scan.InsertionPoint(source, a.insert)
	}

	return &types.ExtractableFunction{
		SelectedRange:            r,
		RequiredParameters:       params,
		ReturnVariables:          returns,
		SuggestedName:            a.defaultFuncName,
		InsertionPoint:           insertion,
		ContainsReturnStatements: returnRe.MatchString(bodyText),
		ComplexityScore:          complexityScore(body),
	}, nil
}

// enclosingFunctionStart scans upward for the nearest function definition
// line, returning -1 when the position is at top level.
func (a *analyzer) enclosingFunctionStart(lines []string, fromLine int) int {
	for i := fromLine; i >= 0; i-- {
		if a.funcStart.MatchString(lines[i]) {
			return i
		}
	}
	return -1
}

func (a *analyzer) scopeTypeAt(lines []string, line int) string {
	if a.enclosingFunctionStart(lines, line) >= 0 {
		return "function"
	}
	return "module"
}

func isParenthesized(expr string) bool {
	if len(expr) < 2 || expr[0] != '(' || expr[len(expr)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(expr)-1 {
				return false
			}
		}
	}
	return depth == 0
}

