// Package plan turns analyses into edit plans. The builder is
// language-agnostic: everything language-specific arrives through the
// analyzer's Forms.
//
// Priorities are the only sequencing signal the transformer honors, so the
// builder assigns them to keep dependent edits strictly ordered: insertions
// at 100, replacements descending from 90 (or 100 for inline usages), and the
// inline declaration delete at 50, after every replacement.
package plan

import (
	"sort"
	"strings"
	"time"

	"github.com/refract-dev/refract/pkg/lang"
	"github.com/refract-dev/refract/pkg/scan"
	"github.com/refract-dev/refract/pkg/types"
)

const (
	insertPriority  = 100
	replacePriority = 90
	deletePriority  = 50
)

// blocked wraps an analysis's blocking reasons into the hard error returned
// when a plan is refused.
func blocked(op string, reasons []string) error {
	return types.NewError(types.Blocked, "cannot %s: %s", op, strings.Join(reasons, "; "))
}

func metadata(intent string, args map[string]any, complexity int, impactArea string) types.PlanMetadata {
	if complexity > 10 {
		complexity = 10
	}
	return types.PlanMetadata{
		IntentName:      intent,
		IntentArguments: args,
		CreatedAt:       time.Now().UTC(),
		Complexity:      complexity,
		ImpactAreas:     []string{impactArea},
	}
}

func syntaxCheckRule() []types.ValidationRule {
	return []types.ValidationRule{{
		Kind:        types.SyntaxCheck,
		Description: "transformed file must still parse",
	}}
}

func sourceLines(source string) []string {
	return strings.Split(source, "\n")
}

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

// orderForApplication sorts ranges top to bottom, and right to left within a
// line, so that descending priorities apply same-line edits rightmost first
// and earlier edits never shift a later edit's columns.
func orderForApplication(ranges []types.CodeRange) []types.CodeRange {
	out := make([]types.CodeRange, len(ranges))
	copy(out, ranges)
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartLine != out[j].StartLine {
			return out[i].StartLine < out[j].StartLine
		}
		return out[i].StartCol > out[j].StartCol
	})
	return out
}

// ExtractFunction builds the two-edit plan: insert the new function, then
// replace the selection with the call site.
func ExtractFunction(source, sourceFile, newName string, a lang.Analyzer, fn *types.ExtractableFunction) (*types.EditPlan, error) {
	lines := sourceLines(source)
	forms := a.Forms()

	body := lines[fn.SelectedRange.StartLine : fn.SelectedRange.EndLine+1]
	funcText := forms.FunctionDecl(newName, fn.RequiredParameters, body, fn.ReturnVariables) + "\n"

	indent := indentOf(lines[fn.SelectedRange.StartLine])
	callText := forms.CallSite(indent, newName, fn.RequiredParameters, fn.ReturnVariables)

	selRange := types.NewRange(fn.SelectedRange.StartLine, 0, fn.SelectedRange.EndLine, len(lines[fn.SelectedRange.EndLine]))

	edits := []types.TextEdit{
		{
			Type:        types.Insert,
			Location:    fn.InsertionPoint,
			NewText:     funcText,
			Priority:    insertPriority,
			Description: "insert function " + newName,
		},
		{
			Type:         types.Replace,
			Location:     selRange,
			OriginalText: textAt(lines, selRange),
			NewText:      callText,
			Priority:     replacePriority,
			Description:  "replace selection with call to " + newName,
		},
	}

	return &types.EditPlan{
		SourceFile:  sourceFile,
		Edits:       edits,
		Validations: syntaxCheckRule(),
		Metadata: metadata("extract_function", map[string]any{
			"new_function_name": newName,
			"selected_range":    fn.SelectedRange,
			"parameters":        fn.RequiredParameters,
			"returns":           fn.ReturnVariables,
		}, fn.ComplexityScore, "function_structure"),
	}, nil
}

// InlineVariable builds one replacement per usage plus a final delete of the
// declaration. It refuses when the analysis is not safe to inline.
func InlineVariable(source, sourceFile string, a lang.Analyzer, iv *types.InlineVariableAnalysis) (*types.EditPlan, error) {
	if !iv.IsSafeToInline {
		return nil, blocked("inline variable "+iv.VariableName, iv.BlockingReasons)
	}

	lines := sourceLines(source)

	replacement := iv.InitializerExpression
	if containsOperator(replacement) {
		replacement = "(" + replacement + ")"
	}

	var edits []types.TextEdit
	priority := uint(insertPriority)
	for _, usage := range orderForApplication(iv.UsageLocations) {
		edits = append(edits, types.TextEdit{
			Type:         types.Replace,
			Location:     usage,
			OriginalText: iv.VariableName,
			NewText:      replacement,
			Priority:     priority,
			Description:  "replace usage of " + iv.VariableName + " with its initializer",
		})
		if priority > deletePriority+1 {
			priority--
		}
	}

	edits = append(edits, types.TextEdit{
		Type:         types.Delete,
		Location:     iv.DeclarationRange,
		OriginalText: textAt(lines, iv.DeclarationRange),
		Priority:     deletePriority,
		Description:  "delete declaration of " + iv.VariableName,
	})

	return &types.EditPlan{
		SourceFile:  sourceFile,
		Edits:       edits,
		Validations: syntaxCheckRule(),
		Metadata: metadata("inline_variable", map[string]any{
			"variable_name": iv.VariableName,
			"usage_count":   len(iv.UsageLocations),
		}, len(iv.UsageLocations), "variables"),
	}, nil
}

// ExtractVariable builds the declaration insert plus the expression
// replacement. It refuses when the analysis cannot extract.
func ExtractVariable(source, sourceFile, name string, a lang.Analyzer, ev *types.ExtractVariableAnalysis) (*types.EditPlan, error) {
	if !ev.CanExtract {
		return nil, blocked("extract variable", ev.BlockingReasons)
	}
	if name == "" {
		name = ev.SuggestedName
	}

	lines := sourceLines(source)
	forms := a.Forms()
	indent := indentOf(lines[ev.ExpressionRange.StartLine])

	edits := []types.TextEdit{
		{
			Type:        types.Insert,
			Location:    ev.InsertionPoint,
			NewText:     forms.VariableDecl(indent, name, ev.Expression),
			Priority:    insertPriority,
			Description: "declare " + name,
		},
		{
			Type:         types.Replace,
			Location:     ev.ExpressionRange,
			OriginalText: ev.Expression,
			NewText:      name,
			Priority:     replacePriority,
			Description:  "replace expression with " + name,
		},
	}

	return &types.EditPlan{
		SourceFile:  sourceFile,
		Edits:       edits,
		Validations: syntaxCheckRule(),
		Metadata: metadata("extract_variable", map[string]any{
			"variable_name": name,
			"expression":    ev.Expression,
		}, 1, "variables"),
	}, nil
}

// ExtractConstant builds the constant declaration insert plus one replacement
// per occurrence. It refuses invalid literals and names that fail the
// constant-naming convention.
func ExtractConstant(source, sourceFile, name string, a lang.Analyzer, ec *types.ExtractConstantAnalysis) (*types.EditPlan, error) {
	if !ec.IsValidLiteral {
		return nil, blocked("extract constant", ec.BlockingReasons)
	}
	if !scan.IsValidConstantName(name) {
		return nil, types.NewError(types.InvalidName, "invalid constant name %q: use SCREAMING_SNAKE_CASE", name)
	}

	forms := a.Forms()

	edits := []types.TextEdit{{
		Type:        types.Insert,
		Location:    ec.InsertionPoint,
		NewText:     forms.ConstantDecl(name, ec.LiteralValue),
		Priority:    insertPriority,
		Description: "declare constant " + name,
	}}

	priority := uint(replacePriority)
	for _, occ := range orderForApplication(ec.OccurrenceRanges) {
		edits = append(edits, types.TextEdit{
			Type:         types.Replace,
			Location:     occ,
			OriginalText: ec.LiteralValue,
			NewText:      name,
			Priority:     priority,
			Description:  "replace " + ec.LiteralValue + " with " + name,
		})
		if priority > deletePriority+1 {
			priority--
		}
	}

	return &types.EditPlan{
		SourceFile:  sourceFile,
		Edits:       edits,
		Validations: syntaxCheckRule(),
		Metadata: metadata("extract_constant", map[string]any{
			"name":    name,
			"literal": ec.LiteralValue,
		}, len(ec.OccurrenceRanges), "constants"),
	}, nil
}

// containsOperator mirrors the precedence guard used when inlining: an
// initializer with a top-level operator is parenthesized at every call site.
func containsOperator(expr string) bool {
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '+', '-', '*', '/', '%', '<', '>', '|', '&', '^':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
