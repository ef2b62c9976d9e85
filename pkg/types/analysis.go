package types

// The analysis types below are advisory: parameter and return inference is
// best-effort (regex- or scan-based depending on the language backend), and an
// empty list means inference found nothing, not that nothing is needed.
//
// Shared invariant: the safety flag on each analysis is true if and only if
// BlockingReasons is empty. The plan builder refuses to build a plan when the
// flag is false.

// ExtractableFunction describes a selection that can become a new function.
type ExtractableFunction struct {
	SelectedRange            CodeRange `json:"selected_range"`
	RequiredParameters       []string  `json:"required_parameters"`
	ReturnVariables          []string  `json:"return_variables"`
	SuggestedName            string    `json:"suggested_name"`
	InsertionPoint           CodeRange `json:"insertion_point"`
	ContainsReturnStatements bool      `json:"contains_return_statements"`
	ComplexityScore          int       `json:"complexity_score"`
}

// InlineVariableAnalysis describes a variable declaration and every place
// its name occurs after it. Usage locations come from a lexical scan, so a
// shadowing redeclaration in an inner scope produces false positives.
type InlineVariableAnalysis struct {
	VariableName           string      `json:"variable_name"`
	DeclarationRange       CodeRange   `json:"declaration_range"`
	InitializerExpression  string      `json:"initializer_expression"`
	UsageLocations         []CodeRange `json:"usage_locations"`
	IsSafeToInline         bool        `json:"is_safe_to_inline"`
	BlockingReasons        []string    `json:"blocking_reasons,omitempty"`
}

// ExtractVariableAnalysis describes an expression selection.
type ExtractVariableAnalysis struct {
	Expression      string    `json:"expression"`
	ExpressionRange CodeRange `json:"expression_range"`
	CanExtract      bool      `json:"can_extract"`
	SuggestedName   string    `json:"suggested_name"`
	InsertionPoint  CodeRange `json:"insertion_point"`
	BlockingReasons []string  `json:"blocking_reasons,omitempty"`
	ScopeType       string    `json:"scope_type"`
}

// ExtractConstantAnalysis describes a literal and its safe-to-replace
// occurrences (matches inside strings or comments are excluded).
type ExtractConstantAnalysis struct {
	LiteralValue     string      `json:"literal_value"`
	OccurrenceRanges []CodeRange `json:"occurrence_ranges"`
	IsValidLiteral   bool        `json:"is_valid_literal"`
	BlockingReasons  []string    `json:"blocking_reasons,omitempty"`
	InsertionPoint   CodeRange   `json:"insertion_point"`
}
