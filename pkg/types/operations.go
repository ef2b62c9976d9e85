package types

// ExtractFunctionRequest represents extracting a selection into a new function.
type ExtractFunctionRequest struct {
	FilePath        string `json:"file_path"`
	StartLine       int    `json:"start_line"`
	StartCol        int    `json:"start_col"`
	EndLine         int    `json:"end_line"`
	EndCol          int    `json:"end_col"`
	NewFunctionName string `json:"new_function_name"`
	Preview         bool   `json:"preview,omitempty"`
}

// InlineVariableRequest represents replacing a variable's usages with its
// initializer and deleting the declaration.
type InlineVariableRequest struct {
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Preview  bool   `json:"preview,omitempty"`
}

// ExtractVariableRequest represents extracting an expression into a variable.
type ExtractVariableRequest struct {
	FilePath     string `json:"file_path"`
	StartLine    int    `json:"start_line"`
	StartCol     int    `json:"start_col"`
	EndLine      int    `json:"end_line"`
	EndCol       int    `json:"end_col"`
	VariableName string `json:"variable_name,omitempty"`
	Preview      bool   `json:"preview,omitempty"`
}

// ExtractConstantRequest represents extracting a literal into a named constant.
type ExtractConstantRequest struct {
	FilePath  string `json:"file_path"`
	Line      int    `json:"line"`
	Character int    `json:"character"`
	Name      string `json:"name"`
	Preview   bool   `json:"preview,omitempty"`
}

// RefactorResult is the common envelope every operation returns. Analysis is
// always present once analysis has run; TransformationResult and
// ModifiedSource are present only when the plan was executed.
type RefactorResult struct {
	Success              bool        `json:"success"`
	PreviewMode          bool        `json:"preview_mode"`
	Analysis             any         `json:"analysis,omitempty"`
	Plan                 *EditPlan   `json:"plan,omitempty"`
	TransformationResult *ApplyStats `json:"transformation_result,omitempty"`
	ModifiedSource       string      `json:"modified_source,omitempty"`
	Error                string      `json:"error,omitempty"`
}
