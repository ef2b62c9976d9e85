package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/refract-dev/refract/pkg/types"
)

// --- extract_function ---

type ExtractFunctionInput struct {
	FilePath        string `json:"file_path" jsonschema:"path to the source file (absolute or relative to workspace root)"`
	StartLine       int    `json:"start_line" jsonschema:"first line of the selection (zero-based)"`
	StartCol        int    `json:"start_col" jsonschema:"start column of the selection (zero-based)"`
	EndLine         int    `json:"end_line" jsonschema:"last line of the selection (zero-based)"`
	EndCol          int    `json:"end_col" jsonschema:"end column of the selection (exclusive)"`
	NewFunctionName string `json:"new_function_name,omitempty" jsonschema:"name for the new function (a name is suggested when empty)"`
	Preview         bool   `json:"preview,omitempty" jsonschema:"return the edit plan without modifying the file"`
}

// --- inline_variable ---

type InlineVariableInput struct {
	FilePath string `json:"file_path" jsonschema:"path to the source file"`
	Line     int    `json:"line" jsonschema:"line of the variable declaration (zero-based)"`
	Col      int    `json:"col" jsonschema:"column within the declaration (zero-based)"`
	Preview  bool   `json:"preview,omitempty" jsonschema:"return the edit plan without modifying the file"`
}

// --- extract_variable ---

type ExtractVariableInput struct {
	FilePath     string `json:"file_path" jsonschema:"path to the source file"`
	StartLine    int    `json:"start_line" jsonschema:"first line of the expression (zero-based)"`
	StartCol     int    `json:"start_col" jsonschema:"start column of the expression (zero-based)"`
	EndLine      int    `json:"end_line" jsonschema:"last line of the expression (zero-based)"`
	EndCol       int    `json:"end_col" jsonschema:"end column of the expression (exclusive)"`
	VariableName string `json:"variable_name,omitempty" jsonschema:"name for the new variable (a name is suggested when empty)"`
	Preview      bool   `json:"preview,omitempty" jsonschema:"return the edit plan without modifying the file"`
}

// --- extract_constant ---

type ExtractConstantInput struct {
	FilePath  string `json:"file_path" jsonschema:"path to the source file"`
	Line      int    `json:"line" jsonschema:"line of the literal (zero-based)"`
	Character int    `json:"character" jsonschema:"column within or adjacent to the literal (zero-based)"`
	Name      string `json:"name" jsonschema:"constant name in SCREAMING_SNAKE_CASE"`
	Preview   bool   `json:"preview,omitempty" jsonschema:"return the edit plan without modifying the file"`
}

// runOp is the common handler tail: serialize per file, note external
// changes, and wrap the engine result. A result with blocking reasons is
// still a text result so the client sees why the plan was refused.
func runOp(state *Server, path string, op func() (*types.RefactorResult, error)) (*mcpsdk.CallToolResult, any, error) {
	unlock := state.lockFile(path)
	defer unlock()

	if state.clearStale(path) {
		state.logger.Debug("file changed on disk since last operation, re-analyzing", "file", path)
	}

	result, err := op()
	if result == nil && err != nil {
		return errResult(err), nil, nil
	}
	return textResult(result), nil, nil
}

func registerRefactorTools(s *mcpsdk.Server, state *Server) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "extract_function",
		Description: "Extract a selection of lines into a new function and replace the selection with a call. Parameters and return values are inferred lexically.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ExtractFunctionInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.resolve(in.FilePath)
		return runOp(state, path, func() (*types.RefactorResult, error) {
			return state.Engine().ExtractFunction(ctx, types.ExtractFunctionRequest{
				FilePath:        path,
				StartLine:       in.StartLine,
				StartCol:        in.StartCol,
				EndLine:         in.EndLine,
				EndCol:          in.EndCol,
				NewFunctionName: in.NewFunctionName,
				Preview:         in.Preview,
			})
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "inline_variable",
		Description: "Replace every usage of the variable declared at the given position with its initializer and delete the declaration.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in InlineVariableInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.resolve(in.FilePath)
		return runOp(state, path, func() (*types.RefactorResult, error) {
			return state.Engine().InlineVariable(ctx, types.InlineVariableRequest{
				FilePath: path,
				Line:     in.Line,
				Col:      in.Col,
				Preview:  in.Preview,
			})
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "extract_variable",
		Description: "Extract the selected expression into a named local variable declared just above it.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ExtractVariableInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.resolve(in.FilePath)
		return runOp(state, path, func() (*types.RefactorResult, error) {
			return state.Engine().ExtractVariable(ctx, types.ExtractVariableRequest{
				FilePath:     path,
				StartLine:    in.StartLine,
				StartCol:     in.StartCol,
				EndLine:      in.EndLine,
				EndCol:       in.EndCol,
				VariableName: in.VariableName,
				Preview:      in.Preview,
			})
		})
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "extract_constant",
		Description: "Replace every safe occurrence of the literal under the cursor with a named constant declared at the top of the file. Matches inside strings and comments are left alone.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ExtractConstantInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.resolve(in.FilePath)
		return runOp(state, path, func() (*types.RefactorResult, error) {
			return state.Engine().ExtractConstant(ctx, types.ExtractConstantRequest{
				FilePath:  path,
				Line:      in.Line,
				Character: in.Character,
				Name:      in.Name,
				Preview:   in.Preview,
			})
		})
	})
}
