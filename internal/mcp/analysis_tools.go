package mcp

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/refract-dev/refract/pkg/lang"
	"github.com/refract-dev/refract/pkg/scan"
	"github.com/refract-dev/refract/pkg/types"
)

// --- analyze_refactor ---

type AnalyzeRefactorInput struct {
	FilePath  string `json:"file_path" jsonschema:"path to the source file"`
	Operation string `json:"operation" jsonschema:"one of extract_function, inline_variable, extract_variable, extract_constant"`
	StartLine int    `json:"start_line" jsonschema:"start line, or the cursor line for inline_variable and extract_constant (zero-based)"`
	StartCol  int    `json:"start_col" jsonschema:"start column, or the cursor column (zero-based)"`
	EndLine   int    `json:"end_line,omitempty" jsonschema:"end line for range-based operations (zero-based)"`
	EndCol    int    `json:"end_col,omitempty" jsonschema:"end column for range-based operations (exclusive)"`
}

// --- validate_constant_name ---

type ValidateConstantNameInput struct {
	Name string `json:"name" jsonschema:"candidate constant name"`
}

type constantNameResult struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
	Rule  string `json:"rule"`
}

// --- find_literal_occurrences ---

type FindLiteralOccurrencesInput struct {
	Literal string `json:"literal" jsonschema:"literal text to search for, e.g. 42 or \"timeout\""`
	Glob    string `json:"glob,omitempty" jsonschema:"doublestar glob relative to the workspace root (defaults to **/*)"`
}

type fileOccurrences struct {
	FilePath    string            `json:"file_path"`
	Language    string            `json:"language"`
	Occurrences []types.CodeRange `json:"occurrences"`
}

func registerAnalysisTools(s *mcpsdk.Server, state *Server) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "analyze_refactor",
		Description: "Run the analysis for a refactoring operation without building or applying a plan. Returns the analysis with any blocking reasons.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in AnalyzeRefactorInput) (*mcpsdk.CallToolResult, any, error) {
		path := state.resolve(in.FilePath)
		source, err := os.ReadFile(path)
		if err != nil {
			return errResult(fmt.Errorf("read %s: %w", path, err)), nil, nil
		}
		analyzer, err := lang.ForFile(path, source)
		if err != nil {
			return errResult(err), nil, nil
		}

		var analysis any
		switch in.Operation {
		case "extract_function":
			analysis, err = analyzer.AnalyzeExtractFunction(string(source),
				types.NewRange(in.StartLine, in.StartCol, in.EndLine, in.EndCol))
		case "inline_variable":
			analysis, err = analyzer.AnalyzeInlineVariable(string(source), in.StartLine, in.StartCol)
		case "extract_variable":
			analysis, err = analyzer.AnalyzeExtractVariable(string(source),
				types.NewRange(in.StartLine, in.StartCol, in.EndLine, in.EndCol))
		case "extract_constant":
			analysis, err = analyzer.AnalyzeExtractConstant(string(source), in.StartLine, in.StartCol)
		default:
			return errResult(fmt.Errorf("unknown operation %q", in.Operation)), nil, nil
		}
		if err != nil {
			return errResult(err), nil, nil
		}

		return textResult(&AnalysisResult{
			Description: in.Operation + " analysis for " + in.FilePath,
			Data:        analysis,
		}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "validate_constant_name",
		Description: "Check a candidate constant name against the SCREAMING_SNAKE_CASE convention used by extract_constant.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ValidateConstantNameInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(&constantNameResult{
			Name:  in.Name,
			Valid: scan.IsValidConstantName(in.Name),
			Rule:  "uppercase segments of letters and digits separated by single underscores, starting with a letter",
		}), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "find_literal_occurrences",
		Description: "Scan workspace source files for occurrences of a literal, excluding matches inside strings and comments. Useful before extract_constant to gauge impact.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in FindLiteralOccurrencesInput) (*mcpsdk.CallToolResult, any, error) {
		if in.Literal == "" {
			return errResult(fmt.Errorf("literal must not be empty")), nil, nil
		}
		pattern := in.Glob
		if pattern == "" {
			pattern = "**/*"
		}

		matches, err := doublestar.Glob(os.DirFS(state.Root()), pattern)
		if err != nil {
			return errResult(fmt.Errorf("bad glob %q: %w", pattern, err)), nil, nil
		}
		sort.Strings(matches)

		var files []fileOccurrences
		for _, rel := range matches {
			analyzer, err := lang.ForPath(rel)
			if err != nil {
				continue // not a supported source file
			}
			source, err := os.ReadFile(state.resolve(rel))
			if err != nil {
				state.logger.Debug("skipping unreadable file", "file", rel, "err", err)
				continue
			}
			occ := scan.Occurrences(string(source), in.Literal, analyzer.Profile())
			if len(occ) == 0 {
				continue
			}
			files = append(files, fileOccurrences{
				FilePath:    rel,
				Language:    analyzer.Name(),
				Occurrences: occ,
			})
		}

		return textResult(&AnalysisResult{
			Description: fmt.Sprintf("occurrences of %s in %d files", in.Literal, len(files)),
			Data:        files,
		}), nil, nil
	})
}
