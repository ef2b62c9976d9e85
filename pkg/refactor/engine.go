// Package refactor is the operation facade: it wires file access, analysis,
// planning, transformation, and the post-transform syntax check into the four
// refactoring operations.
package refactor

import (
	"context"
	"log/slog"

	"github.com/refract-dev/refract/internal/fileservice"
	"github.com/refract-dev/refract/pkg/apply"
	"github.com/refract-dev/refract/pkg/lang"
	"github.com/refract-dev/refract/pkg/plan"
	"github.com/refract-dev/refract/pkg/syntax"
	"github.com/refract-dev/refract/pkg/types"
)

// Engine exposes the refactoring operations. Every method is safe for
// concurrent use on distinct files; callers serialize operations that target
// the same file.
type Engine interface {
	ExtractFunction(ctx context.Context, req types.ExtractFunctionRequest) (*types.RefactorResult, error)
	InlineVariable(ctx context.Context, req types.InlineVariableRequest) (*types.RefactorResult, error)
	ExtractVariable(ctx context.Context, req types.ExtractVariableRequest) (*types.RefactorResult, error)
	ExtractConstant(ctx context.Context, req types.ExtractConstantRequest) (*types.RefactorResult, error)
}

// DefaultEngine is the standard Engine implementation.
type DefaultEngine struct {
	fs     fileservice.Service
	logger *slog.Logger
}

// CreateEngine returns an Engine backed by the real filesystem.
func CreateEngine(logger *slog.Logger) *DefaultEngine {
	return CreateEngineWithFileService(logger, fileservice.Disk{})
}

// CreateEngineWithFileService returns an Engine backed by the given file
// service; tests pass an in-memory one.
func CreateEngineWithFileService(logger *slog.Logger, fs fileservice.Service) *DefaultEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultEngine{fs: fs, logger: logger}
}

// ExtractFunction extracts the selected lines into a new function and
// replaces the selection with a call to it.
func (e *DefaultEngine) ExtractFunction(ctx context.Context, req types.ExtractFunctionRequest) (*types.RefactorResult, error) {
	e.logger.Debug("extract function", "file", req.FilePath, "name", req.NewFunctionName, "preview", req.Preview)

	source, analyzer, err := e.load(req.FilePath)
	if err != nil {
		return nil, err
	}

	r := types.NewRange(req.StartLine, req.StartCol, req.EndLine, req.EndCol)
	analysis, err := analyzer.AnalyzeExtractFunction(source, r)
	if err != nil {
		return nil, withFile(err, req.FilePath)
	}

	name := req.NewFunctionName
	if name == "" {
		name = analysis.SuggestedName
	}

	p, err := plan.ExtractFunction(source, req.FilePath, name, analyzer, analysis)
	if err != nil {
		return refused(analysis, req.Preview, err), withFile(err, req.FilePath)
	}

	return e.finish(ctx, req.FilePath, source, analysis, p, req.Preview)
}

// InlineVariable replaces every usage of the variable declared at the given
// position with its initializer and deletes the declaration.
func (e *DefaultEngine) InlineVariable(ctx context.Context, req types.InlineVariableRequest) (*types.RefactorResult, error) {
	e.logger.Debug("inline variable", "file", req.FilePath, "line", req.Line, "preview", req.Preview)

	source, analyzer, err := e.load(req.FilePath)
	if err != nil {
		return nil, err
	}

	analysis, err := analyzer.AnalyzeInlineVariable(source, req.Line, req.Col)
	if err != nil {
		return nil, withFile(err, req.FilePath)
	}

	p, err := plan.InlineVariable(source, req.FilePath, analyzer, analysis)
	if err != nil {
		return refused(analysis, req.Preview, err), withFile(err, req.FilePath)
	}

	return e.finish(ctx, req.FilePath, source, analysis, p, req.Preview)
}

// ExtractVariable extracts the selected expression into a named local
// variable declared just above it.
func (e *DefaultEngine) ExtractVariable(ctx context.Context, req types.ExtractVariableRequest) (*types.RefactorResult, error) {
	e.logger.Debug("extract variable", "file", req.FilePath, "name", req.VariableName, "preview", req.Preview)

	source, analyzer, err := e.load(req.FilePath)
	if err != nil {
		return nil, err
	}

	r := types.NewRange(req.StartLine, req.StartCol, req.EndLine, req.EndCol)
	analysis, err := analyzer.AnalyzeExtractVariable(source, r)
	if err != nil {
		return nil, withFile(err, req.FilePath)
	}

	p, err := plan.ExtractVariable(source, req.FilePath, req.VariableName, analyzer, analysis)
	if err != nil {
		return refused(analysis, req.Preview, err), withFile(err, req.FilePath)
	}

	return e.finish(ctx, req.FilePath, source, analysis, p, req.Preview)
}

// ExtractConstant replaces every safe occurrence of the literal under the
// cursor with a named constant declared at the top of the file.
func (e *DefaultEngine) ExtractConstant(ctx context.Context, req types.ExtractConstantRequest) (*types.RefactorResult, error) {
	e.logger.Debug("extract constant", "file", req.FilePath, "name", req.Name, "preview", req.Preview)

	source, analyzer, err := e.load(req.FilePath)
	if err != nil {
		return nil, err
	}

	analysis, err := analyzer.AnalyzeExtractConstant(source, req.Line, req.Character)
	if err != nil {
		return nil, withFile(err, req.FilePath)
	}

	p, err := plan.ExtractConstant(source, req.FilePath, req.Name, analyzer, analysis)
	if err != nil {
		return refused(analysis, req.Preview, err), withFile(err, req.FilePath)
	}

	return e.finish(ctx, req.FilePath, source, analysis, p, req.Preview)
}

// load reads the file and selects its analyzer.
func (e *DefaultEngine) load(path string) (string, lang.Analyzer, error) {
	source, err := e.fs.Read(path)
	if err != nil {
		return "", nil, types.NewError(types.FileSystemError, "read %s: %v", path, err)
	}
	analyzer, err := lang.ForFile(path, []byte(source))
	if err != nil {
		return "", nil, err
	}
	return source, analyzer, nil
}

// finish runs the common tail of every operation: in preview mode it returns
// the plan without touching the file; in execute mode it applies the plan,
// writes the result, and rolls back to the pre-transform snapshot if the
// transformed file no longer parses.
func (e *DefaultEngine) finish(ctx context.Context, path, source string, analysis any, p *types.EditPlan, preview bool) (*types.RefactorResult, error) {
	if preview {
		return &types.RefactorResult{
			Success:     true,
			PreviewMode: true,
			Analysis:    analysis,
			Plan:        p,
		}, nil
	}

	transformed, stats, err := apply.Apply(source, p)
	if err != nil {
		return nil, withFile(err, path)
	}
	e.logger.Debug("plan applied", "file", path, "applied", stats.AppliedCount, "skipped", stats.SkippedCount)

	if err := e.fs.Write(path, transformed); err != nil {
		return nil, types.NewError(types.FileSystemError, "write %s: %v", path, err)
	}

	if err := syntax.Check(ctx, path, transformed); err != nil {
		e.logger.Warn("syntax check failed, rolling back", "file", path, "err", err)
		if restoreErr := e.fs.Write(path, source); restoreErr != nil {
			return nil, types.NewError(types.FileSystemError,
				"rollback of %s failed after syntax error: %v (original failure: %v)", path, restoreErr, err)
		}
		return &types.RefactorResult{
			Success:  false,
			Analysis: analysis,
			Plan:     p,
			Error:    err.Error(),
		}, err
	}

	return &types.RefactorResult{
		Success:              true,
		Analysis:             analysis,
		Plan:                 p,
		TransformationResult: &stats,
		ModifiedSource:       transformed,
	}, nil
}

// refused packages a plan-builder rejection so the caller still sees the
// analysis and its blocking reasons.
func refused(analysis any, preview bool, err error) *types.RefactorResult {
	return &types.RefactorResult{
		Success:     false,
		PreviewMode: preview,
		Analysis:    analysis,
		Error:       err.Error(),
	}
}

// withFile stamps the file path onto typed errors that were produced without
// one.
func withFile(err error, path string) error {
	if re, ok := err.(*types.RefactorError); ok && re.File == "" {
		re.File = path
	}
	return err
}
