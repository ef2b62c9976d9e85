package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refract-dev/refract/pkg/types"
)

func TestForPath(t *testing.T) {
	cases := map[string]string{
		"main.c":     "clike",
		"lib.hpp":    "clike",
		"app.py":     "python",
		"mod.rs":     "rust",
		"index.js":   "javascript",
		"widget.tsx": "javascript",
	}
	for path, want := range cases {
		a, err := ForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, a.Name(), path)
	}

	_, err := ForPath("notes.txt")
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.Unsupported))
}

func TestForFileShebangFallback(t *testing.T) {
	a, err := ForFile("deploy", []byte("#!/usr/bin/env python\nprint(1)\n"))
	require.NoError(t, err)
	assert.Equal(t, "python", a.Name())
}

func TestAnalyzeExtractConstant(t *testing.T) {
	a, _ := ForPath("cfg.py")
	source := "retries = 3\nbackoff = 3 * 2\n# 3 is the default\n"

	analysis, err := a.AnalyzeExtractConstant(source, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, "3", analysis.LiteralValue)
	assert.True(t, analysis.IsValidLiteral)
	assert.Empty(t, analysis.BlockingReasons)
	require.Len(t, analysis.OccurrenceRanges, 2)
	assert.Equal(t, 0, analysis.OccurrenceRanges[0].StartLine)
	assert.Equal(t, 1, analysis.OccurrenceRanges[1].StartLine)
	assert.True(t, analysis.InsertionPoint.IsZero())
}

func TestAnalyzeExtractConstantInsideString(t *testing.T) {
	a, _ := ForPath("cfg.js")
	source := "msg = \"code 404\";\n"

	analysis, err := a.AnalyzeExtractConstant(source, 0, 12)
	require.NoError(t, err)

	// The literal is found but every textual occurrence sits inside the
	// string, so the analysis carries a blocking reason instead of failing.
	assert.False(t, analysis.IsValidLiteral)
	assert.NotEmpty(t, analysis.BlockingReasons)
	assert.Empty(t, analysis.OccurrenceRanges)
}

func TestAnalyzeExtractConstantNoLiteral(t *testing.T) {
	a, _ := ForPath("cfg.js")
	_, err := a.AnalyzeExtractConstant("return value;\n", 0, 3)
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.NotFound))
}

func TestAnalyzeExtractConstantOutOfBounds(t *testing.T) {
	a, _ := ForPath("cfg.js")
	_, err := a.AnalyzeExtractConstant("x = 1;\n", 99, 0)
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.InvalidRange))
}

func TestAnalyzeInlineVariable(t *testing.T) {
	a, _ := ForPath("m.js")
	source := "const limit = 10;\nuse(limit);\ncheck(limit);\n"

	analysis, err := a.AnalyzeInlineVariable(source, 0, 6)
	require.NoError(t, err)

	assert.Equal(t, "limit", analysis.VariableName)
	assert.Equal(t, "10", analysis.InitializerExpression)
	assert.True(t, analysis.IsSafeToInline)
	require.Len(t, analysis.UsageLocations, 2)
	assert.Equal(t, 1, analysis.UsageLocations[0].StartLine)
	assert.Equal(t, 2, analysis.UsageLocations[1].StartLine)
	assert.Equal(t, types.NewRange(0, 0, 0, 17), analysis.DeclarationRange)
}

func TestAnalyzeInlineVariableLambdaBlocked(t *testing.T) {
	a, _ := ForPath("m.py")
	source := "f = lambda x: x\nf(1)\n"

	analysis, err := a.AnalyzeInlineVariable(source, 0, 0)
	require.NoError(t, err)

	assert.False(t, analysis.IsSafeToInline)
	assert.NotEmpty(t, analysis.BlockingReasons)
}

func TestAnalyzeInlineVariableUnused(t *testing.T) {
	a, _ := ForPath("m.js")
	analysis, err := a.AnalyzeInlineVariable("const x = 1;\n", 0, 0)
	require.NoError(t, err)

	assert.False(t, analysis.IsSafeToInline)
	assert.NotEmpty(t, analysis.BlockingReasons)
}

func TestAnalyzeInlineVariableDestructuring(t *testing.T) {
	a, _ := ForPath("m.js")
	_, err := a.AnalyzeInlineVariable("const { a, b } = pair;\n", 0, 6)
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.NotFound))
}

func TestAnalyzeExtractVariable(t *testing.T) {
	a, _ := ForPath("m.py")
	source := "total = price * qty\n"

	analysis, err := a.AnalyzeExtractVariable(source, types.NewRange(0, 8, 0, 19))
	require.NoError(t, err)

	assert.Equal(t, "price * qty", analysis.Expression)
	assert.True(t, analysis.CanExtract)
	assert.Equal(t, "result", analysis.SuggestedName)
	assert.Equal(t, types.PointAt(0, 0), analysis.InsertionPoint)
	assert.Equal(t, "module", analysis.ScopeType)
}

func TestAnalyzeExtractVariableRejectsDeclaration(t *testing.T) {
	a, _ := ForPath("m.py")
	source := "total = price * qty\n"

	analysis, err := a.AnalyzeExtractVariable(source, types.NewRange(0, 0, 0, 19))
	require.NoError(t, err)

	assert.False(t, analysis.CanExtract)
	assert.NotEmpty(t, analysis.BlockingReasons)
}

func TestAnalyzeExtractVariableRejectsMultiStatement(t *testing.T) {
	a, _ := ForPath("m.js")
	source := "a(); b();\n"

	analysis, err := a.AnalyzeExtractVariable(source, types.NewRange(0, 0, 0, 8))
	require.NoError(t, err)

	assert.False(t, analysis.CanExtract)
	assert.NotEmpty(t, analysis.BlockingReasons)
}

func TestAnalyzeExtractVariableScopeType(t *testing.T) {
	a, _ := ForPath("m.py")
	source := "def handler():\n    return price * qty\n"

	analysis, err := a.AnalyzeExtractVariable(source, types.NewRange(1, 11, 1, 22))
	require.NoError(t, err)
	assert.Equal(t, "function", analysis.ScopeType)
}

func TestAnalyzeExtractFunction(t *testing.T) {
	a, _ := ForPath("m.py")
	source := "def main():\n" +
		"    items = load()\n" +
		"    total = 0\n" +
		"    for it in items:\n" +
		"        total += it\n" +
		"    print(total)\n"

	analysis, err := a.AnalyzeExtractFunction(source, types.NewRange(2, 0, 4, 19))
	require.NoError(t, err)

	assert.Equal(t, []string{"items"}, analysis.RequiredParameters)
	assert.Equal(t, []string{"total"}, analysis.ReturnVariables)
	assert.Equal(t, "extracted_function", analysis.SuggestedName)
	assert.Equal(t, types.PointAt(0, 0), analysis.InsertionPoint)
	assert.False(t, analysis.ContainsReturnStatements)
	assert.GreaterOrEqual(t, analysis.ComplexityScore, 1)
}

func TestAnalyzeExtractFunctionDetectsReturn(t *testing.T) {
	a, _ := ForPath("m.js")
	source := "function f(a) {\n  if (!a) {\n    return null;\n  }\n  return a;\n}\n"

	analysis, err := a.AnalyzeExtractFunction(source, types.NewRange(1, 0, 3, 3))
	require.NoError(t, err)
	assert.True(t, analysis.ContainsReturnStatements)
}

func TestAnalyzeExtractFunctionInvalidRange(t *testing.T) {
	a, _ := ForPath("m.js")
	_, err := a.AnalyzeExtractFunction("let a = 1;\n", types.NewRange(3, 0, 1, 0))
	require.Error(t, err)
	assert.True(t, types.IsErrorType(err, types.InvalidRange))
}

func TestAnalysisIsIdempotent(t *testing.T) {
	a, _ := ForPath("m.js")
	source := "const limit = 10;\nuse(limit);\nconst n = 10;\n"

	first, err := a.AnalyzeInlineVariable(source, 0, 0)
	require.NoError(t, err)
	second, err := a.AnalyzeInlineVariable(source, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	c1, err := a.AnalyzeExtractConstant(source, 0, 14)
	require.NoError(t, err)
	c2, err := a.AnalyzeExtractConstant(source, 0, 14)
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

func TestSuggestName(t *testing.T) {
	cases := map[string]string{
		"items.length":   "length",
		`"hello"`:        "text",
		"[1, 2, 3]":      "items",
		"{ a: 1 }":       "data",
		"a == b":         "flag",
		"price * qty":    "result",
		"someCall(x, y)": "extracted",
	}
	for expr, want := range cases {
		assert.Equal(t, want, SuggestName(expr), expr)
	}
}
