package apply

import (
	"testing"

	"github.com/refract-dev/refract/pkg/types"
)

func planOf(edits ...types.TextEdit) *types.EditPlan {
	return &types.EditPlan{SourceFile: "test.js", Edits: edits}
}

func TestApplyNilPlan(t *testing.T) {
	_, _, err := Apply("x", nil)
	if err == nil {
		t.Fatal("expected an error for a nil plan")
	}
	if !types.IsErrorType(err, types.Blocked) {
		t.Errorf("expected a Blocked error, got %v", err)
	}
}

func TestApplyReplace(t *testing.T) {
	source := "a = 1\nb = 2\n"
	out, stats, err := Apply(source, planOf(types.TextEdit{
		Type:         types.Replace,
		Location:     types.NewRange(1, 4, 1, 5),
		OriginalText: "2",
		NewText:      "3",
		Priority:     90,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if out != "a = 1\nb = 3\n" {
		t.Errorf("unexpected output %q", out)
	}
	if stats.AppliedCount != 1 || stats.SkippedCount != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestApplyConflictSkip(t *testing.T) {
	source := "a = 1\nb = 2\n"
	out, stats, err := Apply(source, planOf(
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 4, 0, 5),
			OriginalText: "9", // stale: buffer holds "1"
			NewText:      "X",
			Priority:     90,
		},
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(1, 4, 1, 5),
			OriginalText: "2",
			NewText:      "3",
			Priority:     80,
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if stats.AppliedCount != 1 || stats.SkippedCount != 1 {
		t.Fatalf("expected 1 applied / 1 skipped, got %+v", stats)
	}
	if out != "a = 1\nb = 3\n" {
		t.Errorf("the unrelated edit must still land, got %q", out)
	}
}

func TestApplyInsertKeepsLineNumbers(t *testing.T) {
	// A whole-line insert at the top must not shift the coordinates the
	// later, lower-priority replacement was computed against.
	source := "let x = 42;\n"
	out, stats, err := Apply(source, planOf(
		types.TextEdit{
			Type:     types.Insert,
			Location: types.PointAt(0, 0),
			NewText:  "const ANSWER = 42;\n",
			Priority: 100,
		},
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 8, 0, 10),
			OriginalText: "42",
			NewText:      "ANSWER",
			Priority:     90,
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if stats.SkippedCount != 0 {
		t.Fatalf("expected no skips, got %+v", stats)
	}
	if out != "const ANSWER = 42;\nlet x = ANSWER;\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestApplyInsertAtEOF(t *testing.T) {
	source := "a"
	out, _, err := Apply(source, planOf(types.TextEdit{
		Type:     types.Insert,
		Location: types.PointAt(1, 0),
		NewText:  "b\n",
		Priority: 100,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if out != "a\nb" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestApplyIntraLineInsert(t *testing.T) {
	source := "ab\n"
	out, _, err := Apply(source, planOf(types.TextEdit{
		Type:     types.Insert,
		Location: types.PointAt(0, 1),
		NewText:  "X",
		Priority: 100,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if out != "aXb\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestApplyDeleteRemovesLine(t *testing.T) {
	source := "keep\ndrop this\nkeep too\n"
	out, stats, err := Apply(source, planOf(types.TextEdit{
		Type:         types.Delete,
		Location:     types.NewRange(1, 0, 1, 9),
		OriginalText: "drop this",
		Priority:     50,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if stats.AppliedCount != 1 {
		t.Fatalf("expected the delete to apply, got %+v", stats)
	}
	if out != "keep\nkeep too\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestApplyMultiLineReplace(t *testing.T) {
	source := "one\ntwo\nthree\nfour\n"
	out, _, err := Apply(source, planOf(types.TextEdit{
		Type:         types.Replace,
		Location:     types.NewRange(1, 0, 2, 5),
		OriginalText: "two\nthree",
		NewText:      "merged",
		Priority:     90,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if out != "one\nmerged\nfour\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestApplyOutOfBoundsSkipped(t *testing.T) {
	source := "short\n"
	_, stats, err := Apply(source, planOf(types.TextEdit{
		Type:         types.Replace,
		Location:     types.NewRange(10, 0, 10, 3),
		OriginalText: "xxx",
		NewText:      "yyy",
		Priority:     90,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if stats.SkippedCount != 1 {
		t.Errorf("out-of-bounds edit must be skipped, got %+v", stats)
	}
}

func TestApplyPriorityOrder(t *testing.T) {
	// Both edits target the same spot; the higher priority wins and the
	// second sees drifted text and is skipped.
	source := "val\n"
	_, stats, err := Apply(source, planOf(
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 0, 0, 3),
			OriginalText: "val",
			NewText:      "first",
			Priority:     10,
		},
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 0, 0, 3),
			OriginalText: "val",
			NewText:      "second",
			Priority:     90,
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if stats.AppliedCount != 1 || stats.SkippedCount != 1 {
		t.Fatalf("expected 1 applied / 1 skipped, got %+v", stats)
	}
}

func TestApplySameLineRightmostFirst(t *testing.T) {
	// Two occurrences on one line, applied right to left via descending
	// priority so the first replacement cannot shift the second's columns.
	source := "f(42, 42)\n"
	out, stats, err := Apply(source, planOf(
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 6, 0, 8),
			OriginalText: "42",
			NewText:      "ANSWER",
			Priority:     90,
		},
		types.TextEdit{
			Type:         types.Replace,
			Location:     types.NewRange(0, 2, 0, 4),
			OriginalText: "42",
			NewText:      "ANSWER",
			Priority:     89,
		},
	))
	if err != nil {
		t.Fatal(err)
	}
	if stats.SkippedCount != 0 {
		t.Fatalf("expected no skips, got %+v", stats)
	}
	if out != "f(ANSWER, ANSWER)\n" {
		t.Errorf("unexpected output %q", out)
	}
}
