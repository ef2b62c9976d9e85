package scan

import (
	"strings"
	"testing"
)

func TestIsEscaped(t *testing.T) {
	s := `He said \"hi\"`
	quote := strings.Index(s, `"`)
	if !IsEscaped(s, quote) {
		t.Errorf("quote after backslash at %d should be escaped", quote)
	}

	s = `path\\\\to`
	after := strings.LastIndex(s, "t") // preceded by four backslashes
	if IsEscaped(s, after) {
		t.Error("character after an even run of backslashes should not be escaped")
	}
}

func TestIsEscapedAtStart(t *testing.T) {
	if IsEscaped(`"abc`, 0) {
		t.Error("first character can never be escaped")
	}
}

func TestOccurrencesExcludesStringsAndComments(t *testing.T) {
	source := "x = 42\ny = \"the answer is 42\"\n// 42 in a comment"
	occ := Occurrences(source, "42", JavaScriptProfile())

	if len(occ) != 1 {
		t.Fatalf("expected exactly 1 occurrence, got %d: %v", len(occ), occ)
	}
	if occ[0].StartLine != 0 || occ[0].StartCol != 4 || occ[0].EndCol != 6 {
		t.Errorf("expected occurrence at 0:4-6, got %v", occ[0])
	}
}

func TestOccurrencesWordBoundary(t *testing.T) {
	source := "a = 420\nb = foo42\nc = 42"
	occ := Occurrences(source, "42", JavaScriptProfile())

	if len(occ) != 1 {
		t.Fatalf("expected only the standalone 42, got %v", occ)
	}
	if occ[0].StartLine != 2 {
		t.Errorf("expected occurrence on line 2, got %v", occ[0])
	}
}

func TestOccurrencesBlockComment(t *testing.T) {
	source := "a = 42; /* 42 */ b = 42;"
	occ := Occurrences(source, "42", CProfile())

	if len(occ) != 2 {
		t.Fatalf("expected 2 occurrences outside the block comment, got %v", occ)
	}
	if occ[0].StartCol != 4 || occ[1].StartCol != 21 {
		t.Errorf("expected occurrences at columns 4 and 21, got %v", occ)
	}
}

func TestOccurrencesUnclosedBlockComment(t *testing.T) {
	// An unclosed block comment swallows the rest of its line; the scan is
	// line-local, so the next line is still searched.
	source := "x = 1; /* note 42\ny = 42"
	occ := Occurrences(source, "42", CProfile())

	if len(occ) != 1 {
		t.Fatalf("expected 1 occurrence, got %v", occ)
	}
	if occ[0].StartLine != 1 {
		t.Errorf("expected occurrence on line 1, got %v", occ[0])
	}
}

func TestOccurrencesCommentMarkerInsideString(t *testing.T) {
	source := `url = "http://host"; n = 42`
	occ := Occurrences(source, "42", JavaScriptProfile())

	if len(occ) != 1 {
		t.Fatalf("a comment marker inside a string must not hide the match, got %v", occ)
	}
}

func TestOccurrencesEscapedQuote(t *testing.T) {
	// The escaped quote does not close the string, so the 7 inside stays
	// excluded while the trailing 7 is found.
	source := `s = "a \" 7 b"; n = 7`
	occ := Occurrences(source, "7", JavaScriptProfile())

	if len(occ) != 1 {
		t.Fatalf("expected 1 occurrence, got %v", occ)
	}
	if occ[0].StartCol != len(source)-1 {
		t.Errorf("expected the trailing 7, got %v", occ[0])
	}
}

func TestOccurrencesEmptyLiteral(t *testing.T) {
	if occ := Occurrences("x = 1", "", CProfile()); occ != nil {
		t.Errorf("empty literal must yield no occurrences, got %v", occ)
	}
}
