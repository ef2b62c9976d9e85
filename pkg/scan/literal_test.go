package scan

import (
	"testing"

	"github.com/refract-dev/refract/pkg/types"
)

func TestLocateLiteralNumber(t *testing.T) {
	lit, r, ok := LocateLiteral("let x = 42;", 0, 8, JavaScriptProfile())
	if !ok || lit != "42" {
		t.Fatalf("expected to find 42, got %q ok=%v", lit, ok)
	}
	if r != types.NewRange(0, 8, 0, 10) {
		t.Errorf("expected range 0:8-10, got %v", r)
	}
}

func TestLocateLiteralCursorAfterNumber(t *testing.T) {
	// Cursor just past the last digit still anchors to the literal.
	lit, _, ok := LocateLiteral("let x = 42;", 0, 10, JavaScriptProfile())
	if !ok || lit != "42" {
		t.Errorf("expected 42 with trailing cursor, got %q ok=%v", lit, ok)
	}
}

func TestLocateLiteralNegativeFloat(t *testing.T) {
	lit, r, ok := LocateLiteral("a = -3.5", 0, 5, JavaScriptProfile())
	if !ok || lit != "-3.5" {
		t.Fatalf("expected -3.5, got %q ok=%v", lit, ok)
	}
	if r.StartCol != 4 || r.EndCol != 8 {
		t.Errorf("expected range 0:4-8, got %v", r)
	}
}

func TestLocateLiteralMinusIsOperator(t *testing.T) {
	// In "a - 3" the minus binds to the subtraction, not the literal.
	lit, _, ok := LocateLiteral("x = a - 3", 0, 8, JavaScriptProfile())
	if !ok || lit != "3" {
		t.Errorf("expected bare 3 after an operand, got %q ok=%v", lit, ok)
	}
}

func TestLocateLiteralString(t *testing.T) {
	lit, r, ok := LocateLiteral(`msg = "hello world"`, 0, 10, JavaScriptProfile())
	if !ok || lit != `"hello world"` {
		t.Fatalf("expected the quoted string, got %q ok=%v", lit, ok)
	}
	if r != types.NewRange(0, 6, 0, 19) {
		t.Errorf("expected range 0:6-19, got %v", r)
	}
}

func TestLocateLiteralKeyword(t *testing.T) {
	lit, r, ok := LocateLiteral("flag = True", 0, 8, PythonProfile())
	if !ok || lit != "True" {
		t.Fatalf("expected True, got %q ok=%v", lit, ok)
	}
	if r != types.NewRange(0, 7, 0, 11) {
		t.Errorf("expected range 0:7-11, got %v", r)
	}
}

func TestLocateLiteralTripleQuoted(t *testing.T) {
	lit, r, ok := LocateLiteral(`s = """doc"""`, 0, 6, PythonProfile())
	if !ok || lit != `"""doc"""` {
		t.Fatalf("expected the triple-quoted span, got %q ok=%v", lit, ok)
	}
	if r.StartCol != 4 || r.EndCol != 13 {
		t.Errorf("expected range 0:4-13, got %v", r)
	}
}

func TestLocateLiteralNothingThere(t *testing.T) {
	if lit, _, ok := LocateLiteral("return value", 0, 3, JavaScriptProfile()); ok {
		t.Errorf("expected no literal at an identifier, got %q", lit)
	}
}

func TestLocateLiteralOutOfBounds(t *testing.T) {
	if _, _, ok := LocateLiteral("x", 0, 99, CProfile()); ok {
		t.Error("expected no literal past the end of the line")
	}
	if _, _, ok := LocateLiteral("x", 0, -1, CProfile()); ok {
		t.Error("expected no literal at a negative column")
	}
}
