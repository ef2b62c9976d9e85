package syntax

import (
	"context"
	"testing"

	"github.com/refract-dev/refract/pkg/types"
)

func TestSupported(t *testing.T) {
	for _, path := range []string{"a.c", "b.cpp", "c.py", "d.rs", "e.js", "f.ts", "g.tsx"} {
		if !Supported(path) {
			t.Errorf("expected %s to be supported", path)
		}
	}
	if Supported("notes.txt") {
		t.Error("expected .txt to be unsupported")
	}
}

func TestCheckValidSources(t *testing.T) {
	cases := map[string]string{
		"a.py": "def f():\n    return 1\n",
		"b.js": "const ANSWER = 42;\nfunction f() { return ANSWER; }\n",
		"c.c":  "#include <stdio.h>\nint main(void) { return 0; }\n",
		"d.rs": "fn main() {\n    let x = 1;\n    println!(\"{}\", x);\n}\n",
	}
	for path, source := range cases {
		if err := Check(context.Background(), path, source); err != nil {
			t.Errorf("expected %s to pass, got %v", path, err)
		}
	}
}

func TestCheckBrokenSource(t *testing.T) {
	err := Check(context.Background(), "a.js", "function f( { return; }\n")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if !types.IsErrorType(err, types.SyntaxError) {
		t.Errorf("expected a SyntaxError, got %v", err)
	}
}

func TestCheckBrokenPython(t *testing.T) {
	err := Check(context.Background(), "a.py", "def f(:\n    pass\n")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestCheckUnknownExtensionPasses(t *testing.T) {
	if err := Check(context.Background(), "notes.txt", "anything at all"); err != nil {
		t.Errorf("files without a grammar must pass, got %v", err)
	}
}
