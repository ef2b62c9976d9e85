package fileservice

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")

	var fs Disk
	if err := fs.Write(path, "x = 1\n"); err != nil {
		t.Fatal(err)
	}
	got, err := fs.Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "x = 1\n" {
		t.Errorf("unexpected content %q", got)
	}
}

func TestDiskWritePreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(path, []byte("old"), 0o755); err != nil {
		t.Fatal(err)
	}

	var fs Disk
	if err := fs.Write(path, "new"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("expected mode 0755 to survive, got %v", info.Mode().Perm())
	}
}

func TestDiskReadMissing(t *testing.T) {
	var fs Disk
	if _, err := fs.Read(filepath.Join(t.TempDir(), "nope.py")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestMem(t *testing.T) {
	m := NewMem(map[string]string{"/a.py": "x = 1\n"})

	got, err := m.Read("/a.py")
	if err != nil || got != "x = 1\n" {
		t.Fatalf("unexpected read %q %v", got, err)
	}

	if _, err := m.Read("/missing.py"); err == nil {
		t.Fatal("expected an error for a missing path")
	}

	if err := m.Write("/b.py", "y = 2\n"); err != nil {
		t.Fatal(err)
	}
	paths := m.Paths()
	if len(paths) != 2 || paths[0] != "/a.py" || paths[1] != "/b.py" {
		t.Errorf("unexpected paths %v", paths)
	}
}
