// Package fileservice is the engine's only I/O dependency: reading source
// files, writing transformed results atomically, and restoring pre-transform
// snapshots on rollback.
package fileservice

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Service abstracts file access so the engine and its tests never touch the
// real filesystem directly.
type Service interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// Disk is the production Service. Writes go through a temp file in the same
// directory plus a rename, so a crash never leaves a half-written source file.
type Disk struct{}

func (Disk) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func (Disk) Write(path, content string) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".refract-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp, perm); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Mem is an in-memory Service for tests.
type Mem struct {
	mu    sync.Mutex
	files map[string]string
}

func NewMem(files map[string]string) *Mem {
	m := &Mem{files: make(map[string]string, len(files))}
	for k, v := range files {
		m.files[k] = v
	}
	return m
}

func (m *Mem) Read(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (m *Mem) Write(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
	return nil
}

// Paths lists the stored paths in sorted order.
func (m *Mem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
