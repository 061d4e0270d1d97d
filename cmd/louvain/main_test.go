package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `triangle.txt`)
	if err := os.WriteFile(path, []byte("3\n0 1 1\n1 2 1\n0 2 1\n"), 0o644); err != nil {
		t.Fatalf(`WriteFile: %v`, err)
	}

	g, err := loadGraph(path)
	if err != nil {
		t.Fatalf(`loadGraph: %v`, err)
	}
	if g.NumVertices() != 3 {
		t.Fatalf(`expected 3 vertices, got %d`, g.NumVertices())
	}
	for v := 0; v < 3; v++ {
		if g.Degree(v) != 2 {
			t.Fatalf(`vertex %d: expected degree 2, got %d`, v, g.Degree(v))
		}
	}
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `triangle.txt`)
	if err := os.WriteFile(path, []byte("3\n0 1 1\n1 2 1\n0 2 1\n"), 0o644); err != nil {
		t.Fatalf(`WriteFile: %v`, err)
	}

	if code := run([]string{path}); code != 0 {
		t.Fatalf(`expected exit code 0, got %d`, code)
	}
}

func TestRun_RejectsUnknownAlgo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, `triangle.txt`)
	if err := os.WriteFile(path, []byte("3\n0 1 1\n1 2 1\n0 2 1\n"), 0o644); err != nil {
		t.Fatalf(`WriteFile: %v`, err)
	}

	if code := run([]string{`-algo`, `Fancy`, path}); code == 0 {
		t.Fatal(`expected a nonzero exit code for an unsupported -algo value`)
	}
}

func TestRun_MissingPositionalArg(t *testing.T) {
	if code := run(nil); code == 0 {
		t.Fatal(`expected a nonzero exit code when no graph path is given`)
	}
}
