package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestExpandPatternsNoDoubleStar(t *testing.T) {
	out, err := expandPatterns("/tmp", []string{"./models", "./internal/..."})
	if err != nil {
		t.Fatalf("expandPatterns error: %v", err)
	}
	want := []string{"./models", "./internal/..."}
	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("expected %v, got %v", want, out)
		}
	}
}

func TestExpandPatternsDoubleStar(t *testing.T) {
	tmpDir := t.TempDir()

	dirs := []string{
		"models",
		"internal/domain/entities",
		"internal/services/models",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, d), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}

	out, err := expandPatterns(tmpDir, []string{"**/models"})
	if err != nil {
		t.Fatalf("expandPatterns error: %v", err)
	}
	sort.Strings(out)

	want := []string{
		filepath.Join(tmpDir, "internal/services/models"),
		filepath.Join(tmpDir, "models"),
	}
	sort.Strings(want)

	if len(out) != len(want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("expected %v, got %v", want, out)
		}
	}
}
