package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig() *Config {
	cfg := NewConfig()
	cfg.Normalize()
	return cfg
}

func TestWriteFileCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "out.rl")

	if err := writeFile(path, "record Foo {}\n", testConfig()); err != nil {
		t.Fatalf("writeFile error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(got), "record Foo {}") {
		t.Errorf("expected generated content in file, got %q", got)
	}
}

func TestWriteFilePreservesKeepSection(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.rl")
	cfg := testConfig()

	existing := "record Old {}\n\n" + cfg.KeepBeginMarker + "\nrecord Custom {}\n" + cfg.KeepEndMarker + "\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("seeding existing file: %v", err)
	}

	if err := writeFile(path, "record New {}\n", cfg); err != nil {
		t.Fatalf("writeFile error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(got)
	if !strings.Contains(text, "record New {}") {
		t.Errorf("expected new content, got %q", text)
	}
	if !strings.Contains(text, "record Custom {}") {
		t.Errorf("expected preserved keep-section content, got %q", text)
	}
	if strings.Contains(text, "record Old {}") {
		t.Errorf("expected old non-preserved content to be dropped, got %q", text)
	}
}
