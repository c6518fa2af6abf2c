package cmd

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPatterns turns a Packages entry that may contain a "**" segment
// (matching any number of intervening directories, e.g.
// "./internal/**/models") into the concrete directories it matches,
// generalizing the teacher's glob-pattern package scanning
// (generator/glob_test.go) from "find Go struct packages" into "find
// package directories to hand to gotypes.Load". Patterns without "**"
// pass through unchanged, letting go/packages' own "..." wildcard
// handle ordinary recursive patterns.
func expandPatterns(root string, patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, p := range patterns {
		if !strings.Contains(p, "**") {
			add(p)
			continue
		}
		matches, err := expandDoubleStar(root, p)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			add(m)
		}
	}
	return out, nil
}

// expandDoubleStar walks root/prefix and keeps every directory whose
// path ends in suffix, where prefix and suffix are the portions of
// pattern on either side of its first "**" segment.
func expandDoubleStar(root, pattern string) ([]string, error) {
	idx := strings.Index(pattern, "**")
	prefix := strings.Trim(pattern[:idx], "/")
	suffix := strings.Trim(pattern[idx+2:], "/")

	base := filepath.Join(root, prefix)
	var matches []string
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if suffix == "" {
			matches = append(matches, path)
			return nil
		}
		if path == filepath.Join(base, suffix) || strings.HasSuffix(path, string(filepath.Separator)+suffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}
