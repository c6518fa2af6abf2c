package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vexlang/tygen/version"
)

// writeFile writes content to path, preserving any existing
// keep-section(s) delimited by cfg's markers and prepending a generated
// notice, generalizing generator/utils.go's WriteFile from GraphQL SDL
// text to whatever a compiler.Backend produced.
func writeFile(path, content string, cfg *Config) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if existing, err := os.ReadFile(path); err == nil {
		keepRegex := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(cfg.KeepBeginMarker) + `(.*?)` + regexp.QuoteMeta(cfg.KeepEndMarker))
		matches := keepRegex.FindAllStringSubmatch(string(existing), -1)

		var preserved []string
		for _, m := range matches {
			if len(m) < 2 {
				continue
			}
			preserved = append(preserved, m[1])
		}

		var section string
		if len(preserved) > 0 {
			section = cfg.KeepBeginMarker + strings.Join(preserved, "\n") + cfg.KeepEndMarker
		} else {
			section = cfg.KeepBeginMarker + "\n// Custom content between these markers survives regeneration.\n" + cfg.KeepEndMarker
		}

		if cfg.KeepSectionPlacement == "start" {
			content = section + "\n\n" + content
		} else {
			content = content + "\n\n" + section + "\n"
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cmd: reading existing file %s: %w", path, err)
	}

	notice := fmt.Sprintf("// Code generated by tygen %s. DO NOT EDIT outside keep-sections.\n", version.Get())
	content = notice + content

	return os.WriteFile(path, []byte(content), 0o644)
}
