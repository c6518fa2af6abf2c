package gotypes

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModuleRoot resolves the module path declared by the go.mod found at or
// above dir, the same concern the teacher's GetPackageImportPath solves
// by loading packages.NeedModule — this is the standalone variant used
// when a Location's namespace must be computed relative to the module
// root without a full package load (the demo CLI calls it after
// packages.Load to derive each entry's namespace).
func ModuleRoot(dir string) (modulePath string, rootDir string, err error) {
	for d := dir; ; {
		goModPath := filepath.Join(d, "go.mod")
		data, readErr := os.ReadFile(goModPath)
		if readErr == nil {
			f, parseErr := modfile.Parse(goModPath, data, nil)
			if parseErr != nil {
				return "", "", fmt.Errorf("gotypes: parsing %s: %w", goModPath, parseErr)
			}
			return f.Module.Mod.Path, d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", "", fmt.Errorf("gotypes: no go.mod found above %s", dir)
		}
		d = parent
	}
}
