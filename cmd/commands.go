package cmd

import (
	gotypesstd "go/types"

	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
	"gopkg.in/yaml.v3"

	"github.com/vexlang/tygen/backend/recordlang"
	"github.com/vexlang/tygen/compiler"
	"github.com/vexlang/tygen/source"
	"github.com/vexlang/tygen/source/gotypes"
	tygen "github.com/vexlang/tygen/types"
)

// GenerateFromDefaultConfig reads "tygen.yml" from the current directory
// and runs Generate, mirroring generator/commands.go's
// GenerateFromDefaultConfig.
func GenerateFromDefaultConfig() error {
	return GenerateFromConfigFile("tygen.yml")
}

// GenerateFromConfigFile reads and parses configPath, then runs Generate.
func GenerateFromConfigFile(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	cfg.ConfigDir = filepath.Dir(configPath)
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = "."
	}

	return Generate(cfg)
}

// Generate runs one full compilation: load packages, adapt every
// exported package-level type declaration, drive compiler.CompileProgram
// with the recordlang backend, and write the result to disk. This plays
// the role generator/commands.go's Generate does for the teacher, but
// ends at compiler.CompileProgram + a pluggable backend instead of a
// single hard-coded GraphQL renderer.
func Generate(cfg *Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	dir := cfg.ConfigDir
	if dir == "" {
		dir = "."
	}
	cfg.Output = filepath.Clean(cfg.Output)

	patterns, err := expandPatterns(dir, cfg.Packages)
	if err != nil {
		return fmt.Errorf("expanding package patterns: %w", err)
	}

	pkgs, err := gotypes.Load(dir, patterns...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	modulePath, _, err := gotypes.ModuleRoot(dir)
	if err != nil {
		modulePath = ""
	}

	docs := gotypes.BuildDocIndex(pkgs)
	enums := gotypes.BuildEnumIndex(pkgs)
	adapter := gotypes.NewAdapter(source.Options{Cache: true, AddMethods: true}, docs, enums)

	entries, err := buildEntries(pkgs, adapter, cfg, modulePath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no exported package-level types found in %v", cfg.Packages)
	}

	c := compiler.New(recordlang.New())
	out, err := c.CompileProgram(entries)
	if err != nil {
		return fmt.Errorf("compilation error: %w", err)
	}

	if err := writeOutput(out, cfg); err != nil {
		return err
	}
	if cfg.Manifest {
		if err := writeManifest(out, cfg); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}
	return nil
}

// buildEntries walks every loaded package's exported, package-level type
// declarations and adapts each into a compiler.Entry, placing it in a
// file named after the package's last path segment — the "package"
// output strategy generator/config.go's GenStrategyPackage names,
// generalized to an arbitrary backend.
func buildEntries(pkgs []*packages.Package, adapter *gotypes.Adapter, cfg *Config, moduleRoot string) ([]compiler.Entry, error) {
	var entries []compiler.Entry
	for _, pkg := range pkgs {
		fileName := packageFileName(pkg.PkgPath, cfg.OutputFileExtension)
		namespace := namespaceOf(pkg.PkgPath, moduleRoot)

		scope := pkg.Types.Scope()
		names := scope.Names()
		sort.Strings(names)
		for _, name := range names {
			obj, ok := scope.Lookup(name).(*gotypesstd.TypeName)
			if !ok || !gotypes.Exported(obj) {
				continue
			}
			adapted := adapter.AdaptObject(obj)
			if adapted.Kind == tygen.KindInvalid {
				continue
			}
			entries = append(entries, compiler.Entry{
				Type: adapted,
				OutputLocation: compiler.Location{
					FileName:  fileName,
					Namespace: namespace,
				},
			})
		}
	}
	return entries, nil
}

func packageFileName(pkgPath, ext string) string {
	base := pkgPath
	if idx := strings.LastIndex(pkgPath, "/"); idx >= 0 {
		base = pkgPath[idx+1:]
	}
	return base + ext
}

func namespaceOf(pkgPath, moduleRoot string) []string {
	rel := strings.TrimPrefix(pkgPath, moduleRoot)
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return nil
	}
	return strings.Split(rel, "/")
}

// writeOutput writes every compiled file under cfg.Output.
func writeOutput(out *compiler.Output, cfg *Config) error {
	for name, file := range out.Files {
		path := filepath.Join(cfg.Output, name)
		if err := writeFile(path, file.Text, cfg); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// manifestEntry is one row of manifest.yaml: a generated file and the
// declared names it contains.
type manifestEntry struct {
	File  string   `yaml:"file"`
	Names []string `yaml:"names"`
}

// writeManifest serializes the compiled Program's file/declaration
// layout to manifest.yaml, extending the teacher's own use of
// gopkg.in/yaml.v3 beyond configuration into a generated artifact.
func writeManifest(out *compiler.Output, cfg *Config) error {
	names := make([]string, 0, len(out.Program.Files()))
	for name := range out.Program.Files() {
		names = append(names, name)
	}
	sort.Strings(names)

	manifest := make([]manifestEntry, 0, len(names))
	for _, name := range names {
		fb := out.Program.Files()[name]
		var declared []string
		for _, n := range fb.Nodes() {
			if n.DeclLocation.Name != "" {
				declared = append(declared, n.DeclLocation.Name)
			}
		}
		manifest = append(manifest, manifestEntry{File: name, Names: declared})
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cfg.Output, "manifest.yaml"), data, 0o644)
}
