// Package cmd is the demo command-line driver: it loads a YAML
// configuration, adapts Go packages into the closed type model via
// source/gotypes, drives compiler.CompileProgram with the recordlang
// backend, writes the result to disk (preserving keep-sections), and
// optionally watches the source packages for changes.
package cmd

import "fmt"

// WatchConfig controls cmd/watch.go's debounced regeneration, mirroring
// the teacher's cmd/watcher.go fields that its own config never actually
// declared.
type WatchConfig struct {
	DebounceMs      int      `yaml:"debounce_ms"`
	AdditionalPaths []string `yaml:"additional_paths"`
	IgnorePatterns  []string `yaml:"ignore_patterns"`
}

// Config controls how the demo CLI discovers packages, compiles them,
// and writes the result, following generator/config.go's shape (field
// tags, a Normalize/Validate pair) generalized from one GraphQL-SDL
// output to an arbitrary compiler.Backend target.
type Config struct {
	// Packages to scan, as Go package patterns ("./models/...") or
	// glob-style patterns containing a "**" segment ("./internal/**/models").
	Packages []string `yaml:"packages"`

	// Output is the directory generated files are written under.
	Output string `yaml:"output"`

	// OutputFileExtension is appended to each generated file's name.
	OutputFileExtension string `yaml:"output_file_extension"`

	// Manifest, when true, additionally writes a manifest.yaml alongside
	// the generated files: the file list and the names declared in each file.
	Manifest bool `yaml:"manifest"`

	// KeepBeginMarker/KeepEndMarker delimit a preserved section in a
	// regenerated file, following generator/utils.go's WriteFile.
	KeepBeginMarker      string `yaml:"keep_begin_marker"`
	KeepEndMarker        string `yaml:"keep_end_marker"`
	KeepSectionPlacement string `yaml:"keep_section_placement"`

	// Watch configures `tygen generate --watch`.
	Watch WatchConfig `yaml:"watch"`

	// ConfigDir is the directory the config file was loaded from, used
	// to resolve relative package patterns and to report watch events
	// with paths relative to it. Not read from YAML.
	ConfigDir string `yaml:"-"`
}

// NewConfig returns a Config with the teacher's own defaults translated
// to this CLI's field names.
func NewConfig() *Config {
	return &Config{
		Output:               "generated",
		OutputFileExtension:  ".rl",
		KeepBeginMarker:      "// @tygenKeepBegin",
		KeepEndMarker:        "// @tygenKeepEnd",
		KeepSectionPlacement: "end",
	}
}

// Normalize fills in defaults left unset after loading, matching
// generator/config.go's Normalize.
func (c *Config) Normalize() {
	if c.Output == "" {
		c.Output = "generated"
	}
	if c.OutputFileExtension == "" {
		c.OutputFileExtension = ".rl"
	}
	if c.KeepBeginMarker == "" {
		c.KeepBeginMarker = "// @tygenKeepBegin"
	}
	if c.KeepEndMarker == "" {
		c.KeepEndMarker = "// @tygenKeepEnd"
	}
	if c.KeepSectionPlacement == "" {
		c.KeepSectionPlacement = "end"
	}
	if c.Watch.DebounceMs <= 0 {
		c.Watch.DebounceMs = 500
	}
}

// Validate checks the configuration, matching generator/config.go's
// Validate in register (one fmt.Errorf per violated rule).
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("packages is required (at least one package pattern must be specified)")
	}
	if c.KeepSectionPlacement != "start" && c.KeepSectionPlacement != "end" {
		return fmt.Errorf("invalid keep_section_placement: %s (must be 'start' or 'end')", c.KeepSectionPlacement)
	}
	return nil
}
