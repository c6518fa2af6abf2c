package cmd

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vexlang/tygen/version"
)

// Execute is the CLI entry point main.go calls. It has no teacher
// analogue to adapt line-for-line (the retrieved example pack's
// main.go calls a cmd.Execute this lineage of the teacher never
// actually shipped), so it is written from scratch in the teacher's own
// plain-stdlib style: no CLI framework appears anywhere in the example
// pack, so this uses only the standard library's flag package, the same
// choice the teacher made everywhere else.
func Execute() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "init":
		runInit(os.Args[2:])
	case "generate":
		runGenerate(os.Args[2:])
	case "version":
		fmt.Println(version.Get())
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "tygen: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `tygen compiles Go types into another language's type declarations.

Usage:

	tygen init                         create a default tygen.yml
	tygen generate --pkg ./models      generate from the given packages
	tygen generate --watch             generate and watch for changes
	tygen generate --config path.yml   generate from a specific config file
	tygen version                      print the tygen version`)
}

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	out := fs.String("config", "tygen.yml", "path to write the default configuration to")
	fs.Parse(args)

	if _, err := os.Stat(*out); err == nil {
		fmt.Fprintf(os.Stderr, "tygen: %s already exists\n", *out)
		os.Exit(1)
	}

	cfg := NewConfig()
	cfg.Packages = []string{"./..."}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

// pkgList collects repeated --pkg flags into a slice.
type pkgList []string

func (p *pkgList) String() string { return fmt.Sprint([]string(*p)) }
func (p *pkgList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a tygen.yml configuration file")
	output := fs.String("output", "", "override the configured output directory")
	watch := fs.Bool("watch", false, "watch packages and regenerate on change")
	manifest := fs.Bool("manifest", false, "write a manifest.yaml alongside generated files")
	var pkgs pkgList
	fs.Var(&pkgs, "pkg", "package pattern to scan (repeatable)")
	fs.Parse(args)

	var cfg *Config
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
			os.Exit(1)
		}
		cfg = NewConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
			os.Exit(1)
		}
		cfg.ConfigDir = dirOf(*configPath)
	} else if _, err := os.Stat("tygen.yml"); err == nil {
		data, err := os.ReadFile("tygen.yml")
		if err != nil {
			fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
			os.Exit(1)
		}
		cfg = NewConfig()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
			os.Exit(1)
		}
		cfg.ConfigDir = "."
	} else {
		cfg = NewConfig()
		cfg.ConfigDir = "."
	}

	if len(pkgs) > 0 {
		cfg.Packages = pkgs
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *manifest {
		cfg.Manifest = true
	}

	var err error
	if *watch {
		err = StartWatch(cfg)
	} else {
		err = Generate(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tygen: %v\n", err)
		os.Exit(1)
	}
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}
