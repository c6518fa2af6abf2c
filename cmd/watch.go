package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watcher manages file system watching and debounced regeneration,
// adapted from the teacher's cmd/watcher.go to call this repository's
// own Generate instead of a hard-coded GraphQL renderer.
type watcher struct {
	config        *Config
	fsw           *fsnotify.Watcher
	debounceTimer *time.Timer
	debounceDelay time.Duration
}

// StartWatch runs an initial generation, then watches every configured
// package directory and regenerates on Go file changes until
// interrupted.
func StartWatch(cfg *Config) error {
	w := &watcher{
		config:        cfg,
		debounceDelay: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
	}

	fmt.Println("Running initial generation...")
	if err := Generate(cfg); err != nil {
		log.Printf("Initial generation failed: %v", err)
	} else {
		fmt.Println("generation complete")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()
	w.fsw = fsw

	for _, pkg := range cfg.Packages {
		if err := w.addRecursive(pkg); err != nil {
			log.Printf("warning: failed to watch %s: %v", pkg, err)
		}
	}
	for _, path := range cfg.Watch.AdditionalPaths {
		if err := w.addRecursive(path); err != nil {
			log.Printf("warning: failed to watch additional path %s: %v", path, err)
		}
	}

	fmt.Println("watching for changes... (press Ctrl+C to stop)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			if strings.Contains(event.Name, cfg.Output) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.scheduleRegeneration(event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)

		case <-sigChan:
			fmt.Println("\nstopping watcher...")
			return nil
		}
	}
}

func (w *watcher) scheduleRegeneration(changedFile string) {
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, func() {
		w.regenerate(changedFile)
	})
}

func (w *watcher) regenerate(changedFile string) {
	timestamp := time.Now().Format("15:04:05")
	relPath, err := filepath.Rel(w.config.ConfigDir, changedFile)
	if err != nil || relPath == "" {
		relPath = changedFile
	}
	fmt.Printf("[%s] change detected: %s\n", timestamp, relPath)

	if err := Generate(w.config); err != nil {
		fmt.Printf("generation failed: %v\n", err)
	} else {
		fmt.Printf("generation complete at %s\n", timestamp)
	}
	fmt.Println("watching for changes... (press Ctrl+C to stop)")
}

func (w *watcher) addRecursive(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return filepath.Walk(absPath, func(walkPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if !w.shouldWatch(walkPath) {
			return filepath.SkipDir
		}
		return w.fsw.Add(walkPath)
	})
}

func (w *watcher) shouldWatch(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	for _, pattern := range w.config.Watch.IgnorePatterns {
		if base == pattern {
			return false
		}
	}
	if w.config.Output != "" {
		absOutput, _ := filepath.Abs(w.config.Output)
		if strings.HasPrefix(path, absOutput) {
			return false
		}
	}
	return true
}
