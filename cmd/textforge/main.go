// Package main is the entry point for the textforge editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mbarela/textforge/internal/app"
	"github.com/mbarela/textforge/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&configPath, "c", "", "path to configuration file (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("textforge %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	path := flag.Arg(0)
	var session *app.Session
	if path != "" {
		session, err = app.Open(path, cfg, log)
	} else {
		session, err = app.New(cfg, log)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer session.Close()

	ed, err := newEditor(session, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Live config reload: only log level changes take effect mid-run.
	if configPath != "" {
		w, err := config.Watch(configPath, func(cfg config.Config) {
			log.SetLevel(app.ParseLogLevel(cfg.Log.Level))
			log.Info("config reloaded")
		}, config.WithErrorHandler(func(err error) {
			log.Warn("config reload: %v", err)
		}))
		if err != nil {
			log.Warn("config watch: %v", err)
		} else {
			defer w.Close()
		}
	}

	if err := ed.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the session logger. Terminal output would corrupt
// the screen, so without a log file everything is discarded.
func newLogger(cfg config.LogConfig) (*app.Logger, func(), error) {
	level := app.ParseLogLevel(cfg.Level)
	if cfg.File == "" {
		return app.NewLogger(level, io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return app.NewLogger(level, f), func() { f.Close() }, nil
}
