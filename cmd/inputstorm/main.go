// Package main is the entry point for the inputstorm demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/inputstorm/internal/app"
	"github.com/dshills/inputstorm/internal/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Create terminal backend
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	application.SetTerminal(term)

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the demo loop
	if err := application.Run(); err != nil {
		// A user-initiated quit is a normal exit
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var tables string
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&tables, "tables", "", "Comma-separated action table files")
	flag.StringVar(&tables, "t", "", "Comma-separated action table files (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Log file path (empty logs to stderr)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogLevel, "l", "", "Log level (shorthand)")
	flag.IntVar(&opts.FPS, "fps", 0, "Frame rate of the demo loop")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Inputstorm - action-based input mapping demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inputstorm [options] [tables...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inputstorm                       Run with the built-in action table\n")
		fmt.Fprintf(os.Stderr, "  inputstorm bindings.json         Layer a custom table on top\n")
		fmt.Fprintf(os.Stderr, "  inputstorm -c inputstorm.toml    Run with a configuration file\n")
		fmt.Fprintf(os.Stderr, "  inputstorm -log demo.log -l debug    Log every trigger to a file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Inputstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level when given; empty defers to the configuration
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	if opts.FPS < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid fps %d\n", opts.FPS)
		os.Exit(1)
	}

	// Table files come from the -tables flag and positional arguments
	for _, path := range strings.Split(tables, ",") {
		if path = strings.TrimSpace(path); path != "" {
			opts.Tables = append(opts.Tables, path)
		}
	}
	opts.Tables = append(opts.Tables, flag.Args()...)

	return opts
}
