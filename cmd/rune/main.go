// Package main is the entry point for the rune editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/rune/internal/app"
	"github.com/dshills/rune/internal/config"
	"github.com/dshills/rune/internal/logging"
	"github.com/dshills/rune/internal/renderer/backend"
	"github.com/dshills/rune/internal/vfs"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// flags holds the parsed command line.
type flags struct {
	opts        app.Options
	logFile     string
	showVersion bool
	printSchema bool
	printConfig bool
}

func main() {
	os.Exit(run())
}

func run() int {
	f, code, done := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if done {
		return code
	}

	if f.printSchema {
		return printSchema(os.Stdout)
	}
	if f.printConfig {
		return printConfig(os.Stdout, os.Stderr, f.opts.ConfigPath)
	}

	// The terminal owns stdout and stderr while running, so logs go to a
	// file or nowhere.
	if f.logFile != "" {
		lf, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer lf.Close()
		f.opts.LogOutput = lf
	}

	// Create application
	application, err := app.New(f.opts)
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
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the application
	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		application.Shutdown()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// parseFlags parses args. When done is true the program should exit
// with code without starting the editor.
func parseFlags(args []string, stdout, stderr io.Writer) (f flags, code int, done bool) {
	fs := flag.NewFlagSet("rune", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showHelp bool
	fs.StringVar(&f.opts.ConfigPath, "config", config.DefaultPath, "Path to configuration file (.toml, .yaml or .yml)")
	fs.StringVar(&f.opts.ConfigPath, "c", config.DefaultPath, "Path to configuration file (shorthand)")
	fs.StringVar(&f.opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&f.opts.NoWatch, "no-watch", false, "Do not reload the configuration file when it changes")
	fs.BoolVar(&f.printSchema, "config-schema", false, "Print the configuration JSON schema and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "Print the effective configuration and exit")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")
	fs.BoolVar(&f.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "rune - a small modal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: rune [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rune                        Open with empty buffer\n")
		fmt.Fprintf(stderr, "  rune notes.txt              Open a file\n")
		fmt.Fprintf(stderr, "  rune -c ~/.rune.yaml        Use another config file\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return f, 0, true
		}
		return f, 2, true
	}

	if showHelp {
		fs.Usage()
		return f, 0, true
	}

	if f.showVersion {
		fmt.Fprintf(stdout, "rune %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return f, 0, true
	}

	if f.opts.LogLevel != "" {
		if _, err := logging.ParseLevel(f.opts.LogLevel); err != nil {
			fmt.Fprintf(stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.opts.LogLevel)
			return f, 1, true
		}
	}

	// The first remaining argument is the file to open.
	if fs.NArg() > 0 {
		f.opts.InitialFile = fs.Arg(0)
	}

	return f, 0, false
}

func printSchema(w io.Writer) int {
	data, err := config.SchemaJSON()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(w, string(data))
	return 0
}

func printConfig(stdout, stderr io.Writer, path string) int {
	cfg, err := config.Load(vfs.NewOSFS(), path)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	data, err := config.Encode(path, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	_, _ = stdout.Write(data)
	return 0
}
