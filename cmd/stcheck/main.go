// Package main implements the stcheck CLI tool.
//
// stcheck audits a Go module that uses the singlethread primitive. The
// library can verify borrow discipline at runtime, but it cannot see where
// a program starts concurrency; stcheck finds those places statically so
// they can be reviewed against the Enter/Leave window:
//
//  1. Every `go` statement (a goroutine starts here)
//  2. Async callback registrations (os/signal.Notify, time.AfterFunc)
//  3. stc.Enter call sites — more than one in a module is flagged,
//     since at most one token should ever be live
//
// Usage:
//
//	stcheck              # audit the module containing the current directory
//	stcheck ./kernel     # audit the module containing ./kernel
//	stcheck -v .         # include scan statistics
//
// Exit status is 1 when findings exist, 0 otherwise.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kolkov/singlethread/cmd/stcheck/inspect"
)

const version = "0.1.0"

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "version", "--version":
			fmt.Printf("stcheck version %s\n", version)
			return
		case "help", "--help", "-h":
			printUsage()
			return
		}
	}

	fs := flag.NewFlagSet("stcheck", flag.ExitOnError)
	verbose := fs.Bool("v", false, "print scan statistics")
	configPath := fs.String("config", "", "path to YAML config with ignore patterns")
	fs.Usage = printUsage
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	cfg, err := inspect.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stcheck: %v\n", err)
		os.Exit(2)
	}

	root, modulePath, err := inspect.FindModule(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stcheck: %v\n", err)
		os.Exit(2)
	}

	report, err := inspect.New(root, modulePath, cfg).Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stcheck: %v\n", err)
		os.Exit(2)
	}

	for _, f := range report.Findings {
		fmt.Println(f)
	}

	if *verbose {
		s := report.Stats
		fmt.Printf("Scanned %s (module %s):\n", root, modulePath)
		fmt.Printf("  %d files scanned, %d ignored\n", s.FilesScanned, s.FilesIgnored)
		fmt.Printf("  %d go statements\n", s.GoStatements)
		fmt.Printf("  %d async callback registrations\n", s.AsyncCallbacks)
		fmt.Printf("  %d Enter call sites\n", s.EnterSites)
	}

	if len(report.Findings) > 0 {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`stcheck - audit where concurrency begins in a singlethread module

USAGE:
    stcheck [flags] [dir]

FLAGS:
    -v             Print scan statistics
    -config FILE   YAML config file with ignore patterns

COMMANDS:
    version        Show version information
    help           Show this help message

CONFIG FILE:
    ignore:
      - "gen/*"            # glob, relative to the module root
      - "legacy_boot.go"

EXAMPLES:
    # Audit the current module
    stcheck

    # Audit a module elsewhere, with ignores
    stcheck -config stcheck.yml ~/src/kernel
`)
}
