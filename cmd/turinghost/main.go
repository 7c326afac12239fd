// Command turinghost runs plugins against the reference game host.
//
// Usage:
//
//	turinghost run [-config file] [-i] plugin.wasm [plugin.wasm ...]
//	turinghost catalog [-kind name]
//	turinghost schema
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: turinghost run [-config file] [-i] plugin.wasm [plugin.wasm ...]")
	fmt.Fprintln(w, "       turinghost catalog [-kind name]")
	fmt.Fprintln(w, "       turinghost schema")
}

// run dispatches a subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	switch args[0] {
	case "run":
		fs := flag.NewFlagSet("run", flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to host configuration file")
		interactive := fs.Bool("i", false, "Browse the resulting world in a TUI")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		if fs.NArg() == 0 {
			usage(stderr)
			return errUsage
		}
		return runPlugins(ctx, *configPath, fs.Args(), *interactive, stdout)

	case "catalog":
		fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
		fs.SetOutput(stderr)
		kind := fs.String("kind", "", "Only list entry points of this kind (e.g. wall, vec3)")
		if err := fs.Parse(args[1:]); err != nil {
			return errUsage
		}
		return printCatalog(stdout, *kind)

	case "schema":
		return printSchema(stdout)

	default:
		usage(stderr)
		return errUsage
	}
}
