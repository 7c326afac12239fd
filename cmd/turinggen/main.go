// Command turinggen writes the guest's //go:wasmimport declarations from the
// entry-point catalogue.
//
// Usage:
//
//	go run ./cmd/turinggen -o infrastructure/wasm/imports_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	var buf bytes.Buffer
	if err := Render(&buf); err != nil {
		fmt.Fprintf(os.Stderr, "turinggen: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		_, _ = os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: generated source is world-readable
		fmt.Fprintf(os.Stderr, "turinggen: %v\n", err)
		os.Exit(1)
	}
}
