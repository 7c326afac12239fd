// Package wasm implements the host port over the plugin's WebAssembly imports.
//
// imports_gen.go declares one //go:wasmimport function per catalogue entry point
// and groups them into dispatch tables keyed by kind, attribute or store kind,
// so a single HostAdapter method serves every object kind.
package wasm

//go:generate go run ../../cmd/turinggen -o imports_gen.go
