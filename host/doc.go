// Package host runs plugins against the reference game host.
//
// It wires the in-memory world, a persistent store and the catalogue's host
// functions into a wazero runtime with WASI, then drives a plugin either as a
// command (_start) or as a reactor (_initialize followed by calls to its exports).
package host
