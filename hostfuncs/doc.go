// Package hostfuncs implements the reference host's side of the entry-point
// catalogue in pure Go. Nothing here depends on a WebAssembly runtime: a
// runtime adapter hands each call a Guest (the caller's memory and allocator)
// and the raw value stack, and the registry dispatches by entry-point name.
package hostfuncs
