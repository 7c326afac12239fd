// Package wazero registers a hostfuncs.HandlerRegistry as a wazero host
// module, so plugins importing the catalogue's entry points from "env" link
// against the reference host.
//
// A host function that fails traps the calling plugin: the adapter panics
// with the handler's error, wazero unwinds the guest, and the error surfaces
// from the exported function call that started it.
package wazero
