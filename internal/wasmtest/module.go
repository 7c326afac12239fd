// Package wasmtest assembles small WebAssembly core modules for tests.
//
// The modules import catalogue entry points from the host, export memory and
// the _malloc/_free pair, and run straight-line instruction sequences, which
// is all the reference host needs to be exercised end to end without a Go
// toolchain for wasip1 in the test loop.
package wasmtest

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
)

const (
	sectionType     = 1
	sectionImport   = 2
	sectionFunction = 3
	sectionMemory   = 5
	sectionGlobal   = 6
	sectionExport   = 7
	sectionCode     = 10
	sectionData     = 11

	exportFunc   = 0x00
	exportMemory = 0x02
)

// Opcodes used by the instruction helpers.
const (
	opEnd       = 0x0b
	opCall      = 0x10
	opDrop      = 0x1a
	opLocalGet  = 0x20
	opGlobalGet = 0x23
	opGlobalSet = 0x24
	opI32Const  = 0x41
	opF32Const  = 0x43
	opI32Add    = 0x6a
)

type signature struct {
	params  []catalog.ValueType
	results []catalog.ValueType
}

type importFunc struct {
	module string
	name   string
	sig    signature
}

type function struct {
	export string
	sig    signature
	body   []byte
}

type segment struct {
	data   []byte
	offset uint32
}

// Builder accumulates a module definition.
type Builder struct {
	imports []importFunc
	funcs   []function
	data    []segment
	pages   uint32
	heap    int32
	bump    bool
}

// New starts a module with one page of exported memory.
func New() *Builder {
	return &Builder{pages: 1}
}

// Pages sets the initial memory size in 64KiB pages.
func (b *Builder) Pages(n uint32) *Builder {
	b.pages = n
	return b
}

// Import declares a host function and returns its function index.
// Imports must be declared before any Func.
func (b *Builder) Import(module, name string, params, results []catalog.ValueType) uint32 {
	if len(b.funcs) > 0 {
		panic("wasmtest: imports must precede functions")
	}
	b.imports = append(b.imports, importFunc{module: module, name: name, sig: signature{params, results}})
	return uint32(len(b.imports) - 1)
}

// ImportEntry imports a catalogue entry point by name.
func (b *Builder) ImportEntry(name string) uint32 {
	ep, ok := catalog.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("wasmtest: %s is not in the catalogue", name))
	}
	return b.Import(catalog.HostModule, ep.Name, ep.Params, ep.Results)
}

// Func defines an exported function whose body is the concatenated
// instructions; the trailing end is added. It returns the function index.
func (b *Builder) Func(export string, params, results []catalog.ValueType, instrs ...[]byte) uint32 {
	var body []byte
	for _, in := range instrs {
		body = append(body, in...)
	}
	body = append(body, opEnd)
	b.funcs = append(b.funcs, function{export: export, sig: signature{params, results}, body: body})
	return uint32(len(b.imports) + len(b.funcs) - 1)
}

// BumpAllocator exports _malloc as a bump allocator starting at heap and
// _free as a no-op.
func (b *Builder) BumpAllocator(heap int32) *Builder {
	b.heap = heap
	b.bump = true
	i32 := []catalog.ValueType{catalog.I32}
	b.Func(catalog.ExportMalloc, i32, i32,
		[]byte{opGlobalGet, 0, opGlobalGet, 0},
		LocalGet(0),
		[]byte{opI32Add, opGlobalSet, 0},
	)
	b.Func(catalog.ExportFree, []catalog.ValueType{catalog.I32, catalog.I32}, nil)
	return b
}

// Data places bytes at offset when the module is instantiated.
func (b *Builder) Data(offset uint32, data []byte) *Builder {
	b.data = append(b.data, segment{offset: offset, data: data})
	return b
}

// CString places s and a terminator at offset and returns offset.
func (b *Builder) CString(offset uint32, s string) uint32 {
	b.Data(offset, append([]byte(s), 0))
	return offset
}

// Bytes encodes the module.
func (b *Builder) Bytes() []byte {
	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	var types [][]byte
	for _, imp := range b.imports {
		types = append(types, encodeSignature(imp.sig))
	}
	for _, fn := range b.funcs {
		types = append(types, encodeSignature(fn.sig))
	}
	out = appendSection(out, sectionType, vector(types))

	if len(b.imports) > 0 {
		var imports [][]byte
		for i, imp := range b.imports {
			entry := appendName(nil, imp.module)
			entry = appendName(entry, imp.name)
			entry = append(entry, exportFunc)
			entry = appendU32(entry, uint32(i))
			imports = append(imports, entry)
		}
		out = appendSection(out, sectionImport, vector(imports))
	}

	var funcTypes [][]byte
	for i := range b.funcs {
		funcTypes = append(funcTypes, appendU32(nil, uint32(len(b.imports)+i)))
	}
	out = appendSection(out, sectionFunction, vector(funcTypes))

	out = appendSection(out, sectionMemory, vector([][]byte{appendU32([]byte{0x00}, b.pages)}))

	if b.bump {
		global := []byte{byte(catalog.I32), 0x01}
		global = append(global, I32Const(b.heap)...)
		global = append(global, opEnd)
		out = appendSection(out, sectionGlobal, vector([][]byte{global}))
	}

	exports := [][]byte{append(appendName(nil, "memory"), exportMemory, 0x00)}
	for i, fn := range b.funcs {
		if fn.export == "" {
			continue
		}
		entry := appendName(nil, fn.export)
		entry = append(entry, exportFunc)
		entry = appendU32(entry, uint32(len(b.imports)+i))
		exports = append(exports, entry)
	}
	out = appendSection(out, sectionExport, vector(exports))

	var code [][]byte
	for _, fn := range b.funcs {
		body := append([]byte{0x00}, fn.body...) // no locals
		code = append(code, appendU32(nil, uint32(len(body)), body...))
	}
	out = appendSection(out, sectionCode, vector(code))

	if len(b.data) > 0 {
		var segs [][]byte
		for _, s := range b.data {
			seg := []byte{0x00}
			seg = append(seg, I32Const(int32(s.offset))...) //nolint:gosec // test offsets are small
			seg = append(seg, opEnd)
			seg = appendU32(seg, uint32(len(s.data)), s.data...)
			segs = append(segs, seg)
		}
		out = appendSection(out, sectionData, vector(segs))
	}
	return out
}

// I32Const pushes v.
func I32Const(v int32) []byte {
	return appendS32([]byte{opI32Const}, v)
}

// F32Const pushes v.
func F32Const(v float32) []byte {
	out := []byte{opF32Const, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(out[1:], math.Float32bits(v))
	return out
}

// Call calls function idx.
func Call(idx uint32) []byte {
	return appendU32([]byte{opCall}, idx)
}

// LocalGet pushes parameter i.
func LocalGet(i uint32) []byte {
	return appendU32([]byte{opLocalGet}, i)
}

// Drop discards the top of the stack.
func Drop() []byte {
	return []byte{opDrop}
}

func encodeSignature(sig signature) []byte {
	out := []byte{0x60}
	out = appendU32(out, uint32(len(sig.params)))
	for _, p := range sig.params {
		out = append(out, byte(p))
	}
	out = appendU32(out, uint32(len(sig.results)))
	for _, r := range sig.results {
		out = append(out, byte(r))
	}
	return out
}

func appendSection(out []byte, id byte, contents []byte) []byte {
	out = append(out, id)
	return appendU32(out, uint32(len(contents)), contents...)
}

func vector(items [][]byte) []byte {
	out := appendU32(nil, uint32(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}

func appendName(out []byte, name string) []byte {
	return appendU32(out, uint32(len(name)), []byte(name)...)
}

// appendU32 appends v as unsigned LEB128 followed by tail.
func appendU32(out []byte, v uint32, tail ...byte) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		out = append(out, c)
		if v == 0 {
			break
		}
	}
	return append(out, tail...)
}

// appendS32 appends v as signed LEB128.
func appendS32(out []byte, v int32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		done := (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0)
		if !done {
			c |= 0x80
		}
		out = append(out, c)
		if done {
			return out
		}
	}
}
