package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// importDecl is one //go:wasmimport declaration.
type importDecl struct {
	Symbol string
	GoName string
	Params string
	Result string
}

// dispatchTable is a map literal from kind, attribute or store kind to imports.
type dispatchTable struct {
	Name    string
	Type    string
	Entries []tableEntry
}

type tableEntry struct {
	Key    string
	GoName string
}

type fileData struct {
	Module  string
	Imports []importDecl
	Tables  []dispatchTable
}

// tableSpec selects the entry points of one operation for a dispatch table.
type tableSpec struct {
	key  func(catalog.EntryPoint) string
	name string
	typ  string
	op   catalog.Op
}

var tableSpecs = []tableSpec{
	{name: "createImports", typ: "map[entities.Kind]func(float32) int32", op: catalog.OpCreate, key: kindKey},
	{name: "addImports", typ: "map[entities.Kind]func(int32)", op: catalog.OpBeatmapAdd, key: kindKey},
	{name: "removeImports", typ: "map[entities.Kind]func(int32)", op: catalog.OpBeatmapRemove, key: kindKey},
	{name: "atBeatImports", typ: "map[entities.Kind]func(float32) int32", op: catalog.OpBeatmapAtBeat, key: kindKey},
	{name: "getPositionImports", typ: "map[entities.Kind]func(int32) int32", op: catalog.OpGetPosition, key: kindKey},
	{name: "setPositionImports", typ: "map[entities.Kind]func(int32, int32)", op: catalog.OpSetPosition, key: kindKey},
	{name: "getOrientationImports", typ: "map[entities.Kind]func(int32) int32", op: catalog.OpGetOrientation, key: kindKey},
	{name: "setOrientationImports", typ: "map[entities.Kind]func(int32, int32)", op: catalog.OpSetOrientation, key: kindKey},
	{name: "getColorImports", typ: "map[entities.Kind]func(int32) int32", op: catalog.OpGetColor, key: kindKey},
	{name: "setColorImports", typ: "map[entities.Kind]func(int32, int32)", op: catalog.OpSetColor, key: kindKey},
	{name: "getAttrImports", typ: "map[attrKey]func(int32) float32", op: catalog.OpGetAttr, key: attrKeyLiteral},
	{name: "setAttrImports", typ: "map[attrKey]func(int32, float32)", op: catalog.OpSetAttr, key: attrKeyLiteral},
	{name: "containsImports", typ: "map[entities.StoreKind]func(int32) int32", op: catalog.OpStoreContains, key: storeKey},
	{name: "removeStoreImports", typ: "map[entities.StoreKind]func(int32)", op: catalog.OpStoreRemove, key: storeKey},
}

var fileTemplate = template.Must(template.New("imports").Parse(`// Code generated by turinggen. DO NOT EDIT.

//go:build wasip1

package wasm

import "github.com/reglet-dev/turing-sdk/domain/entities"
{{range .Imports}}
//go:wasmimport {{$.Module}} {{.Symbol}}
func {{.GoName}}({{.Params}}){{if .Result}} {{.Result}}{{end}}
{{end}}
{{- range .Tables}}
var {{.Name}} = {{.Type}}{
{{- range .Entries}}
	{{.Key}}: {{.GoName}},
{{- end}}
}
{{end}}`))

// Render writes the import declarations and dispatch tables for every
// catalogue entry point to w.
func Render(w io.Writer) error {
	data := fileData{Module: catalog.HostModule}
	eps := catalog.EntryPoints()

	for _, ep := range eps {
		data.Imports = append(data.Imports, importDecl{
			Symbol: ep.Name,
			GoName: goName(ep.Name),
			Params: goParams(ep.Params),
			Result: goResult(ep.Results),
		})
	}

	for _, spec := range tableSpecs {
		tbl := dispatchTable{Name: spec.name, Type: spec.typ}
		for _, ep := range eps {
			if ep.Op != spec.op {
				continue
			}
			tbl.Entries = append(tbl.Entries, tableEntry{Key: spec.key(ep), GoName: goName(ep.Name)})
		}
		data.Tables = append(data.Tables, tbl)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render imports: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format generated source: %w", err)
	}

	_, err = w.Write(src)
	return err
}

// goName maps a host symbol such as "_create_arc" to "host_create_arc".
func goName(symbol string) string {
	return "host" + symbol
}

func goType(v catalog.ValueType) string {
	if v == catalog.F32 {
		return "float32"
	}
	return "int32"
}

func goParams(params []catalog.ValueType) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("a%d %s", i, goType(p))
	}
	return strings.Join(parts, ", ")
}

func goResult(results []catalog.ValueType) string {
	if len(results) == 0 {
		return ""
	}
	return goType(results[0])
}

func kindKey(ep catalog.EntryPoint) string {
	return kindIdent(ep.Kind)
}

func attrKeyLiteral(ep catalog.EntryPoint) string {
	return fmt.Sprintf("{%s, entities.Attr%s}", kindIdent(ep.Kind), strings.ToUpper(ep.Attr.String()))
}

func storeKey(ep catalog.EntryPoint) string {
	return "entities.Store" + strings.ToUpper(ep.Store.String()[:1]) + ep.Store.String()[1:]
}

// kindIdent maps a kind to its Go constant, e.g. chain_note -> entities.KindChainNote.
func kindIdent(k entities.Kind) string {
	var b strings.Builder
	b.WriteString("entities.Kind")
	for _, part := range strings.Split(k.String(), "_") {
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return b.String()
}
