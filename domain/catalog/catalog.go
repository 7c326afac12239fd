// Package catalog is the fixed table of entry points shared with the game host.
//
// The table is data: object kinds map to attribute groups, value kinds map to
// component lists, and every entry-point name and signature is derived from it.
// The guest import adapter, the import generator and the reference host's
// function bundles all consume this one table, so the three can never disagree
// about a name or a signature.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// HostModule is the import module every entry point lives in.
const HostModule = "env"

// ValueType is a WebAssembly core value type, encoded as in the binary format.
type ValueType byte

const (
	I32 ValueType = 0x7f
	F32 ValueType = 0x7d
)

func (v ValueType) String() string {
	switch v {
	case I32:
		return "i32"
	case F32:
		return "f32"
	default:
		return fmt.Sprintf("valtype(%#x)", byte(v))
	}
}

// Group is a set of entry points declared together for an object kind.
type Group uint8

const (
	// GroupLifecycle is create-at-beat, add, remove and lookup-at-beat.
	GroupLifecycle Group = iota
	// GroupSpatial is get/set position and get/set orientation.
	GroupSpatial
	// GroupAppearance is get/set color.
	GroupAppearance
)

// Op is the operation an entry point performs.
type Op uint8

const (
	OpCreate Op = iota
	OpBeatmapAdd
	OpBeatmapRemove
	OpBeatmapAtBeat
	OpGetPosition
	OpSetPosition
	OpGetOrientation
	OpSetOrientation
	OpGetColor
	OpSetColor
	OpGetAttr
	OpSetAttr
	OpFromComponents
	OpSetRGB
	OpSetRGBA
	OpLeftSaber
	OpRightSaber
	OpLog
	OpDropReference
	OpStoreContains
	OpStoreSet
	OpStoreAccess
	OpStoreRemove
)

var opNames = [...]string{
	OpCreate:         "create",
	OpBeatmapAdd:     "beatmap_add",
	OpBeatmapRemove:  "beatmap_remove",
	OpBeatmapAtBeat:  "beatmap_at_beat",
	OpGetPosition:    "get_position",
	OpSetPosition:    "set_position",
	OpGetOrientation: "get_orientation",
	OpSetOrientation: "set_orientation",
	OpGetColor:       "get_color",
	OpSetColor:       "set_color",
	OpGetAttr:        "get_attr",
	OpSetAttr:        "set_attr",
	OpFromComponents: "from_components",
	OpSetRGB:         "set_rgb",
	OpSetRGBA:        "set_rgba",
	OpLeftSaber:      "left_saber",
	OpRightSaber:     "right_saber",
	OpLog:            "log",
	OpDropReference:  "drop_reference",
	OpStoreContains:  "store_contains",
	OpStoreSet:       "store_set",
	OpStoreAccess:    "store_access",
	OpStoreRemove:    "store_remove",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Counterpart returns the setter for a getter and the getter for a setter.
func (o Op) Counterpart() (Op, bool) {
	switch o {
	case OpGetPosition:
		return OpSetPosition, true
	case OpSetPosition:
		return OpGetPosition, true
	case OpGetOrientation:
		return OpSetOrientation, true
	case OpSetOrientation:
		return OpGetOrientation, true
	case OpGetColor:
		return OpSetColor, true
	case OpSetColor:
		return OpGetColor, true
	case OpGetAttr:
		return OpSetAttr, true
	case OpSetAttr:
		return OpGetAttr, true
	default:
		return o, false
	}
}

// Key identifies an entry point by what it does rather than by name.
// Fields that do not apply to the operation are left at their zero value.
type Key struct {
	Op    Op
	Kind  entities.Kind
	Attr  entities.Attr
	Store entities.StoreKind
}

// EntryPoint is one named function of the host ABI.
type EntryPoint struct {
	Name    string
	Params  []ValueType
	Results []ValueType
	Key
}

// Signature renders the entry point as "name(params) -> results".
func (e EntryPoint) Signature() string {
	return fmt.Sprintf("%s(%s) -> (%s)", e.Name, joinTypes(e.Params), joinTypes(e.Results))
}

func joinTypes(types []ValueType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// objectGroups is the attribute-group table for every host object kind that is
// not a plain value.
var objectGroups = []struct {
	groups []Group
	kind   entities.Kind
}{
	{kind: entities.KindColorNote, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindBombNote, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindArc, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindWall, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindChainHeadNote, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindChainLinkNote, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindChainNote, groups: []Group{GroupLifecycle, GroupSpatial, GroupAppearance}},
	{kind: entities.KindSaber, groups: []Group{GroupAppearance}},
}

// valueAttrs is the component table for every value kind.
var valueAttrs = []struct {
	attrs []entities.Attr
	kind  entities.Kind
	// constructible kinds have a "_<kind>_from_<attrs>" entry point.
	constructible bool
}{
	{kind: entities.KindVec2, attrs: []entities.Attr{entities.AttrX, entities.AttrY}, constructible: true},
	{kind: entities.KindVec3, attrs: []entities.Attr{entities.AttrX, entities.AttrY, entities.AttrZ}, constructible: true},
	{kind: entities.KindVec4, attrs: []entities.Attr{entities.AttrX, entities.AttrY, entities.AttrZ, entities.AttrW}, constructible: true},
	{kind: entities.KindQuat, attrs: []entities.Attr{entities.AttrX, entities.AttrY, entities.AttrZ, entities.AttrW}, constructible: true},
	{kind: entities.KindColor, attrs: []entities.Attr{entities.AttrR, entities.AttrG, entities.AttrB, entities.AttrA}},
}

var (
	entries []EntryPoint
	byName  map[string]EntryPoint
	byKey   map[Key]EntryPoint
)

func init() {
	entries = build()
	byName = make(map[string]EntryPoint, len(entries))
	byKey = make(map[Key]EntryPoint, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
		byKey[e.Key] = e
	}
}

func build() []EntryPoint {
	var out []EntryPoint
	add := func(k Key, params, results []ValueType) {
		out = append(out, EntryPoint{Name: nameFor(k), Key: k, Params: params, Results: results})
	}
	none := []ValueType(nil)
	i32 := []ValueType{I32}
	f32 := []ValueType{F32}
	handlePair := []ValueType{I32, I32}

	for _, og := range objectGroups {
		for _, g := range og.groups {
			switch g {
			case GroupLifecycle:
				add(Key{Op: OpCreate, Kind: og.kind}, f32, i32)
				add(Key{Op: OpBeatmapAdd, Kind: og.kind}, i32, none)
				add(Key{Op: OpBeatmapRemove, Kind: og.kind}, i32, none)
				add(Key{Op: OpBeatmapAtBeat, Kind: og.kind}, f32, i32)
			case GroupSpatial:
				add(Key{Op: OpSetPosition, Kind: og.kind}, handlePair, none)
				add(Key{Op: OpGetPosition, Kind: og.kind}, i32, i32)
				add(Key{Op: OpSetOrientation, Kind: og.kind}, handlePair, none)
				add(Key{Op: OpGetOrientation, Kind: og.kind}, i32, i32)
			case GroupAppearance:
				add(Key{Op: OpSetColor, Kind: og.kind}, handlePair, none)
				add(Key{Op: OpGetColor, Kind: og.kind}, i32, i32)
			}
		}
	}

	for _, va := range valueAttrs {
		for _, a := range va.attrs {
			add(Key{Op: OpGetAttr, Kind: va.kind, Attr: a}, i32, f32)
			add(Key{Op: OpSetAttr, Kind: va.kind, Attr: a}, []ValueType{I32, F32}, none)
		}
		if va.constructible {
			params := make([]ValueType, len(va.attrs))
			for i := range params {
				params[i] = F32
			}
			add(Key{Op: OpFromComponents, Kind: va.kind}, params, i32)
		}
	}

	add(Key{Op: OpSetRGB, Kind: entities.KindColor}, []ValueType{I32, F32, F32, F32}, none)
	add(Key{Op: OpSetRGBA, Kind: entities.KindColor}, []ValueType{I32, F32, F32, F32, F32}, none)
	add(Key{Op: OpLeftSaber, Kind: entities.KindSaber}, none, i32)
	add(Key{Op: OpRightSaber, Kind: entities.KindSaber}, none, i32)
	add(Key{Op: OpLog}, i32, none)
	add(Key{Op: OpDropReference}, i32, none)

	for _, s := range entities.StoreKinds() {
		value := i32
		if s == entities.StoreF32 {
			value = f32
		}
		add(Key{Op: OpStoreContains, Store: s}, i32, i32)
		add(Key{Op: OpStoreSet, Store: s}, append([]ValueType{I32}, value...), none)
		add(Key{Op: OpStoreAccess, Store: s}, i32, value)
		add(Key{Op: OpStoreRemove, Store: s}, i32, none)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// nameFor derives the host symbol for an operation.
func nameFor(k Key) string {
	kind := k.Kind.String()
	switch k.Op {
	case OpCreate:
		return "_create_" + kind
	case OpBeatmapAdd:
		return "_beatmap_add_" + kind
	case OpBeatmapRemove:
		return "_beatmap_remove_" + kind
	case OpBeatmapAtBeat:
		return "_beatmap_get_" + kind + "_at_beat"
	case OpGetPosition, OpSetPosition, OpGetOrientation, OpSetOrientation,
		OpGetColor, OpSetColor, OpSetRGB, OpSetRGBA:
		return "_" + kind + "_" + k.Op.String()
	case OpGetAttr:
		return "_" + kind + "_get_" + k.Attr.String()
	case OpSetAttr:
		return "_" + kind + "_set_" + k.Attr.String()
	case OpFromComponents:
		var b strings.Builder
		for _, a := range Attributes(k.Kind) {
			b.WriteString(a.String())
		}
		return "_" + kind + "_from_" + b.String()
	case OpLeftSaber:
		return "_get_left_saber"
	case OpRightSaber:
		return "_get_right_saber"
	case OpLog:
		return "_log"
	case OpDropReference:
		return "_drop_reference"
	case OpStoreContains:
		return "_data_contains_persistent_" + k.Store.String()
	case OpStoreSet:
		return "_data_store_persistent_" + k.Store.String()
	case OpStoreAccess:
		return "_data_access_persistent_" + k.Store.String()
	case OpStoreRemove:
		return "_data_remove_persistent_" + k.Store.String()
	}
	panic(fmt.Sprintf("catalog: no name for op %s", k.Op))
}

// EntryPoints returns every host entry point sorted by name.
func EntryPoints() []EntryPoint {
	out := make([]EntryPoint, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry point with the given host symbol.
func Lookup(name string) (EntryPoint, bool) {
	e, ok := byName[name]
	return e, ok
}

// Find returns the entry point performing the keyed operation.
func Find(k Key) (EntryPoint, bool) {
	e, ok := byKey[k]
	return e, ok
}

// MustName returns the symbol for k and panics if the catalogue does not declare it.
func MustName(k Key) string {
	e, ok := byKey[k]
	if !ok {
		panic(fmt.Sprintf("catalog: %s is not declared for %s", k.Op, k.Kind))
	}
	return e.Name
}

// Attributes returns the components of a value kind in declaration order.
func Attributes(kind entities.Kind) []entities.Attr {
	for _, va := range valueAttrs {
		if va.kind == kind {
			out := make([]entities.Attr, len(va.attrs))
			copy(out, va.attrs)
			return out
		}
	}
	return nil
}

// Groups returns the attribute groups declared for an object kind.
func Groups(kind entities.Kind) []Group {
	for _, og := range objectGroups {
		if og.kind == kind {
			out := make([]Group, len(og.groups))
			copy(out, og.groups)
			return out
		}
	}
	return nil
}

// HasGroup reports whether kind declares the group.
func HasGroup(kind entities.Kind, g Group) bool {
	for _, have := range Groups(kind) {
		if have == g {
			return true
		}
	}
	return false
}

// GameplayKinds returns the kinds that declare the lifecycle group.
func GameplayKinds() []entities.Kind {
	var out []entities.Kind
	for _, og := range objectGroups {
		if HasGroup(og.kind, GroupLifecycle) {
			out = append(out, og.kind)
		}
	}
	return out
}

// ValueKinds returns every vector, quaternion and color kind.
func ValueKinds() []entities.Kind {
	out := make([]entities.Kind, len(valueAttrs))
	for i, va := range valueAttrs {
		out[i] = va.kind
	}
	return out
}

// GuestExport is a function the plugin must export for the host.
type GuestExport struct {
	Name    string
	Params  []ValueType
	Results []ValueType
}

// Names of the memory-management exports the host calls.
const (
	ExportMalloc = "_malloc"
	ExportFree   = "_free"
)

// GuestExports returns the memory-management functions every plugin exports.
func GuestExports() []GuestExport {
	return []GuestExport{
		{Name: ExportMalloc, Params: []ValueType{I32}, Results: []ValueType{I32}},
		{Name: ExportFree, Params: []ValueType{I32, I32}},
	}
}

// Validate checks the table's structural invariants: unique names and a
// matching setter for every getter.
func Validate() error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			return fmt.Errorf("catalog: duplicate entry point %q", e.Name)
		}
		seen[e.Name] = true

		counterpart, paired := e.Op.Counterpart()
		if !paired {
			continue
		}
		k := e.Key
		k.Op = counterpart
		if _, ok := byKey[k]; !ok {
			return fmt.Errorf("catalog: %q has no %s counterpart", e.Name, counterpart)
		}
	}
	return nil
}
