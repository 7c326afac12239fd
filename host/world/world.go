// Package world is the reference host's in-memory game world.
//
// It implements the semantics behind every catalogue entry point: gameplay
// objects with a beat, a position, an orientation and a color; the two
// sabers; and the vector, quaternion and color values passed between them.
// Handles are generation-checked, so a handle to a dropped object fails with
// a typed error instead of silently aliasing whatever reuses its slot.
package world

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
	hosterrors "github.com/reglet-dev/turing-sdk/domain/errors"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// DefaultBeatTolerance is how far from the requested beat a lookup still matches.
const DefaultBeatTolerance = 1e-3

// Default saber colors, RGBA.
var (
	DefaultLeftSaberColor  = [4]float32{1, 0, 0, 1}
	DefaultRightSaberColor = [4]float32{0, 0.5, 1, 1}
)

var (
	identityQuat = [4]float32{0, 0, 0, 1}
	white        = [4]float32{1, 1, 1, 1}
)

// worldConfig holds configuration for the World.
type worldConfig struct {
	leftSaberColor  [4]float32
	rightSaberColor [4]float32
	beatTolerance   float32
	maxObjects      int
}

func defaultWorldConfig() worldConfig {
	return worldConfig{
		leftSaberColor:  DefaultLeftSaberColor,
		rightSaberColor: DefaultRightSaberColor,
		beatTolerance:   DefaultBeatTolerance,
		maxObjects:      MaxObjects,
	}
}

// Option configures a World.
type Option func(*worldConfig)

// WithBeatTolerance sets the match window of beat lookups.
// A negative tolerance is ignored.
func WithBeatTolerance(tolerance float32) Option {
	return func(c *worldConfig) {
		if tolerance >= 0 {
			c.beatTolerance = tolerance
		}
	}
}

// WithSaberColors sets the initial RGBA colors of the left and right sabers.
func WithSaberColors(left, right [4]float32) Option {
	return func(c *worldConfig) {
		c.leftSaberColor = left
		c.rightSaberColor = right
	}
}

// WithMaxObjects caps how many objects and values may be live at once,
// sabers included. Values below 2 or above MaxObjects are ignored.
func WithMaxObjects(n int) Option {
	return func(c *worldConfig) {
		if n >= 2 && n <= MaxObjects {
			c.maxObjects = n
		}
	}
}

// World holds every host object a plugin can reference.
// It is safe for concurrent use.
type World struct {
	arena  arena
	config worldConfig
	left   entities.Handle
	right  entities.Handle
	mu     sync.Mutex
}

// New creates a world containing only the two sabers.
func New(opts ...Option) *World {
	cfg := defaultWorldConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &World{config: cfg, arena: arena{limit: cfg.maxObjects}}
	// An empty arena always has room for two objects.
	w.left, _ = w.arena.insert(object{
		kind:        entities.KindSaber,
		orientation: identityQuat,
		color:       cfg.leftSaberColor,
	})
	w.right, _ = w.arena.insert(object{
		kind:        entities.KindSaber,
		orientation: identityQuat,
		color:       cfg.rightSaberColor,
	})
	return w
}

// resolve returns the object behind h, which must be of the given kind.
func (w *World) resolve(op string, h entities.Handle, kind entities.Kind) (*object, error) {
	obj, err := w.arena.get(h)
	if err != nil {
		return nil, &hosterrors.HandleError{Op: op, Handle: h, Err: err}
	}
	if obj.kind != kind {
		return nil, &hosterrors.KindError{Op: op, Handle: h, Want: kind, Got: obj.kind}
	}
	return obj, nil
}

// declared returns the host symbol for the keyed operation, or a
// DeclarationError when the catalogue does not declare it.
func declared(k catalog.Key) (string, error) {
	ep, ok := catalog.Find(k)
	if !ok {
		return k.Op.String(), &hosterrors.DeclarationError{Op: k.Op.String(), Kind: k.Kind}
	}
	return ep.Name, nil
}

// Create spawns an object of a gameplay kind at beat. The object is not part
// of the beatmap until Add is called.
func (w *World) Create(kind entities.Kind, beat float32) (entities.Handle, error) {
	if _, err := declared(catalog.Key{Op: catalog.OpCreate, Kind: kind}); err != nil {
		return entities.NullHandle, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.arena.insert(object{
		kind:        kind,
		beat:        beat,
		orientation: identityQuat,
		color:       white,
	})
}

// Add places the object into the beatmap. Adding twice is a no-op.
func (w *World) Add(kind entities.Kind, h entities.Handle) error {
	return w.setInBeatmap(catalog.OpBeatmapAdd, kind, h, true)
}

// Remove takes the object out of the beatmap. The handle stays valid.
func (w *World) Remove(kind entities.Kind, h entities.Handle) error {
	return w.setInBeatmap(catalog.OpBeatmapRemove, kind, h, false)
}

func (w *World) setInBeatmap(o catalog.Op, kind entities.Kind, h entities.Handle, in bool) error {
	op, err := declared(catalog.Key{Op: o, Kind: kind})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve(op, h, kind)
	if err != nil {
		return err
	}
	obj.inBeatmap = in
	return nil
}

// AtBeat returns the beatmap object of kind closest to beat within the beat
// tolerance, or NullHandle when there is none. Ties go to the older slot.
func (w *World) AtBeat(kind entities.Kind, beat float32) (entities.Handle, error) {
	if _, err := declared(catalog.Key{Op: catalog.OpBeatmapAtBeat, Kind: kind}); err != nil {
		return entities.NullHandle, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	best := entities.NullHandle
	bestDist := math.Inf(1)
	w.arena.each(func(h entities.Handle, obj *object) {
		if obj.kind != kind || !obj.inBeatmap {
			return
		}
		dist := math.Abs(float64(obj.beat - beat))
		if dist <= float64(w.config.beatTolerance) && dist < bestDist {
			best, bestDist = h, dist
		}
	})
	return best, nil
}

// Position returns a new vec3 value holding the object's position.
// Each call occupies an arena slot until the value is dropped.
func (w *World) Position(kind entities.Kind, h entities.Handle) (entities.Handle, error) {
	return w.readInto(catalog.OpGetPosition, kind, h, entities.KindVec3, func(obj *object) [4]float32 {
		p := obj.position
		return [4]float32{p[0], p[1], p[2], 0}
	})
}

// SetPosition copies a vec3 value into the object's position.
func (w *World) SetPosition(kind entities.Kind, h, vec entities.Handle) error {
	return w.writeFrom(catalog.OpSetPosition, kind, h, entities.KindVec3, vec, func(obj *object, c [4]float32) {
		obj.position = [3]float32{c[0], c[1], c[2]}
	})
}

// Orientation returns a new quat value holding the object's orientation.
func (w *World) Orientation(kind entities.Kind, h entities.Handle) (entities.Handle, error) {
	return w.readInto(catalog.OpGetOrientation, kind, h, entities.KindQuat, func(obj *object) [4]float32 {
		return obj.orientation
	})
}

// SetOrientation copies a quat value into the object's orientation.
func (w *World) SetOrientation(kind entities.Kind, h, quat entities.Handle) error {
	return w.writeFrom(catalog.OpSetOrientation, kind, h, entities.KindQuat, quat, func(obj *object, c [4]float32) {
		obj.orientation = c
	})
}

// Color returns a new color value holding the object's color.
// Changing the returned color does not affect the object until SetColor.
func (w *World) Color(kind entities.Kind, h entities.Handle) (entities.Handle, error) {
	return w.readInto(catalog.OpGetColor, kind, h, entities.KindColor, func(obj *object) [4]float32 {
		return obj.color
	})
}

// SetColor copies a color value into the object's color.
func (w *World) SetColor(kind entities.Kind, h, color entities.Handle) error {
	return w.writeFrom(catalog.OpSetColor, kind, h, entities.KindColor, color, func(obj *object, c [4]float32) {
		obj.color = c
	})
}

func (w *World) readInto(o catalog.Op, kind entities.Kind, h entities.Handle, valueKind entities.Kind, read func(*object) [4]float32) (entities.Handle, error) {
	op, err := declared(catalog.Key{Op: o, Kind: kind})
	if err != nil {
		return entities.NullHandle, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve(op, h, kind)
	if err != nil {
		return entities.NullHandle, err
	}
	return w.arena.insert(object{kind: valueKind, components: read(obj)})
}

func (w *World) writeFrom(o catalog.Op, kind entities.Kind, h entities.Handle, valueKind entities.Kind, value entities.Handle, write func(*object, [4]float32)) error {
	op, err := declared(catalog.Key{Op: o, Kind: kind})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve(op, h, kind)
	if err != nil {
		return err
	}
	v, err := w.resolve(op, value, valueKind)
	if err != nil {
		return err
	}
	write(obj, v.components)
	return nil
}

// NewValue creates a vector or quaternion from its components in declaration order.
func (w *World) NewValue(kind entities.Kind, components ...float32) (entities.Handle, error) {
	op, err := declared(catalog.Key{Op: catalog.OpFromComponents, Kind: kind})
	if err != nil {
		return entities.NullHandle, err
	}
	attrs := catalog.Attributes(kind)
	if len(components) != len(attrs) {
		return entities.NullHandle, fmt.Errorf("%s: got %d components, want %d", op, len(components), len(attrs))
	}

	obj := object{kind: kind}
	for i, a := range attrs {
		obj.components[a.Index()] = components[i]
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.arena.insert(obj)
}

// Attr reads one component of a value.
func (w *World) Attr(kind entities.Kind, attr entities.Attr, h entities.Handle) (float32, error) {
	op, err := declared(catalog.Key{Op: catalog.OpGetAttr, Kind: kind, Attr: attr})
	if err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve(op, h, kind)
	if err != nil {
		return 0, err
	}
	return obj.components[attr.Index()], nil
}

// SetAttr writes one component of a value.
func (w *World) SetAttr(kind entities.Kind, attr entities.Attr, h entities.Handle, v float32) error {
	op, err := declared(catalog.Key{Op: catalog.OpSetAttr, Kind: kind, Attr: attr})
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve(op, h, kind)
	if err != nil {
		return err
	}
	obj.components[attr.Index()] = v
	return nil
}

// SetRGB sets the color channels of a color value, keeping its alpha.
func (w *World) SetRGB(h entities.Handle, r, g, b float32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve("_color_set_rgb", h, entities.KindColor)
	if err != nil {
		return err
	}
	obj.components[0], obj.components[1], obj.components[2] = r, g, b
	return nil
}

// SetRGBA sets all four channels of a color value.
func (w *World) SetRGBA(h entities.Handle, r, g, b, a float32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	obj, err := w.resolve("_color_set_rgba", h, entities.KindColor)
	if err != nil {
		return err
	}
	obj.components = [4]float32{r, g, b, a}
	return nil
}

// LeftSaber returns the left saber's handle.
func (w *World) LeftSaber() entities.Handle {
	return w.left
}

// RightSaber returns the right saber's handle.
func (w *World) RightSaber() entities.Handle {
	return w.right
}

// Drop releases the object behind h; the handle and all its copies become stale.
// Sabers belong to the world and are never released.
func (w *World) Drop(h entities.Handle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if h == w.left || h == w.right {
		return nil
	}
	if err := w.arena.release(h); err != nil {
		return &hosterrors.HandleError{Op: "_drop_reference", Handle: h, Err: err}
	}
	return nil
}

// ObjectView is a read-only copy of a gameplay object or saber.
type ObjectView struct {
	Orientation [4]float32
	Color       [4]float32
	Position    [3]float32
	Handle      entities.Handle
	Beat        float32
	Kind        entities.Kind
	InBeatmap   bool
}

// Snapshot returns every gameplay object and saber ordered by beat, then handle.
func (w *World) Snapshot() []ObjectView {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []ObjectView
	w.arena.each(func(h entities.Handle, obj *object) {
		if obj.kind.IsValue() {
			return
		}
		out = append(out, ObjectView{
			Handle:      h,
			Kind:        obj.kind,
			Beat:        obj.beat,
			InBeatmap:   obj.inBeatmap,
			Position:    obj.position,
			Orientation: obj.orientation,
			Color:       obj.color,
		})
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Beat != out[j].Beat {
			return out[i].Beat < out[j].Beat
		}
		return out[i].Handle < out[j].Handle
	})
	return out
}

// Beatmap returns the objects currently in the beatmap, ordered by beat.
func (w *World) Beatmap() []ObjectView {
	var out []ObjectView
	for _, v := range w.Snapshot() {
		if v.InBeatmap {
			out = append(out, v)
		}
	}
	return out
}

// Value returns the components of a value object.
func (w *World) Value(h entities.Handle) (entities.Kind, [4]float32, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	obj, err := w.arena.get(h)
	if err != nil {
		return entities.KindInvalid, [4]float32{}, &hosterrors.HandleError{Op: "value", Handle: h, Err: err}
	}
	if !obj.kind.IsValue() {
		return obj.kind, [4]float32{}, &hosterrors.KindError{Op: "value", Handle: h, Want: entities.KindVec4, Got: obj.kind}
	}
	return obj.kind, obj.components, nil
}

// Stats reports how many live objects the world holds.
type Stats struct {
	Objects int
	Values  int
}

// Stats counts live gameplay objects (sabers included) and values.
func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	var s Stats
	w.arena.each(func(_ entities.Handle, obj *object) {
		if obj.kind.IsValue() {
			s.Values++
		} else {
			s.Objects++
		}
	})
	return s
}

var _ ports.World = (*World)(nil)
