package turing

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

// Object is anything that refers to host state through a handle.
type Object interface {
	Handle() entities.Handle
	Kind() entities.Kind
}

// BeatmapObject is a gameplay object that can be placed in the beatmap.
type BeatmapObject interface {
	Object
	beatmapObject()
}

// gameplayObject is the shared implementation of the seven beatmap kinds.
type gameplayObject[K kindTag] struct {
	handle entities.Handle
}

func (o gameplayObject[K]) beatmapObject() {}

// Handle returns the host handle the wrapper refers to.
func (o gameplayObject[K]) Handle() entities.Handle {
	return o.handle
}

// Kind returns the object's gameplay kind.
func (o gameplayObject[K]) Kind() entities.Kind {
	return kindOf[K]()
}

// IsNull reports whether the wrapper refers to nothing, as returned by a
// beatmap lookup that found no object.
func (o gameplayObject[K]) IsNull() bool {
	return o.handle.IsNull()
}

// Position returns a new vector holding the object's position. The vector
// occupies a host slot until it is passed to Drop.
func (o gameplayObject[K]) Position() Vec3 {
	return Vec3{value[vec3Kind]{binding.Host().Position(kindOf[K](), o.handle)}}
}

// SetPosition moves the object to v. Later changes to v do not move it again.
func (o gameplayObject[K]) SetPosition(v Vec3) {
	binding.Host().SetPosition(kindOf[K](), o.handle, v.handle)
}

// Orientation returns a new quaternion holding the object's rotation.
// Drop it when done.
func (o gameplayObject[K]) Orientation() Quat {
	return Quat{value[quatKind]{binding.Host().Orientation(kindOf[K](), o.handle)}}
}

// SetOrientation copies q into the object's rotation.
func (o gameplayObject[K]) SetOrientation(q Quat) {
	binding.Host().SetOrientation(kindOf[K](), o.handle, q.handle)
}

// Color returns a copy of the object's color. Changing the copy does not
// recolor the object; pass it to SetColor. Like every getter, the copy
// lives on the host until dropped.
func (o gameplayObject[K]) Color() Color {
	return Color{value[colorKind]{binding.Host().Color(kindOf[K](), o.handle)}}
}

// SetColor copies c into the object's color.
func (o gameplayObject[K]) SetColor(c Color) {
	binding.Host().SetColor(kindOf[K](), o.handle, c.handle)
}

// ColorNote is a note the player cuts with a saber of its color.
type ColorNote struct{ gameplayObject[colorNoteKind] }

// BombNote is a note the player must avoid.
type BombNote struct{ gameplayObject[bombNoteKind] }

// ChainHeadNote starts a chain.
type ChainHeadNote struct {
	gameplayObject[chainHeadNoteKind]
}

// ChainLinkNote is one segment of a chain.
type ChainLinkNote struct {
	gameplayObject[chainLinkNoteKind]
}

// ChainNote is a whole chain placed as one object.
type ChainNote struct{ gameplayObject[chainNoteKind] }

// Arc is a curved guide between two notes.
type Arc struct{ gameplayObject[arcKind] }

// Wall is an obstacle the player dodges.
type Wall struct{ gameplayObject[wallKind] }

func create[K kindTag](beat float32) gameplayObject[K] {
	return gameplayObject[K]{binding.Host().Create(kindOf[K](), beat)}
}

// CreateColorNote spawns a note at beat. It is not in the beatmap until added.
func CreateColorNote(beat float32) ColorNote {
	return ColorNote{create[colorNoteKind](beat)}
}

// CreateBombNote spawns a bomb at beat.
func CreateBombNote(beat float32) BombNote {
	return BombNote{create[bombNoteKind](beat)}
}

// CreateChainHeadNote spawns a chain head at beat.
func CreateChainHeadNote(beat float32) ChainHeadNote {
	return ChainHeadNote{create[chainHeadNoteKind](beat)}
}

// CreateChainLinkNote spawns a chain link at beat.
func CreateChainLinkNote(beat float32) ChainLinkNote {
	return ChainLinkNote{create[chainLinkNoteKind](beat)}
}

// CreateChainNote spawns a chain at beat.
func CreateChainNote(beat float32) ChainNote {
	return ChainNote{create[chainNoteKind](beat)}
}

// CreateArc spawns an arc at beat.
func CreateArc(beat float32) Arc {
	return Arc{create[arcKind](beat)}
}

// CreateWall spawns a wall at beat.
func CreateWall(beat float32) Wall {
	return Wall{create[wallKind](beat)}
}

// Saber is one of the player's two sabers. Only its color is accessible.
type Saber struct {
	handle entities.Handle
}

// LeftSaber returns the left saber.
func LeftSaber() Saber {
	return Saber{binding.Host().LeftSaber()}
}

// RightSaber returns the right saber.
func RightSaber() Saber {
	return Saber{binding.Host().RightSaber()}
}

// Handle returns the saber's host handle.
func (s Saber) Handle() entities.Handle {
	return s.handle
}

// Kind always returns entities.KindSaber.
func (s Saber) Kind() entities.Kind {
	return entities.KindSaber
}

// Color returns a copy of the saber's color.
func (s Saber) Color() Color {
	return Color{value[colorKind]{binding.Host().Color(entities.KindSaber, s.handle)}}
}

// SetColor recolors the saber.
func (s Saber) SetColor(c Color) {
	binding.Host().SetColor(entities.KindSaber, s.handle, c.handle)
}

// Drop tells the host the plugin no longer needs obj. Any copy of the
// wrapper is invalid afterwards. Dropping a saber does nothing.
//
// Every constructor and every getter that returns a value (Position,
// Orientation, Color) takes a host slot that stays taken until Drop.
// A host holds about a million live objects; a plugin that reads in a
// loop without dropping eventually fails with an "object arena full" trap.
func Drop(obj Object) {
	binding.Host().DropReference(obj.Handle())
}
