package turing

import "github.com/reglet-dev/turing-sdk/domain/entities"

// kindTag selects the host kind of a generic wrapper at compile time.
type kindTag interface {
	kind() entities.Kind
}

type (
	colorNoteKind     struct{}
	bombNoteKind      struct{}
	chainHeadNoteKind struct{}
	chainLinkNoteKind struct{}
	chainNoteKind     struct{}
	arcKind           struct{}
	wallKind          struct{}
	vec2Kind          struct{}
	vec3Kind          struct{}
	vec4Kind          struct{}
	quatKind          struct{}
	colorKind         struct{}
)

func (colorNoteKind) kind() entities.Kind     { return entities.KindColorNote }
func (bombNoteKind) kind() entities.Kind      { return entities.KindBombNote }
func (chainHeadNoteKind) kind() entities.Kind { return entities.KindChainHeadNote }
func (chainLinkNoteKind) kind() entities.Kind { return entities.KindChainLinkNote }
func (chainNoteKind) kind() entities.Kind     { return entities.KindChainNote }
func (arcKind) kind() entities.Kind           { return entities.KindArc }
func (wallKind) kind() entities.Kind          { return entities.KindWall }
func (vec2Kind) kind() entities.Kind          { return entities.KindVec2 }
func (vec3Kind) kind() entities.Kind          { return entities.KindVec3 }
func (vec4Kind) kind() entities.Kind          { return entities.KindVec4 }
func (quatKind) kind() entities.Kind          { return entities.KindQuat }
func (colorKind) kind() entities.Kind         { return entities.KindColor }

func kindOf[K kindTag]() entities.Kind {
	var k K
	return k.kind()
}
