package turing

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/internal/binding"
)

type beatmap struct{}

// Beatmap is the playable map the game runs.
var Beatmap beatmap

// Add places obj in the beatmap at its beat.
func (beatmap) Add(obj BeatmapObject) {
	binding.Host().Add(obj.Kind(), obj.Handle())
}

// Remove takes obj out of the beatmap. The object itself stays valid.
func (beatmap) Remove(obj BeatmapObject) {
	binding.Host().Remove(obj.Kind(), obj.Handle())
}

func at[K kindTag](beat float32) (gameplayObject[K], bool) {
	h := binding.Host().AtBeat(kindOf[K](), beat)
	return gameplayObject[K]{h}, !h.IsNull()
}

// ColorNoteAt returns the color note placed at beat.
func (beatmap) ColorNoteAt(beat float32) (ColorNote, bool) {
	o, ok := at[colorNoteKind](beat)
	return ColorNote{o}, ok
}

// BombNoteAt returns the bomb placed at beat.
func (beatmap) BombNoteAt(beat float32) (BombNote, bool) {
	o, ok := at[bombNoteKind](beat)
	return BombNote{o}, ok
}

// ChainHeadNoteAt returns the chain head placed at beat.
func (beatmap) ChainHeadNoteAt(beat float32) (ChainHeadNote, bool) {
	o, ok := at[chainHeadNoteKind](beat)
	return ChainHeadNote{o}, ok
}

// ChainLinkNoteAt returns the chain link placed at beat.
func (beatmap) ChainLinkNoteAt(beat float32) (ChainLinkNote, bool) {
	o, ok := at[chainLinkNoteKind](beat)
	return ChainLinkNote{o}, ok
}

// ChainNoteAt returns the chain placed at beat.
func (beatmap) ChainNoteAt(beat float32) (ChainNote, bool) {
	o, ok := at[chainNoteKind](beat)
	return ChainNote{o}, ok
}

// ArcAt returns the arc placed at beat.
func (beatmap) ArcAt(beat float32) (Arc, bool) {
	o, ok := at[arcKind](beat)
	return Arc{o}, ok
}

// WallAt returns the wall placed at beat.
func (beatmap) WallAt(beat float32) (Wall, bool) {
	o, ok := at[wallKind](beat)
	return Wall{o}, ok
}

// At returns the handle of the object of kind at beat, or a null handle.
func (beatmap) At(kind entities.Kind, beat float32) entities.Handle {
	return binding.Host().AtBeat(kind, beat)
}
