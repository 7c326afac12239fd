//go:build !wasip1

package wasm

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

var _ ports.Host = (*HostAdapter)(nil)

const unavailable = "WASM host adapter not available in native build"

// HostAdapter stub for native builds. Tests install turingtest.Host instead.
type HostAdapter struct{}

func NewHostAdapter() *HostAdapter {
	return &HostAdapter{}
}

func (HostAdapter) Create(entities.Kind, float32) entities.Handle               { panic(unavailable) }
func (HostAdapter) Add(entities.Kind, entities.Handle)                          { panic(unavailable) }
func (HostAdapter) Remove(entities.Kind, entities.Handle)                       { panic(unavailable) }
func (HostAdapter) AtBeat(entities.Kind, float32) entities.Handle               { panic(unavailable) }
func (HostAdapter) Position(entities.Kind, entities.Handle) entities.Handle     { panic(unavailable) }
func (HostAdapter) SetPosition(entities.Kind, entities.Handle, entities.Handle) { panic(unavailable) }
func (HostAdapter) Orientation(entities.Kind, entities.Handle) entities.Handle  { panic(unavailable) }
func (HostAdapter) SetOrientation(entities.Kind, entities.Handle, entities.Handle) {
	panic(unavailable)
}
func (HostAdapter) Color(entities.Kind, entities.Handle) entities.Handle       { panic(unavailable) }
func (HostAdapter) SetColor(entities.Kind, entities.Handle, entities.Handle)   { panic(unavailable) }
func (HostAdapter) NewValue(entities.Kind, ...float32) entities.Handle         { panic(unavailable) }
func (HostAdapter) Attr(entities.Kind, entities.Attr, entities.Handle) float32 { panic(unavailable) }
func (HostAdapter) SetAttr(entities.Kind, entities.Attr, entities.Handle, float32) {
	panic(unavailable)
}
func (HostAdapter) SetRGB(entities.Handle, float32, float32, float32)           { panic(unavailable) }
func (HostAdapter) SetRGBA(entities.Handle, float32, float32, float32, float32) { panic(unavailable) }
func (HostAdapter) LeftSaber() entities.Handle                                  { panic(unavailable) }
func (HostAdapter) RightSaber() entities.Handle                                 { panic(unavailable) }
func (HostAdapter) Log(string)                                                  { panic(unavailable) }
func (HostAdapter) DropReference(entities.Handle)                               { panic(unavailable) }
func (HostAdapter) Contains(entities.StoreKind, string) bool                    { panic(unavailable) }
func (HostAdapter) AccessInt(string) int32                                      { panic(unavailable) }
func (HostAdapter) AccessFloat(string) float32                                  { panic(unavailable) }
func (HostAdapter) AccessString(string) string                                  { panic(unavailable) }
func (HostAdapter) StoreInt(string, int32)                                      { panic(unavailable) }
func (HostAdapter) StoreFloat(string, float32)                                  { panic(unavailable) }
func (HostAdapter) StoreString(string, string)                                  { panic(unavailable) }
func (HostAdapter) RemoveValue(entities.StoreKind, string)                      { panic(unavailable) }
