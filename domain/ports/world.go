package ports

import (
	"github.com/reglet-dev/turing-sdk/domain/entities"
)

// World is the reference host's game state as seen by its host functions.
// It mirrors Host, but every operation that can fail reports why, so the
// host can trap with a precise error instead of returning garbage.
type World interface {
	Create(kind entities.Kind, beat float32) (entities.Handle, error)
	Add(kind entities.Kind, obj entities.Handle) error
	Remove(kind entities.Kind, obj entities.Handle) error
	AtBeat(kind entities.Kind, beat float32) (entities.Handle, error)

	Position(kind entities.Kind, obj entities.Handle) (entities.Handle, error)
	SetPosition(kind entities.Kind, obj, vec3 entities.Handle) error
	Orientation(kind entities.Kind, obj entities.Handle) (entities.Handle, error)
	SetOrientation(kind entities.Kind, obj, quat entities.Handle) error
	Color(kind entities.Kind, obj entities.Handle) (entities.Handle, error)
	SetColor(kind entities.Kind, obj, color entities.Handle) error

	NewValue(kind entities.Kind, components ...float32) (entities.Handle, error)
	Attr(kind entities.Kind, attr entities.Attr, value entities.Handle) (float32, error)
	SetAttr(kind entities.Kind, attr entities.Attr, value entities.Handle, v float32) error
	SetRGB(color entities.Handle, r, g, b float32) error
	SetRGBA(color entities.Handle, r, g, b, a float32) error

	LeftSaber() entities.Handle
	RightSaber() entities.Handle

	Drop(obj entities.Handle) error
}
