package hostfuncs

import (
	"context"
	"fmt"

	"github.com/reglet-dev/turing-sdk/domain/catalog"
	"github.com/reglet-dev/turing-sdk/domain/entities"
	"github.com/reglet-dev/turing-sdk/domain/ports"
)

// ObjectBundle serves the lifecycle, spatial and appearance entry points of
// every gameplay object kind and the sabers:
// _create_*, _beatmap_*, *_get/set_position, *_get/set_orientation, *_get/set_color.
func ObjectBundle(world ports.World) Bundle {
	ops := []catalog.Op{
		catalog.OpCreate, catalog.OpBeatmapAdd, catalog.OpBeatmapRemove, catalog.OpBeatmapAtBeat,
		catalog.OpGetPosition, catalog.OpSetPosition,
		catalog.OpGetOrientation, catalog.OpSetOrientation,
		catalog.OpGetColor, catalog.OpSetColor,
	}
	return bindOps(ops, func(ep catalog.EntryPoint) Handler {
		kind := ep.Kind
		switch ep.Op {
		case catalog.OpCreate:
			return func(_ context.Context, _ Guest, stack Stack) error {
				h, err := world.Create(kind, stack.F32(0))
				if err != nil {
					return err
				}
				stack.SetHandle(0, h)
				return nil
			}
		case catalog.OpBeatmapAdd:
			return func(_ context.Context, _ Guest, stack Stack) error {
				return world.Add(kind, stack.Handle(0))
			}
		case catalog.OpBeatmapRemove:
			return func(_ context.Context, _ Guest, stack Stack) error {
				return world.Remove(kind, stack.Handle(0))
			}
		case catalog.OpBeatmapAtBeat:
			return func(_ context.Context, _ Guest, stack Stack) error {
				h, err := world.AtBeat(kind, stack.F32(0))
				if err != nil {
					return err
				}
				stack.SetHandle(0, h)
				return nil
			}
		case catalog.OpGetPosition:
			return getter(func(h entities.Handle) (entities.Handle, error) { return world.Position(kind, h) })
		case catalog.OpSetPosition:
			return setter(func(h, v entities.Handle) error { return world.SetPosition(kind, h, v) })
		case catalog.OpGetOrientation:
			return getter(func(h entities.Handle) (entities.Handle, error) { return world.Orientation(kind, h) })
		case catalog.OpSetOrientation:
			return setter(func(h, v entities.Handle) error { return world.SetOrientation(kind, h, v) })
		case catalog.OpGetColor:
			return getter(func(h entities.Handle) (entities.Handle, error) { return world.Color(kind, h) })
		default:
			return setter(func(h, v entities.Handle) error { return world.SetColor(kind, h, v) })
		}
	})
}

func getter(get func(entities.Handle) (entities.Handle, error)) Handler {
	return func(_ context.Context, _ Guest, stack Stack) error {
		v, err := get(stack.Handle(0))
		if err != nil {
			return err
		}
		stack.SetHandle(0, v)
		return nil
	}
}

func setter(set func(obj, value entities.Handle) error) Handler {
	return func(_ context.Context, _ Guest, stack Stack) error {
		return set(stack.Handle(0), stack.Handle(1))
	}
}

// ValueBundle serves the vector, quaternion and color entry points:
// *_get_<attr>, *_set_<attr>, *_from_<attrs>, _color_set_rgb, _color_set_rgba.
func ValueBundle(world ports.World) Bundle {
	ops := []catalog.Op{
		catalog.OpGetAttr, catalog.OpSetAttr, catalog.OpFromComponents,
		catalog.OpSetRGB, catalog.OpSetRGBA,
	}
	return bindOps(ops, func(ep catalog.EntryPoint) Handler {
		kind, attr := ep.Kind, ep.Attr
		switch ep.Op {
		case catalog.OpGetAttr:
			return func(_ context.Context, _ Guest, stack Stack) error {
				v, err := world.Attr(kind, attr, stack.Handle(0))
				if err != nil {
					return err
				}
				stack.SetF32(0, v)
				return nil
			}
		case catalog.OpSetAttr:
			return func(_ context.Context, _ Guest, stack Stack) error {
				return world.SetAttr(kind, attr, stack.Handle(0), stack.F32(1))
			}
		case catalog.OpFromComponents:
			n := len(ep.Params)
			return func(_ context.Context, _ Guest, stack Stack) error {
				comps := make([]float32, n)
				for i := range comps {
					comps[i] = stack.F32(i)
				}
				h, err := world.NewValue(kind, comps...)
				if err != nil {
					return err
				}
				stack.SetHandle(0, h)
				return nil
			}
		case catalog.OpSetRGB:
			return func(_ context.Context, _ Guest, stack Stack) error {
				return world.SetRGB(stack.Handle(0), stack.F32(1), stack.F32(2), stack.F32(3))
			}
		default:
			return func(_ context.Context, _ Guest, stack Stack) error {
				return world.SetRGBA(stack.Handle(0), stack.F32(1), stack.F32(2), stack.F32(3), stack.F32(4))
			}
		}
	})
}

// SaberBundle serves _get_left_saber and _get_right_saber.
func SaberBundle(world ports.World) Bundle {
	return bindOps([]catalog.Op{catalog.OpLeftSaber, catalog.OpRightSaber}, func(ep catalog.EntryPoint) Handler {
		saber := world.RightSaber
		if ep.Op == catalog.OpLeftSaber {
			saber = world.LeftSaber
		}
		return func(_ context.Context, _ Guest, stack Stack) error {
			stack.SetHandle(0, saber())
			return nil
		}
	})
}

// ReferenceBundle serves _drop_reference.
func ReferenceBundle(world ports.World) Bundle {
	return bindOps([]catalog.Op{catalog.OpDropReference}, func(catalog.EntryPoint) Handler {
		return func(_ context.Context, _ Guest, stack Stack) error {
			if err := world.Drop(stack.Handle(0)); err != nil {
				return fmt.Errorf("drop reference: %w", err)
			}
			return nil
		}
	})
}
