// Command roundtrip passes strings both ways across the plugin boundary:
// keys and values go out as C strings, stored strings come back in
// buffers the host allocates through _malloc.
package main

import (
	"github.com/go-gl/mathgl/mgl32"

	turing "github.com/reglet-dev/turing-sdk"
	"github.com/reglet-dev/turing-sdk/log"
)

func main() {
	var d turing.Data

	d.SetString("name", "hello world")
	name, ok := d.String("name")
	_, missing := d.String("missing")
	d.SetString("echo", name)
	log.Infof("name=%q ok=%t missing=%t", name, ok, missing)

	wall := turing.CreateWall(3)
	pos := turing.Vec3FromMgl(mgl32.Vec3{1, 2, 3})
	wall.SetPosition(pos)
	turing.Drop(pos)
	turing.Beatmap.Add(wall)

	got := wall.Position()
	log.Debugf("position=%v", got.Mgl())
	turing.Drop(got)
}
