// Package turing is the plugin-side API of the game host.
//
// Plugins are compiled with GOOS=wasip1 GOARCH=wasm and call into the game
// through typed wrappers: gameplay objects (notes, bombs, chains, arcs and
// walls), the two sabers, and vector, quaternion and color values. Every
// wrapper holds one host handle and every method is a single call across the
// module boundary; the host owns all state. Getters return copies: a
// color read from an object is written back with the matching setter.
//
// A plugin places a wall four beats in and tints it:
//
//	wall := turing.CreateWall(4)
//	pos := turing.NewVec3(0, 1, 0)
//	wall.SetPosition(pos)
//	turing.Drop(pos)
//	c := wall.Color()
//	c.SetRGB(1, 0.2, 0)
//	wall.SetColor(c)
//	turing.Drop(c)
//	turing.Beatmap.Add(wall)
//
// Every constructor and every value getter takes a host slot that is only
// given back by Drop. Plugins that read inside loops drop what they read.
//
// Tests run the same code natively against turingtest.Install.
package turing
